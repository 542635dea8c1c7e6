// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saketh8887/medconnect/ent/predicate"
	"github.com/saketh8887/medconnect/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdate) SetUserID(v string) *StudySessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableUserID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *StudySessionUpdate) SetHours(v float64) *StudySessionUpdate {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableHours(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *StudySessionUpdate) AddHours(v float64) *StudySessionUpdate {
	_u.mutation.AddHours(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(studysession.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(studysession.FieldHours, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdateOne) SetUserID(v string) *StudySessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableUserID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *StudySessionUpdateOne) SetHours(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableHours(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *StudySessionUpdateOne) AddHours(v float64) *StudySessionUpdateOne {
	_u.mutation.AddHours(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(studysession.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(studysession.FieldHours, field.TypeFloat64, value)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
