// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saketh8887/medconnect/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *StudySessionCreate) SetSequence(v int64) *StudySessionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StudySessionCreate) SetTimestamp(v time.Time) *StudySessionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableTimestamp(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StudySessionCreate) SetUserID(v string) *StudySessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHours sets the "hours" field.
func (_c *StudySessionCreate) SetHours(v float64) *StudySessionCreate {
	_c.mutation.SetHours(v)
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := studysession.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StudySession.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StudySession.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudySession.user_id"`)}
	}
	if _, ok := _c.mutation.Hours(); !ok {
		return &ValidationError{Name: "hours", err: errors.New(`ent: missing required field "StudySession.hours"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(studysession.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(studysession.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Hours(); ok {
		_spec.SetField(studysession.FieldHours, field.TypeFloat64, value)
		_node.Hours = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertOne {
	_c.conflict = opts
	return &StudySessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflictColumns(columns ...string) *StudySessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertOne{
		create: _c,
	}
}

type (
	// StudySessionUpsertOne is the builder for "upsert"-ing
	//  one StudySession node.
	StudySessionUpsertOne struct {
		create *StudySessionCreate
	}

	// StudySessionUpsert is the "OnConflict" setter.
	StudySessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *StudySessionUpsert) SetUserID(v string) *StudySessionUpsert {
	u.Set(studysession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateUserID() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldUserID)
	return u
}

// SetHours sets the "hours" field.
func (u *StudySessionUpsert) SetHours(v float64) *StudySessionUpsert {
	u.Set(studysession.FieldHours, v)
	return u
}

// UpdateHours sets the "hours" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateHours() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldHours)
	return u
}

// AddHours adds v to the "hours" field.
func (u *StudySessionUpsert) AddHours(v float64) *StudySessionUpsert {
	u.Add(studysession.FieldHours, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertOne) UpdateNewValues() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(studysession.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(studysession.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudySessionUpsertOne) Ignore() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertOne) DoNothing() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreate.OnConflict
// documentation for more info.
func (u *StudySessionUpsertOne) Update(set func(*StudySessionUpsert)) *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudySessionUpsertOne) SetUserID(v string) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateUserID() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateUserID()
	})
}

// SetHours sets the "hours" field.
func (u *StudySessionUpsertOne) SetHours(v float64) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetHours(v)
	})
}

// AddHours adds v to the "hours" field.
func (u *StudySessionUpsertOne) AddHours(v float64) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddHours(v)
	})
}

// UpdateHours sets the "hours" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateHours() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateHours()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudySessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudySessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
	conflict []sql.ConflictOption
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertBulk {
	_c.conflict = opts
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflictColumns(columns ...string) *StudySessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// StudySessionUpsertBulk is the builder for "upsert"-ing
// a bulk of StudySession nodes.
type StudySessionUpsertBulk struct {
	create *StudySessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) UpdateNewValues() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(studysession.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(studysession.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) Ignore() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertBulk) DoNothing() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreateBulk.OnConflict
// documentation for more info.
func (u *StudySessionUpsertBulk) Update(set func(*StudySessionUpsert)) *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudySessionUpsertBulk) SetUserID(v string) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateUserID() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateUserID()
	})
}

// SetHours sets the "hours" field.
func (u *StudySessionUpsertBulk) SetHours(v float64) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetHours(v)
	})
}

// AddHours adds v to the "hours" field.
func (u *StudySessionUpsertBulk) AddHours(v float64) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddHours(v)
	})
}

// UpdateHours sets the "hours" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateHours() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateHours()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudySessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
