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
	"github.com/saketh8887/medconnect/ent/inquiry"
	"github.com/saketh8887/medconnect/ent/predicate"
)

// InquiryUpdate is the builder for updating Inquiry entities.
type InquiryUpdate struct {
	config
	hooks    []Hook
	mutation *InquiryMutation
}

// Where appends a list predicates to the InquiryUpdate builder.
func (_u *InquiryUpdate) Where(ps ...predicate.Inquiry) *InquiryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *InquiryUpdate) SetStudentID(v string) *InquiryUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableStudentID(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *InquiryUpdate) SetStudentName(v string) *InquiryUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableStudentName(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *InquiryUpdate) SetSubjectID(v string) *InquiryUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableSubjectID(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *InquiryUpdate) SetQuestion(v string) *InquiryUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableQuestion(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *InquiryUpdate) SetAnswer(v string) *InquiryUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableAnswer(v *string) *InquiryUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *InquiryUpdate) ClearAnswer() *InquiryUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InquiryUpdate) SetStatus(v inquiry.Status) *InquiryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableStatus(v *inquiry.Status) *InquiryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *InquiryUpdate) SetAnsweredAt(v time.Time) *InquiryUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *InquiryUpdate) SetNillableAnsweredAt(v *time.Time) *InquiryUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *InquiryUpdate) ClearAnsweredAt() *InquiryUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// Mutation returns the InquiryMutation object of the builder.
func (_u *InquiryUpdate) Mutation() *InquiryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InquiryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InquiryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InquiryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiry.Table, inquiry.Columns, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(inquiry.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(inquiry.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(inquiry.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(inquiry.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(inquiry.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(inquiry.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(inquiry.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(inquiry.FieldAnsweredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InquiryUpdateOne is the builder for updating a single Inquiry entity.
type InquiryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InquiryMutation
}

// SetStudentID sets the "student_id" field.
func (_u *InquiryUpdateOne) SetStudentID(v string) *InquiryUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableStudentID(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *InquiryUpdateOne) SetStudentName(v string) *InquiryUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableStudentName(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *InquiryUpdateOne) SetSubjectID(v string) *InquiryUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableSubjectID(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *InquiryUpdateOne) SetQuestion(v string) *InquiryUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableQuestion(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *InquiryUpdateOne) SetAnswer(v string) *InquiryUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableAnswer(v *string) *InquiryUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *InquiryUpdateOne) ClearAnswer() *InquiryUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InquiryUpdateOne) SetStatus(v inquiry.Status) *InquiryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableStatus(v *inquiry.Status) *InquiryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *InquiryUpdateOne) SetAnsweredAt(v time.Time) *InquiryUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *InquiryUpdateOne) SetNillableAnsweredAt(v *time.Time) *InquiryUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *InquiryUpdateOne) ClearAnsweredAt() *InquiryUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// Mutation returns the InquiryMutation object of the builder.
func (_u *InquiryUpdateOne) Mutation() *InquiryMutation {
	return _u.mutation
}

// Where appends a list predicates to the InquiryUpdate builder.
func (_u *InquiryUpdateOne) Where(ps ...predicate.Inquiry) *InquiryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InquiryUpdateOne) Select(field string, fields ...string) *InquiryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Inquiry entity.
func (_u *InquiryUpdateOne) Save(ctx context.Context) (*Inquiry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InquiryUpdateOne) SaveX(ctx context.Context) *Inquiry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InquiryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InquiryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InquiryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InquiryUpdateOne) sqlSave(ctx context.Context) (_node *Inquiry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inquiry.Table, inquiry.Columns, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Inquiry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inquiry.FieldID)
		for _, f := range fields {
			if !inquiry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inquiry.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(inquiry.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(inquiry.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(inquiry.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(inquiry.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(inquiry.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(inquiry.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(inquiry.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(inquiry.FieldAnsweredAt, field.TypeTime)
	}
	_node = &Inquiry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inquiry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
