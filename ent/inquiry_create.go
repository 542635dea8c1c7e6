// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saketh8887/medconnect/ent/inquiry"
)

// InquiryCreate is the builder for creating a Inquiry entity.
type InquiryCreate struct {
	config
	mutation *InquiryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudentID sets the "student_id" field.
func (_c *InquiryCreate) SetStudentID(v string) *InquiryCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *InquiryCreate) SetStudentName(v string) *InquiryCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *InquiryCreate) SetSubjectID(v string) *InquiryCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *InquiryCreate) SetQuestion(v string) *InquiryCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *InquiryCreate) SetAnswer(v string) *InquiryCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableAnswer(v *string) *InquiryCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InquiryCreate) SetStatus(v inquiry.Status) *InquiryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableStatus(v *inquiry.Status) *InquiryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InquiryCreate) SetCreatedAt(v time.Time) *InquiryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableCreatedAt(v *time.Time) *InquiryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *InquiryCreate) SetAnsweredAt(v time.Time) *InquiryCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *InquiryCreate) SetNillableAnsweredAt(v *time.Time) *InquiryCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InquiryCreate) SetID(v string) *InquiryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InquiryMutation object of the builder.
func (_c *InquiryCreate) Mutation() *InquiryMutation {
	return _c.mutation
}

// Save creates the Inquiry in the database.
func (_c *InquiryCreate) Save(ctx context.Context) (*Inquiry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InquiryCreate) SaveX(ctx context.Context) *Inquiry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InquiryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := inquiry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inquiry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InquiryCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Inquiry.student_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "Inquiry.student_name"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Inquiry.subject_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Inquiry.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Inquiry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := inquiry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Inquiry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Inquiry.created_at"`)}
	}
	return nil
}

func (_c *InquiryCreate) sqlSave(ctx context.Context) (*Inquiry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Inquiry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InquiryCreate) createSpec() (*Inquiry, *sqlgraph.CreateSpec) {
	var (
		_node = &Inquiry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inquiry.Table, sqlgraph.NewFieldSpec(inquiry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(inquiry.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(inquiry.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(inquiry.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(inquiry.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(inquiry.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inquiry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inquiry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(inquiry.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Inquiry.Create().
//		SetStudentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InquiryUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *InquiryCreate) OnConflict(opts ...sql.ConflictOption) *InquiryUpsertOne {
	_c.conflict = opts
	return &InquiryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InquiryCreate) OnConflictColumns(columns ...string) *InquiryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InquiryUpsertOne{
		create: _c,
	}
}

type (
	// InquiryUpsertOne is the builder for "upsert"-ing
	//  one Inquiry node.
	InquiryUpsertOne struct {
		create *InquiryCreate
	}

	// InquiryUpsert is the "OnConflict" setter.
	InquiryUpsert struct {
		*sql.UpdateSet
	}
)

// SetStudentID sets the "student_id" field.
func (u *InquiryUpsert) SetStudentID(v string) *InquiryUpsert {
	u.Set(inquiry.FieldStudentID, v)
	return u
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateStudentID() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldStudentID)
	return u
}

// SetStudentName sets the "student_name" field.
func (u *InquiryUpsert) SetStudentName(v string) *InquiryUpsert {
	u.Set(inquiry.FieldStudentName, v)
	return u
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateStudentName() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldStudentName)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *InquiryUpsert) SetSubjectID(v string) *InquiryUpsert {
	u.Set(inquiry.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateSubjectID() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldSubjectID)
	return u
}

// SetQuestion sets the "question" field.
func (u *InquiryUpsert) SetQuestion(v string) *InquiryUpsert {
	u.Set(inquiry.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateQuestion() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldQuestion)
	return u
}

// SetAnswer sets the "answer" field.
func (u *InquiryUpsert) SetAnswer(v string) *InquiryUpsert {
	u.Set(inquiry.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateAnswer() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldAnswer)
	return u
}

// ClearAnswer clears the value of the "answer" field.
func (u *InquiryUpsert) ClearAnswer() *InquiryUpsert {
	u.SetNull(inquiry.FieldAnswer)
	return u
}

// SetStatus sets the "status" field.
func (u *InquiryUpsert) SetStatus(v inquiry.Status) *InquiryUpsert {
	u.Set(inquiry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateStatus() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldStatus)
	return u
}

// SetAnsweredAt sets the "answered_at" field.
func (u *InquiryUpsert) SetAnsweredAt(v time.Time) *InquiryUpsert {
	u.Set(inquiry.FieldAnsweredAt, v)
	return u
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *InquiryUpsert) UpdateAnsweredAt() *InquiryUpsert {
	u.SetExcluded(inquiry.FieldAnsweredAt)
	return u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *InquiryUpsert) ClearAnsweredAt() *InquiryUpsert {
	u.SetNull(inquiry.FieldAnsweredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inquiry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InquiryUpsertOne) UpdateNewValues() *InquiryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inquiry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(inquiry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InquiryUpsertOne) Ignore() *InquiryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InquiryUpsertOne) DoNothing() *InquiryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InquiryCreate.OnConflict
// documentation for more info.
func (u *InquiryUpsertOne) Update(set func(*InquiryUpsert)) *InquiryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InquiryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStudentID sets the "student_id" field.
func (u *InquiryUpsertOne) SetStudentID(v string) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateStudentID() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStudentID()
	})
}

// SetStudentName sets the "student_name" field.
func (u *InquiryUpsertOne) SetStudentName(v string) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateStudentName() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStudentName()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *InquiryUpsertOne) SetSubjectID(v string) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateSubjectID() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateSubjectID()
	})
}

// SetQuestion sets the "question" field.
func (u *InquiryUpsertOne) SetQuestion(v string) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateQuestion() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *InquiryUpsertOne) SetAnswer(v string) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateAnswer() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *InquiryUpsertOne) ClearAnswer() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.ClearAnswer()
	})
}

// SetStatus sets the "status" field.
func (u *InquiryUpsertOne) SetStatus(v inquiry.Status) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateStatus() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStatus()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *InquiryUpsertOne) SetAnsweredAt(v time.Time) *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *InquiryUpsertOne) UpdateAnsweredAt() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *InquiryUpsertOne) ClearAnsweredAt() *InquiryUpsertOne {
	return u.Update(func(s *InquiryUpsert) {
		s.ClearAnsweredAt()
	})
}

// Exec executes the query.
func (u *InquiryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InquiryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InquiryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InquiryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InquiryUpsertOne.ID is not supported by MySQL driver. Use InquiryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InquiryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InquiryCreateBulk is the builder for creating many Inquiry entities in bulk.
type InquiryCreateBulk struct {
	config
	err      error
	builders []*InquiryCreate
	conflict []sql.ConflictOption
}

// Save creates the Inquiry entities in the database.
func (_c *InquiryCreateBulk) Save(ctx context.Context) ([]*Inquiry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Inquiry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InquiryMutation)
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
func (_c *InquiryCreateBulk) SaveX(ctx context.Context) []*Inquiry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InquiryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InquiryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Inquiry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InquiryUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *InquiryCreateBulk) OnConflict(opts ...sql.ConflictOption) *InquiryUpsertBulk {
	_c.conflict = opts
	return &InquiryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InquiryCreateBulk) OnConflictColumns(columns ...string) *InquiryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InquiryUpsertBulk{
		create: _c,
	}
}

// InquiryUpsertBulk is the builder for "upsert"-ing
// a bulk of Inquiry nodes.
type InquiryUpsertBulk struct {
	create *InquiryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inquiry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InquiryUpsertBulk) UpdateNewValues() *InquiryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inquiry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(inquiry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Inquiry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InquiryUpsertBulk) Ignore() *InquiryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InquiryUpsertBulk) DoNothing() *InquiryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InquiryCreateBulk.OnConflict
// documentation for more info.
func (u *InquiryUpsertBulk) Update(set func(*InquiryUpsert)) *InquiryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InquiryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStudentID sets the "student_id" field.
func (u *InquiryUpsertBulk) SetStudentID(v string) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateStudentID() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStudentID()
	})
}

// SetStudentName sets the "student_name" field.
func (u *InquiryUpsertBulk) SetStudentName(v string) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateStudentName() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStudentName()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *InquiryUpsertBulk) SetSubjectID(v string) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateSubjectID() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateSubjectID()
	})
}

// SetQuestion sets the "question" field.
func (u *InquiryUpsertBulk) SetQuestion(v string) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateQuestion() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *InquiryUpsertBulk) SetAnswer(v string) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateAnswer() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *InquiryUpsertBulk) ClearAnswer() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.ClearAnswer()
	})
}

// SetStatus sets the "status" field.
func (u *InquiryUpsertBulk) SetStatus(v inquiry.Status) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateStatus() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateStatus()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *InquiryUpsertBulk) SetAnsweredAt(v time.Time) *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *InquiryUpsertBulk) UpdateAnsweredAt() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *InquiryUpsertBulk) ClearAnsweredAt() *InquiryUpsertBulk {
	return u.Update(func(s *InquiryUpsert) {
		s.ClearAnsweredAt()
	})
}

// Exec executes the query.
func (u *InquiryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InquiryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InquiryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InquiryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
