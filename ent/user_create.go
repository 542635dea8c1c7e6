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
	"github.com/saketh8887/medconnect/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v user.Role) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetCollege sets the "college" field.
func (_c *UserCreate) SetCollege(v string) *UserCreate {
	_c.mutation.SetCollege(v)
	return _c
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_c *UserCreate) SetNillableCollege(v *string) *UserCreate {
	if v != nil {
		_c.SetCollege(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *UserCreate) SetYear(v string) *UserCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *UserCreate) SetNillableYear(v *string) *UserCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *UserCreate) SetAvatar(v string) *UserCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *UserCreate) SetNillableAvatar(v *string) *UserCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetBloodGroup sets the "blood_group" field.
func (_c *UserCreate) SetBloodGroup(v string) *UserCreate {
	_c.mutation.SetBloodGroup(v)
	return _c
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_c *UserCreate) SetNillableBloodGroup(v *string) *UserCreate {
	if v != nil {
		_c.SetBloodGroup(*v)
	}
	return _c
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_c *UserCreate) SetEmergencyContact(v string) *UserCreate {
	_c.mutation.SetEmergencyContact(v)
	return _c
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmergencyContact(v *string) *UserCreate {
	if v != nil {
		_c.SetEmergencyContact(*v)
	}
	return _c
}

// SetContactNumber sets the "contact_number" field.
func (_c *UserCreate) SetContactNumber(v string) *UserCreate {
	_c.mutation.SetContactNumber(v)
	return _c
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_c *UserCreate) SetNillableContactNumber(v *string) *UserCreate {
	if v != nil {
		_c.SetContactNumber(*v)
	}
	return _c
}

// SetCgpa sets the "cgpa" field.
func (_c *UserCreate) SetCgpa(v string) *UserCreate {
	_c.mutation.SetCgpa(v)
	return _c
}

// SetNillableCgpa sets the "cgpa" field if the given value is not nil.
func (_c *UserCreate) SetNillableCgpa(v *string) *UserCreate {
	if v != nil {
		_c.SetCgpa(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *UserCreate) SetPercentage(v string) *UserCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *UserCreate) SetNillablePercentage(v *string) *UserCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetLastLogin sets the "last_login" field.
func (_c *UserCreate) SetLastLogin(v time.Time) *UserCreate {
	_c.mutation.SetLastLogin(v)
	return _c
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLogin(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastLogin(*v)
	}
	return _c
}

// SetCompletedTopics sets the "completed_topics" field.
func (_c *UserCreate) SetCompletedTopics(v []string) *UserCreate {
	_c.mutation.SetCompletedTopics(v)
	return _c
}

// SetCompletedChapters sets the "completed_chapters" field.
func (_c *UserCreate) SetCompletedChapters(v []string) *UserCreate {
	_c.mutation.SetCompletedChapters(v)
	return _c
}

// SetQuizScores sets the "quiz_scores" field.
func (_c *UserCreate) SetQuizScores(v map[string]float64) *UserCreate {
	_c.mutation.SetQuizScores(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.College(); !ok {
		v := user.DefaultCollege
		_c.mutation.SetCollege(v)
	}
	if _, ok := _c.mutation.Year(); !ok {
		v := user.DefaultYear
		_c.mutation.SetYear(v)
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		v := user.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
	if _, ok := _c.mutation.BloodGroup(); !ok {
		v := user.DefaultBloodGroup
		_c.mutation.SetBloodGroup(v)
	}
	if _, ok := _c.mutation.EmergencyContact(); !ok {
		v := user.DefaultEmergencyContact
		_c.mutation.SetEmergencyContact(v)
	}
	if _, ok := _c.mutation.ContactNumber(); !ok {
		v := user.DefaultContactNumber
		_c.mutation.SetContactNumber(v)
	}
	if _, ok := _c.mutation.Cgpa(); !ok {
		v := user.DefaultCgpa
		_c.mutation.SetCgpa(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := user.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.College(); !ok {
		return &ValidationError{Name: "college", err: errors.New(`ent: missing required field "User.college"`)}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "User.year"`)}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`ent: missing required field "User.avatar"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "User.password_hash"`)}
	}
	if _, ok := _c.mutation.BloodGroup(); !ok {
		return &ValidationError{Name: "blood_group", err: errors.New(`ent: missing required field "User.blood_group"`)}
	}
	if _, ok := _c.mutation.EmergencyContact(); !ok {
		return &ValidationError{Name: "emergency_contact", err: errors.New(`ent: missing required field "User.emergency_contact"`)}
	}
	if _, ok := _c.mutation.ContactNumber(); !ok {
		return &ValidationError{Name: "contact_number", err: errors.New(`ent: missing required field "User.contact_number"`)}
	}
	if _, ok := _c.mutation.Cgpa(); !ok {
		return &ValidationError{Name: "cgpa", err: errors.New(`ent: missing required field "User.cgpa"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "User.percentage"`)}
	}
	if _, ok := _c.mutation.CompletedTopics(); !ok {
		return &ValidationError{Name: "completed_topics", err: errors.New(`ent: missing required field "User.completed_topics"`)}
	}
	if _, ok := _c.mutation.CompletedChapters(); !ok {
		return &ValidationError{Name: "completed_chapters", err: errors.New(`ent: missing required field "User.completed_chapters"`)}
	}
	if _, ok := _c.mutation.QuizScores(); !ok {
		return &ValidationError{Name: "quiz_scores", err: errors.New(`ent: missing required field "User.quiz_scores"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.College(); ok {
		_spec.SetField(user.FieldCollege, field.TypeString, value)
		_node.College = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(user.FieldYear, field.TypeString, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(user.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.BloodGroup(); ok {
		_spec.SetField(user.FieldBloodGroup, field.TypeString, value)
		_node.BloodGroup = value
	}
	if value, ok := _c.mutation.EmergencyContact(); ok {
		_spec.SetField(user.FieldEmergencyContact, field.TypeString, value)
		_node.EmergencyContact = value
	}
	if value, ok := _c.mutation.ContactNumber(); ok {
		_spec.SetField(user.FieldContactNumber, field.TypeString, value)
		_node.ContactNumber = value
	}
	if value, ok := _c.mutation.Cgpa(); ok {
		_spec.SetField(user.FieldCgpa, field.TypeString, value)
		_node.Cgpa = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(user.FieldPercentage, field.TypeString, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.LastLogin(); ok {
		_spec.SetField(user.FieldLastLogin, field.TypeTime, value)
		_node.LastLogin = &value
	}
	if value, ok := _c.mutation.CompletedTopics(); ok {
		_spec.SetField(user.FieldCompletedTopics, field.TypeJSON, value)
		_node.CompletedTopics = value
	}
	if value, ok := _c.mutation.CompletedChapters(); ok {
		_spec.SetField(user.FieldCompletedChapters, field.TypeJSON, value)
		_node.CompletedChapters = value
	}
	if value, ok := _c.mutation.QuizScores(); ok {
		_spec.SetField(user.FieldQuizScores, field.TypeJSON, value)
		_node.QuizScores = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *UserUpsert) SetName(v string) *UserUpsert {
	u.Set(user.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsert) UpdateName() *UserUpsert {
	u.SetExcluded(user.FieldName)
	return u
}

// SetRole sets the "role" field.
func (u *UserUpsert) SetRole(v user.Role) *UserUpsert {
	u.Set(user.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsert) UpdateRole() *UserUpsert {
	u.SetExcluded(user.FieldRole)
	return u
}

// SetCollege sets the "college" field.
func (u *UserUpsert) SetCollege(v string) *UserUpsert {
	u.Set(user.FieldCollege, v)
	return u
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *UserUpsert) UpdateCollege() *UserUpsert {
	u.SetExcluded(user.FieldCollege)
	return u
}

// SetYear sets the "year" field.
func (u *UserUpsert) SetYear(v string) *UserUpsert {
	u.Set(user.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *UserUpsert) UpdateYear() *UserUpsert {
	u.SetExcluded(user.FieldYear)
	return u
}

// SetAvatar sets the "avatar" field.
func (u *UserUpsert) SetAvatar(v string) *UserUpsert {
	u.Set(user.FieldAvatar, v)
	return u
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *UserUpsert) UpdateAvatar() *UserUpsert {
	u.SetExcluded(user.FieldAvatar)
	return u
}

// SetEmail sets the "email" field.
func (u *UserUpsert) SetEmail(v string) *UserUpsert {
	u.Set(user.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmail() *UserUpsert {
	u.SetExcluded(user.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsert) SetPasswordHash(v string) *UserUpsert {
	u.Set(user.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsert) UpdatePasswordHash() *UserUpsert {
	u.SetExcluded(user.FieldPasswordHash)
	return u
}

// SetBloodGroup sets the "blood_group" field.
func (u *UserUpsert) SetBloodGroup(v string) *UserUpsert {
	u.Set(user.FieldBloodGroup, v)
	return u
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *UserUpsert) UpdateBloodGroup() *UserUpsert {
	u.SetExcluded(user.FieldBloodGroup)
	return u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *UserUpsert) SetEmergencyContact(v string) *UserUpsert {
	u.Set(user.FieldEmergencyContact, v)
	return u
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmergencyContact() *UserUpsert {
	u.SetExcluded(user.FieldEmergencyContact)
	return u
}

// SetContactNumber sets the "contact_number" field.
func (u *UserUpsert) SetContactNumber(v string) *UserUpsert {
	u.Set(user.FieldContactNumber, v)
	return u
}

// UpdateContactNumber sets the "contact_number" field to the value that was provided on create.
func (u *UserUpsert) UpdateContactNumber() *UserUpsert {
	u.SetExcluded(user.FieldContactNumber)
	return u
}

// SetCgpa sets the "cgpa" field.
func (u *UserUpsert) SetCgpa(v string) *UserUpsert {
	u.Set(user.FieldCgpa, v)
	return u
}

// UpdateCgpa sets the "cgpa" field to the value that was provided on create.
func (u *UserUpsert) UpdateCgpa() *UserUpsert {
	u.SetExcluded(user.FieldCgpa)
	return u
}

// SetPercentage sets the "percentage" field.
func (u *UserUpsert) SetPercentage(v string) *UserUpsert {
	u.Set(user.FieldPercentage, v)
	return u
}

// UpdatePercentage sets the "percentage" field to the value that was provided on create.
func (u *UserUpsert) UpdatePercentage() *UserUpsert {
	u.SetExcluded(user.FieldPercentage)
	return u
}

// SetLastLogin sets the "last_login" field.
func (u *UserUpsert) SetLastLogin(v time.Time) *UserUpsert {
	u.Set(user.FieldLastLogin, v)
	return u
}

// UpdateLastLogin sets the "last_login" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastLogin() *UserUpsert {
	u.SetExcluded(user.FieldLastLogin)
	return u
}

// ClearLastLogin clears the value of the "last_login" field.
func (u *UserUpsert) ClearLastLogin() *UserUpsert {
	u.SetNull(user.FieldLastLogin)
	return u
}

// SetCompletedTopics sets the "completed_topics" field.
func (u *UserUpsert) SetCompletedTopics(v []string) *UserUpsert {
	u.Set(user.FieldCompletedTopics, v)
	return u
}

// UpdateCompletedTopics sets the "completed_topics" field to the value that was provided on create.
func (u *UserUpsert) UpdateCompletedTopics() *UserUpsert {
	u.SetExcluded(user.FieldCompletedTopics)
	return u
}

// SetCompletedChapters sets the "completed_chapters" field.
func (u *UserUpsert) SetCompletedChapters(v []string) *UserUpsert {
	u.Set(user.FieldCompletedChapters, v)
	return u
}

// UpdateCompletedChapters sets the "completed_chapters" field to the value that was provided on create.
func (u *UserUpsert) UpdateCompletedChapters() *UserUpsert {
	u.SetExcluded(user.FieldCompletedChapters)
	return u
}

// SetQuizScores sets the "quiz_scores" field.
func (u *UserUpsert) SetQuizScores(v map[string]float64) *UserUpsert {
	u.Set(user.FieldQuizScores, v)
	return u
}

// UpdateQuizScores sets the "quiz_scores" field to the value that was provided on create.
func (u *UserUpsert) UpdateQuizScores() *UserUpsert {
	u.SetExcluded(user.FieldQuizScores)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertOne) SetName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertOne) SetRole(v user.Role) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateRole() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// SetCollege sets the "college" field.
func (u *UserUpsertOne) SetCollege(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCollege(v)
	})
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCollege() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCollege()
	})
}

// SetYear sets the "year" field.
func (u *UserUpsertOne) SetYear(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateYear() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateYear()
	})
}

// SetAvatar sets the "avatar" field.
func (u *UserUpsertOne) SetAvatar(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetAvatar(v)
	})
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateAvatar() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAvatar()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertOne) SetEmail(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmail() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertOne) SetPasswordHash(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePasswordHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetBloodGroup sets the "blood_group" field.
func (u *UserUpsertOne) SetBloodGroup(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetBloodGroup(v)
	})
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateBloodGroup() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBloodGroup()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *UserUpsertOne) SetEmergencyContact(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmergencyContact() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmergencyContact()
	})
}

// SetContactNumber sets the "contact_number" field.
func (u *UserUpsertOne) SetContactNumber(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetContactNumber(v)
	})
}

// UpdateContactNumber sets the "contact_number" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateContactNumber() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateContactNumber()
	})
}

// SetCgpa sets the "cgpa" field.
func (u *UserUpsertOne) SetCgpa(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCgpa(v)
	})
}

// UpdateCgpa sets the "cgpa" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCgpa() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCgpa()
	})
}

// SetPercentage sets the "percentage" field.
func (u *UserUpsertOne) SetPercentage(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPercentage(v)
	})
}

// UpdatePercentage sets the "percentage" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePercentage() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePercentage()
	})
}

// SetLastLogin sets the "last_login" field.
func (u *UserUpsertOne) SetLastLogin(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLogin(v)
	})
}

// UpdateLastLogin sets the "last_login" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastLogin() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLogin()
	})
}

// ClearLastLogin clears the value of the "last_login" field.
func (u *UserUpsertOne) ClearLastLogin() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLogin()
	})
}

// SetCompletedTopics sets the "completed_topics" field.
func (u *UserUpsertOne) SetCompletedTopics(v []string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCompletedTopics(v)
	})
}

// UpdateCompletedTopics sets the "completed_topics" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCompletedTopics() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCompletedTopics()
	})
}

// SetCompletedChapters sets the "completed_chapters" field.
func (u *UserUpsertOne) SetCompletedChapters(v []string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCompletedChapters(v)
	})
}

// UpdateCompletedChapters sets the "completed_chapters" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCompletedChapters() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCompletedChapters()
	})
}

// SetQuizScores sets the "quiz_scores" field.
func (u *UserUpsertOne) SetQuizScores(v map[string]float64) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetQuizScores(v)
	})
}

// UpdateQuizScores sets the "quiz_scores" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateQuizScores() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateQuizScores()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserUpsertOne.ID is not supported by MySQL driver. Use UserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertBulk) SetName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertBulk) SetRole(v user.Role) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateRole() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// SetCollege sets the "college" field.
func (u *UserUpsertBulk) SetCollege(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCollege(v)
	})
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCollege() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCollege()
	})
}

// SetYear sets the "year" field.
func (u *UserUpsertBulk) SetYear(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateYear() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateYear()
	})
}

// SetAvatar sets the "avatar" field.
func (u *UserUpsertBulk) SetAvatar(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetAvatar(v)
	})
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateAvatar() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAvatar()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertBulk) SetEmail(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmail() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertBulk) SetPasswordHash(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePasswordHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetBloodGroup sets the "blood_group" field.
func (u *UserUpsertBulk) SetBloodGroup(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetBloodGroup(v)
	})
}

// UpdateBloodGroup sets the "blood_group" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateBloodGroup() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBloodGroup()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *UserUpsertBulk) SetEmergencyContact(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmergencyContact() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmergencyContact()
	})
}

// SetContactNumber sets the "contact_number" field.
func (u *UserUpsertBulk) SetContactNumber(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetContactNumber(v)
	})
}

// UpdateContactNumber sets the "contact_number" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateContactNumber() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateContactNumber()
	})
}

// SetCgpa sets the "cgpa" field.
func (u *UserUpsertBulk) SetCgpa(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCgpa(v)
	})
}

// UpdateCgpa sets the "cgpa" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCgpa() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCgpa()
	})
}

// SetPercentage sets the "percentage" field.
func (u *UserUpsertBulk) SetPercentage(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPercentage(v)
	})
}

// UpdatePercentage sets the "percentage" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePercentage() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePercentage()
	})
}

// SetLastLogin sets the "last_login" field.
func (u *UserUpsertBulk) SetLastLogin(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLogin(v)
	})
}

// UpdateLastLogin sets the "last_login" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastLogin() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLogin()
	})
}

// ClearLastLogin clears the value of the "last_login" field.
func (u *UserUpsertBulk) ClearLastLogin() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLogin()
	})
}

// SetCompletedTopics sets the "completed_topics" field.
func (u *UserUpsertBulk) SetCompletedTopics(v []string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCompletedTopics(v)
	})
}

// UpdateCompletedTopics sets the "completed_topics" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCompletedTopics() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCompletedTopics()
	})
}

// SetCompletedChapters sets the "completed_chapters" field.
func (u *UserUpsertBulk) SetCompletedChapters(v []string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCompletedChapters(v)
	})
}

// UpdateCompletedChapters sets the "completed_chapters" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCompletedChapters() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCompletedChapters()
	})
}

// SetQuizScores sets the "quiz_scores" field.
func (u *UserUpsertBulk) SetQuizScores(v map[string]float64) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetQuizScores(v)
	})
}

// UpdateQuizScores sets the "quiz_scores" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateQuizScores() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateQuizScores()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
