// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/saketh8887/medconnect/ent/predicate"
	"github.com/saketh8887/medconnect/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCollege sets the "college" field.
func (_u *UserUpdate) SetCollege(v string) *UserUpdate {
	_u.mutation.SetCollege(v)
	return _u
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCollege(v *string) *UserUpdate {
	if v != nil {
		_u.SetCollege(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *UserUpdate) SetYear(v string) *UserUpdate {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *UserUpdate) SetNillableYear(v *string) *UserUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *UserUpdate) SetAvatar(v string) *UserUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAvatar(v *string) *UserUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *UserUpdate) SetBloodGroup(v string) *UserUpdate {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBloodGroup(v *string) *UserUpdate {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *UserUpdate) SetEmergencyContact(v string) *UserUpdate {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmergencyContact(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *UserUpdate) SetContactNumber(v string) *UserUpdate {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *UserUpdate) SetNillableContactNumber(v *string) *UserUpdate {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// SetCgpa sets the "cgpa" field.
func (_u *UserUpdate) SetCgpa(v string) *UserUpdate {
	_u.mutation.SetCgpa(v)
	return _u
}

// SetNillableCgpa sets the "cgpa" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCgpa(v *string) *UserUpdate {
	if v != nil {
		_u.SetCgpa(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *UserUpdate) SetPercentage(v string) *UserUpdate {
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePercentage(v *string) *UserUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// SetLastLogin sets the "last_login" field.
func (_u *UserUpdate) SetLastLogin(v time.Time) *UserUpdate {
	_u.mutation.SetLastLogin(v)
	return _u
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLogin(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLogin(*v)
	}
	return _u
}

// ClearLastLogin clears the value of the "last_login" field.
func (_u *UserUpdate) ClearLastLogin() *UserUpdate {
	_u.mutation.ClearLastLogin()
	return _u
}

// SetCompletedTopics sets the "completed_topics" field.
func (_u *UserUpdate) SetCompletedTopics(v []string) *UserUpdate {
	_u.mutation.SetCompletedTopics(v)
	return _u
}

// AppendCompletedTopics appends value to the "completed_topics" field.
func (_u *UserUpdate) AppendCompletedTopics(v []string) *UserUpdate {
	_u.mutation.AppendCompletedTopics(v)
	return _u
}

// SetCompletedChapters sets the "completed_chapters" field.
func (_u *UserUpdate) SetCompletedChapters(v []string) *UserUpdate {
	_u.mutation.SetCompletedChapters(v)
	return _u
}

// AppendCompletedChapters appends value to the "completed_chapters" field.
func (_u *UserUpdate) AppendCompletedChapters(v []string) *UserUpdate {
	_u.mutation.AppendCompletedChapters(v)
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *UserUpdate) SetQuizScores(v map[string]float64) *UserUpdate {
	_u.mutation.SetQuizScores(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.College(); ok {
		_spec.SetField(user.FieldCollege, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(user.FieldYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(user.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(user.FieldBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(user.FieldEmergencyContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(user.FieldContactNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cgpa(); ok {
		_spec.SetField(user.FieldCgpa, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(user.FieldPercentage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastLogin(); ok {
		_spec.SetField(user.FieldLastLogin, field.TypeTime, value)
	}
	if _u.mutation.LastLoginCleared() {
		_spec.ClearField(user.FieldLastLogin, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedTopics(); ok {
		_spec.SetField(user.FieldCompletedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldCompletedTopics, value)
		})
	}
	if value, ok := _u.mutation.CompletedChapters(); ok {
		_spec.SetField(user.FieldCompletedChapters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedChapters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldCompletedChapters, value)
		})
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(user.FieldQuizScores, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCollege sets the "college" field.
func (_u *UserUpdateOne) SetCollege(v string) *UserUpdateOne {
	_u.mutation.SetCollege(v)
	return _u
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCollege(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetCollege(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *UserUpdateOne) SetYear(v string) *UserUpdateOne {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableYear(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *UserUpdateOne) SetAvatar(v string) *UserUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAvatar(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *UserUpdateOne) SetBloodGroup(v string) *UserUpdateOne {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBloodGroup(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *UserUpdateOne) SetEmergencyContact(v string) *UserUpdateOne {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmergencyContact(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *UserUpdateOne) SetContactNumber(v string) *UserUpdateOne {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableContactNumber(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// SetCgpa sets the "cgpa" field.
func (_u *UserUpdateOne) SetCgpa(v string) *UserUpdateOne {
	_u.mutation.SetCgpa(v)
	return _u
}

// SetNillableCgpa sets the "cgpa" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCgpa(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetCgpa(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *UserUpdateOne) SetPercentage(v string) *UserUpdateOne {
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePercentage(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// SetLastLogin sets the "last_login" field.
func (_u *UserUpdateOne) SetLastLogin(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLogin(v)
	return _u
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLogin(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLogin(*v)
	}
	return _u
}

// ClearLastLogin clears the value of the "last_login" field.
func (_u *UserUpdateOne) ClearLastLogin() *UserUpdateOne {
	_u.mutation.ClearLastLogin()
	return _u
}

// SetCompletedTopics sets the "completed_topics" field.
func (_u *UserUpdateOne) SetCompletedTopics(v []string) *UserUpdateOne {
	_u.mutation.SetCompletedTopics(v)
	return _u
}

// AppendCompletedTopics appends value to the "completed_topics" field.
func (_u *UserUpdateOne) AppendCompletedTopics(v []string) *UserUpdateOne {
	_u.mutation.AppendCompletedTopics(v)
	return _u
}

// SetCompletedChapters sets the "completed_chapters" field.
func (_u *UserUpdateOne) SetCompletedChapters(v []string) *UserUpdateOne {
	_u.mutation.SetCompletedChapters(v)
	return _u
}

// AppendCompletedChapters appends value to the "completed_chapters" field.
func (_u *UserUpdateOne) AppendCompletedChapters(v []string) *UserUpdateOne {
	_u.mutation.AppendCompletedChapters(v)
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *UserUpdateOne) SetQuizScores(v map[string]float64) *UserUpdateOne {
	_u.mutation.SetQuizScores(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.College(); ok {
		_spec.SetField(user.FieldCollege, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(user.FieldYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(user.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(user.FieldBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(user.FieldEmergencyContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(user.FieldContactNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cgpa(); ok {
		_spec.SetField(user.FieldCgpa, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(user.FieldPercentage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastLogin(); ok {
		_spec.SetField(user.FieldLastLogin, field.TypeTime, value)
	}
	if _u.mutation.LastLoginCleared() {
		_spec.ClearField(user.FieldLastLogin, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedTopics(); ok {
		_spec.SetField(user.FieldCompletedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldCompletedTopics, value)
		})
	}
	if value, ok := _u.mutation.CompletedChapters(); ok {
		_spec.SetField(user.FieldCompletedChapters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedChapters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldCompletedChapters, value)
		})
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(user.FieldQuizScores, field.TypeJSON, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
