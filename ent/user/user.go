// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldCollege holds the string denoting the college field in the database.
	FieldCollege = "college"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldAvatar holds the string denoting the avatar field in the database.
	FieldAvatar = "avatar"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldBloodGroup holds the string denoting the blood_group field in the database.
	FieldBloodGroup = "blood_group"
	// FieldEmergencyContact holds the string denoting the emergency_contact field in the database.
	FieldEmergencyContact = "emergency_contact"
	// FieldContactNumber holds the string denoting the contact_number field in the database.
	FieldContactNumber = "contact_number"
	// FieldCgpa holds the string denoting the cgpa field in the database.
	FieldCgpa = "cgpa"
	// FieldPercentage holds the string denoting the percentage field in the database.
	FieldPercentage = "percentage"
	// FieldLastLogin holds the string denoting the last_login field in the database.
	FieldLastLogin = "last_login"
	// FieldCompletedTopics holds the string denoting the completed_topics field in the database.
	FieldCompletedTopics = "completed_topics"
	// FieldCompletedChapters holds the string denoting the completed_chapters field in the database.
	FieldCompletedChapters = "completed_chapters"
	// FieldQuizScores holds the string denoting the quiz_scores field in the database.
	FieldQuizScores = "quiz_scores"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRole,
	FieldCollege,
	FieldYear,
	FieldAvatar,
	FieldEmail,
	FieldPasswordHash,
	FieldBloodGroup,
	FieldEmergencyContact,
	FieldContactNumber,
	FieldCgpa,
	FieldPercentage,
	FieldLastLogin,
	FieldCompletedTopics,
	FieldCompletedChapters,
	FieldQuizScores,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCollege holds the default value on creation for the "college" field.
	DefaultCollege string
	// DefaultYear holds the default value on creation for the "year" field.
	DefaultYear string
	// DefaultAvatar holds the default value on creation for the "avatar" field.
	DefaultAvatar string
	// DefaultBloodGroup holds the default value on creation for the "blood_group" field.
	DefaultBloodGroup string
	// DefaultEmergencyContact holds the default value on creation for the "emergency_contact" field.
	DefaultEmergencyContact string
	// DefaultContactNumber holds the default value on creation for the "contact_number" field.
	DefaultContactNumber string
	// DefaultCgpa holds the default value on creation for the "cgpa" field.
	DefaultCgpa string
	// DefaultPercentage holds the default value on creation for the "percentage" field.
	DefaultPercentage string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleStudent Role = "Student"
	RoleNurse   Role = "Nurse"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleStudent, RoleNurse, RoleDoctor, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByCollege orders the results by the college field.
func ByCollege(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollege, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByAvatar orders the results by the avatar field.
func ByAvatar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatar, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByBloodGroup orders the results by the blood_group field.
func ByBloodGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodGroup, opts...).ToFunc()
}

// ByEmergencyContact orders the results by the emergency_contact field.
func ByEmergencyContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyContact, opts...).ToFunc()
}

// ByContactNumber orders the results by the contact_number field.
func ByContactNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactNumber, opts...).ToFunc()
}

// ByCgpa orders the results by the cgpa field.
func ByCgpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCgpa, opts...).ToFunc()
}

// ByPercentage orders the results by the percentage field.
func ByPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentage, opts...).ToFunc()
}

// ByLastLogin orders the results by the last_login field.
func ByLastLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLogin, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
