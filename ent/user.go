// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/saketh8887/medconnect/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	// Stable account id, e.g. u1 or a uuid
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Role holds the value of the "role" field.
	Role user.Role `json:"role,omitempty"`
	// College holds the value of the "college" field.
	College string `json:"college,omitempty"`
	// Academic phase label; drives the accent theme
	Year string `json:"year,omitempty"`
	// Avatar holds the value of the "avatar" field.
	Avatar string `json:"avatar,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// bcrypt hash
	PasswordHash string `json:"-"`
	// BloodGroup holds the value of the "blood_group" field.
	BloodGroup string `json:"blood_group,omitempty"`
	// EmergencyContact holds the value of the "emergency_contact" field.
	EmergencyContact string `json:"emergency_contact,omitempty"`
	// ContactNumber holds the value of the "contact_number" field.
	ContactNumber string `json:"contact_number,omitempty"`
	// Cgpa holds the value of the "cgpa" field.
	Cgpa string `json:"cgpa,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage string `json:"percentage,omitempty"`
	// LastLogin holds the value of the "last_login" field.
	LastLogin *time.Time `json:"last_login,omitempty"`
	// Sorted, duplicate-free topic ids
	CompletedTopics []string `json:"completed_topics,omitempty"`
	// Sorted, duplicate-free chapter ids
	CompletedChapters []string `json:"completed_chapters,omitempty"`
	// QuizScores holds the value of the "quiz_scores" field.
	QuizScores map[string]float64 `json:"quiz_scores,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldCompletedTopics, user.FieldCompletedChapters, user.FieldQuizScores:
			values[i] = new([]byte)
		case user.FieldID, user.FieldName, user.FieldRole, user.FieldCollege, user.FieldYear, user.FieldAvatar, user.FieldEmail, user.FieldPasswordHash, user.FieldBloodGroup, user.FieldEmergencyContact, user.FieldContactNumber, user.FieldCgpa, user.FieldPercentage:
			values[i] = new(sql.NullString)
		case user.FieldLastLogin, user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldCollege:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field college", values[i])
			} else if value.Valid {
				_m.College = value.String
			}
		case user.FieldYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = value.String
			}
		case user.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldBloodGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_group", values[i])
			} else if value.Valid {
				_m.BloodGroup = value.String
			}
		case user.FieldEmergencyContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact", values[i])
			} else if value.Valid {
				_m.EmergencyContact = value.String
			}
		case user.FieldContactNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_number", values[i])
			} else if value.Valid {
				_m.ContactNumber = value.String
			}
		case user.FieldCgpa:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cgpa", values[i])
			} else if value.Valid {
				_m.Cgpa = value.String
			}
		case user.FieldPercentage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = value.String
			}
		case user.FieldLastLogin:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login", values[i])
			} else if value.Valid {
				_m.LastLogin = new(time.Time)
				*_m.LastLogin = value.Time
			}
		case user.FieldCompletedTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedTopics); err != nil {
					return fmt.Errorf("unmarshal field completed_topics: %w", err)
				}
			}
		case user.FieldCompletedChapters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_chapters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedChapters); err != nil {
					return fmt.Errorf("unmarshal field completed_chapters: %w", err)
				}
			}
		case user.FieldQuizScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuizScores); err != nil {
					return fmt.Errorf("unmarshal field quiz_scores: %w", err)
				}
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("college=")
	builder.WriteString(_m.College)
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(_m.Year)
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("blood_group=")
	builder.WriteString(_m.BloodGroup)
	builder.WriteString(", ")
	builder.WriteString("emergency_contact=")
	builder.WriteString(_m.EmergencyContact)
	builder.WriteString(", ")
	builder.WriteString("contact_number=")
	builder.WriteString(_m.ContactNumber)
	builder.WriteString(", ")
	builder.WriteString("cgpa=")
	builder.WriteString(_m.Cgpa)
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(_m.Percentage)
	builder.WriteString(", ")
	if v := _m.LastLogin; v != nil {
		builder.WriteString("last_login=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("completed_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTopics))
	builder.WriteString(", ")
	builder.WriteString("completed_chapters=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedChapters))
	builder.WriteString(", ")
	builder.WriteString("quiz_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizScores))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
