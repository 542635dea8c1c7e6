package profile

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Role is the account role of a portal user.
type Role string

const (
	RoleStudent Role = "Student"
	RoleNurse   Role = "Nurse"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleStudent, RoleNurse, RoleDoctor, RoleAdmin}

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrMissingID   = errors.New("profile id is required")
	ErrMissingName = errors.New("profile name is required")
	ErrBadEmail    = errors.New("profile email is invalid")
)

// ParseRole maps a role label (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// UserProfile is the identity and academic record of a portal user.
// ID is assigned at provisioning and never changes afterwards.
type UserProfile struct {
	ID               string `validate:"required,notblank"`
	Name             string `validate:"required,notblank"`
	Role             Role   `validate:"oneof=Student Nurse Doctor Admin"`
	College          string
	Year             string
	Avatar           string
	Email            string `validate:"required,email"`
	Password         string // plaintext, only set while provisioning
	BloodGroup       string
	EmergencyContact string
	ContactNumber    string
	CGPA             string
	Percentage       string
	LastLogin        *time.Time

	CompletedTopicIDs   IDSet
	CompletedChapterIDs IDSet
	QuizScores          map[string]float64
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the fields required to persist a profile. Failures map
// onto the package sentinels.
func (u *UserProfile) Validate() error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate profile: %w", err)
	}
	switch fe := verrs[0]; fe.StructField() {
	case "ID":
		return ErrMissingID
	case "Name":
		return ErrMissingName
	case "Email":
		return fmt.Errorf("%w: %q", ErrBadEmail, u.Email)
	case "Role":
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	default:
		return fmt.Errorf("validate profile: %s failed %s", fe.StructField(), fe.Tag())
	}
}

// IsAdmin reports whether the user holds the Admin role.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *UserProfile) HasCompletedTopic(id string) bool {
	return u.CompletedTopicIDs.Has(id)
}

func (u *UserProfile) HasCompletedChapter(id string) bool {
	return u.CompletedChapterIDs.Has(id)
}

// MarkChapterComplete adds the chapter to the completed set.
// Returns false if it was already present.
func (u *UserProfile) MarkChapterComplete(id string) bool {
	if u.CompletedChapterIDs == nil {
		u.CompletedChapterIDs = IDSet{}
	}
	return u.CompletedChapterIDs.Add(id)
}

// MarkTopicComplete adds the topic to the completed set.
// Returns false if it was already present.
func (u *UserProfile) MarkTopicComplete(id string) bool {
	if u.CompletedTopicIDs == nil {
		u.CompletedTopicIDs = IDSet{}
	}
	return u.CompletedTopicIDs.Add(id)
}

// RecordQuizScore stores the latest score for a quiz or chapter.
func (u *UserProfile) RecordQuizScore(id string, score float64) {
	if u.QuizScores == nil {
		u.QuizScores = make(map[string]float64)
	}
	u.QuizScores[id] = score
}

// AverageScore returns the mean of all recorded quiz scores, or 0.
func (u *UserProfile) AverageScore() float64 {
	if len(u.QuizScores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range u.QuizScores {
		sum += s
	}
	return sum / float64(len(u.QuizScores))
}

// Clone returns a deep copy. Callers mutate the copy so that the original
// reference stays stable for anyone still holding it.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	c.CompletedTopicIDs = u.CompletedTopicIDs.Clone()
	c.CompletedChapterIDs = u.CompletedChapterIDs.Clone()
	if u.QuizScores != nil {
		c.QuizScores = maps.Clone(u.QuizScores)
	}
	return &c
}
