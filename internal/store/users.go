package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/saketh8887/medconnect/ent"
	"github.com/saketh8887/medconnect/ent/preference"
	"github.com/saketh8887/medconnect/ent/studysession"
	"github.com/saketh8887/medconnect/ent/user"
	"github.com/saketh8887/medconnect/internal/profile"
)

// CreateUser provisions a new account. An empty ID gets a uuid. The
// plaintext Password is hashed and never stored.
func (s *Store) CreateUser(ctx context.Context, u *profile.UserProfile) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := u.Validate(); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if u.Password == "" {
		return fmt.Errorf("create user %s: password is required", u.ID)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.client.User.Create().
		SetID(u.ID).
		SetName(u.Name).
		SetRole(user.Role(u.Role)).
		SetCollege(u.College).
		SetYear(u.Year).
		SetAvatar(u.Avatar).
		SetEmail(normEmail(u.Email)).
		SetPasswordHash(string(hash)).
		SetBloodGroup(u.BloodGroup).
		SetEmergencyContact(u.EmergencyContact).
		SetContactNumber(u.ContactNumber).
		SetCgpa(u.CGPA).
		SetPercentage(u.Percentage).
		SetNillableLastLogin(u.LastLogin).
		SetCompletedTopics(u.CompletedTopicIDs.Sorted()).
		SetCompletedChapters(u.CompletedChapterIDs.Sorted()).
		SetQuizScores(scoresOf(u)).
		SetCreatedAt(s.now().UTC()).
		Save(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", u.ID, ErrDuplicateUser)
		}
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}
	u.Password = ""
	return nil
}

// UpdateUser writes every mutable field of u. The id is the key and is
// never changed. A non-empty Password replaces the stored hash.
func (s *Store) UpdateUser(ctx context.Context, u *profile.UserProfile) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	upd := s.client.User.UpdateOneID(u.ID).
		SetName(u.Name).
		SetRole(user.Role(u.Role)).
		SetCollege(u.College).
		SetYear(u.Year).
		SetAvatar(u.Avatar).
		SetEmail(normEmail(u.Email)).
		SetBloodGroup(u.BloodGroup).
		SetEmergencyContact(u.EmergencyContact).
		SetContactNumber(u.ContactNumber).
		SetCgpa(u.CGPA).
		SetPercentage(u.Percentage).
		SetCompletedTopics(u.CompletedTopicIDs.Sorted()).
		SetCompletedChapters(u.CompletedChapterIDs.Sorted()).
		SetQuizScores(scoresOf(u))
	if u.LastLogin != nil {
		upd.SetLastLogin(u.LastLogin.UTC())
	} else {
		upd.ClearLastLogin()
	}
	if u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		upd.SetPasswordHash(string(hash))
	}

	if err := upd.Exec(ctx); err != nil {
		switch {
		case ent.IsNotFound(err):
			return fmt.Errorf("update user %s: %w", u.ID, ErrNotFound)
		case isUniqueViolation(err):
			return fmt.Errorf("update user %s: %w", u.ID, ErrDuplicateUser)
		}
		return fmt.Errorf("update user %s: %w", u.ID, err)
	}
	u.Password = ""
	return nil
}

// User fetches an account by id.
func (s *Store) User(ctx context.Context, id string) (*profile.UserProfile, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, notFound(err))
	}
	return entUserToProfile(u), nil
}

// UserByEmail fetches an account by email, case-insensitively.
func (s *Store) UserByEmail(ctx context.Context, email string) (*profile.UserProfile, error) {
	u, err := s.client.User.Query().
		Where(user.Email(normEmail(email))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", email, notFound(err))
	}
	return entUserToProfile(u), nil
}

// ListUsers returns every account ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]*profile.UserProfile, error) {
	users, err := s.client.User.Query().
		Order(ent.Asc(user.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*profile.UserProfile, len(users))
	for i, u := range users {
		out[i] = entUserToProfile(u)
	}
	return out, nil
}

// DeleteUser removes an account and its study log. Signing the user out is
// left to the caller.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.StudySession.Delete().
		Where(studysession.UserID(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete study log of %s: %w", id, err)
	}
	if err := tx.User.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete user %s: %w", id, notFound(err))
	}
	return tx.Commit()
}

// VerifyCredentials checks an email and password without touching the
// session. It returns ErrInvalidCredentials for an unknown email or a wrong
// password.
func (s *Store) VerifyCredentials(ctx context.Context, email, password string) (*profile.UserProfile, error) {
	u, err := s.client.User.Query().
		Where(user.Email(normEmail(email))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return entUserToProfile(u), nil
}

// Authenticate checks the credentials, stamps LastLogin and makes the user
// the current session.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*profile.UserProfile, error) {
	u, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.client.User.UpdateOneID(u.ID).
		SetLastLogin(s.now().UTC()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("stamp last login: %w", err)
	}
	if err := s.SetPreference(ctx, PrefCurrentUser, u.ID); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s.User(ctx, u.ID)
}

// CurrentUser returns the signed-in user, or nil when nobody is.
func (s *Store) CurrentUser(ctx context.Context) (*profile.UserProfile, error) {
	id, err := s.Preference(ctx, PrefCurrentUser)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	u, err := s.User(ctx, id)
	if errors.Is(err, ErrNotFound) {
		// The account was deleted under the session.
		return nil, nil
	}
	return u, err
}

// Logout ends the current session. Calling it with no session is fine.
func (s *Store) Logout(ctx context.Context) error {
	if _, err := s.client.Preference.Delete().
		Where(preference.Key(PrefCurrentUser)).
		Exec(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Seed provisions users when the users table is empty. It returns the
// number of accounts created.
func (s *Store) Seed(ctx context.Context, users []*profile.UserProfile) (int, error) {
	n, err := s.client.User.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	for _, u := range users {
		if err := s.CreateUser(ctx, u.Clone()); err != nil {
			return 0, fmt.Errorf("seed: %w", err)
		}
	}
	return len(users), nil
}

// entUserToProfile converts an ent User entity to a profile. The password
// hash stays behind.
func entUserToProfile(u *ent.User) *profile.UserProfile {
	p := &profile.UserProfile{
		ID:                  u.ID,
		Name:                u.Name,
		Role:                profile.Role(u.Role),
		College:             u.College,
		Year:                u.Year,
		Avatar:              u.Avatar,
		Email:               u.Email,
		BloodGroup:          u.BloodGroup,
		EmergencyContact:    u.EmergencyContact,
		ContactNumber:       u.ContactNumber,
		CGPA:                u.Cgpa,
		Percentage:          u.Percentage,
		CompletedTopicIDs:   profile.NewIDSet(u.CompletedTopics...),
		CompletedChapterIDs: profile.NewIDSet(u.CompletedChapters...),
		QuizScores:          u.QuizScores,
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		p.LastLogin = &t
	}
	return p
}

func scoresOf(u *profile.UserProfile) map[string]float64 {
	if u.QuizScores == nil {
		return map[string]float64{}
	}
	return u.QuizScores
}

func normEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// notFound maps ent's not-found error onto ErrNotFound.
func notFound(err error) error {
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
