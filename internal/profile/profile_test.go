package profile

import (
	"encoding/json"
	"errors"
	"testing"
)

func validProfile() *UserProfile {
	return &UserProfile{
		ID:    "u1",
		Name:  "Sarah Sharma",
		Role:  RoleStudent,
		Email: "sarah.s@aiims.edu.in",
		Year:  "MBBS Phase III",
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Student", RoleStudent, false},
		{"admin", RoleAdmin, false},
		{" Doctor ", RoleDoctor, false},
		{"Janitor", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRole) {
				t.Errorf("ParseRole(%q) err = %v, want ErrInvalidRole", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("valid profile: %v", err)
	}

	p := validProfile()
	p.ID = " "
	if !errors.Is(p.Validate(), ErrMissingID) {
		t.Error("expected ErrMissingID")
	}

	p = validProfile()
	p.Name = ""
	if !errors.Is(p.Validate(), ErrMissingName) {
		t.Error("expected ErrMissingName")
	}

	for _, email := range []string{"nope", "@", "a@", "@b.org", ""} {
		p = validProfile()
		p.Email = email
		if !errors.Is(p.Validate(), ErrBadEmail) {
			t.Errorf("email %q: expected ErrBadEmail", email)
		}
	}

	p = validProfile()
	p.Role = "Intern"
	if !errors.Is(p.Validate(), ErrInvalidRole) {
		t.Error("expected ErrInvalidRole")
	}
}

func TestMarkChapterCompleteNoDuplicates(t *testing.T) {
	p := validProfile()
	if !p.MarkChapterComplete("s1t1c1") {
		t.Fatal("first add should report true")
	}
	if p.MarkChapterComplete("s1t1c1") {
		t.Fatal("second add should report false")
	}
	if p.CompletedChapterIDs.Len() != 1 {
		t.Errorf("len = %d, want 1", p.CompletedChapterIDs.Len())
	}
	if !p.HasCompletedChapter("s1t1c1") {
		t.Error("expected chapter to be complete")
	}
}

func TestIDSetJSONCollapsesDuplicates(t *testing.T) {
	var s IDSet
	if err := json.Unmarshal([]byte(`["b","a","b"]`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["a","b"]` {
		t.Errorf("marshal = %s, want sorted array", out)
	}
}

func TestAverageScore(t *testing.T) {
	p := validProfile()
	if p.AverageScore() != 0 {
		t.Error("expected 0 with no scores")
	}
	p.RecordQuizScore("a", 50)
	p.RecordQuizScore("b", 100)
	if p.AverageScore() != 75 {
		t.Errorf("average = %v, want 75", p.AverageScore())
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := validProfile()
	p.MarkTopicComplete("s1t1")
	p.RecordQuizScore("q", 1)

	c := p.Clone()
	if c == p {
		t.Fatal("clone returned the same pointer")
	}
	c.MarkTopicComplete("s1t2")
	c.RecordQuizScore("q", 2)
	c.Year = "MBBS Phase II"

	if p.HasCompletedTopic("s1t2") {
		t.Error("mutating clone leaked into original topic set")
	}
	if p.QuizScores["q"] != 1 {
		t.Error("mutating clone leaked into original scores")
	}
	if p.Year != "MBBS Phase III" {
		t.Error("mutating clone leaked into original year")
	}
}
