package theme

import (
	"testing"

	"github.com/saketh8887/medconnect/internal/profile"
)

func TestResolveNilUserIsBlue(t *testing.T) {
	if got := Resolve(nil).Name; got != NameBlue {
		t.Errorf("Resolve(nil).Name = %q, want %q", got, NameBlue)
	}
}

func TestResolveByYear(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{"MBBS Phase II", NameYellow},
		{"MBBS Phase II (Part 1)", NameYellow},
		{"MBBS Phase III", NameYellow}, // substring match
		{"MBBS Phase I", NameBlue},
		{"System Administrator", NameBlue},
		{"", NameBlue},
		{"phase ii", NameBlue}, // case-sensitive
	}
	for _, tt := range tests {
		u := &profile.UserProfile{Year: tt.year}
		if got := Resolve(u).Name; got != tt.want {
			t.Errorf("Resolve(year=%q).Name = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestYellowInheritsUntouchedTokens(t *testing.T) {
	def := Default()
	y := Resolve(&profile.UserProfile{Year: "MBBS Phase II"})

	if y.Accent != def.Accent || y.Border != def.Border || y.Glow != def.Glow || y.Blob != def.Blob {
		t.Error("yellow theme should inherit accent, border, glow and blob")
	}
	if y.Bg == def.Bg || y.Text == def.Text {
		t.Error("yellow theme should override bg and text")
	}
	if len(y.Gradient) != 3 || y.Gradient[0] == def.Gradient[0] {
		t.Error("yellow theme should override gradient")
	}
}

func TestResolveReflectsMutation(t *testing.T) {
	u := &profile.UserProfile{Year: "MBBS Phase I"}
	if Resolve(u).Name != NameBlue {
		t.Fatal("expected blue before promotion")
	}
	u.Year = "MBBS Phase II"
	if Resolve(u).Name != NameYellow {
		t.Error("expected yellow after promotion")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	u := &profile.UserProfile{Year: "MBBS Phase II"}
	a, b := Resolve(u), Resolve(u)
	if a.Name != b.Name || a.Bg != b.Bg || a.Text != b.Text {
		t.Error("Resolve should return equal themes for the same input")
	}
}

func TestPaletteFor(t *testing.T) {
	light, dark := PaletteFor(false), PaletteFor(true)
	if light.Dark || !dark.Dark {
		t.Fatal("palette Dark flag mismatch")
	}
	if light.Background == dark.Background {
		t.Error("light and dark backgrounds should differ")
	}
	if light.Text == dark.Text {
		t.Error("light and dark text should differ")
	}
}
