package colid

import (
	"strings"
	"testing"
)

func TestFromLabel_StripsPunctuationAndCase(t *testing.T) {
	if got := FromLabel("Weight (kg)"); got != "weightkg" {
		t.Fatalf("FromLabel(%q) = %q, want %q", "Weight (kg)", got, "weightkg")
	}
}

func TestFromLabel_IdempotentOnValidID(t *testing.T) {
	id := FromLabel("Beam Angle")
	if id != "beamangle" {
		t.Fatalf("FromLabel(%q) = %q, want %q", "Beam Angle", id, "beamangle")
	}
	if got := FromLabel(id); got != id {
		t.Fatalf("FromLabel(%q) = %q, want unchanged", id, got)
	}
}

func TestFromLabel_NumericOnlyFallsBack(t *testing.T) {
	got := FromLabel("12345")
	if !strings.HasPrefix(got, "col") {
		t.Fatalf("FromLabel(%q) = %q, want generated col id", "12345", got)
	}
}

func TestFromLabel_EmptyFallsBack(t *testing.T) {
	got := FromLabel("***")
	if !strings.HasPrefix(got, "col") {
		t.Fatalf("FromLabel(%q) = %q, want generated col id", "***", got)
	}
}

func TestFromLabel_NonASCIIFallsBack(t *testing.T) {
	got := FromLabel("전압")
	if !strings.HasPrefix(got, "col") {
		t.Fatalf("FromLabel(%q) = %q, want generated col id", "전압", got)
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"voltage", true},
		{"weightkg", true},
		{"col1700000000000", true},
		{"", false},
		{"123", false},
		{"max-output", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.id); got != tc.want {
			t.Fatalf("Valid(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
