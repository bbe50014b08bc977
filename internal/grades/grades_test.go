package grades

import "testing"

func TestParseALevel(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"A*A*A*", intPtr(18)},
		{"A*A*A", intPtr(17)},
		{"A*AA", intPtr(16)},
		{"AAA", intPtr(15)},
		{"AAB", intPtr(14)},
		{"ABB", intPtr(13)},
		{"BBB", intPtr(12)},
		{"BBC", intPtr(11)},
		{"CCC", intPtr(9)},
		{"AAB-ABB", intPtr(14)}, // range keeps the higher end
		{"ABB-BBB", intPtr(13)},
		{"ABB - BBB", intPtr(13)},
		{"Not accepted", nil},
		{"not accepted", nil},
		{"nan", nil},
		{"", nil},
		{"   ", nil},
		{"36 points", nil}, // no grade letters
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseALevel(tt.input)
			if !eqIntPtr(got, tt.expected) {
				t.Errorf("ParseALevel(%q) = %v, want %v", tt.input, fmtIntPtr(got), fmtIntPtr(tt.expected))
			}
		})
	}
}

func TestParseALevelSumsAllTokens(t *testing.T) {
	// For plain grade strings the score is the sum of per-token values.
	tests := map[string]int{
		"A*A*":  12,
		"AAAA":  20,
		"AB":    9,
		"E":     1,
		"A*BDE": 13,
	}
	for input, want := range tests {
		got := ParseALevel(input)
		if got == nil || *got != want {
			t.Errorf("ParseALevel(%q) = %v, want %d", input, fmtIntPtr(got), want)
		}
	}
}

func TestParseIB(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"36 Points", intPtr(36)},
		{"39", intPtr(39)},
		{"36 Points (666)", intPtr(36)},
		{"38-40 points", intPtr(38)}, // range keeps the lower bound
		{"26 points", intPtr(26)},
		{"15 points", nil}, // below the sanity floor
		{"99 points", nil}, // above the ceiling
		{"Not accepted", nil},
		{"nan", nil},
		{"", nil},
		{"no number here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseIB(tt.input)
			if !eqIntPtr(got, tt.expected) {
				t.Errorf("ParseIB(%q) = %v, want %v", tt.input, fmtIntPtr(got), fmtIntPtr(tt.expected))
			}
		})
	}
}

func TestDisplayGrade(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{18, "A*A*A*"},
		{17, "A*A*A"},
		{15, "AAA"},
		{14, "AAB"},
		{12, "BBB"},
		{9, "CCC"},
		{5, "(5)"},
	}
	for _, tt := range tests {
		if got := DisplayGrade(tt.score); got != tt.expected {
			t.Errorf("DisplayGrade(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestIBPointsOptions(t *testing.T) {
	opts := IBPointsOptions()
	if len(opts) != 22 {
		t.Fatalf("expected 22 options, got %d", len(opts))
	}
	if opts[0] != 45 || opts[len(opts)-1] != 24 {
		t.Errorf("expected 45 down to 24, got %d..%d", opts[0], opts[len(opts)-1])
	}
}

func intPtr(v int) *int { return &v }

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
