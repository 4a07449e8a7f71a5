package auth

import "testing"

func TestGenerator_NextProducesDistinctTokens(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}

	seen := make(map[Token]bool)
	for i := 0; i < 10000; i++ {
		tok := g.Next()
		if seen[tok] {
			t.Fatalf("duplicate token generated at iteration %d", i)
		}
		seen[tok] = true
	}
}

func TestToken_StringRoundTrip(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}
	tok := g.Next()

	s := tok.String()
	if len(s) != 32 {
		t.Fatalf("expected 32-character token string, got %d: %q", len(s), s)
	}

	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed != tok {
		t.Errorf("round-tripped token does not match original")
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"tooshort",
		"UPPERCASE0123456789abcdef01234567", // wrong case, wrong length
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",  // not hex
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q): expected error", c)
		}
	}
}
