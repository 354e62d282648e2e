package anchor

import "testing"

func TestDerive(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Caching", "caching"},
		{"The Core Problem", "the-core-problem"},
		{"Sorting: Creating Order from Chaos", "sorting-creating-order-from-chaos"},
		{"B-Trees", "b-trees"},
		{"What's in a Name?", "whats-in-a-name"},
		{"CRDTs: Agreeing Without Asking", "crdts-agreeing-without-asking"},
		{"Write-Ahead Logging (WAL): Durability without Delay", "write-ahead-logging-wal-durability-without-delay"},
		{"  Leading and trailing   ", "leading-and-trailing"},
		{"---hyphens---", "hyphens"},
		{"v1.2.3 release notes", "v1.2.3-release-notes"},
		{"snake_case_stays", "snake_case_stays"},
		{"Ünïcode Häadings", "ünïcode-häadings"},
		{"🎯 Emoji Only Prefix", "emoji-only-prefix"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Derive(c.in); got != c.want {
			t.Errorf("Derive(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// For heading text containing only letters, digits and spaces the identifier
// is just the lowercased text with spaces replaced by single hyphens.
func TestDerive_PlainTextLaw(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Data Structures 101", "data-structures-101"},
		{"a b  c   d", "a-b-c-d"},
		{"Single", "single"},
	}
	for _, c := range cases {
		if got := Derive(c.in); got != c.want {
			t.Errorf("Derive(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	inputs := []string{
		"Sorting: Creating Order from Chaos",
		"What's in a Name?",
		"Ünïcode Häadings",
		"already-an-anchor",
		"",
	}
	for _, in := range inputs {
		once := Derive(in)
		if twice := Derive(once); twice != once {
			t.Errorf("Derive not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestDeriveFromFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"01-concepts-01-the-core-problem.md", "01-concepts-01-the-core-problem"},
		{"04-python-implementation.md", "04-python-implementation"},
		{"README.md", "readme"},
		{"no-extension", "no-extension"},
	}
	for _, c := range cases {
		if got := DeriveFromFilename(c.in); got != c.want {
			t.Errorf("DeriveFromFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
