package nlp

import (
	"reflect"
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ml", "machine learning", true},
		{"aiml", "machine learning", true},
		{"AI/ML", "machine learning", true},
		{"coding", "coding", true},
		{"  Blockchain ", "blockchain", true},
		{"codng", "coding", true},
		{"desigm", "design", true},
		{"machne learning", "machine learning", true},
		{"crypto", "blockchain", true},
		{"xylophone", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := NormalizeToken(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("NormalizeToken(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeTokenDeterministicTies(t *testing.T) {
	first, ok := NormalizeToken("desin")
	if !ok {
		t.Fatal("expected a fuzzy match for \"desin\"")
	}
	for i := 0; i < 50; i++ {
		got, ok := NormalizeToken("desin")
		if !ok || got != first {
			t.Fatalf("run %d: NormalizeToken(\"desin\") = (%q, %v), want stable (%q, true)", i, got, ok, first)
		}
	}
}

func TestExtractTags(t *testing.T) {
	got := ExtractTags("I want to learn AI and coding")

	want := []string{"ai", "coding", "development"}
	set := make(map[string]struct{}, len(got))
	for _, tag := range got {
		set[tag] = struct{}{}
	}
	for _, tag := range want {
		if _, ok := set[tag]; !ok {
			t.Errorf("ExtractTags missing %q, got %v", tag, got)
		}
	}
}

func TestExtractTagsMultiWordSynonym(t *testing.T) {
	got := ExtractTags("interested in artificial intelligence careers")

	if len(got) == 0 || got[0] != "ai" {
		t.Fatalf("expected the phrase match first, got %v", got)
	}
}

func TestExtractTagsDeterministic(t *testing.T) {
	first := ExtractTags("recommend machine learning and blockchain courses")
	for i := 0; i < 20; i++ {
		if got := ExtractTags("recommend machine learning and blockchain courses"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}

func TestExtractTagsNoMatches(t *testing.T) {
	if got := ExtractTags("zzzzzz qqqqqq"); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}
