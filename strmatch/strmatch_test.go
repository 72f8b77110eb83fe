package strmatch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/step"
	"github.com/katalvlaran/lvtrace/strmatch"
)

var matchers = map[string]strmatch.Func{
	"naive":       strmatch.Naive,
	"kmp":         strmatch.KMP,
	"rabin-karp":  strmatch.RabinKarp,
	"boyer-moore": strmatch.BoyerMoore,
	"z":           strmatch.ZAlgorithm,
}

// positions runs fn and returns the final match list after checking the trace shape.
func positions(t *testing.T, name string, fn strmatch.Func, text, pattern string) []int {
	t.Helper()
	steps, err := fn(text, pattern)
	require.NoError(t, err, name)
	last := step.Last(steps)
	require.Equal(t, step.KindComplete, last.Type, name)
	require.NotNil(t, last.Matches, name)
	assert.Equal(t, len(last.Matches), step.Count(steps, step.KindFound), name)
	return last.Matches
}

func TestKMP_Scenario(t *testing.T) {
	got := positions(t, "kmp", strmatch.KMP, "ABABDABACDABABCABAB", "ABABCABAB")
	assert.Equal(t, []int{10}, got)
}

func TestKMP_LPSTable(t *testing.T) {
	steps, err := strmatch.KMP("x", "ABABCABAB")
	require.NoError(t, err)

	var table []int
	for _, s := range steps {
		if s.Type == step.KindLPS {
			table = s.Table
		}
	}
	assert.Equal(t, []int{0, 0, 1, 2, 0, 1, 2, 3, 4}, table)
}

func TestMatchersAgree(t *testing.T) {
	cases := []struct{ text, pattern string }{
		{"ABABDABACDABABCABAB", "ABAB"},
		{"aaaaaa", "aa"},
		{"hello world", "o"},
		{"short", "much longer pattern"},
		{"", "a"},
		{"abc", "abc"},
		{"mississippi", "issi"},
	}
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 25; i++ {
		text := make([]byte, r.Intn(40))
		for k := range text {
			text[k] = "ab"[r.Intn(2)]
		}
		pat := make([]byte, 1+r.Intn(4))
		for k := range pat {
			pat[k] = "ab"[r.Intn(2)]
		}
		cases = append(cases, struct{ text, pattern string }{string(text), string(pat)})
	}

	for _, c := range cases {
		want := positions(t, "naive", strmatch.Naive, c.text, c.pattern)
		for name, fn := range matchers {
			assert.Equal(t, want, positions(t, name, fn, c.text, c.pattern), "%s on %q/%q", name, c.text, c.pattern)
		}
	}
}

func TestOverlappingMatches(t *testing.T) {
	for name, fn := range matchers {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, positions(t, name, fn, "aaaaaa", "aa"), name)
	}
}

func TestEmptyPattern(t *testing.T) {
	for name, fn := range matchers {
		_, err := fn("abc", "")
		assert.ErrorIs(t, err, strmatch.ErrEmptyPattern, name)
	}
	_, err := strmatch.MultiPattern("abc", []string{"a", ""})
	assert.ErrorIs(t, err, strmatch.ErrEmptyPattern)
}

func TestRabinKarp_SpuriousHit(t *testing.T) {
	// With modulus 101, "ab" (97·256+98 = 24930 ≡ 84) and "\x00\x54" (84) collide.
	steps, err := strmatch.RabinKarp("\x00\x54ab", "ab")
	require.NoError(t, err)
	assert.Equal(t, 1, step.Count(steps, step.KindSpuriousHit))
	assert.Equal(t, []int{2}, step.Last(steps).Matches)
}

func TestBoyerMoore_SkipsAhead(t *testing.T) {
	steps, err := strmatch.BoyerMoore("xxxxxxxxxxabc", "abc")
	require.NoError(t, err)
	assert.Equal(t, []int{10}, step.Last(steps).Matches)
	// 'x' never occurs in the pattern, so each mismatch jumps a full window.
	assert.Less(t, step.Count(steps, step.KindMismatch), 6)
}

func TestManacher(t *testing.T) {
	cases := map[string]string{
		"babad":            "bab",
		"cbbd":             "bb",
		"a":                "a",
		"forgeeksskeegfor": "geeksskeeg",
		"abacdfgdcaba":     "aba",
	}
	for text, want := range cases {
		steps, err := strmatch.Manacher(text)
		require.NoError(t, err)
		last := step.Last(steps)
		require.Equal(t, step.KindComplete, last.Type)
		assert.Equal(t, want, last.Palindrome, text)
		require.Len(t, last.Matches, 1)
		assert.Equal(t, want, text[last.Matches[0]:last.Matches[0]+len(want)])
	}

	steps, err := strmatch.Manacher("")
	require.NoError(t, err)
	assert.Empty(t, step.Last(steps).Palindrome)
	assert.Empty(t, step.Last(steps).Matches)
}

func TestMultiPattern(t *testing.T) {
	steps, err := strmatch.MultiPattern("she sells sea shells", []string{"she", "sea", "ell", "she"})
	require.NoError(t, err)

	last := step.Last(steps)
	require.Equal(t, step.KindComplete, last.Type)
	assert.Equal(t, map[string][]int{"she": {0, 14}, "sea": {10}, "ell": {5, 16}}, last.PatternMatches)
	assert.Equal(t, []int{0, 5, 10, 14, 16}, last.Matches)
	assert.Equal(t, 3, step.Count(steps, step.KindPattern))
}
