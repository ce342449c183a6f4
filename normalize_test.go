package doccorpus_test

import (
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("trims each line", func(t *testing.T) {
		t.Parallel()

		got := doccorpus.NormalizeText("  hello  \n\tworld\t")

		assert.Equal(t, "hello\nworld", got)
	})

	t.Run("drops blank lines entirely", func(t *testing.T) {
		t.Parallel()

		got := doccorpus.NormalizeText("first\n\n\n   \nsecond\n\nthird")

		assert.Equal(t, "first\nsecond\nthird", got)
	})

	t.Run("returns empty string for whitespace-only input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", doccorpus.NormalizeText("   \n\t\n  "))
		assert.Equal(t, "", doccorpus.NormalizeText(""))
	})

	t.Run("handles windows line endings", func(t *testing.T) {
		t.Parallel()

		got := doccorpus.NormalizeText("one\r\ntwo\r\n")

		assert.Equal(t, "one\ntwo", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"  a  \n\n b \n",
			"single",
			"",
			"\n\n\n",
			"x\ny\nz",
		}
		for _, in := range inputs {
			once := doccorpus.NormalizeText(in)
			twice := doccorpus.NormalizeText(once)
			assert.Equal(t, once, twice, "input %q", in)
		}
	})

	t.Run("no output line is empty or whitespace-only", func(t *testing.T) {
		t.Parallel()

		got := doccorpus.NormalizeText("a\n   \n\t\nb\n \nc")

		for _, line := range splitLines(got) {
			assert.NotEmpty(t, line)
		}
	})
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
