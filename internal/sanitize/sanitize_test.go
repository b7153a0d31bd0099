package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Shopping", "Shopping"},
		{"My Tasks", "My Tasks"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"...hidden", "hidden"},
		{"trailing. . ", "trailing"},
		{"  spaced  ", "spaced"},
		{"Café", "Cafe"},
		{"tab\there", "tab_here"},
		{"", Fallback},
		{"   ", Fallback},
		{"...", Fallback},
		{"??", "__"},
		{"CON", "CON_"},
		{"nul.txt", "nul_.txt"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Name(c.in), "Name(%q)", c.in)
	}
}

func TestNameIdempotentAndNeverEmpty(t *testing.T) {
	inputs := []string{
		"", " ", ".", "..", "/", "\\", "a/b", "Ünïcödé", "北京", "Задачи",
		"CON", "com1.log", "x. y .", "\x00\x01", "ok", "<>:\"/\\|?*",
		"emoji 🎉 list", "Eintrag: Einkaufen?",
	}
	for _, in := range inputs {
		once := Name(in)
		assert.NotEmpty(t, once, "Name(%q)", in)
		assert.Equal(t, once, Name(once), "Name not idempotent for %q", in)
		assert.False(t, strings.ContainsAny(once, `<>:"/\|?*`), "forbidden rune left in %q", once)
		assert.False(t, strings.HasPrefix(once, ".") || strings.HasSuffix(once, "."), "dot edge in %q", once)
	}
}

func TestNameTransliteratesToASCII(t *testing.T) {
	got := Name("Задачи")
	for _, r := range got {
		assert.Less(t, r, rune(0x80), "non-ASCII rune in %q", got)
	}
	assert.NotEqual(t, Fallback, got)
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"Shopping", "Groceries"}, Segments("Shopping/Groceries"))
	assert.Equal(t, []string{"a", "b"}, Segments("/a//b/"))
	assert.Equal(t, []string{Fallback}, Segments("//"))
	assert.Equal(t, []string{Fallback}, Segments(""))
	// ".." darf nicht als Verzeichniswechsel durchrutschen
	assert.Equal(t, []string{Fallback, "x"}, Segments("../x"))
	assert.Equal(t, []string{"Work_ Q1", "Plan"}, Segments("Work: Q1/Plan"))
}
