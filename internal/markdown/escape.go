package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var urlRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://\S+`)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`.`, `\.`,
	`!`, `\!`,
)

// Escape backslash-escapes Markdown control characters in text. URLs are
// swapped for placeholders first and put back verbatim afterwards.
// Text that already contains a placeholder ("\x00<n>\x00") is not supported.
func Escape(text string) string {
	var urls []string
	shielded := urlRe.ReplaceAllStringFunc(text, func(u string) string {
		urls = append(urls, u)
		return placeholder(len(urls) - 1)
	})

	out := escaper.Replace(shielded)
	for i, u := range urls {
		out = strings.Replace(out, placeholder(i), u, 1)
	}
	return out
}

func placeholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}
