// Package sanitize turns task list titles into file names that are safe on
// Windows, macOS and Linux.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// Fallback is returned for names that are empty after sanitizing.
const Fallback = "Untitled"

// Name transliterates s to ASCII, replaces characters that are forbidden in
// file names with '_' and strips leading/trailing dots and spaces.
// The result is never empty and Name(Name(s)) == Name(s).
func Name(s string) string {
	ascii := unidecode.Unidecode(s)

	var b strings.Builder
	b.Grow(len(ascii))
	for _, r := range ascii {
		if isForbidden(r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}

	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return Fallback
	}
	if isWindowsReserved(out) {
		// "CON.md" -> "CON_.md"; der Basisname darf nicht reserviert bleiben.
		if idx := strings.IndexByte(out, '.'); idx >= 0 {
			return out[:idx] + "_" + out[idx:]
		}
		return out + "_"
	}
	return out
}

// Segments splits a "/"-separated title into path segments and sanitizes each
// one on its own, so a '/' can never reappear after sanitizing. Blank segments
// are dropped; a title without any segment yields [Fallback].
func Segments(title string) []string {
	parts := strings.Split(title, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, Name(p))
	}
	if len(out) == 0 {
		return []string{Fallback}
	}
	return out
}

func isForbidden(r rune) bool {
	if r < 0x20 || r == 0x7f || unicode.IsControl(r) {
		return true
	}
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return true
	default:
		return false
	}
}

func isWindowsReserved(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.IndexByte(upper, '.'); idx >= 0 {
		upper = upper[:idx]
	}
	switch strings.TrimSpace(upper) {
	case "CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9":
		return true
	default:
		return false
	}
}
