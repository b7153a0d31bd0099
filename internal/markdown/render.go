// Package markdown renders task forests as Markdown checklists for an
// Obsidian vault and previews the result as HTML.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/elpatron68/gtasks-vault/internal/tasks"
)

// Indent is prepended once per nesting level.
const Indent = "  "

const timestampLayout = "2006-01-02 15:04:05"

// Options are independent switches; the zero value renders open and
// completed tasks without metadata.
type Options struct {
	// ExcludeCompleted drops completed tasks before rendering. Their open
	// subtasks move up into the dropped task's place.
	ExcludeCompleted bool
	IncludeUpdated   bool
	Escape           bool
	// Separators emits an empty line after every task block.
	Separators bool
	// Heading writes "# <title>" at the top of a document.
	Heading bool
}

// Warning is a non-fatal rendering problem, e.g. an unparsable timestamp.
type Warning struct {
	TaskID string
	Value  string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("task %s: %v", w.TaskID, w.Err)
}

// Prepare applies the filters of opts: blank titles are always removed,
// completed tasks only when ExcludeCompleted is set.
func Prepare(forest []*tasks.Node, opts Options) []*tasks.Node {
	return tasks.Prune(forest, func(r tasks.Record) bool {
		if r.Blank() {
			return false
		}
		return !(opts.ExcludeCompleted && r.Completed())
	})
}

// Render returns the checklist lines of forest in pre-order.
func Render(forest []*tasks.Node, opts Options) ([]string, []Warning) {
	var (
		lines    []string
		warnings []Warning
	)
	tasks.Walk(Prepare(forest, opts), func(n *tasks.Node, depth int) {
		prefix := strings.Repeat(Indent, depth)
		title := strings.TrimSpace(n.Record.Title)
		if opts.Escape {
			title = Escape(title)
		}
		box := "- [ ] "
		if n.Record.Completed() {
			box = "- [x] "
		}
		lines = append(lines, prefix+box+title)

		if opts.IncludeUpdated && strings.TrimSpace(n.Record.Updated) != "" {
			stamp, err := FormatTimestamp(n.Record.Updated)
			if err != nil {
				warnings = append(warnings, Warning{TaskID: n.Record.ID, Value: n.Record.Updated, Err: err})
			}
			lines = append(lines, prefix+Indent+"Updated: "+stamp)
		}
		if opts.Separators {
			lines = append(lines, "")
		}
	})
	return lines, warnings
}

// Document assembles a complete file body.
func Document(title string, lines []string, opts Options) string {
	var b strings.Builder
	if opts.Heading {
		if strings.TrimSpace(title) == "" {
			title = "Untitled"
		}
		title = strings.TrimSpace(title)
		if opts.Escape {
			title = Escape(title)
		}
		b.WriteString("# " + title + "\n\n")
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTimestamp reformats an ISO-8601 value as "YYYY-MM-DD HH:MM:SS" in its
// own offset. On failure it returns raw unchanged together with the error.
func FormatTimestamp(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(timestampLayout), nil
		}
	}
	return raw, fmt.Errorf("unparsable timestamp %q, written verbatim", raw)
}
