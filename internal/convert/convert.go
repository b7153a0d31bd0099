// Package convert turns a Google Takeout Tasks export into one Markdown file
// per task list.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	applog "github.com/elpatron68/gtasks-vault/internal/log"
	"github.com/elpatron68/gtasks-vault/internal/markdown"
	"github.com/elpatron68/gtasks-vault/internal/sanitize"
	"github.com/elpatron68/gtasks-vault/internal/tasks"
)

type Options struct {
	Render markdown.Options
	// Nested maps "A/B" to the file A/B.md instead of A_B.md.
	Nested bool
	// UnderscoreSpaces replaces spaces in file and directory names with '_'.
	UnderscoreSpaces bool
}

// DefaultOptions: heading on, nested folders, completed tasks included.
func DefaultOptions() Options {
	return Options{
		Render: markdown.Options{Heading: true},
		Nested: true,
	}
}

type Result struct {
	Written  int
	Files    []string
	Warnings []FormatWarning
	Failures []*IOError
}

// ConvertFile reads the export at path and converts it.
func ConvertFile(path, outDir string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &InputError{Path: path, Err: err}
	}
	res, err := Convert(data, outDir, opts)
	var inErr *InputError
	if errors.As(err, &inErr) && inErr.Path == "" {
		inErr.Path = path
	}
	return res, err
}

// Convert writes one Markdown file per task list of blob below outDir and
// returns how many files were written.
//
// A broken export is an *InputError and nothing is written. If outDir cannot
// be created the run stops with an *IOError. A list that cannot be written is
// skipped; the other lists are still written and the per-list *IOErrors are
// returned joined, together with the partial Result.
func Convert(blob []byte, outDir string, opts Options) (Result, error) {
	var res Result

	exp, err := tasks.Parse(blob)
	if err != nil {
		return res, &InputError{Err: err}
	}
	if strings.TrimSpace(outDir) == "" {
		return res, &IOError{Path: outDir, Err: errors.New("no output directory given")}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, &IOError{Path: outDir, Err: err}
	}

	paths := planPaths(exp.Lists, outDir, opts)
	var errs []error
	for i, list := range exp.Lists {
		doc, warnings := RenderList(list, opts)
		for _, w := range warnings {
			applog.Warnf("%s", w)
		}
		res.Warnings = append(res.Warnings, warnings...)

		if err := writeDocument(paths[i], doc); err != nil {
			ioErr := &IOError{List: list.Title, Path: paths[i], Err: err}
			applog.Errorf("%v", ioErr)
			res.Failures = append(res.Failures, ioErr)
			errs = append(errs, ioErr)
			continue
		}
		res.Written++
		res.Files = append(res.Files, paths[i])
		applog.Infof("wrote %s (%d tasks)", paths[i], len(list.Tasks))
	}
	applog.Debugf("conversion done: %d of %d lists written", res.Written, len(exp.Lists))
	return res, errors.Join(errs...)
}

// RenderList renders the complete file content of one list.
func RenderList(list tasks.List, opts Options) (string, []FormatWarning) {
	forest, cycleRoots := tasks.BuildForestWithCycles(list.Tasks)
	lines, warnings := markdown.Render(forest, opts.Render)

	out := make([]FormatWarning, 0, len(cycleRoots)+len(warnings))
	for _, id := range cycleRoots {
		out = append(out, FormatWarning{List: list.Title, TaskID: id, Err: tasks.ErrParentCycle})
	}
	for _, w := range warnings {
		out = append(out, FormatWarning{List: list.Title, TaskID: w.TaskID, Value: w.Value, Err: w.Err})
	}
	return markdown.Document(headingTitle(list.Title, opts.Nested), lines, opts.Render), out
}

// Preview renders the list named title (the first list when title is empty)
// as HTML, exactly as Convert would write it.
func Preview(blob []byte, title string, opts Options) ([]byte, error) {
	exp, err := tasks.Parse(blob)
	if err != nil {
		return nil, &InputError{Err: err}
	}
	for _, list := range exp.Lists {
		if title == "" || list.Title == title {
			doc, warnings := RenderList(list, opts)
			for _, w := range warnings {
				applog.Warnf("%s", w)
			}
			return markdown.ToHTML(doc), nil
		}
	}
	if title == "" {
		return nil, &InputError{Err: errors.New("export contains no task lists")}
	}
	return nil, &InputError{Err: fmt.Errorf("no task list titled %q", title)}
}

func headingTitle(title string, nested bool) string {
	if !nested {
		return title
	}
	parts := strings.Split(title, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return ""
}

// planPaths assigns every list its own file. Names that collide with a
// planned file or directory (case-insensitive, for Windows and macOS) get
// " (2)", " (3)", ... so that no list has to overwrite or block another.
func planPaths(lists []tasks.List, outDir string, opts Options) []string {
	files := make(map[string]bool, len(lists))
	dirs := make(map[string]bool)
	key := func(p string) string { return strings.ToLower(p) }

	out := make([]string, len(lists))
	for i, list := range lists {
		segs := []string{sanitize.Name(list.Title)}
		if opts.Nested {
			segs = sanitize.Segments(list.Title)
		}
		if opts.UnderscoreSpaces {
			for j := range segs {
				segs[j] = strings.ReplaceAll(segs[j], " ", "_")
			}
		}

		dir := outDir
		for _, seg := range segs[:len(segs)-1] {
			name := seg
			for n := 2; files[key(filepath.Join(dir, name))]; n++ {
				name = withSuffix(seg, n, opts.UnderscoreSpaces)
			}
			dir = filepath.Join(dir, name)
			dirs[key(dir)] = true
		}

		base := segs[len(segs)-1]
		name := base + ".md"
		for n := 2; ; n++ {
			k := key(filepath.Join(dir, name))
			if !files[k] && !dirs[k] {
				break
			}
			name = withSuffix(base, n, opts.UnderscoreSpaces) + ".md"
		}
		files[key(filepath.Join(dir, name))] = true
		out[i] = filepath.Join(dir, name)
	}
	return out
}

func withSuffix(name string, n int, underscore bool) string {
	if underscore {
		return fmt.Sprintf("%s_(%d)", name, n)
	}
	return fmt.Sprintf("%s (%d)", name, n)
}

func writeDocument(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
