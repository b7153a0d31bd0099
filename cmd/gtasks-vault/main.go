package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elpatron68/gtasks-vault/internal/config"
	"github.com/elpatron68/gtasks-vault/internal/convert"
	applog "github.com/elpatron68/gtasks-vault/internal/log"
)

const defaultConfigFile = "gtasks-vault.yaml"

type cliFlags struct {
	config           string
	input            string
	output           string
	logLevel         string
	includeCompleted bool
	updated          bool
	escape           bool
	separators       bool
	heading          bool
	nested           bool
	underscoreSpaces bool
	list             string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		applog.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	root := &cobra.Command{
		Use:   "gtasks-vault",
		Short: "Convert a Google Tasks export into Markdown checklists",
		Long: `Reads Tasks.json from a Google Takeout export and writes one Markdown
file per task list into an Obsidian vault. Subtasks become nested items.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "YAML config file (default ./"+defaultConfigFile+" if present)")
	pf.StringVarP(&f.input, "input", "i", "", "path to Tasks.json")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&f.includeCompleted, "include-completed", true, "include completed tasks")
	pf.BoolVar(&f.updated, "updated", false, "add the last-updated timestamp below each task")
	pf.BoolVar(&f.escape, "escape", false, "escape Markdown characters in task titles")
	pf.BoolVar(&f.separators, "separators", false, "blank line after every task")
	pf.BoolVar(&f.heading, "heading", true, "start every file with '# <list title>'")
	pf.BoolVar(&f.nested, "nested", true, "map 'A/B' list titles to subdirectories")

	root.Flags().StringVarP(&f.output, "output", "o", "", "vault folder to write into")
	root.Flags().BoolVar(&f.underscoreSpaces, "underscore-spaces", false, "replace spaces in file names with '_'")

	preview := &cobra.Command{
		Use:   "preview",
		Short: "Print one task list as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, f)
		},
	}
	preview.Flags().StringVar(&f.list, "list", "", "title of the task list (default: first list)")
	root.AddCommand(preview)

	return root
}

func runConvert(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	res, err := convert.ConvertFile(cfg.Input, cfg.Output, cfg.ConvertOptions())
	if err != nil {
		if res.Written == 0 {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Conversion incomplete: %d files written to %s, %d failed\n", res.Written, cfg.Output, len(res.Failures))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Conversion complete: %d files written to %s\n", res.Written, cfg.Output)
	return nil
}

func runPreview(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return &convert.InputError{Path: cfg.Input, Err: err}
	}
	html, err := convert.Preview(data, f.list, cfg.ConvertOptions())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(html)
	return err
}

// loadConfig: Datei < explizit gesetzte Flags.
func loadConfig(cmd *cobra.Command, f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath(f.config))
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	applyFlags(cmd, f, cfg)
	applog.Init(cfg.Logging.Level)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

func applyFlags(cmd *cobra.Command, f *cliFlags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fs.Changed("include-completed") {
		cfg.Render.IncludeCompleted = f.includeCompleted
	}
	if fs.Changed("updated") {
		cfg.Render.IncludeUpdated = f.updated
	}
	if fs.Changed("escape") {
		cfg.Render.EscapeMarkdown = f.escape
	}
	if fs.Changed("separators") {
		cfg.Render.Separators = f.separators
	}
	if fs.Changed("heading") {
		cfg.Render.Heading = f.heading
	}
	if fs.Changed("nested") {
		cfg.Layout.Nested = f.nested
	}
	if fs.Changed("underscore-spaces") {
		cfg.Layout.UnderscoreSpaces = f.underscoreSpaces
	}
}
