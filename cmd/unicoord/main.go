// Package main provides the CLI entrypoint for unicoord.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/unicoord/internal/config"
	"github.com/verte-zerg/unicoord/internal/coordinator"
	"github.com/verte-zerg/unicoord/internal/model"
	"github.com/verte-zerg/unicoord/internal/report"
	"github.com/verte-zerg/unicoord/internal/script"
	"github.com/verte-zerg/unicoord/internal/tui"
)

const (
	defaultIndent   = script.DefaultIndent
	defaultIndexVar = script.DefaultIndexVar
)

var (
	scriptMacro    bool
	scriptIndent   string
	scriptIndexVar string
	scriptReport   bool
	scriptOutput   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unicoord [file]",
		Short: "Generate resolution independent click scripts from recordings",
		Long: `unicoord reads three or more base64 click recordings, one per line,
taken at different window sizes and fits every clicked point to
width*W + height*H. Without a file and with a terminal on stdin it starts
the interactive UI.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&scriptMacro, "macro", false, "wrap coordinates in an index-dispatched macro")
	rootCmd.PersistentFlags().StringVar(&scriptIndent, "indent", defaultIndent, "indent used by the macro form")
	rootCmd.PersistentFlags().StringVar(&scriptIndexVar, "index-var", defaultIndexVar, "index variable used by the macro form")
	rootCmd.Flags().BoolVar(&scriptReport, "report", false, "print the coefficient table to stderr")
	rootCmd.Flags().StringVarP(&scriptOutput, "output", "o", "", "output file path (default: stdout)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newTUICmd())

	return rootCmd
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadScriptConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
		return runTUI(cfg, "")
	}
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	res := coordinator.Parse(input)
	if err := res.Err(); err != nil {
		logDecodeCause(err)
		return err
	}
	out, _ := res.Output()
	if w := res.Warning(); w != "" {
		logErrf("%s", w)
	}
	if scriptReport {
		logErrf("%s", report.Coefficients(out.Coords))
	}

	text := out.Render(cfg) + "\n"
	if scriptOutput != "" {
		if err := os.WriteFile(scriptOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Decode recordings and print their points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspectCmd,
	}
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	recs, err := coordinator.DecodeLines(input)
	if err != nil {
		var de *coordinator.DecodeError
		if errors.As(err, &de) {
			return errors.New(de.Detail())
		}
		return err
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), report.Recordings(recs)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Paste recordings and copy scripts interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScriptConfig(cmd)
			if err != nil {
				return err
			}
			initial := ""
			if len(args) == 1 {
				initial, err = readInput(nil, args)
				if err != nil {
					return err
				}
			}
			return runTUI(cfg, initial)
		},
	}
}

func runTUI(cfg model.ScriptConfig, initial string) error {
	program := tea.NewProgram(tui.NewModel(cfg, initial), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// loadScriptConfig merges the config file with flags; flags win when set.
func loadScriptConfig(cmd *cobra.Command) (model.ScriptConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.ScriptConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "macro", &scriptMacro, fileCfg.Script.Macro)
	applyStringConfig(cmd, "indent", &scriptIndent, fileCfg.Script.Indent)
	applyStringConfig(cmd, "index-var", &scriptIndexVar, fileCfg.Script.IndexVar)

	cfg := model.ScriptConfig{
		Macro:    scriptMacro,
		Indent:   scriptIndent,
		IndexVar: scriptIndexVar,
	}
	if err := validateConfig(cfg); err != nil {
		return model.ScriptConfig{}, err
	}
	return cfg, nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		if stdin == nil {
			return "", fmt.Errorf("no input")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", args[0])
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func logDecodeCause(err error) {
	var de *coordinator.DecodeError
	if errors.As(err, &de) {
		logErrf("cause: %s\n", de.Detail())
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# unicoord configuration
# Uncomment a value to enable it. CLI flags override config values.

[script]
# macro = false           # Wrap coordinates in an index-dispatched macro
# indent = %q           # Indent used by the macro form
# index-var = %q        # Index variable used by the macro form
`,
		defaultIndent,
		defaultIndexVar,
	)
}

func validateConfig(cfg model.ScriptConfig) error {
	if cfg.IndexVar == "" {
		return fmt.Errorf("--index-var must not be empty")
	}
	if strings.ContainsAny(cfg.IndexVar, " \t\r\n") {
		return fmt.Errorf("--index-var must not contain whitespace")
	}
	if strings.ContainsAny(cfg.Indent, "\r\n") {
		return fmt.Errorf("--indent must not contain line breaks")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
