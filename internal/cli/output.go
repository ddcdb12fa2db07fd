package cli

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// NewFormatter reads the output flags of cmd and writes to its streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful result as {"success": true, ...fields}
func (f *OutputFormatter) Success(fields map[string]interface{}) error {
	payload := map[string]interface{}{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return f.encode(payload)
}

// Println writes a human-readable line. Colors are dropped when the writer is
// not a terminal.
func (f *OutputFormatter) Println(a ...interface{}) {
	_, _ = lipgloss.Fprintln(f.out(), a...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = lipgloss.Fprintln(f.errOut(), styles.ErrorStyle.Render("❌ Error: "+message))
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Warn reports recovered storage failures. They never change the exit code.
func (f *OutputFormatter) Warn(warnings []boardservice.Warning) {
	if f.Quiet {
		return
	}
	for _, w := range warnings {
		_, _ = lipgloss.Fprintln(f.errOut(), styles.WarningStyle.Render("⚠ Warning: "+w.Error()))
	}
}

func (f *OutputFormatter) encode(v interface{}) error {
	data, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = f.out().Write(append(data, '\n'))
	return err
}
