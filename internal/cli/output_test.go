package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// ===== TEST HELPERS =====

func newTestFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ===== FORMATTER =====

func TestOutputFormatter_SuccessJSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(map[string]interface{}{"column": "todo"}))

	var result map[string]interface{}
	require.NoError(t, sonic.ConfigStd.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "todo", result["column"])
}

func TestOutputFormatter_ErrorJSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("COLUMN_NOT_FOUND", "column not found", "try show"))

	var result map[string]interface{}
	require.NoError(t, sonic.ConfigStd.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "COLUMN_NOT_FOUND", errData["code"])
	assert.Equal(t, "try show", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_ErrorHuman(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	require.NoError(t, f.ErrorWithSuggestion("X", "bad input", "do better"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: bad input")
	assert.Contains(t, errOut.String(), "Suggestion: do better")
}

func TestOutputFormatter_Warn(t *testing.T) {
	warning := boardservice.Warning{Op: "add_task", Err: errors.New("disk full")}

	f, _, errOut := newTestFormatter(false, false)
	f.Warn([]boardservice.Warning{warning})
	assert.Contains(t, errOut.String(), "Warning: add_task: disk full")

	quiet, _, quietErr := newTestFormatter(false, true)
	quiet.Warn([]boardservice.Warning{warning})
	assert.Empty(t, quietErr.String())
}

// ===== ERROR MAPPING =====

func TestFail_ExitCodes(t *testing.T) {
	tests := []struct {
		err  error
		code string
		exit int
	}{
		{fmt.Errorf("%w: %q", boardservice.ErrColumnNotFound, "x"), "COLUMN_NOT_FOUND", ExitNotFound},
		{ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound},
		{boardservice.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{boardservice.ErrTaskTooLong, "VALIDATION_ERROR", ExitValidation},
		{boardservice.ErrDuplicateTask, "DUPLICATE", ExitValidation},
		{boardservice.ErrDragInProgress, "DRAG_IN_PROGRESS", ExitUsage},
		{ErrNoDrag, "NO_DRAG", ExitUsage},
		{errors.New("boom"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			f, out, _ := newTestFormatter(true, false)

			err := f.Fail(tt.err)

			assert.ErrorIs(t, err, tt.err)
			assert.True(t, Reported(err))
			assert.Equal(t, tt.exit, ExitCodeOf(err))
			assert.Contains(t, out.String(), tt.code)
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeOf(nil))
	assert.Equal(t, ExitError, ExitCodeOf(errors.New("unreported")))
	assert.False(t, Reported(errors.New("unreported")))
	assert.Equal(t, ExitDataErr, ExitCodeOf(fmt.Errorf("wrapped: %w", &CommandError{Code: ExitDataErr, Err: errors.New("x")})))
}

// ===== RENDERING =====

func TestBoardMarkdown(t *testing.T) {
	board := models.Seed()
	board.Columns[2].Tasks = nil

	md := BoardMarkdown(board, "Task 4")

	assert.Contains(t, md, "## To Do (3)")
	assert.Contains(t, md, "- Task 1\n")
	assert.Contains(t, md, "- **Task 4** _(dragging)_")
	assert.Contains(t, md, "## Done (0)")
	assert.Contains(t, md, "_empty_")
}

func TestBoardMarkdown_NoColumns(t *testing.T) {
	assert.Contains(t, BoardMarkdown(models.Board{}, ""), "_No columns_")
}

func TestRenderBoard_ContainsTasks(t *testing.T) {
	rendered := RenderBoard(models.Seed(), "", DefaultWidth)

	for _, want := range []string{"To Do", "Task 3", "Done"} {
		assert.Contains(t, rendered, want)
	}
}

func TestColumnIDOf(t *testing.T) {
	board := models.Seed()
	assert.Equal(t, models.ColumnDone, ColumnIDOf(board, "Task 6"))
	assert.Equal(t, "", ColumnIDOf(board, "Task 7"))
}
