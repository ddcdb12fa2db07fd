package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestAddColumn_Integration(t *testing.T) {
	cliInstance, store := clitest.SetupCLITest(t)

	output, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(), []string{"add"})
	require.NoError(t, err)
	assert.Contains(t, output, "Column 'New Column' added")

	board := cliInstance.App.BoardService.Board()
	require.Len(t, board.Columns, 4)
	assert.Contains(t, output, board.Columns[3].ID)

	_, present := store.Raw()
	assert.True(t, present, "adding a column saves the board")
}

func TestAddColumn_QuietPrintsID(t *testing.T) {
	cliInstance, _ := clitest.SetupCLITest(t)

	output, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(), []string{"add", "--quiet"})
	require.NoError(t, err)

	board := cliInstance.App.BoardService.Board()
	assert.Equal(t, board.Columns[3].ID+"\n", output)
	assert.Contains(t, output, models.NewColumnIDPrefix)
}

func TestAddColumn_JSON(t *testing.T) {
	cliInstance, _ := clitest.SetupCLITest(t)

	output, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(), []string{"add", "--json"})
	require.NoError(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	column := result["column"].(map[string]interface{})
	assert.Equal(t, models.NewColumnTitle, column["title"])
	assert.Equal(t, []interface{}{}, column["tasks"])
}

func TestRenameColumn_Integration(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		wantCode  int
		wantTitle string
	}{
		{
			name:      "rename with multiple words",
			args:      []string{"rename", models.ColumnInProgress, "Code", "Review"},
			wantTitle: "Code Review",
		},
		{
			name:     "unknown column",
			args:     []string{"rename", "missing", "Title"},
			wantErr:  true,
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "title too long",
			args:     []string{"rename", models.ColumnInProgress, strings.Repeat("a", 51)},
			wantErr:  true,
			wantCode: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliInstance, _ := clitest.SetupCLITest(t)

			output, stderr, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(), tt.args)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, cli.ExitCodeOf(err))
				assert.Contains(t, stderr, "Error")
				assert.Equal(t, "In Progress", cliInstance.App.BoardService.Board().Columns[1].Title)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, output, "'In Progress' → '"+tt.wantTitle+"'")
			assert.Equal(t, tt.wantTitle, cliInstance.App.BoardService.Board().Columns[1].Title)
		})
	}
}

func TestRenameColumn_JSONError(t *testing.T) {
	cliInstance, _ := clitest.SetupCLITest(t)

	output, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(),
		[]string{"rename", "missing", "Title", "--json"})
	require.Error(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "COLUMN_NOT_FOUND", errData["code"])
	assert.NotEmpty(t, errData["suggestion"])
}

func TestDeleteColumn_Integration(t *testing.T) {
	cliInstance, _ := clitest.SetupCLITest(t)

	output, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(),
		[]string{"delete", models.ColumnTodo, "--json"})
	require.NoError(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, models.ColumnTodo, result["column_id"])
	assert.Equal(t, float64(3), result["tasks_removed"])

	board := cliInstance.App.BoardService.Board()
	assert.Len(t, board.Columns, 2)
	assert.Equal(t, -1, board.ColumnOf("Task 1"))
}

func TestDeleteColumn_RequiresID(t *testing.T) {
	cliInstance, _ := clitest.SetupCLITest(t)

	_, _, err := clitest.ExecuteCLICommand(t, cliInstance, ColumnCmd(), []string{"delete"})
	assert.Error(t, err)
	assert.Len(t, cliInstance.App.BoardService.Board().Columns, 3)
}
