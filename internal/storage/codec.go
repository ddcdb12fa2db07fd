package storage

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/kanban/internal/models"
)

// envelope is the versioned shape Decode also accepts. Encode keeps writing the
// bare column array so older readers continue to work.
type envelope struct {
	Version int             `json:"version"`
	Columns []models.Column `json:"columns"`
}

// Encode serializes a board as an ordered array of {id, title, tasks}
func Encode(board models.Board) ([]byte, error) {
	columns := normalize(board.Columns)
	data, err := sonic.ConfigStd.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot. It checks the value against the snapshot
// schema and the board invariants; any failure wraps ErrMalformedSnapshot.
func Decode(data []byte) (models.Board, error) {
	var raw interface{}
	if err := sonic.ConfigStd.Unmarshal(data, &raw); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if err := snapshotSchema.Validate(raw); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	var columns []models.Column
	if _, bare := raw.([]interface{}); bare {
		if err := sonic.ConfigStd.Unmarshal(data, &columns); err != nil {
			return models.Board{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}
	} else {
		var env envelope
		if err := sonic.ConfigStd.Unmarshal(data, &env); err != nil {
			return models.Board{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}
		if err := checkVersion(env.Version); err != nil {
			return models.Board{}, err
		}
		columns = env.Columns
	}

	board := models.Board{Columns: normalize(columns)}
	if err := board.Validate(); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return board, nil
}

// normalize copies columns so that empty task lists encode as [] rather than null
func normalize(columns []models.Column) []models.Column {
	out := make([]models.Column, len(columns))
	for i, c := range columns {
		out[i] = c.Clone()
	}
	return out
}
