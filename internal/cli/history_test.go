package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wordgrid/internal/store"
)

func TestHistory_MissingDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "missing.db")

	_, _, err := execute(t, "history", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")
	assert.NoFileExists(t, db)
}

func TestHistory_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	stdout, _, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No history recorded.\n", stdout)
}

func TestHistory_JSON(t *testing.T) {
	dir, dict, board := atArtFixture(t)
	db := filepath.Join(dir, "history.db")

	_, _, err := execute(t, "solve", board, "--dict", dict, "--db", db)
	require.NoError(t, err)

	stdout, _, err := execute(t, "--format", "json", "history", "--db", db)
	require.NoError(t, err)

	var resp struct {
		Data HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data.Solves, 1)
	assert.Equal(t, 1, resp.Data.Solves[0].TotalScore)
	assert.Equal(t, "a,t\nr,x\n", resp.Data.Solves[0].Grid)
	assert.Empty(t, resp.Data.Runs)
}

func TestHistory_UnknownRun(t *testing.T) {
	dir, dict, board := atArtFixture(t)
	db := filepath.Join(dir, "history.db")

	_, _, err := execute(t, "solve", board, "--dict", dict, "--db", db)
	require.NoError(t, err)

	_, _, err = execute(t, "history", "--db", db, "--run", "ghost")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no generations recorded for run ghost")
}
