package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wordgrid", cmd.Use)
	assert.Contains(t, cmd.Long, "adjacent")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"solve", "contains", "words", "optimize", "history", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestSolveCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	solveCmd, _, err := cmd.Find([]string{"solve"})
	require.NoError(t, err)

	for _, name := range []string{"dict", "out", "db", "no-prune", "paths"} {
		assert.NotNil(t, solveCmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "d", solveCmd.Flags().Lookup("dict").Shorthand)
	assert.Equal(t, "o", solveCmd.Flags().Lookup("out").Shorthand)
}

func TestOptimizeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	optCmd, _, err := cmd.Find([]string{"optimize"})
	require.NoError(t, err)

	for _, name := range []string{"dict", "generations", "seed", "boards", "db"} {
		assert.NotNil(t, optCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	assert.NotNil(t, historyCmd.Flags().Lookup("db"))
	assert.NotNil(t, historyCmd.Flags().Lookup("run"))
	limit := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "10", limit.DefValue)
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	updateFlag := testCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "false", updateFlag.DefValue)

	filterFlag := testCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, "--format", "invalid", "words", "--dict", "x.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigFile(t *testing.T) {
	dir, _, _ := atArtFixture(t)
	cfgPath := writeFile(t, dir, "wordgrid.yaml", "dictionary: "+filepath.Join(dir, "words.txt")+"\n")

	stdout, _, err := execute(t, "--config", cfgPath, "words")
	require.NoError(t, err)
	assert.Equal(t, "art\nat\n", stdout)
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "wordgrid.yaml", "optimizer:\n  population: 3\n")

	_, _, err := execute(t, "--config", cfgPath, "words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, dict, board := atArtFixture(t)

	stdout, stderr, err := execute(t, "--verbose", "solve", board, "--dict", dict)
	require.NoError(t, err)
	assert.Contains(t, stderr, "solve complete")
	assert.NotContains(t, stdout, "solve complete")
}
