package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "najia version")
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Tables are valid")
}

func TestCastNumbersCommand(t *testing.T) {
	out, err := execute(t, "cast", "numbers", "8", "--query", "my salary", "--format", "json")
	require.NoError(t, err)

	var reading domain.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &reading))
	assert.Equal(t, 2, reading.Case.Original.Number)
	assert.Equal(t, "my salary", reading.Case.Query)
	assert.Equal(t, []int{8}, reading.Case.Seed.Numbers)
}

func TestCastNumbersCommand_Invalid(t *testing.T) {
	_, err := execute(t, "cast", "numbers", "eight")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCastMomentCommand(t *testing.T) {
	out, err := execute(t, "cast", "moment", "--instant", "2024-03-15T09:30:00Z", "--format", "json")
	require.NoError(t, err)

	var reading domain.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &reading))
	assert.Equal(t, domain.MethodMoment, reading.Case.Method)
}

func TestHexagramCommand(t *testing.T) {
	out, err := execute(t, "hexagram", "25", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "天雷无妄")

	_, err = execute(t, "hexagram", "99")
	assert.ErrorIs(t, err, domain.ErrHexagramNotFound)
}

func TestHistoryCommand_SQLite(t *testing.T) {
	t.Setenv("NAJIA_STORE", "sqlite")
	t.Setenv("NAJIA_SQLITE_PATH", filepath.Join(t.TempDir(), "readings.db"))

	_, err := execute(t, "cast", "numbers", "3", "8", "--query", "the move")
	require.NoError(t, err)

	out, err := execute(t, "history", "--format", "json")
	require.NoError(t, err)

	var readings []domain.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, "the move", readings[0].Case.Query)

	out, err = execute(t, "show", readings[0].Case.ID, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, readings[0].Case.ID)
}
