package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListEmpty(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCommand(t, t.TempDir(), "history")

	require.NoError(t, err)
	assert.Equal(t, emptyHistoryMessage+"\n", out)
}

func TestHistoryListNewestFirst(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCommand(t, dir, "eval", "1+1=")
	require.NoError(t, err)
	_, _, err = runCommand(t, dir, "eval", "2+2=")
	require.NoError(t, err)

	out, _, err := runCommand(t, dir, "history")
	require.NoError(t, err)
	assert.Equal(t, "2 + 2 = 4\n1 + 1 = 2\n", out)
}

func TestHistoryListJSON(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	out, _, err := runCommand(t, dir, "history", "--json")
	require.NoError(t, err)

	var entries []string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestHistoryClear(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCommand(t, dir, "eval", "5-8=")
	require.NoError(t, err)

	out, _, err := runCommand(t, dir, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared.\n", out)

	out, _, err = runCommand(t, dir, "history")
	require.NoError(t, err)
	assert.Equal(t, emptyHistoryMessage+"\n", out)
}

func TestHistoryPersistsInSQLite(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCommand(t, dir, "--storage", "sqlite", "eval", "6*7=")
	require.NoError(t, err)

	out, _, err := runCommand(t, dir, "--storage", "sqlite", "history")
	require.NoError(t, err)
	assert.Equal(t, "6 × 7 = 42\n", out)
}
