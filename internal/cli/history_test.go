package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cnfstat/internal/store"
)

// runWithIDs runs the root command with a fixed run ID generator.
func runWithIDs(t *testing.T, gen store.IDGenerator, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&RootOptions{IDGenerator: gen})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHistory_RecordsRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	gen := store.NewFixedGenerator("run-a", "run-b")

	stdout, _, err := runWithIDs(t, gen, "p cnf 3 2\n1 2 0\n-1 3 0\n", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "3 2 2:2\n", stdout)

	_, _, err = runWithIDs(t, gen, "", "--db", db, filepath.Join("testdata", "cnf", "mixed.cnf"))
	require.NoError(t, err)

	stdout, stderr, code := execute(t, "", "history", "--db", db)
	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "run-a  -  "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "3 vars  2 clauses  2:2"), lines[0])
	assert.Contains(t, lines[1], "run-b  "+filepath.Join("testdata", "cnf", "mixed.cnf"))
	assert.True(t, strings.HasSuffix(lines[1], "1:1 2:2 4:1"), lines[1])
}

func TestHistory_GroupedNumbers(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, _, err := runWithIDs(t, store.NewFixedGenerator("big"), "p cnf 12345 0\n", "--db", db)
	require.NoError(t, err)

	stdout, _, code := execute(t, "", "history", "--db", db)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "12,345 vars  0 clauses")
}

func TestHistory_FailedRunNotRecorded(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, _, err := runWithIDs(t, store.NewFixedGenerator("ok"), "p cnf 1 0\n", "--db", db)
	require.NoError(t, err)
	_, _, err = runWithIDs(t, store.NewFixedGenerator("bad"), "p cnf 1 1\n", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	stdout, _, code := execute(t, "", "history", "--db", db, "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string        `json:"status"`
		Data   HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data.Runs, 1)
	assert.Equal(t, "ok", resp.Data.Runs[0].ID)
	assert.Equal(t, store.StdinSource, resp.Data.Runs[0].Source)
}

func TestHistory_DigestFilter(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	gen := store.NewFixedGenerator("r1", "r2", "r3")
	input := "p cnf 3 2\n1 2 0\n-1 3 0\n"

	for _, in := range []string{input, "p cnf 1 1\n1 0\n", input} {
		_, _, err := runWithIDs(t, gen, in, "--db", db)
		require.NoError(t, err)
	}

	stdout, _, code := execute(t, "", "history", "--db", db, "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var all struct {
		Data HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &all))
	require.Len(t, all.Data.Runs, 3)

	digest := all.Data.Runs[0].Digest
	stdout, _, code = execute(t, "", "history", "--db", db, "--digest", digest, "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var filtered struct {
		Data HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &filtered))
	require.Len(t, filtered.Data.Runs, 2)
	assert.Equal(t, "r1", filtered.Data.Runs[0].ID)
	assert.Equal(t, "r3", filtered.Data.Runs[1].ID)

	stdout, _, code = execute(t, "", "history", "--db", db, "--digest", digest, "--limit", "1")
	require.Equal(t, ExitSuccess, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 1)
}

func TestHistory_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	stdout, _, code := execute(t, "", "history", "--db", db)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "No runs recorded.\n", stdout)
}

func TestHistory_RequiresDB(t *testing.T) {
	stdout, stderr, code := execute(t, "", "history")
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "history requires --db")
}

func TestHistory_MissingDatabase(t *testing.T) {
	_, stderr, code := execute(t, "", "history", "--db", filepath.Join(t.TempDir(), "absent.db"))
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "database not found")
}

func TestStat_StoreFailureLeavesStdoutEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "missing-dir", "runs.db")

	stdout, stderr, err := runWithIDs(t, store.NewFixedGenerator("x"), "p cnf 0 0\n", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error:")
}
