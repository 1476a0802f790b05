package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/repository/sqlite"
	"tasklist/internal/services"
)

type testEnv struct {
	t        *testing.T
	dataDir  string
	answer   bool
	prompts  []string
	uiCalls  int
	uiTitle  string
	uiNames  []string
	uiErr    error
	repoFunc RepositoryFactory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{config.EnvDataDir, config.EnvDBFilename, config.EnvDirPermissions, config.EnvDebug, config.EnvTitle} {
		t.Setenv(key, "")
	}
	return &testEnv{t: t, dataDir: t.TempDir(), answer: true}
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	opts := []RootOption{
		WithConfirmer(func(title string) (bool, error) {
			e.prompts = append(e.prompts, title)
			return e.answer, nil
		}),
		WithUIRunner(func(ctx context.Context, tasks services.TaskList, title string) error {
			e.uiCalls++
			e.uiTitle = title
			e.uiNames = tasks.Names()
			return e.uiErr
		}),
	}
	if e.repoFunc != nil {
		opts = append(opts, WithRepositoryFactory(e.repoFunc))
	}

	root := NewRootCommand(opts...)
	var out bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetErr(&out)
	root.Command().SetArgs(append([]string{"--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "tasklist %s", strings.Join(args, " "))
	return out
}

func TestListCommand_Empty(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("list")
	assert.Equal(t, "No tasks.\n", out)

	_, err := os.Stat(filepath.Join(env.dataDir, "tasks.db"))
	assert.NoError(t, err, "database is created in the data directory")
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("add", "Buy", "milk")
	assert.Contains(t, out, "Task added!")
	env.mustRun("add", "Walk dog")

	out = env.mustRun("list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Tasks")
	assert.Contains(t, lines[1], "1.")
	assert.Contains(t, lines[1], "Buy milk")
	assert.Contains(t, lines[2], "2.")
	assert.Contains(t, lines[2], "Walk dog")
}

func TestAddCommand_BlankName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("add", "   ")
	require.Error(t, err)
	assert.Equal(t, "Name cannot be empty.", err.Error())
	assert.Equal(t, "No tasks.\n", env.mustRun("list"))
}

func TestRenameCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "Walk dog")

	out := env.mustRun("rename", "1", "Walk", "the", "dog")
	assert.Contains(t, out, "Task updated!")
	assert.Contains(t, env.mustRun("list"), "Walk the dog")

	_, err := env.run("rename", "1", " ")
	require.Error(t, err)
	assert.Equal(t, "Name cannot be empty.", err.Error())

	_, err = env.run("rename", "5", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rename task: invalid input for position: out of range")

	_, err = env.run("rename", "first", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestDeleteCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "A")
	env.mustRun("add", "B")

	t.Run("declined", func(t *testing.T) {
		env.answer = false
		out := env.mustRun("delete", "1")
		assert.Contains(t, out, "Cancelled.")
		assert.Equal(t, []string{`Delete "A"?`}, env.prompts)
		assert.Contains(t, env.mustRun("list"), "A")
	})

	t.Run("confirmed", func(t *testing.T) {
		env.answer = true
		env.prompts = nil
		out := env.mustRun("delete", "1")
		assert.Contains(t, out, "Task deleted!")
		assert.Len(t, env.prompts, 1)

		list := env.mustRun("list")
		assert.NotContains(t, list, " A\n")
		assert.Contains(t, list, "B")
	})

	t.Run("forced", func(t *testing.T) {
		env.prompts = nil
		out := env.mustRun("delete", "--force", "1")
		assert.Contains(t, out, "Task deleted!")
		assert.Empty(t, env.prompts)
		assert.Equal(t, "No tasks.\n", env.mustRun("list"))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := env.run("delete", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestResetCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "A")
	env.mustRun("add", "B")

	env.answer = false
	env.mustRun("reset")
	assert.Contains(t, env.mustRun("list"), "B")
	assert.Equal(t, []string{"Delete all 2 tasks and recreate the database?"}, env.prompts)

	out := env.mustRun("reset", "-f")
	assert.Contains(t, out, "Removed 2 tasks.")
	assert.Equal(t, "No tasks.\n", env.mustRun("list"))

	env.mustRun("add", "After")
	assert.Contains(t, env.mustRun("list"), "After")
}

func TestInfoCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "A")

	out := env.mustRun("info")
	assert.Contains(t, out, filepath.Join(env.dataDir, "tasks.db"))
	assert.Contains(t, out, "Schema version: 1")
	assert.Contains(t, out, "Tasks: 1")
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, config.ConfigFilename), []byte("display:\n  title: Chores\n"), 0644))

	out := env.mustRun("config", "--db-filename", "chores.db")
	assert.Contains(t, out, "title: Chores")
	assert.Contains(t, out, "filename: chores.db")
	assert.Contains(t, out, "dir: "+env.dataDir)
}

func TestConfigCommand_Write(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("config", "--write", "--db-filename", "chores.db")
	path := filepath.Join(env.dataDir, config.ConfigFilename)
	assert.Equal(t, "Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filename: chores.db")
	assert.Contains(t, string(data), "0755")

	env.mustRun("add", "From saved config")
	_, err = os.Stat(filepath.Join(env.dataDir, "chores.db"))
	assert.NoError(t, err, "the saved filename is used without the flag")
}

func TestDebugFollowsConfiguration(t *testing.T) {
	t.Cleanup(func() {
		logging.Default().SetDebug(false)
		logging.Default().SetOutput(os.Stderr)
	})
	logging.Default().SetOutput(io.Discard)

	tests := []struct {
		name     string
		env      string
		args     []string
		expected bool
	}{
		{"environment false", "false", []string{"list"}, false},
		{"environment zero", "0", []string{"list"}, false},
		{"environment true", "true", []string{"list"}, true},
		{"flag turns it off", "1", []string{"--debug=false", "list"}, false},
		{"flag turns it on", "false", []string{"--debug", "list"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			t.Setenv(config.EnvDebug, tt.env)
			logging.Default().SetDebug(!tt.expected)

			env.mustRun(tt.args...)
			assert.Equal(t, tt.expected, logging.DebugEnabled())
		})
	}
}

func TestDBFilenameFlag(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("--db-filename", "other.db", "add", "Elsewhere")

	_, err := os.Stat(filepath.Join(env.dataDir, "other.db"))
	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", env.mustRun("list"))
}

func TestInvalidConfiguration(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("--db-filename", "a/b.db", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestDefaultRunsUI(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "A")
	t.Setenv(config.EnvTitle, "Today")

	env.mustRun()
	assert.Equal(t, 1, env.uiCalls)
	assert.Equal(t, "Today", env.uiTitle)
	assert.Equal(t, []string{"A"}, env.uiNames, "list is loaded before the UI starts")

	env.mustRun("ui")
	assert.Equal(t, 2, env.uiCalls)
}

func TestUIStorageError(t *testing.T) {
	env := newTestEnv(t)
	env.uiErr = stderrors.New("disk gone")

	_, err := env.run("ui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run task list")
}

func TestRepositoryFactoryError(t *testing.T) {
	env := newTestEnv(t)
	env.repoFunc = func(cfg *config.Config) (sqlite.Repository, error) {
		return nil, stderrors.New("cannot open")
	}

	_, err := env.run("list")
	require.Error(t, err)
	assert.Equal(t, "failed to open task list: cannot open", err.Error())
}
