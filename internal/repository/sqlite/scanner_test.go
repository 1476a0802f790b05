package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}
	return nil
}

// testRows walks a fixed set of scanners.
type testRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (r *testRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *testRows) Scan(dest ...interface{}) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func (r *testRows) Err() error {
	return r.err
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name:     "valid task",
			scanner:  &TestScanner{data: []interface{}{int64(1), "Buy milk"}},
			expected: &Task{ID: 1, Name: "Buy milk"},
		},
		{
			name:     "empty name is scanned as-is",
			scanner:  &TestScanner{data: []interface{}{int64(2), ""}},
			expected: &Task{ID: 2, Name: ""},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, task)
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("no rows gives an empty slice", func(t *testing.T) {
		tasks, err := ScanTasks(&testRows{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("rows keep their order", func(t *testing.T) {
		rows := &testRows{rows: []*TestScanner{
			{data: []interface{}{int64(3), "Walk dog"}},
			{data: []interface{}{int64(5), "Buy milk"}},
		}}
		tasks, err := ScanTasks(rows)
		require.NoError(t, err)
		assert.Equal(t, []*Task{{ID: 3, Name: "Walk dog"}, {ID: 5, Name: "Buy milk"}}, tasks)
	})

	t.Run("scan error aborts", func(t *testing.T) {
		rows := &testRows{rows: []*TestScanner{
			{data: []interface{}{int64(1), "ok"}},
			{err: errors.New("corrupt row")},
		}}
		tasks, err := ScanTasks(rows)
		assert.EqualError(t, err, "corrupt row")
		assert.Nil(t, tasks)
	})

	t.Run("iteration error is returned", func(t *testing.T) {
		rows := &testRows{err: errors.New("interrupted")}
		tasks, err := ScanTasks(rows)
		assert.EqualError(t, err, "interrupted")
		assert.Nil(t, tasks)
	})
}
