package benchmark

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() Run {
	return NewRun(10, []ResultRow{
		{DataSize: 100, Iterative: 0.001, Recursive: 0.0021, Sort: 0.0105},
		{DataSize: 10000, Iterative: 0.02, Recursive: 0.5, Sort: 0.9, RecursiveEstimated: true},
	})
}

func TestNewRun(t *testing.T) {
	run := testRun()
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.Timestamp.IsZero())
	assert.True(t, run.Estimated())
	assert.False(t, NewRun(1, nil).Estimated())
	assert.NotEqual(t, run.ID, testRun().ID)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testRun()))

	var decoded Run
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Rows, 2)
	assert.Contains(t, buf.String(), `"recursive_estimated": true`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testRun()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data_size,iterative_ms,recursive_ms,sort_ms,recursive_estimated", lines[0])
	assert.Equal(t, "100,0.0010,0.0021,0.0105,false", lines[1])
	assert.Equal(t, "10000,0.0200,0.5000,0.9000,true", lines[2])
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "nested", "run.json")
	require.NoError(t, ExportFile(jsonPath, testRun()))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	csvPath := filepath.Join(dir, "run.CSV")
	require.NoError(t, ExportFile(csvPath, testRun()))
	data, err = os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "data_size,"))

	// Exporting again replaces the file instead of appending.
	require.NoError(t, ExportFile(csvPath, NewRun(1, nil)))
	data, err = os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}
