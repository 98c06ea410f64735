package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_ConfigFile(t *testing.T) {
	lab := setupCLI(t)
	path := filepath.Join(t.TempDir(), "lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_size: 1000\niterations: 20\n"), 0644))

	_, err := executeCommand(rootCmd, "run", "--config", path, "--plain")
	require.NoError(t, err)
	assert.Equal(t, []int{100, 500, 1000}, lab.sizes)
	assert.Equal(t, 20, lab.iterations)
}

func TestRoot_FlagOverridesConfigFile(t *testing.T) {
	lab := setupCLI(t)
	require.NoError(t, os.WriteFile("config.yaml", []byte("iterations: 20\n"), 0644))

	_, err := executeCommand(rootCmd, "run", "--iterations", "5", "--sizes", "100", "--plain")
	require.NoError(t, err)
	assert.Equal(t, 5, lab.iterations)
}

func TestRoot_MissingConfigFile(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(rootCmd, "sizes", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestRoot_LogFile(t *testing.T) {
	setupCLI(t)
	logPath := filepath.Join(t.TempDir(), "algolab.log")

	_, err := executeCommand(rootCmd, "run", "--sizes", "100", "--plain", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"benchmark complete"`)
}

func TestRoot_LogFormatJSON(t *testing.T) {
	setupCLI(t)

	out, err := executeCommand(rootCmd, "run", "--sizes", "100", "--plain", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"msg":"starting benchmark"`)

	_, err = executeCommand(rootCmd, "sizes", "--log-format", "xml")
	assert.ErrorContains(t, err, "LogFormat must be one of")
}

func TestRoot_MetricsServerStopsAfterCommand(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(rootCmd, "sizes", "--metrics-addr", "127.0.0.1:39127")
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestRoot_InvalidMetricsAddr(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(rootCmd, "sizes", "--metrics-addr", "not an address")
	assert.Error(t, err)
}

func TestRecorderHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, req)
	body, _ := io.ReadAll(rec.Result().Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "algolab_")
}
