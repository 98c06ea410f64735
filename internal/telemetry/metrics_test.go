package telemetry

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observer(t *testing.T) {
	r := NewRecorder()

	r.ObserveKernel(algorithms.Iterative, 100, 0.01)
	r.ObserveKernel(algorithms.Sort, 100, 0.2)
	r.RowCompleted(benchmark.ResultRow{DataSize: 100}, 50)
	r.RowCompleted(benchmark.ResultRow{DataSize: 10000, RecursiveEstimated: true}, 100)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.RowsTotal))
	assert.Equal(t, 100.0, testutil.ToFloat64(r.RunProgress))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Estimated))
	assert.Equal(t, 2, testutil.CollectAndCount(r.KernelDuration))

	r.RunFailed(errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsFailed))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.RunProgress))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.RowCompleted(benchmark.ResultRow{DataSize: 100}, 100)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "algolab_rows_total 1")
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	// Private registries allow several recorders in one process.
	a := NewRecorder()
	b := NewRecorder()
	a.RowsTotal.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RowsTotal))
}
