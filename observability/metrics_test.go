package observability_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/observability"
)

func TestMetrics_Observe(t *testing.T) {
	m := observability.NewMetrics()

	m.ObserveTraversal(time.Millisecond, 3, 4)
	m.ObserveTraversal(2*time.Millisecond, 1, 1)
	m.ObserveGraph(observability.RoleTraining, core.GraphStats{VertexCount: 5, EdgeCount: 7})
	m.ObserveScores(0.5, 0.25)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Traversals))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Discovered))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Expanded))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.GraphVertices.WithLabelValues(observability.RoleTraining)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.GraphEdges.WithLabelValues(observability.RoleTraining)))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.Precision))
	assert.Equal(t, 0.25, testutil.ToFloat64(m.Recall))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.ObserveTraversal(time.Second, 1, 1)
		m.ObserveGraph(observability.RoleTesting, core.GraphStats{})
		m.ObserveScores(1, 1)
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveScores(1, 0.5)

	path := filepath.Join(t.TempDir(), "socialrec.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "socialrec_recall 0.5"), string(raw))
}
