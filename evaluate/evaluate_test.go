package evaluate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/evaluate"
	"github.com/katalvlaran/socialgraph/recommend"
)

type edge = core.Edge[string]

func TestPrecisionRecall_Subset(t *testing.T) {
	h := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "b", To: "a"})
	test := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "b", To: "a"}, edge{From: "c", To: "d"}, edge{From: "d", To: "e"})

	assert.Equal(t, 1.0, evaluate.Precision(h, test))
	assert.Equal(t, 0.5, evaluate.Recall(h, test))
}

func TestPrecisionRecall_Superset(t *testing.T) {
	h := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "b", To: "a"}, edge{From: "a", To: "c"}, edge{From: "c", To: "a"})
	test := core.FromEdges(edge{From: "a", To: "c"})

	assert.Equal(t, 0.25, evaluate.Precision(h, test))
	assert.Equal(t, 1.0, evaluate.Recall(h, test))
}

func TestPrecisionRecall_EmptyDenominators(t *testing.T) {
	empty := core.NewGraph[string]()
	empty.AddVertex("lonely")
	full := core.FromEdges(edge{From: "a", To: "b"})

	assert.Equal(t, 0.0, evaluate.Precision(empty, full))
	assert.Equal(t, 0.0, evaluate.Recall(full, empty))
	assert.Equal(t, 0.0, evaluate.Precision(empty, empty))
	assert.Equal(t, 0.0, evaluate.Recall(empty, empty))
}

func TestPrecisionRecall_Disjoint(t *testing.T) {
	h := core.FromEdges(edge{From: "a", To: "b"})
	test := core.FromEdges(edge{From: "b", To: "a"})

	assert.Equal(t, 0.0, evaluate.Precision(h, test))
	assert.Equal(t, 0.0, evaluate.Recall(h, test))
	assert.Equal(t, evaluate.Report{Recommended: 1, Expected: 1}, evaluate.Evaluate(h, test))
}

func TestEvaluate_Report(t *testing.T) {
	h := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "b", To: "a"}, edge{From: "a", To: "c"}, edge{From: "c", To: "a"})
	test := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "x", To: "y"})

	r := evaluate.Evaluate(h, test)
	assert.Equal(t, 4, r.Recommended)
	assert.Equal(t, 2, r.Expected)
	assert.Equal(t, 1, r.TruePositives)
	assert.Equal(t, 0.25, r.Precision)
	assert.Equal(t, 0.5, r.Recall)
	assert.InDelta(t, 1.0/3.0, r.F1, 1e-12)
	assert.Equal(t, evaluate.Precision(h, test), r.Precision)
	assert.Equal(t, evaluate.Recall(h, test), r.Recall)
}

// TestEvaluate_EndToEnd trains on one half of a friendship ring and scores
// against the other half.
func TestEvaluate_EndToEnd(t *testing.T) {
	train := core.FromEdges(edge{From: "a", To: "b"}, edge{From: "b", To: "c"})
	test := core.FromEdges(edge{From: "a", To: "c"}, edge{From: "c", To: "a"}, edge{From: "d", To: "a"})

	h, err := recommend.All(context.Background(), train, 2)
	require.NoError(t, err)

	r := evaluate.Evaluate(h, test)
	// H = {ab, ba, ac, ca, bc, cb}; hits = {ac, ca}
	assert.Equal(t, 6, r.Recommended)
	assert.Equal(t, 2, r.TruePositives)
	assert.InDelta(t, 2.0/6.0, r.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, r.Recall, 1e-12)
}
