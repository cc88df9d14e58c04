// Package evaluate scores a recommendation graph against a held-out ground
// truth graph by exact edge-set comparison.
//
// Edges match only when both endpoint identities are equal under ==; the
// two graphs must have been built from the same identity space (see
// package edgelist) or the intersection is vacuously empty.
//
// An empty denominator is defined, not an error: it yields 0.0.
package evaluate

import "github.com/katalvlaran/socialgraph/core"

// Report summarizes one evaluation.
type Report struct {
	Recommended   int     `json:"recommended"`    // |E(H)|
	Expected      int     `json:"expected"`       // |E(T)|
	TruePositives int     `json:"true_positives"` // |E(H) ∩ E(T)|
	Precision     float64 `json:"precision"`
	Recall        float64 `json:"recall"`
	F1            float64 `json:"f1"`
}

// Precision returns |E(H) ∩ E(T)| / |E(H)|, or 0.0 when H has no edges.
func Precision[V comparable](h, test *core.Graph[V]) float64 {
	rec := h.EdgeSet()
	return ratio(rec.Intersect(test.EdgeSet()).Len(), rec.Len())
}

// Recall returns |E(H) ∩ E(T)| / |E(T)|, or 0.0 when T has no edges.
func Recall[V comparable](h, test *core.Graph[V]) float64 {
	truth := test.EdgeSet()
	return ratio(h.EdgeSet().Intersect(truth).Len(), truth.Len())
}

// Evaluate materializes both edge sets once and derives every score.
// F1 is the harmonic mean of precision and recall, 0.0 when both are 0.
func Evaluate[V comparable](h, test *core.Graph[V]) Report {
	rec, truth := h.EdgeSet(), test.EdgeSet()
	tp := rec.Intersect(truth).Len()

	r := Report{
		Recommended:   rec.Len(),
		Expected:      truth.Len(),
		TruePositives: tp,
		Precision:     ratio(tp, rec.Len()),
		Recall:        ratio(tp, truth.Len()),
	}
	if sum := r.Precision + r.Recall; sum > 0 {
		r.F1 = 2 * r.Precision * r.Recall / sum
	}

	return r
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0.0
	}

	return float64(num) / float64(den)
}
