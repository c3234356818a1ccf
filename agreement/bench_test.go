package agreement_test

import (
	"testing"

	"github.com/katalvlaran/concord/agreement"
	"github.com/katalvlaran/concord/weights"
)

// benchTable builds an n×q table with a deterministic mix of unanimous
// and split subjects.
func benchTable(n, q, raters int) [][]float64 {
	table := make([][]float64, n)
	for i := range table {
		row := make([]float64, q)
		switch i % 3 {
		case 0: // unanimous
			row[i%q] = float64(raters)
		case 1: // two-way split
			row[i%q] = float64(raters - 1)
			row[(i+1)%q] = 1
		default: // spread
			for r := 0; r < raters; r++ {
				row[(i+r)%q]++
			}
		}
		table[i] = row
	}

	return table
}

func BenchmarkGwetAC_N1000_Q5(b *testing.B) {
	table := benchTable(1000, 5, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := agreement.GwetAC(table, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFleissKappa_Weighted_N1000_Q5(b *testing.B) {
	table := benchTable(1000, 5, 4)
	opts := &agreement.Options{Weights: agreement.Named(weights.Quadratic)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := agreement.FleissKappa(table, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKrippendorffAlpha_N1000_Q5(b *testing.B) {
	table := benchTable(1000, 5, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := agreement.KrippendorffAlpha(table, nil); err != nil {
			b.Fatal(err)
		}
	}
}
