package agreement_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/concord/agreement"
	"github.com/katalvlaran/concord/weights"
)

// ExampleGwetAC estimates Gwet's AC1 on a tiny two-category table: three
// subjects, two raters each, one split decision.
func ExampleGwetAC() {
	table := [][]float64{
		{2, 0}, // both raters chose category 1
		{0, 2}, // both raters chose category 2
		{1, 1}, // the raters split
	}
	res, err := agreement.GwetAC(table, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Name)
	fmt.Printf("estimate=%.3f stderr=%.3f\n", res.Estimate, res.StdErr)
	fmt.Printf("pa=%.3f pe=%.3f ci=%s\n", res.Pa, res.Pe, res.ConfInt)
	// Output:
	// AC1
	// estimate=0.333 stderr=0.667
	// pa=0.667 pe=0.500 ci=(-2.535,1.000)
}

// ExampleKrippendorffAlpha shows the alpha-specific finite-sample
// correction: pa is ε-adjusted, so it differs from the raw 2/3.
func ExampleKrippendorffAlpha() {
	table := [][]float64{{2, 0}, {0, 2}, {1, 1}}
	res, err := agreement.KrippendorffAlpha(table, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("estimate=%.3f pa=%.3f pe=%.3f\n", res.Estimate, res.Pa, res.Pe)
	// Output:
	// estimate=0.444 pa=0.722 pe=0.500
}

// ExampleFleissKappa_weighted runs a weighted analysis on an ordinal
// 4-point scale: quadratic weights grant partial credit to near misses.
func ExampleFleissKappa_weighted() {
	table := [][]float64{
		{3, 1, 0, 0},
		{0, 3, 1, 0},
		{0, 0, 2, 2},
		{0, 1, 3, 0},
	}
	res, err := agreement.FleissKappa(table, &agreement.Options{
		Weights: agreement.Named(weights.Quadratic),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s: pa=%.3f\n", res.Name, res.Pa)
	// Output:
	// Fleiss Kappa: pa=0.940
}

// ExampleBrennanPrediger_degenerate demonstrates the explicit degenerate
// marker: unanimous raters leave no sampling variance, the p-value is
// undefined, but the Result still reports the agreement itself.
func ExampleBrennanPrediger_degenerate() {
	unanimous := [][]float64{{4, 0}, {4, 0}, {0, 4}}
	res, err := agreement.BrennanPrediger(unanimous, nil)
	fmt.Println(errors.Is(err, agreement.ErrDegenerateVariance))
	fmt.Printf("estimate=%.3f pa=%.3f\n", res.Estimate, res.Pa)
	// Output:
	// true
	// estimate=1.000 pa=1.000
}
