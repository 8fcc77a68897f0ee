package geom

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatNumber formats x for tooltips: integers without decimals, other
// numbers with at most four decimals, thousands separated by commas.
func FormatNumber(x float64) string {
	return formatFixed(x, 4)
}

func formatFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	p := math.Pow10(digits)
	x = math.Round(x*p) / p
	if x == 0 {
		x = 0 // no "-0"
	}
	return humanize.CommafWithDigits(x, digits)
}

// TickFormat returns the formatter for tick labels of an axis spanning dom.
// The number of decimals is the one needed to tell ten evenly stepped ticks
// apart. Unset and degenerate domains use FormatNumber.
func TickFormat(dom Interval) Formatter {
	step := tickStep(dom.Min, dom.Max, 10)
	if math.IsNaN(step) {
		return FormatNumber
	}
	digits := int(math.Max(0, -math.Floor(math.Log10(step))))
	return func(x float64) string { return formatFixed(x, digits) }
}

// tickStep returns the 1, 2 or 5 times a power of ten step which divides
// [min,max] into about n intervals. It returns NaN for an unset or degenerate
// interval.
func tickStep(min, max float64, n int) float64 {
	span := math.Abs(max - min)
	if math.IsNaN(span) || span == 0 || math.IsInf(span, 0) {
		return math.NaN()
	}
	step0 := span / float64(n)
	step := math.Pow10(int(math.Floor(math.Log10(step0))))
	switch e := step0 / step; {
	case e >= math.Sqrt(50):
		step *= 10
	case e >= math.Sqrt(10):
		step *= 5
	case e >= math.Sqrt(2):
		step *= 2
	}
	return step
}
