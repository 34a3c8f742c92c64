package format

import "fmt"

// FormatPercent renders a 0..100 value with two decimals, e.g. "25.00%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatMB renders a mebibyte count as "N MB".
func FormatMB(mib uint64) string {
	return fmt.Sprintf("%d MB", mib)
}

// Clamp01 limits f to the range 0..1.
func Clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
