package sysmon

import (
	"math"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMean_PropertyBased checks that Mean is the arithmetic mean of any
// non-empty list of core percentages and stays within the list's bounds.
func TestMean_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("mean times count equals sum", prop.ForAll(
		func(values []float64) bool {
			if len(values) == 0 {
				return Mean(values) == 0
			}
			var sum float64
			for _, v := range values {
				sum += v
			}
			return math.Abs(Mean(values)*float64(len(values))-sum) < 1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 100)),
	))

	properties.Property("mean lies between min and max", prop.ForAll(
		func(values []float64) bool {
			if len(values) == 0 {
				return true
			}
			m := Mean(values)
			return m >= slices.Min(values)-1e-9 && m <= slices.Max(values)+1e-9
		},
		gen.SliceOf(gen.Float64Range(0, 100)),
	))

	properties.TestingRun(t)
}

// TestBytesToMiB_PropertyBased checks truncating division for arbitrary byte counts.
func TestBytesToMiB_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("result is the floor of bytes / MiB", prop.ForAll(
		func(b uint64) bool {
			mib := BytesToMiB(b)
			return mib*BytesPerMiB <= b && b-mib*BytesPerMiB < BytesPerMiB
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
