package audio

import (
	"math"
)

// CalculatePSNR compares two sample sets of the given bit depth in dB.
// Identical signals give +Inf; mismatched or empty input gives 0.
func CalculatePSNR(original, stego []int, bitDepth int) float64 {
	if len(original) != len(stego) || len(original) == 0 || bitDepth <= 0 {
		return 0.0
	}

	var mse float64
	for i := range original {
		diff := float64(original[i] - stego[i])
		mse += diff * diff
	}
	mse /= float64(len(original))

	if mse == 0 {
		return math.Inf(1)
	}

	// peak of a signed sample, e.g. 32767 for 16-bit
	peak := math.Pow(2, float64(bitDepth-1)) - 1
	if bitDepth == 8 {
		peak = 255
	}
	return 20 * math.Log10(peak/math.Sqrt(mse))
}
