// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the sample conversion rules shared by the codecs and
// the wave package.
//
// Integer storage of every width is divided by the most negative value of
// its type, so decoded data lies in (-1, 1] with inverted polarity. Float
// storage is passed through unchanged.
package pcm

import "math"

// Scale16 is the divisor applied to stored 16-bit samples on read. It
// equals Divisor(16). FromFloat undoes it exactly.
const Scale16 = math.MinInt16

// ToFloat converts a stored 16-bit sample.
func ToFloat(v int16) float64 {
	return float64(v) / Scale16
}

// FromFloat quantizes x back to 16-bit storage, rounding to nearest and
// clamping to the int16 range. NaN maps to 0.
func FromFloat(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * Scale16)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// ToFloats converts a block of stored 16-bit samples.
func ToFloats(in []int16) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = ToFloat(v)
	}
	return out
}

// FromFloats quantizes a block of samples.
func FromFloats(in []float64) []int16 {
	out := make([]int16, len(in))
	for i, x := range in {
		out[i] = FromFloat(x)
	}
	return out
}

// Divisor returns the most negative value of a bitDepth-bit signed
// integer, the divisor applied to stored samples of that width.
func Divisor(bitDepth int) float64 {
	return -FullScale(bitDepth)
}

// FullScale returns the magnitude that maps to 1.0 for signed integer PCM
// of the given bit depth. Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
