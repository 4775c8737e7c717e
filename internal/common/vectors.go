package common

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
// The boolean is false when the vectors are empty, differ in length, or one of them has zero magnitude.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, sumA, sumB float64
	for i := range a {
		dot += a[i] * b[i]
		sumA += a[i] * a[i]
		sumB += b[i] * b[i]
	}

	if sumA == 0 || sumB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(sumA) * math.Sqrt(sumB)), true
}

// Truncate returns the first dims components of v, or v itself when it is not longer.
func Truncate(v []float64, dims int) []float64 {
	if dims > 0 && len(v) > dims {
		return v[:dims]
	}
	return v
}

// FitDimensions returns v with exactly dims components: longer vectors are truncated and
// shorter ones are padded with zeros. Padding leaves cosine similarity unchanged.
func FitDimensions(v []float64, dims int) []float64 {
	if len(v) >= dims {
		return Truncate(v, dims)
	}
	out := make([]float64, dims)
	copy(out, v)
	return out
}

// ToFloat32 converts v to single precision, keeping at most dims components.
// A non-positive dims keeps every component.
func ToFloat32(v []float64, dims int) []float32 {
	n := len(v)
	if dims > 0 && n > dims {
		n = dims
	}
	out := make([]float32, n)
	for i := range n {
		out[i] = float32(v[i])
	}
	return out
}

// ToFloat64 widens a stored single precision vector.
func ToFloat64(v []float32) []float64 {
	if len(v) == 0 {
		return nil
	}
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
