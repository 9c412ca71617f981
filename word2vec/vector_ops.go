package word2vec

import (
	"errors"
	"math"
)

/*
VectorAdd adds two vectors element-wise

Parameters:
a, b: []float64 - The vectors to add
*/

func VectorAdd(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, errors.New("vector dimensions do not match")
	}

	result := make([]float64, len(a))
	for i := range a {
		result[i] = a[i] + b[i]
	}
	return result, nil
}

/*
VectorSubtract subtracts vector b from vector a element-wise

Parameters:
a, b: []float64 - The vectors to subtract
*/

func VectorSubtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, errors.New("vector dimensions do not match")
	}

	result := make([]float64, len(a))
	for i := range a {
		result[i] = a[i] - b[i]
	}
	return result, nil
}

/*
NormalizeVector normalizes a vector to unit length

Parameters:
v: []float64 - The vector to normalize
*/

func NormalizeVector(v []float64) {
	var norm float64
	for _, val := range v {
		norm += val * val
	}
	norm = math.Sqrt(norm)

	if norm > 0 {
		for i := range v {
			v[i] /= norm
		}
	}
}

/*
DotProduct computes the dot product of two vectors

Parameters:
a, b: []float64 - The vectors to compute the dot product of
*/

func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.New("vector dimensions do not match")
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	return dot, nil
}

/*
VectorMagnitude computes the magnitude (length) of a vector

Parameters:
v: []float64 - The vector to compute the magnitude of
*/

func VectorMagnitude(v []float64) float64 {
	var sum float64
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

/*
ScalarMultiply multiplies a vector by a scalar value

Parameters:
v: []float64 - The vector to multiply
scalar: float64 - The scalar value to multiply the vector by
*/

func ScalarMultiply(v []float64, scalar float64) []float64 {
	result := make([]float64, len(v))
	for i, val := range v {
		result[i] = val * scalar
	}
	return result
}

/*
MeanVector computes the element-wise mean of a set of equal-length vectors.

Returns a zero vector of the given dimension when the set is empty.
*/

func MeanVector(vectors [][]float64, dimensions int) []float64 {
	result := make([]float64, dimensions)
	if len(vectors) == 0 {
		return result
	}

	for _, v := range vectors {
		for i := range v {
			result[i] += v[i]
		}
	}

	n := float64(len(vectors))
	for i := range result {
		result[i] /= n
	}
	return result
}

/*
Sigmoid computes the logistic function 1/(1+e^-x).

Saturates instead of overflowing for large-magnitude inputs.
*/

func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}
