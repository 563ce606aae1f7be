package rocket

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	deg2rad = math.Pi / 180
	halfπ   = math.Pi / 2
)

// norm returns the Euclidean norm of a given vector via mat64/BLAS.
func norm(v []float64) float64 {
	return mat64.Norm(mat64.NewVector(len(v), v), 2)
}

// clamp bounds val to [lo, hi].
func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// nearZero returns whether the value is zero within a general epsilon.
func nearZero(v float64) bool {
	return floats.EqualWithinAbs(v, 0, 1e-12)
}

// finite returns whether every component is a usable real number.
func finite(v []float64) bool {
	for _, val := range v {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
