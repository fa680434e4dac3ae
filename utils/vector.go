package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	if len(dataO) != 0 {
		v = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		v = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) DataP() []float64         { return v.V.RawVector().Data }

func (v Vector) Copy() Vector {
	data := make([]float64, v.Len())
	copy(data, v.DataP())
	return NewVector(v.Len(), data)
}

// Chainable methods (change the receiver's backing data)
func (v Vector) Set(val float64) Vector {
	data := v.DataP()
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	data := v.DataP()
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScaled(a float64, w Vector) Vector {
	var (
		data  = v.DataP()
		wData = w.DataP()
	)
	for i := range data {
		data[i] += a * wData[i]
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	data := v.DataP()
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	data := v.DataP()
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	data := v.DataP()
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP() {
		sum += val
	}
	return
}
