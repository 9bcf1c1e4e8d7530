package vecmath

import (
	"testing"
)

func benchSlices(n int) ([]float64, []float64) {
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i%31) * 0.25
		b[i] = float64(i%17) * 0.5
	}
	return a, b
}

func BenchmarkDotProduct64(b *testing.B) {
	x, y := benchSlices(64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DotProduct(x, y)
	}
}

func BenchmarkDotProduct1024(b *testing.B) {
	x, y := benchSlices(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DotProduct(x, y)
	}
}

func BenchmarkMulSpectrum1024(b *testing.B) {
	x := make([]complex128, 1024)
	y := make([]complex128, 1024)
	dst := make([]complex128, 1024)
	for i := range x {
		x[i] = complex(float64(i%13), float64(i%7))
		y[i] = complex(float64(i%5), -float64(i%11))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MulSpectrum(dst, x, y)
	}
}
