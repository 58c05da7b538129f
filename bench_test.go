package flaterror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/flaterror"
)

func BenchmarkFlattenSingle(b *testing.B) {
	err := errors.New("file not found")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = flaterror.Flatten(err)
	}
}

func BenchmarkFlattenChain(b *testing.B) {
	err := layered(layerMessages(16)...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flaterror.Flatten(err)
	}
}

func BenchmarkClone(b *testing.B) {
	flat := flaterror.Flatten(layered(layerMessages(16)...))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flat.Clone()
	}
}

func BenchmarkEqual(b *testing.B) {
	x := flaterror.Flatten(layered(layerMessages(16)...))
	y := x.Clone()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Equal(y)
	}
}

func BenchmarkFormatDetail(b *testing.B) {
	flat := flaterror.Flatten(layered(layerMessages(8)...))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%+v", flat)
	}
}
