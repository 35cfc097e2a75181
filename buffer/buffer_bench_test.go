package buffer

import (
	"strconv"
	"testing"
)

func BenchmarkClone(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, n := range sizes {
		src := New(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for i := 0; i < b.N; i++ {
				c := src.Clone()
				c.Release()
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	x := New(4096)
	y := New(4096)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkPoolGetPut(b *testing.B) {
	p := NewPool()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf := p.Get(1024)
		p.Put(buf)
	}
}
