package chroma

import "testing"

func BenchmarkAdapt(b *testing.B) {
	conv := NewConverter()
	red := XYZ(0.4124564, 0.2126729, 0.0193339)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Adapt(&red, &D65); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkXYZToLab(b *testing.B) {
	conv := NewConverter()
	red := XYZ(0.4124564, 0.2126729, 0.0193339)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = conv.XYZToLab(red, D65)
	}
}

func BenchmarkRGBToLab(b *testing.B) {
	conv := NewConverter()
	rgb := RGB(0.8, 0.1, 0.3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = conv.RGBToLab(rgb)
	}
}

func BenchmarkAdaptationMatrix(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = AdaptationMatrix(Bradford, D65, D50)
	}
}
