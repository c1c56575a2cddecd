package everyuuid

import "testing"

func Benchmark_FromIndex(b *testing.B) {
	index := Index{Hi: 0x18ee90ff6, Lo: 0xc373e0ee4e3f0ad2}
	for x := 0; x < b.N; x++ {
		_, _ = FromIndex(index.Add(uint64(x)))
	}
}

func Benchmark_IndexToIdentifier(b *testing.B) {
	for x := 0; x < b.N; x++ {
		_, _ = IndexToIdentifier(IndexFromUint64(uint64(x)))
	}
}

func Benchmark_IdentifierToIndex(b *testing.B) {
	id, err := IndexToIdentifier(IndexFromUint64(42))
	if err != nil {
		b.Errorf("index to identifier error: %v", err)
		b.FailNow()
	}
	b.ResetTimer()
	for x := 0; x < b.N; x++ {
		_, _ = IdentifierToIndex(id)
	}
}

func Benchmark_RandomIdentifier(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = RandomIdentifier()
		}
	})
}

func Benchmark_Probe_Observe(b *testing.B) {
	p := NewProbe(ProbeOptions{})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			p.Observe(RandomIdentifier())
		}
	})
}
