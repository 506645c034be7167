package crcgo

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchmarkConsume(b *testing.B, c *Crc, s Strategy, size int) {
	b.Helper()
	b.ReportAllocs()

	rng := rand.New(rand.NewSource(1))
	data := make([]byte, size)
	rng.Read(data)
	b.SetBytes(int64(size))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ConsumeWith(data, s)
	}
	_ = c.Sum64()
}

func BenchmarkConsumeStrategies(b *testing.B) {
	for _, s := range allStrategies {
		for _, size := range []int{64, 4096, 1 << 20} {
			b.Run(fmt.Sprintf("CRC32/%s/%d", s, size), func(b *testing.B) {
				benchmarkConsume(b, NewCRC32(), s, size)
			})
		}
	}
}

func BenchmarkConsumePresets(b *testing.B) {
	engines := map[string]*Crc{
		"CRC16":      NewCRC16(),
		"CRC16CCITT": NewCRC16CCITT(),
		"CRC32":      NewCRC32(),
		"CRC64":      NewCRC64(),
		"CRC64ISO":   NewCRC64ISO(),
	}
	for name, c := range engines {
		b.Run(name, func(b *testing.B) {
			benchmarkConsume(b, c, c.Strategy(), 1<<20)
		})
	}
}

func BenchmarkTableBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewCRC64()
	}
}
