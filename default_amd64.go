//go:build amd64

package crcgo

import "golang.org/x/sys/cpu"

func init() {
	// Wide out-of-order cores keep eight interleaved lookup chains busy;
	// AVX2 support is a reasonable proxy for that class of CPU. Calibrate
	// still replaces this hint with a measured choice.
	if cpu.X86.HasAVX2 {
		defaultStrategy = Interleave8
	}
}
