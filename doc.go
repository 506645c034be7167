// Package crcgo computes CRC checksums of 16, 32 and 64 bits over byte
// streams, with configurable polynomial, seed, output XOR and bit
// reflection, plus table-driven word-parallel processing.
//
// # Quick Start
//
// Use a preset engine and feed it bytes:
//
//	c := crcgo.NewCRC32()
//	c.Consume([]byte("123456789"))
//	fmt.Printf("%08X\n", c.Sum64()) // CBF43926
//
// Or describe a custom variant:
//
//	c, err := crcgo.New(16, crcgo.Params{
//	    Polynomial:    0x1021,
//	    Init:          0xFFFF,
//	    ReflectInput:  false,
//	    ReflectOutput: false,
//	})
//
// # Consumption Strategies
//
// Every engine carries one 32x256 lookup table and five interchangeable
// ways of folding input through it: byte-at-a-time, or 1, 2, 4 or 8
// little-endian 32-bit words per round. Deeper interleaving shortens the
// serial dependency chain between table lookups; which depth wins depends
// on the host CPU. All strategies produce bit-identical checksums.
//
// Calibrate measures all five against a synthetic buffer and keeps the
// fastest:
//
//	winner, err := c.Calibrate()
//
// # Streaming
//
// Consume is a streaming fold: chunk boundaries never affect the result,
// and Sum64 is non-destructive, so intermediate values can be read at any
// point. Engines implement io.Writer for use with io.Copy:
//
//	c := crcgo.NewCRC64()
//	io.Copy(c, file)
//	sum := c.Sum64()
//
// # Concurrency
//
// A single engine must not be mutated concurrently. Independent engines
// are fully isolated; ConsumeParallel runs several of them over one shared
// buffer in a single pass.
//
// # Scope
//
// This is a checksum, not a cryptographic hash: CRCs detect accidental
// corruption and offer no collision resistance against an adversary.
package crcgo
