package crcgo_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/hupe1980/crcgo"
)

// Example_preset demonstrates the one-shot use of a preset engine.
func Example_preset() {
	c := crcgo.NewCRC32()
	c.Consume([]byte("123456789"))

	fmt.Printf("%08X\n", c.Sum64())
	// Output: CBF43926
}

// Example_customParams demonstrates describing a CRC variant by hand.
func Example_customParams() {
	// CRC-16/CCITT-FALSE: forward polynomial, all-ones seed.
	c, err := crcgo.New(16, crcgo.Params{
		Polynomial: 0x1021,
		Init:       0xFFFF,
	})
	if err != nil {
		log.Fatal(err)
	}

	c.Consume([]byte("123456789"))
	fmt.Printf("%04X\n", c.Sum64())
	// Output: 29B1
}

// Example_streaming demonstrates that chunk boundaries never change the
// result and that engines plug into io.Copy.
func Example_streaming() {
	c := crcgo.NewCRC64()
	if _, err := io.Copy(c, bytes.NewReader([]byte("123456789"))); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%016X\n", c.Sum64())
	// Output: 995DC9BBDF1939FA
}

// Example_calibrate demonstrates picking the fastest consumption strategy
// for the host machine.
func Example_calibrate() {
	c := crcgo.NewCRC32()

	winner, err := c.Calibrate(func(o *crcgo.CalibrateOptions) {
		o.BufferSize = 4096
		o.Repeats = 8
	})
	if err != nil {
		log.Fatal(err)
	}

	// The winner is machine-dependent; the checksum is not.
	_ = winner
	c.Consume([]byte("123456789"))
	fmt.Printf("%08X\n", c.Sum64())
	// Output: CBF43926
}

// Example_consumeParallel demonstrates checksumming one buffer with
// several CRC variants in a single pass.
func Example_consumeParallel() {
	data := []byte("123456789")

	crc32 := crcgo.NewCRC32()
	crc64 := crcgo.NewCRC64()
	if err := crcgo.ConsumeParallel(context.Background(), data, crc32, crc64); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%08X %016X\n", crc32.Sum64(), crc64.Sum64())
	// Output: CBF43926 995DC9BBDF1939FA
}
