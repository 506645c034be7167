package crcgo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ConsumeParallel feeds the same buffer to several engines concurrently,
// one goroutine per engine. Consuming never mutates the input, and each
// engine owns its own register and table, so no coordination is needed
// beyond the fan-out. Typical use is computing several CRC variants over
// one large block in a single pass.
//
// Engines that already hold partial state keep streaming as if Consume had
// been called on each of them directly. The context only gates goroutine
// startup; a consume that has begun always runs to completion.
func ConsumeParallel(ctx context.Context, data []byte, engines ...*Crc) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range engines {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Consume(data)
			return nil
		})
	}
	return g.Wait()
}
