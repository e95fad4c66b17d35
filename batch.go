package enhance

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// EnhanceAll enhances every buffer in bufs with s and returns the results in
// the same order. At most workers images are processed concurrently; if
// workers <= 0, GOMAXPROCS is used. Each worker owns its own Enhancer, so
// scratch memory is never shared between concurrent calls.
//
// Settings are validated once before any work starts. The first failure
// cancels scheduling of the remaining images and is returned wrapped with the
// index of the offending buffer. Cancelling ctx has the same effect; an image
// that has already started is always run to completion.
func EnhanceAll(ctx context.Context, bufs []*PixelBuffer, s Settings, workers int) ([]*PixelBuffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(bufs) {
		workers = max(len(bufs), 1)
	}

	log := Logger()
	start := time.Now()
	log.Info("enhance: batch started", "images", len(bufs), "workers", workers)

	// Free list of per-worker enhancers. SetLimit guarantees no more than
	// workers goroutines wait on it.
	free := make(chan *Enhancer, workers)
	for range workers {
		free <- NewEnhancer()
	}

	results := make([]*PixelBuffer, len(bufs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, buf := range bufs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e := <-free
			defer func() { free <- e }()

			out, err := e.Enhance(buf, s)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// The loop may have stopped early on cancellation with no task failing.
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("enhance: batch stopped", "images", len(bufs), "err", err)
		return nil, err
	}

	log.Info("enhance: batch done", "images", len(bufs), "elapsed", time.Since(start))
	return results, nil
}
