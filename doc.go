// Package enhance provides a CPU pixel-enhancement pipeline for RGBA8 images.
//
// # Overview
//
// The pipeline applies five stages in a fixed order. Each stage reads the
// output of the previous one:
//
//  1. Brightness: channel * factor
//  2. Contrast: linear remap around gray level 128
//  3. Saturation: scale distance from per-pixel luma
//  4. Noise reduction (optional): 3x3 per-channel median
//  5. Sharpness: 3x3 Laplacian-style convolution scaled by a factor
//
// Alpha is never modified. Stages 4 and 5 leave the 1-pixel image border as
// the previous stage produced it.
//
// # Quick Start
//
//	buf := enhance.FromImage(img)
//	out, err := enhance.Enhance(buf, enhance.WithSaturation(1.5))
//	if err != nil {
//	    return err
//	}
//	png.Encode(w, out.NRGBA())
//
// # Concurrency
//
// Enhance allocates its working memory per call and is safe for concurrent
// use. An [Enhancer] reuses a scratch buffer across calls and must be
// confined to one goroutine at a time. [EnhanceAll] fans a batch out over a
// bounded set of workers, each owning its own Enhancer.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// records with per-stage timings.
package enhance
