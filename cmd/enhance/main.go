// Command enhance applies the enhancement pipeline to image files.
//
// Usage:
//
//	enhance [flags] image...
//
// Each input is decoded, optionally capped to -max pixels on its longer
// side, enhanced, and written next to the input (or into -o) as
// <name>_enhanced.<ext>. Inputs that would produce the same output path
// (for example a/x.png and b/x.png with -o) are not overwritten: the first
// one to finish decoding wins and the others are reported as failures.
// Settings come from the defaults, then a -preset YAML
// file, then any setting flags given explicitly on the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/enhance"
	"github.com/gogpu/enhance/internal/codec"
	"github.com/gogpu/enhance/internal/config"
)

type options struct {
	outDir   string
	preset   string
	format   string
	suffix   string
	maxDim   int
	quality  int
	workers  int
	verbose  bool
	dumpOnly bool
	settings enhance.Settings
}

func main() {
	opts, inputs, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	enhance.SetLogger(log)

	if err := run(context.Background(), log, opts, inputs); err != nil {
		log.Error("enhance failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, []string, error) {
	var (
		opts options
		s    = enhance.DefaultSettings()
	)

	fs.StringVar(&opts.outDir, "o", "", "output directory (default: next to each input); inputs with the same base name clash and only the first is written")
	fs.StringVar(&opts.preset, "preset", "", "YAML preset with settings overrides")
	fs.StringVar(&opts.format, "format", "", "output format: png, jpeg, bmp, tiff, gif (default: same as input, png for webp)")
	fs.StringVar(&opts.suffix, "suffix", "_enhanced", "suffix added to output file names")
	fs.IntVar(&opts.maxDim, "max", 4096, "cap the longer image side to this many pixels before enhancing (0 = no cap)")
	fs.IntVar(&opts.quality, "quality", codec.DefaultJPEGQuality, "JPEG quality 1-100")
	fs.IntVar(&opts.workers, "j", runtime.GOMAXPROCS(0), "number of images processed concurrently")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging with per-stage timings")
	fs.BoolVar(&opts.dumpOnly, "print-settings", false, "print the resolved settings as YAML and exit")

	var flagSettings enhance.Settings
	fs.Float64Var(&flagSettings.Brightness, "brightness", s.Brightness, "brightness gain")
	fs.Float64Var(&flagSettings.Contrast, "contrast", s.Contrast, "contrast slope around gray 128")
	fs.Float64Var(&flagSettings.Saturation, "saturation", s.Saturation, "saturation gain around luma")
	fs.Float64Var(&flagSettings.Sharpness, "sharpness", s.Sharpness, "sharpening output scale")
	fs.BoolVar(&flagSettings.NoiseReduction, "denoise", s.NoiseReduction, "apply the 3x3 median filter")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: enhance [flags] image...\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	if opts.preset != "" {
		p, err := config.Load(opts.preset)
		if err != nil {
			return opts, nil, err
		}
		s = s.Merge(p)
	}

	// Flags given explicitly win over the preset.
	var explicit enhance.Patch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "brightness":
			explicit.Brightness = &flagSettings.Brightness
		case "contrast":
			explicit.Contrast = &flagSettings.Contrast
		case "saturation":
			explicit.Saturation = &flagSettings.Saturation
		case "sharpness":
			explicit.Sharpness = &flagSettings.Sharpness
		case "denoise":
			explicit.NoiseReduction = &flagSettings.NoiseReduction
		}
	})
	opts.settings = s.Merge(explicit)

	if err := opts.settings.Validate(); err != nil {
		return opts, nil, err
	}
	if opts.format != "" && !codec.ParseFormat(opts.format).CanEncode() {
		return opts, nil, fmt.Errorf("%w: %q", codec.ErrUnsupportedFormat, opts.format)
	}
	if opts.maxDim < 0 {
		return opts, nil, fmt.Errorf("-max must be >= 0, got %d", opts.maxDim)
	}
	if !opts.dumpOnly && fs.NArg() == 0 {
		fs.Usage()
		return opts, nil, errors.New("no input images")
	}
	return opts, fs.Args(), nil
}

func run(ctx context.Context, log *slog.Logger, opts options, inputs []string) error {
	if opts.dumpOnly {
		data, err := config.Marshal(opts.settings)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	workers := max(opts.workers, 1)

	// Free list of per-worker enhancers; scratch memory is never shared.
	free := make(chan *enhance.Enhancer, workers)
	for range workers {
		free <- enhance.NewEnhancer()
	}

	claims := newOutputClaims()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var failed []string
	failures := make(chan string, len(inputs))
	for _, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			e := <-free
			defer func() { free <- e }()

			out, err := processFile(log, e, claims, opts, in)
			if err != nil {
				// Keep going: one bad file should not abort the batch.
				log.Warn("skipping image", "input", in, "err", err)
				failures <- in
				return nil
			}
			log.Info("enhanced", "input", in, "output", out)
			return nil
		})
	}
	err := g.Wait()
	close(failures)
	for in := range failures {
		failed = append(failed, in)
	}
	if err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d images failed: %s", len(failed), len(inputs), strings.Join(failed, ", "))
	}
	return nil
}

func processFile(log *slog.Logger, e *enhance.Enhancer, claims *outputClaims, opts options, in string) (string, error) {
	start := time.Now()

	buf, srcFormat, err := codec.Load(in)
	if err != nil {
		return "", err
	}

	if opts.maxDim > 0 {
		scaled, err := buf.Downscale(opts.maxDim, opts.maxDim)
		if err != nil {
			return "", err
		}
		if scaled != buf {
			log.Debug("downscaled", "input", in,
				"from", fmt.Sprintf("%dx%d", buf.Width, buf.Height),
				"to", fmt.Sprintf("%dx%d", scaled.Width, scaled.Height))
			buf = scaled
		}
	}

	if err := e.EnhanceInPlace(buf, opts.settings); err != nil {
		return "", err
	}

	out := outputPath(in, opts, srcFormat)
	if err := claims.claim(out, in); err != nil {
		return "", err
	}
	if err := codec.Save(out, buf, codec.Options{Quality: opts.quality}); err != nil {
		return "", err
	}

	log.Debug("file done", "input", in, "elapsed", time.Since(start))
	return out, nil
}

// outputPath builds <dir>/<name><suffix><ext> for an input file.
func outputPath(in string, opts options, srcFormat codec.Format) string {
	format := codec.ParseFormat(opts.format)
	if format == codec.FormatUnknown {
		format = srcFormat
	}
	if !format.CanEncode() {
		format = codec.FormatPNG
	}

	dir := opts.outDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, name+opts.suffix+format.Ext())
}

// errOutputClash reports two inputs mapping to one output file.
var errOutputClash = errors.New("output path already used")

// outputClaims records which input owns each output path.
type outputClaims struct {
	mu    sync.Mutex
	owner map[string]string
}

func newOutputClaims() *outputClaims {
	return &outputClaims{owner: make(map[string]string)}
}

// claim reserves out for in. It fails if another input already holds out.
func (c *outputClaims) claim(out, in string) error {
	key := filepath.Clean(out)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.owner[key]; ok && prev != in {
		return fmt.Errorf("%w: %s is written by %s", errOutputClash, out, prev)
	}
	c.owner[key] = in
	return nil
}
