package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/heightbrush"
	"github.com/esimov/heightbrush/imop"
	"github.com/esimov/heightbrush/utils"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/bmp"
	"golang.org/x/image/math/f32"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// options holds the command line settings.
type options struct {
	source      string
	destination string
	brushPath   string
	mode        string
	color       string
	positions   []string
	size        int
	channel     int
	factor      float32
	value       float32
	spacing     float32
	stroke      bool
	stats       bool
	debug       bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("heightbrush", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		fs.PrintDefaults()
	}

	fs.StringVarP(&opts.source, "in", "i", pipeName, "Source heightmap")
	fs.StringVarP(&opts.destination, "out", "o", pipeName, "Destination")
	fs.StringVarP(&opts.brushPath, "brush", "b", "", "Brush image (a radial falloff brush is generated if empty)")
	fs.IntVarP(&opts.size, "size", "s", 32, "Brush size in pixels")
	fs.StringVarP(&opts.mode, "mode", "m", imop.Add, fmt.Sprintf("Blend mode (%s)", strings.Join(imop.Modes(), ", ")))
	fs.Float32VarP(&opts.factor, "factor", "f", 0.1, "Brush strength")
	fs.Float32Var(&opts.value, "value", 0, "Target value of the lerp mode")
	fs.IntVar(&opts.channel, "channel", 0, "Channel painted by the lerp mode (0: R, 1: G, 2: B, 3: A)")
	fs.StringVar(&opts.color, "color", "#ffffff", "Target color of the color mode")
	fs.StringArrayVar(&opts.positions, "at", nil, "Brush center as x,y (repeatable)")
	fs.BoolVar(&opts.stroke, "stroke", false, "Connect the brush positions with strokes")
	fs.Float32Var(&opts.spacing, "spacing", 1, "Distance between the stamps of a stroke")
	fs.BoolVar(&opts.stats, "stats", false, "Log the heightmap statistics after painting")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)

	return zap.New(core)
}

// run executes the painting process described by the command line arguments.
func run(fs afero.Fs, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(stderr, opts.debug)
	defer logger.Sync() //nolint:errcheck

	heightbrush.SetLogger(logger)
	defer heightbrush.SetLogger(nil)

	blend := imop.NewBlend()
	if err := blend.Set(opts.mode); err != nil {
		return err
	}

	positions, err := parsePositions(opts.positions)
	if err != nil {
		return err
	}
	if len(positions) == 0 && !opts.stats {
		return errors.New("nothing to do: provide at least one brush position or the --stats flag")
	}

	target, err := parseColor(opts.color)
	if err != nil {
		return err
	}

	src, err := openSource(fs, opts.source, stdin)
	if err != nil {
		return err
	}
	decoded, err := imaging.Decode(src)
	if c, ok := src.(io.Closer); ok && src != stdin {
		c.Close()
	}
	if err != nil {
		return fmt.Errorf("could not decode the source image: %w", err)
	}
	img := heightbrush.FromImage(decoded)

	brush, err := loadBrush(fs, opts.brushPath, opts.size)
	if err != nil {
		return err
	}

	painter := &heightbrush.Painter{
		Brush:   brush,
		Mode:    blend.Get(),
		Factor:  opts.factor,
		Value:   opts.value,
		Channel: opts.channel,
		Color:   target,
		Spacing: opts.spacing,
	}

	// The brush positions are given as brush centers.
	half := f32.Vec2{float32(brush.Width() / 2), float32(brush.Height() / 2)}
	positions = lo.Map(positions, func(p f32.Vec2, _ int) f32.Vec2 {
		return f32.Vec2{p[0] - half[0], p[1] - half[1]}
	})

	now := time.Now()
	if err := paint(painter, img, positions, opts.stroke); err != nil {
		return fmt.Errorf("error painting the heightmap: %w", err)
	}
	logger.Debug("painting done",
		zap.String("mode", painter.Mode),
		zap.Int("stamps", len(positions)),
		zap.Duration("elapsed", time.Since(now)),
	)

	if opts.stats {
		if err := logStats(logger, img); err != nil {
			return err
		}
	}

	if len(positions) == 0 {
		return nil
	}

	var out image.Image
	if painter.Mode == imop.LerpColor || (painter.Mode == imop.Lerp && painter.Channel != 0) {
		out = img.ToNRGBA64()
	} else {
		out = img.ToGray16()
	}

	return writeImage(fs, opts.destination, stdout, out)
}

func paint(p *heightbrush.Painter, img *heightbrush.Image, positions []f32.Vec2, stroke bool) error {
	if stroke && len(positions) > 1 {
		for i := 1; i < len(positions); i++ {
			if err := p.Stroke(img, positions[i-1], positions[i]); err != nil {
				return err
			}
		}
		return nil
	}

	for _, pos := range positions {
		if err := p.Stamp(img, pos); err != nil {
			return err
		}
	}
	return nil
}

func logStats(logger *zap.Logger, img *heightbrush.Image) error {
	rect := heightbrush.NewRect(0, 0, float32(img.Width()), float32(img.Height()))

	min, max, err := heightbrush.ChannelRange(img, rect)
	if err != nil {
		return fmt.Errorf("could not compute the height range: %w", err)
	}
	sum, err := heightbrush.ChannelSum(img, rect)
	if err != nil {
		return fmt.Errorf("could not compute the height sum: %w", err)
	}

	logger.Info("heightmap statistics",
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Float32("min", min),
		zap.Float32("max", max),
		zap.Float32("sum", sum),
	)
	return nil
}

// loadBrush reads the brush image, or generates a radial falloff brush
// when no brush path is provided.
func loadBrush(fs afero.Fs, path string, size int) (*heightbrush.Image, error) {
	if path == "" {
		brush, _, err := heightbrush.NewRadialFalloffBrush(size)
		if err != nil {
			return nil, fmt.Errorf("could not generate the brush: %w", err)
		}
		return brush, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the brush file: %w", err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode the brush file: %w", err)
	}

	brush, err := heightbrush.BrushFromImage(src, size)
	if err != nil {
		return nil, fmt.Errorf("could not create the brush: %w", err)
	}
	return brush, nil
}

// openSource returns a reader over the source image, which is either a file or the standard input.
func openSource(fs afero.Fs, path string, stdin io.Reader) (io.Reader, error) {
	if path == pipeName {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return stdin, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// writeImage encodes the image to the destination, the format being
// deduced from the file extension. PNG is used for the standard output.
func writeImage(fs afero.Fs, path string, stdout io.Writer, img image.Image) error {
	if path == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return imaging.Encode(stdout, img, imaging.PNG)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}

	if err := encodeImage(f, path, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeImage(w io.Writer, path string, img image.Image) error {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Encode(w, img)
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%v file type not supported: %w", filepath.Ext(path), err)
	}
	return imaging.Encode(w, img, format)
}

func parsePositions(values []string) ([]f32.Vec2, error) {
	positions := make([]f32.Vec2, 0, len(values))

	for _, v := range values {
		parts := strings.Split(v, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid brush position %q, expected x,y", v)
		}

		var pos f32.Vec2
		for i, s := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
			if err != nil {
				return nil, fmt.Errorf("invalid brush position %q: %w", v, err)
			}
			pos[i] = float32(f)
		}
		positions = append(positions, pos)
	}

	return positions, nil
}

func parseColor(hex string) (heightbrush.Color, error) {
	c, err := utils.HexToRGBA(hex)
	if err != nil {
		return heightbrush.Color{}, err
	}

	return heightbrush.Color{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}, nil
}
