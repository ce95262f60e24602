package gonumplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// Defaults match the figures used in the evaluation write-up: 8x5in at 300 DPI
// with 6pt error bar caps.
const (
	DefaultWidth              = 8 * vg.Inch
	DefaultHeight             = 5 * vg.Inch
	DefaultDPI                = 300
	DefaultCapWidth vg.Length = 6
)

// Options control canvas geometry. Zero fields take the defaults.
type Options struct {
	Width    vg.Length
	Height   vg.Length
	DPI      int
	CapWidth vg.Length
}

// Renderer draws error-bar bar charts with gonum/plot.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer with a fixed canvas size and resolution.
func NewRenderer(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	if opts.CapWidth <= 0 {
		opts.CapWidth = DefaultCapWidth
	}
	return &Renderer{opts: opts}
}

// errPoints pairs bar tops with symmetric std errors for plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

type chart struct {
	plot      *plot.Plot
	bars      *plotter.BarChart
	errorBars *plotter.YErrorBars
}

// Render draws spec and writes it to spec.OutputPath, replacing any existing file.
// The image format follows the path extension: png, jpg, svg or pdf.
func (r *Renderer) Render(ctx context.Context, spec domain.ChartSpec) (domain.ChartData, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChartData{}, err
	}

	c, err := r.build(spec)
	if err != nil {
		return domain.ChartData{}, err
	}

	if err := r.save(c.plot, spec.OutputPath); err != nil {
		return domain.ChartData{}, err
	}

	return chartData(spec, c), nil
}

func (r *Renderer) build(spec domain.ChartSpec) (*chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	fill, err := ParseColor(spec.Color)
	if err != nil {
		return nil, err
	}

	n := len(spec.Labels)

	p := plot.New()
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel

	bars, err := plotter.NewBarChart(plotter.Values(spec.Means), r.barWidth(n))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Color = fill
	bars.LineStyle.Width = vg.Length(0)

	pts := errPoints{
		XYs:     make(plotter.XYs, n),
		YErrors: make(plotter.YErrors, n),
	}
	for i := range spec.Means {
		pts.XYs[i].X = float64(i)
		pts.XYs[i].Y = spec.Means[i]
		pts.YErrors[i].Low = spec.Stds[i]
		pts.YErrors[i].High = spec.Stds[i]
	}
	errorBars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create error bars: %w", err)
	}
	errorBars.CapWidth = r.opts.CapWidth
	errorBars.LineStyle.Width = vg.Points(1)

	p.Add(bars, errorBars)
	p.NominalX(spec.Labels...)
	p.X.Min = -0.5
	p.X.Max = float64(n) - 0.5

	return &chart{plot: p, bars: bars, errorBars: errorBars}, nil
}

// barWidth gives each bar 60% of its category slot on the plotting area.
func (r *Renderer) barWidth(n int) vg.Length {
	return r.opts.Width * 0.8 / vg.Length(n) * 0.6
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("output path %q has no image extension", path)
	}

	var wt io.WriterTo
	switch format {
	case "png", "jpg", "jpeg":
		canvas := vgimg.NewWith(
			vgimg.UseWH(r.opts.Width, r.opts.Height),
			vgimg.UseDPI(r.opts.DPI),
		)
		p.Draw(draw.New(canvas))
		if format == "png" {
			wt = vgimg.PngCanvas{Canvas: canvas}
		} else {
			wt = vgimg.JpegCanvas{Canvas: canvas}
		}
	case "svg", "pdf", "eps":
		var err error
		wt, err = p.WriterTo(r.opts.Width, r.opts.Height, format)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", format, err)
		}
	default:
		return fmt.Errorf("unsupported image format %q (use png, jpg, svg or pdf)", format)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := wt.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close chart %s: %w", path, err)
	}
	return nil
}

// chartData reads back the values held by the plotters, so the result describes what was drawn.
func chartData(spec domain.ChartSpec, c *chart) domain.ChartData {
	data := domain.ChartData{
		Title:      spec.Title,
		YLabel:     spec.YLabel,
		OutputPath: spec.OutputPath,
		Bars:       make([]domain.Bar, len(c.bars.Values)),
	}
	for i, v := range c.bars.Values {
		data.Bars[i] = domain.Bar{
			Label:    spec.Labels[i],
			Height:   v,
			ErrorLow: c.errorBars.YErrors[i].Low,
			ErrorHi:  c.errorBars.YErrors[i].High,
		}
	}
	return data
}
