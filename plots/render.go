package plots

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/dichalcogenides/sample"
)

// Defaults for a Renderer.
const (
	DefaultDir    = "build"
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Formats lists the export formats a Renderer accepts.
func Formats() []string { return []string{"eps", "pdf", "png", "svg"} }

// DefaultFormats is used when no format is configured.
func DefaultFormats() []string { return []string{"svg", "pdf"} }

// CheckFormat normalizes f and reports ErrUnsupportedFormat for anything
// outside Formats.
func CheckFormat(f string) (string, error) {
	f = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(f), "."))
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("%q: %w", f, ErrUnsupportedFormat)
	}

	return f, nil
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDir sets the export directory. Default: DefaultDir.
func WithDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.dir = dir
		}
	}
}

// WithFormats sets the export formats. Unsupported entries surface as
// errors from Save.
func WithFormats(formats ...string) Option {
	return func(r *Renderer) {
		if len(formats) > 0 {
			r.formats = slices.Clone(formats)
		}
	}
}

// WithSize sets the canvas size.
func WithSize(w, h vg.Length) Option {
	return func(r *Renderer) {
		if w > 0 && h > 0 {
			r.width, r.height = w, h
		}
	}
}

// WithLogger sets the logger used to report exports. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// Renderer draws Figures with gonum/plot and writes them to disk.
type Renderer struct {
	dir     string
	formats []string
	width   vg.Length
	height  vg.Length
	log     *slog.Logger
}

// NewRenderer returns a Renderer writing svg and pdf into DefaultDir.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		dir:     DefaultDir,
		formats: DefaultFormats(),
		width:   DefaultWidth,
		height:  DefaultHeight,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dir returns the export directory.
func (r *Renderer) Dir() string { return r.dir }

// Canvas wraps f for drawing. The gonum plot is built on the first call to
// Plot or Save and reused afterwards.
func (r *Renderer) Canvas(f Figure) *Canvas { return &Canvas{r: r, fig: f} }

// Save draws f and writes one file per format. It returns the written paths.
func (r *Renderer) Save(f Figure) ([]string, error) { return r.Canvas(f).Save() }

// Canvas is a Figure bound to a Renderer.
type Canvas struct {
	r   *Renderer
	fig Figure

	once sync.Once
	p    *plot.Plot
	err  error
}

// Figure returns the wrapped figure.
func (c *Canvas) Figure() Figure { return c.fig }

// Plot returns the gonum plot of the figure, building it on first use.
func (c *Canvas) Plot() (*plot.Plot, error) {
	c.once.Do(func() { c.p, c.err = build(c.fig) })
	return c.p, c.err
}

// Save writes <dir>/<name>.<format> for every configured format.
//
// Errors:
//   - ErrEmptyFigure, ErrSeriesLength from Figure.Validate.
//   - ErrUnsupportedFormat for an unknown format; nothing is written.
//   - filesystem errors from creating the directory or a file.
func (c *Canvas) Save() ([]string, error) {
	formats := make([]string, 0, len(c.r.formats))
	for _, name := range c.r.formats {
		f, err := CheckFormat(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.fig.Name, err)
		}
		formats = append(formats, f)
	}

	p, err := c.Plot()
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(c.r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", c.fig.Name, err)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(c.r.dir, c.fig.Name+"."+f)
		if err = p.Save(c.r.width, c.r.height, path); err != nil {
			return paths, fmt.Errorf("%s: %w", path, err)
		}
		c.r.log.Info("figure saved", "figure", c.fig.Name, "path", path)
		paths = append(paths, path)
	}

	return paths, nil
}

// build converts f into a gonum plot.
//
// Stage 1: curves, split at non-finite samples; only the first segment of
// a series enters the legend.
// Stage 2: reference lines, which need the data range from stage 1.
// Stage 3: text labels.
func build(f Figure) (*plot.Plot, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	if f.HideAxes {
		p.HideAxes()
	} else {
		p.Add(plotter.NewGrid())
	}
	p.Legend.Top = true

	auto := 0
	for _, s := range f.Series {
		ls := lineStyle(s.Style, auto)
		if s.Style == StyleAuto {
			auto++
		}
		for i, seg := range sample.Segments(s.X, s.Y) {
			l, err := plotter.NewLine(xys(seg))
			if err != nil {
				return nil, fmt.Errorf("%s: series %q: %w", f.Name, s.Label, err)
			}
			l.LineStyle = ls
			p.Add(l)
			if i == 0 && f.Legend && s.Label != "" {
				p.Legend.Add(s.Label, l)
			}
		}
	}

	for _, ln := range f.Lines {
		ls := lineStyle(ln.Style, 0)
		if !ln.Vertical {
			y := ln.Value
			fn := plotter.NewFunction(func(float64) float64 { return y })
			fn.LineStyle = ls
			p.Add(fn)
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: ln.Value, Y: p.Y.Min}, {X: ln.Value, Y: p.Y.Max}})
		if err != nil {
			return nil, fmt.Errorf("%s: line at %g: %w", f.Name, ln.Value, err)
		}
		l.LineStyle = ls
		p.Add(l)
	}

	if len(f.Labels) > 0 {
		d := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(f.Labels)),
			Labels: make([]string, len(f.Labels)),
		}
		for i, lb := range f.Labels {
			d.XYs[i] = plotter.XY{X: lb.X, Y: lb.Y}
			d.Labels[i] = lb.Text
		}
		labels, err := plotter.NewLabels(d)
		if err != nil {
			return nil, fmt.Errorf("%s: labels: %w", f.Name, err)
		}
		p.Add(labels)
	}

	return p, nil
}

func lineStyle(s Style, i int) draw.LineStyle {
	ls := draw.LineStyle{Color: color.Black, Width: vg.Points(1.5)}
	switch s {
	case StyleAuto:
		ls.Color = plotutil.Color(i)
		ls.Dashes = plotutil.Dashes(i)
	case StyleDashed:
		ls.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	case StyleThin:
		ls.Color = color.Gray{Y: 128}
		ls.Width = vg.Points(0.5)
	}

	return ls
}

func xys(pts []sample.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	return out
}
