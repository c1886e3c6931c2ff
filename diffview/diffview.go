// Package diffview holds the windowed comparison view used to overlay
// several equal-shaped channel x sample recordings on top of each other.
//
// The package is deliberately free of any UI toolkit: a Frame owns the
// padded copies of the data, a ViewState owns the two scroll offsets, and
// Window computes the visible slices for whatever surface ends up drawing
// them. One goroutine owns a Frame and its ViewState; there is no locking.
package diffview

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the input matrices do not all
	// share the same channel and sample counts.
	ErrShapeMismatch = errors.New("dataset shapes must be identical")

	// ErrInvalidConfig is returned for out-of-contract construction
	// parameters (empty inputs, non-positive window dimensions,
	// misaligned channel names or coordinate maps).
	ErrInvalidConfig = errors.New("invalid viewer configuration")
)

const (
	DefaultWindowWidth  = 2500
	DefaultWindowHeight = 3
)

type config struct {
	names       []string
	xRange      []float64
	windowWidth int
	windowRows  int
}

// Option configures Frame construction.
type Option func(*config)

// WithChannelNames sets per-channel titles. Length must match the channel
// count of the datasets.
func WithChannelNames(names []string) Option {
	return func(c *config) { c.names = names }
}

// WithXRange supplies real-unit coordinates for the sample axis, one per
// pre-padding sample. The coordinates are interpolated across the padded
// index range at construction.
func WithXRange(coords []float64) Option {
	return func(c *config) { c.xRange = coords }
}

// WithWindowWidth sets how many samples one window spans.
func WithWindowWidth(w int) Option {
	return func(c *config) { c.windowWidth = w }
}

// WithWindowHeight sets how many channel rows are visible at once.
func WithWindowHeight(h int) Option {
	return func(c *config) { c.windowRows = h }
}

// Frame is an immutable padded dataset collection plus window geometry.
type Frame struct {
	datasets [][][]float64 // dataset -> channel -> padded samples
	names    []string
	coords   []float64 // padded length, nil when no x range was given

	channels    int
	samples     int // padded sample count
	origSamples int
	windowWidth int
	windowRows  int
}

// New validates the dataset collection, pads every matrix to a multiple of
// the window width and returns the frame. No partial state survives an
// error.
func New(datasets [][][]float64, opts ...Option) (*Frame, error) {
	cfg := config{
		windowWidth: DefaultWindowWidth,
		windowRows:  DefaultWindowHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("%w: no datasets", ErrInvalidConfig)
	}
	if cfg.windowWidth <= 0 {
		return nil, fmt.Errorf("%w: window width %d", ErrInvalidConfig, cfg.windowWidth)
	}
	if cfg.windowRows <= 0 {
		return nil, fmt.Errorf("%w: window height %d", ErrInvalidConfig, cfg.windowRows)
	}

	channels := len(datasets[0])
	if channels == 0 {
		return nil, fmt.Errorf("%w: dataset 0 has no channels", ErrInvalidConfig)
	}
	origSamples := len(datasets[0][0])
	if origSamples == 0 {
		return nil, fmt.Errorf("%w: dataset 0 has no samples", ErrInvalidConfig)
	}
	for di, ds := range datasets {
		if len(ds) != channels {
			return nil, fmt.Errorf("%w: dataset %d has %d channels, want %d",
				ErrShapeMismatch, di, len(ds), channels)
		}
		for ci, ch := range ds {
			if len(ch) != origSamples {
				return nil, fmt.Errorf("%w: dataset %d channel %d has %d samples, want %d",
					ErrShapeMismatch, di, ci, len(ch), origSamples)
			}
		}
	}

	if cfg.names != nil && len(cfg.names) != channels {
		return nil, fmt.Errorf("%w: %d channel names for %d channels",
			ErrInvalidConfig, len(cfg.names), channels)
	}
	if cfg.xRange != nil && len(cfg.xRange) != origSamples {
		return nil, fmt.Errorf("%w: x range has %d points for %d samples",
			ErrInvalidConfig, len(cfg.xRange), origSamples)
	}

	// Pad to the next multiple of the window width. An exact multiple
	// gets no padding columns.
	pad := (cfg.windowWidth - origSamples%cfg.windowWidth) % cfg.windowWidth
	padded := origSamples + pad

	f := &Frame{
		datasets:    make([][][]float64, len(datasets)),
		channels:    channels,
		samples:     padded,
		origSamples: origSamples,
		windowWidth: cfg.windowWidth,
		windowRows:  cfg.windowRows,
	}
	for di, ds := range datasets {
		f.datasets[di] = make([][]float64, channels)
		for ci, ch := range ds {
			row := make([]float64, padded)
			copy(row, ch)
			f.datasets[di][ci] = row
		}
	}
	if cfg.names != nil {
		f.names = append([]string(nil), cfg.names...)
	}
	if cfg.xRange != nil {
		f.coords = interpolateCoords(cfg.xRange, padded)
	}
	return f, nil
}

// interpolateCoords stretches the original coordinates over n padded
// indices. The evaluation grid and the knot grid share the same integer
// positions, so original indices keep their exact coordinate and indices
// past the last knot hold the final value.
func interpolateCoords(coords []float64, n int) []float64 {
	out := make([]float64, n)
	last := len(coords) - 1
	for i := range out {
		if i >= last {
			out[i] = coords[last]
			continue
		}
		out[i] = coords[i]
	}
	return out
}

// Datasets reports how many datasets are overlaid.
func (f *Frame) Datasets() int { return len(f.datasets) }

// Channels reports the channel count shared by all datasets.
func (f *Frame) Channels() int { return f.channels }

// Samples reports the padded sample count.
func (f *Frame) Samples() int { return f.samples }

// WindowWidth reports the samples spanned by one window.
func (f *Frame) WindowWidth() int { return f.windowWidth }

// WindowRows reports the channel rows visible at once.
func (f *Frame) WindowRows() int { return f.windowRows }

// ChannelName returns the title for a channel, or "" when no names were
// supplied.
func (f *Frame) ChannelName(ch int) string {
	if f.names == nil || ch < 0 || ch >= len(f.names) {
		return ""
	}
	return f.names[ch]
}

// Row is one visible channel band: the resolved channel, the window start
// and, per dataset, the sample slice for the current window. Slices alias
// the frame's padded storage and must be treated as read-only.
type Row struct {
	Channel int
	Name    string
	Start   int

	// Coords holds the interpolated x coordinates for the window, nil
	// when the frame has no coordinate map.
	Coords []float64

	// XMin and XMax give the axis extent, in coordinate units when
	// Coords is set and raw sample indices otherwise.
	XMin, XMax float64

	Traces [][]float64
}

// Window resolves the visible slice for every channel row under the given
// view state. The window start is always in [0, samples-width] because the
// padded sample count is a multiple of the window width.
func (f *Frame) Window(st ViewState) []Row {
	width := f.windowWidth
	start := floorMod(st.X*width, f.samples)

	rows := make([]Row, f.windowRows)
	for r := range rows {
		ch := floorMod(st.Y+r, f.channels)
		row := Row{
			Channel: ch,
			Name:    f.ChannelName(ch),
			Start:   start,
			Traces:  make([][]float64, len(f.datasets)),
		}
		for di := range f.datasets {
			row.Traces[di] = f.datasets[di][ch][start : start+width]
		}
		if f.coords != nil {
			row.Coords = f.coords[start : start+width]
			row.XMin = row.Coords[0]
			row.XMax = row.Coords[width-1]
		} else {
			row.XMin = float64(start)
			row.XMax = float64(start + width)
		}
		rows[r] = row
	}
	return rows
}

// floorMod is the non-negative modulo, so negative offsets wrap the same
// way in both directions.
func floorMod(n, m int) int {
	return ((n % m) + m) % m
}
