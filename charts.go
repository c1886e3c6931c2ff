package main

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"

	"github.com/saressalo/chandiff/diffview"
)

const (
	minChartWidth  = 20
	minChartHeight = 3
)

// chartsView renders one line chart per visible channel row, every dataset
// overlaid on the same axes.
func (m *model) chartsView(rows []diffview.Row) string {
	chromeLines := 5 // app margins, header, footer
	avail := m.terminalHeight - chromeLines
	perRow := avail / len(rows)

	width := m.terminalWidth - 4
	if width < minChartWidth {
		width = minChartWidth
	}
	height := perRow - 1 // one line for the channel title
	if height < minChartHeight {
		height = minChartHeight
	}

	blocks := make([]string, len(rows))
	for i, row := range rows {
		blocks[i] = renderChannelChart(row, width, height)
	}
	return strings.Join(blocks, "\n")
}

func renderChannelChart(row diffview.Row, width, height int) string {
	minY, maxY := traceExtent(row.Traces)

	minX, maxX := row.XMin, row.XMax
	if maxX <= minX {
		// a window that sits entirely in the padded tail has a
		// collapsed coordinate range
		maxX = minX + 1
	}

	lc := linechart.New(width, height, minX, maxX, minY, maxY,
		linechart.WithXYSteps(4, 2))
	lc.AxisStyle = chartAxisStyle
	lc.LabelStyle = chartLabelStyle
	lc.DrawXYAxisAndLabel()

	for di, trace := range row.Traces {
		drawTrace(&lc, row, trace, di)
	}

	title := row.Name
	if title == "" {
		title = " "
	}
	return chartTitleStyle.Render(title) + "\n" + lc.View()
}

// drawTrace draws one dataset's samples as connected braille segments.
// Long windows are strided down to a few points per braille column; the
// canvas cannot show more detail than that anyway.
func drawTrace(lc *linechart.Model, row diffview.Row, trace []float64, dataset int) {
	style := traceStyle(dataset)

	stride := len(trace) / (lc.GraphWidth() * 4)
	if stride < 1 {
		stride = 1
	}

	prev := canvas.Float64Point{X: xAt(row, 0), Y: trace[0]}
	lastDrawn := 0
	for i := stride; i < len(trace); i += stride {
		cur := canvas.Float64Point{X: xAt(row, i), Y: trace[i]}
		lc.DrawBrailleLineWithStyle(prev, cur, style)
		prev = cur
		lastDrawn = i
	}
	if last := len(trace) - 1; lastDrawn != last {
		cur := canvas.Float64Point{X: xAt(row, last), Y: trace[last]}
		lc.DrawBrailleLineWithStyle(prev, cur, style)
	}
}

func xAt(row diffview.Row, i int) float64 {
	if row.Coords != nil {
		return row.Coords[i]
	}
	return float64(row.Start + i)
}

func traceExtent(traces [][]float64) (minY, maxY float64) {
	minY = traces[0][0]
	maxY = traces[0][0]
	for _, trace := range traces {
		for _, v := range trace {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	if minY == maxY {
		// flat traces still need a non-degenerate axis
		minY -= 0.5
		maxY += 0.5
	}
	return minY, maxY
}
