package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/saressalo/chandiff/diffview"
)

// exportWindow writes the currently visible window to a CSV file: one row
// per channel and dataset, samples across the columns, coordinates first
// when the frame carries them.
func (m *model) exportWindow(path string) error {
	frame := m.activeFrame()
	rows := frame.Window(*m.activeState())
	labels := m.datasetLabels()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"channel", "dataset"}
	for i := 0; i < frame.WindowWidth(); i++ {
		header = append(header, "s"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	if rows[0].Coords != nil {
		record := []string{"", "x"}
		for _, c := range rows[0].Coords {
			record = append(record, formatSample(c))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = strconv.Itoa(row.Channel)
		}
		for di, trace := range row.Traces {
			record := []string{name, labels[di]}
			for _, v := range trace {
				record = append(record, formatSample(v))
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// windowSummary builds the plain-text digest placed on the clipboard.
func windowSummary(frame *diffview.Frame, st diffview.ViewState, labels []string, mode viewMode) string {
	rows := frame.Window(st)

	var b strings.Builder
	kind := "time window"
	if mode == modeSpectrum {
		kind = "spectrum window"
	}
	fmt.Fprintf(&b, "%s: start %d, %d samples, x %g..%g\n",
		kind, rows[0].Start, frame.WindowWidth(), rows[0].XMin, rows[0].XMax)

	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = fmt.Sprintf("channel %d", row.Channel)
		}
		fmt.Fprintf(&b, "%s:", name)
		for di, trace := range row.Traces {
			lo, hi := trace[0], trace[0]
			for _, v := range trace {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			fmt.Fprintf(&b, " %s=[%g, %g]", labels[di], lo, hi)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
