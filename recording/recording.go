// Package recording loads channel x sample recordings from disk.
//
// Two container formats are supported, dispatched by file extension: CSV
// exports (header row of channel names, one sample per row) and the JSON
// snapshot format written by other tools in this family. Heavier raw
// formats are expected to be converted to one of these first.
package recording

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Recording is one loaded file: C channel rows of T samples each.
type Recording struct {
	Path         string
	ChannelNames []string
	SampleRate   float64
	Data         [][]float64
}

// Channels reports the channel count.
func (r *Recording) Channels() int { return len(r.Data) }

// Samples reports the per-channel sample count.
func (r *Recording) Samples() int {
	if len(r.Data) == 0 {
		return 0
	}
	return len(r.Data[0])
}

// Load reads a recording, picking the parser from the file extension.
// defaultRate is used when the container carries no sampling rate of its
// own (CSV always, JSON when the field is absent).
func Load(path string, defaultRate float64) (*Recording, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return loadCSV(path, defaultRate)
	case ".json":
		return loadJSON(path, defaultRate)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .json)", ext)
	}
}

func loadCSV(path string, rate float64) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV %q has no sample rows", path)
	}

	names := make([]string, len(records[0]))
	for i, name := range records[0] {
		names[i] = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
	}

	channels := len(names)
	samples := len(records) - 1
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, samples)
	}

	// CSV rows are samples, columns are channels; transpose on the way in.
	for s, row := range records[1:] {
		if len(row) != channels {
			return nil, fmt.Errorf("CSV %q row %d has %d fields, want %d",
				path, s+2, len(row), channels)
		}
		for c, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("CSV %q row %d column %q: %w", path, s+2, names[c], err)
			}
			data[c][s] = v
		}
	}

	return &Recording{
		Path:         path,
		ChannelNames: names,
		SampleRate:   rate,
		Data:         data,
	}, nil
}

// --- Wire format ---

const recordingVersion = 1

type recordingDTO struct {
	Version    int         `json:"version"`
	Channels   []string    `json:"channels"`
	SampleRate float64     `json:"sampleRate,omitempty"`
	Data       [][]float64 `json:"data"` // channel x sample
}

func loadJSON(path string, defaultRate float64) (*Recording, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	var dto recordingDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("error decoding JSON %q: %w", path, err)
	}
	if dto.Version != recordingVersion {
		return nil, fmt.Errorf("JSON %q has version %d, want %d", path, dto.Version, recordingVersion)
	}
	if len(dto.Data) == 0 {
		return nil, fmt.Errorf("JSON %q has no channels", path)
	}
	if len(dto.Channels) != len(dto.Data) {
		return nil, fmt.Errorf("JSON %q has %d channel names for %d channels",
			path, len(dto.Channels), len(dto.Data))
	}
	samples := len(dto.Data[0])
	for c, ch := range dto.Data {
		if len(ch) != samples {
			return nil, fmt.Errorf("JSON %q channel %d has %d samples, want %d",
				path, c, len(ch), samples)
		}
	}

	rate := dto.SampleRate
	if rate == 0 {
		rate = defaultRate
	}
	return &Recording{
		Path:         path,
		ChannelNames: dto.Channels,
		SampleRate:   rate,
		Data:         dto.Data,
	}, nil
}
