// Package spectral estimates power spectral densities for channel x sample
// recordings. It is the frequency-domain input source for the comparison
// viewer: same matrix layout, frequency bins instead of samples.
package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const defaultSegmentLength = 256

// Estimator computes Welch-averaged periodograms: Hann-windowed,
// mean-detrended segments with overlap, one-sided density scaling.
type Estimator struct {
	// SegmentLength is the per-segment FFT length. Zero means 256;
	// values longer than the recording are clamped to it.
	SegmentLength int

	// Overlap is the number of samples shared by consecutive segments.
	// Negative means half a segment.
	Overlap int

	// SampleRate of the input, in Hz. Must be positive.
	SampleRate float64
}

// PSD is a channel x frequency power matrix plus its frequency axis.
type PSD struct {
	Power [][]float64
	Freqs []float64
}

// Channels reports the channel count.
func (p *PSD) Channels() int { return len(p.Power) }

// Bins reports the frequency bin count.
func (p *PSD) Bins() int { return len(p.Freqs) }

// EstimatePSD computes the PSD of every channel in data.
func (e Estimator) EstimatePSD(data [][]float64) (*PSD, error) {
	if e.SampleRate <= 0 {
		return nil, fmt.Errorf("spectral: sample rate %v must be positive", e.SampleRate)
	}
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("spectral: empty input")
	}
	samples := len(data[0])
	for c, ch := range data {
		if len(ch) != samples {
			return nil, fmt.Errorf("spectral: channel %d has %d samples, want %d", c, len(ch), samples)
		}
	}

	seg := e.SegmentLength
	if seg == 0 {
		seg = defaultSegmentLength
	}
	if seg < 0 {
		return nil, fmt.Errorf("spectral: segment length %d must be positive", seg)
	}
	if seg > samples {
		seg = samples
	}
	overlap := e.Overlap
	if overlap < 0 {
		overlap = seg / 2
	}
	if overlap >= seg {
		return nil, fmt.Errorf("spectral: overlap %d must be shorter than segment %d", overlap, seg)
	}
	step := seg - overlap

	window := hann(seg)
	var windowPower float64
	for _, w := range window {
		windowPower += w * w
	}
	norm := e.SampleRate * windowPower

	fft := fourier.NewFFT(seg)
	bins := seg/2 + 1

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = fft.Freq(i) * e.SampleRate
	}

	psd := &PSD{
		Power: make([][]float64, len(data)),
		Freqs: freqs,
	}

	buf := make([]float64, seg)
	coeffs := make([]complex128, bins)
	for c, ch := range data {
		acc := make([]float64, bins)
		segments := 0
		for start := 0; start+seg <= samples; start += step {
			copy(buf, ch[start:start+seg])
			mean := stat.Mean(buf, nil)
			for i := range buf {
				buf[i] -= mean
			}
			floats.Mul(buf, window)

			coeffs = fft.Coefficients(coeffs, buf)
			for i, co := range coeffs {
				p := (real(co)*real(co) + imag(co)*imag(co)) / norm
				// One-sided spectrum: fold negative frequencies
				// into every bin except DC and Nyquist.
				if i != 0 && !(seg%2 == 0 && i == bins-1) {
					p *= 2
				}
				acc[i] += p
			}
			segments++
		}
		floats.Scale(1/float64(segments), acc)
		psd.Power[c] = acc
	}
	return psd, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
