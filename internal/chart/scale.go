// Package chart lays out and renders the commit scatterplot, its brush and
// tooltip, and the projects pie chart.
package chart

import (
	"math"
)

// BandScale maps a fixed set of categories onto evenly spaced bands.
type BandScale struct {
	domain    []string
	index     map[string]int
	step      float64
	bandwidth float64
	offset    float64
}

// NewBandScale builds a band scale over [start, stop] using the same padding
// on the inside and outside of the bands, centered in the range.
func NewBandScale(domain []string, start, stop, padding float64) *BandScale {
	n := float64(len(domain))
	step := (stop - start) / math.Max(1, n-padding+padding*2)
	offset := start + (stop-start-step*(n-padding))*0.5

	index := make(map[string]int, len(domain))
	for i, d := range domain {
		if _, ok := index[d]; !ok {
			index[d] = i
		}
	}
	return &BandScale{
		domain:    domain,
		index:     index,
		step:      step,
		bandwidth: step * (1 - padding),
		offset:    offset,
	}
}

// Domain returns the categories in order.
func (b *BandScale) Domain() []string {
	return b.domain
}

// Bandwidth returns the width of one band.
func (b *BandScale) Bandwidth() float64 {
	return b.bandwidth
}

// Position returns the start of the band for v.
func (b *BandScale) Position(v string) (float64, bool) {
	i, ok := b.index[v]
	if !ok {
		return math.NaN(), false
	}
	return b.offset + b.step*float64(i), true
}

// Center returns the middle of the band for v.
func (b *BandScale) Center(v string) (float64, bool) {
	x, ok := b.Position(v)
	if !ok {
		return x, false
	}
	return x + b.bandwidth/2, true
}

// LinearScale maps a continuous domain onto a continuous range.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

// Scale maps v into the range. A degenerate domain maps to the range midpoint.
func (s LinearScale) Scale(v float64) float64 {
	t := 0.5
	if d := s.D1 - s.D0; d != 0 {
		t = (v - s.D0) / d
	}
	return s.R0 + t*(s.R1-s.R0)
}

// Invert maps a range value back into the domain.
func (s LinearScale) Invert(px float64) float64 {
	r := s.R1 - s.R0
	if r == 0 {
		return s.D0
	}
	return s.D0 + (px-s.R0)/r*(s.D1-s.D0)
}

// Ticks returns human-friendly values spanning the domain, about count of them.
func (s LinearScale) Ticks(count int) []float64 {
	return ticks(s.D0, s.D1, count)
}

// SqrtScale maps values so that the output grows with the square root of
// the input; used for radii so that circle area tracks magnitude.
type SqrtScale struct {
	linear LinearScale
}

// NewSqrtScale builds a square-root scale.
func NewSqrtScale(d0, d1, r0, r1 float64) SqrtScale {
	return SqrtScale{linear: LinearScale{D0: signedSqrt(d0), D1: signedSqrt(d1), R0: r0, R1: r1}}
}

// Scale maps v into the range.
func (s SqrtScale) Scale(v float64) float64 {
	return s.linear.Scale(signedSqrt(v))
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

var (
	tickE10 = math.Sqrt(50)
	tickE5  = math.Sqrt(10)
	tickE2  = math.Sqrt(2)
)

// ticks returns round values at a 1, 2 or 5 multiple of a power of ten.
func ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= tickE10:
		factor = 10
	case errRatio >= tickE5:
		factor = 5
	case errRatio >= tickE2:
		factor = 2
	}

	var out []float64
	if power < 0 {
		inc := math.Pow(10, -power) / factor
		i1 := math.Round(start * inc)
		i2 := math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		for i := i1; i <= i2; i++ {
			out = append(out, i/inc)
		}
	} else {
		inc := math.Pow(10, power) * factor
		i1 := math.Round(start / inc)
		i2 := math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
		for i := i1; i <= i2; i++ {
			out = append(out, i*inc)
		}
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
