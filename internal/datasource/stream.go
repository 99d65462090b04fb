package datasource

import (
	"context"
	"time"
)

// StreamName is the record name of the memory bandwidth data source.
const StreamName = "stream"

// DefaultStreamElements is the default array length of the bandwidth kernels.
const DefaultStreamElements = 4 * 1024 * 1024

// streamIterations is how many times each kernel runs; the best time wins.
const streamIterations = 5

// Stream holds the best observed bandwidth of each STREAM kernel in MB/s.
type Stream struct {
	Elements int     `json:"array_elements"`
	Copy     float64 `json:"copy"`
	Scale    float64 `json:"scale"`
	Add      float64 `json:"add"`
	Triad    float64 `json:"triad"`
}

// NewStream creates the memory bandwidth data source. Elements <= 0 selects
// DefaultStreamElements.
func NewStream(elements int) *Source[Stream] {
	if elements <= 0 {
		elements = DefaultStreamElements
	}
	return NewSource(StreamName, nil, func(ctx context.Context) (Stream, error) {
		return runStream(ctx, elements), nil
	})
}

func runStream(_ context.Context, n int) Stream {
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	for i := range a {
		a[i] = 1.0
		b[i] = 2.0
	}
	const scalar = 3.0

	best := [4]time.Duration{}
	kernels := [4]func(){
		func() { copy(c, a) },
		func() {
			for i := range b {
				b[i] = scalar * c[i]
			}
		},
		func() {
			for i := range c {
				c[i] = a[i] + b[i]
			}
		},
		func() {
			for i := range a {
				a[i] = b[i] + scalar*c[i]
			}
		},
	}

	for iter := 0; iter < streamIterations; iter++ {
		for k, kernel := range kernels {
			start := time.Now()
			kernel()
			d := time.Since(start)
			if best[k] == 0 || d < best[k] {
				best[k] = d
			}
		}
	}

	// bytes moved per element: copy/scale 2 words, add/triad 3 words
	const word = 8
	mbps := func(words int, d time.Duration) float64 {
		if d <= 0 {
			d = time.Nanosecond
		}
		return float64(words*word*n) / 1e6 / d.Seconds()
	}

	return Stream{
		Elements: n,
		Copy:     mbps(2, best[0]),
		Scale:    mbps(2, best[1]),
		Add:      mbps(3, best[2]),
		Triad:    mbps(3, best[3]),
	}
}
