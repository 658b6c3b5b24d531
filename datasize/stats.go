package datasize

import (
	"io"
	"sort"

	"github.com/heistp/valueobject/pretty"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned when summarizing no sizes.
var ErrEmpty = errors.New("no sizes to summarize")

// Summary contains statistics for a set of sizes. Min, Max, Median and P95
// are always one of the summarized sizes.
type Summary struct {
	// Count is the number of sizes.
	Count int

	// Total is the sum of all sizes. Like Sum, it wraps on overflow.
	Total DataSize

	// Min is the smallest size.
	Min DataSize

	// Max is the largest size.
	Max DataSize

	// Mean is the arithmetic mean, truncated toward zero. It does not
	// overflow, even when Total does.
	Mean DataSize

	// Median is the median value.
	Median DataSize

	// P95 is the 95th percentile value.
	P95 DataSize
}

// Summarize computes a Summary for sizes.
func Summarize(sizes []DataSize) (s Summary, err error) {
	if len(sizes) == 0 {
		err = ErrEmpty
		return
	}

	sorted := make([]DataSize, len(sizes))
	copy(sorted, sizes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].bytes < sorted[j].bytes
	})

	// quantiles are taken over ranks so that byte counts never pass
	// through a float64
	ranks := make([]float64, len(sorted))
	for i := range ranks {
		ranks[i] = float64(i)
	}
	quantile := func(p float64) DataSize {
		return sorted[int(stat.Quantile(p, stat.Empirical, ranks, nil))]
	}

	s = Summary{
		Count:  len(sizes),
		Total:  Sum(sizes...),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean(sizes),
		Median: quantile(0.5),
		P95:    quantile(0.95),
	}
	return
}

// mean returns the mean of sizes truncated toward zero. Quotients and
// remainders are summed separately so no intermediate value overflows.
func mean(sizes []DataSize) DataSize {
	n := int64(len(sizes))
	var q, r int64
	for _, d := range sizes {
		q += d.bytes / n
		r += d.bytes % n
	}
	m := q + r/n
	rem := r % n
	switch {
	case m > 0 && rem < 0:
		m--
	case m < 0 && rem > 0:
		m++
	}
	return DataSize{m}
}

// Emit prints the summary in text form.
func (s Summary) Emit(w io.Writer) {
	tw := pretty.NewTableWriterPad(w, 2, "")
	tw.Printf("Count: %d", s.Count)
	tw.URow("Stat", "Size", "Bytes")
	for _, r := range []struct {
		name string
		size DataSize
	}{
		{"Total", s.Total},
		{"Min", s.Min},
		{"Mean", s.Mean},
		{"Median", s.Median},
		{"P95", s.P95},
		{"Max", s.Max},
	} {
		tw.Row(r.name, r.size, r.size.Bytes())
	}
	tw.Flush()
}
