package datasize

import (
	"bytes"
	"math"
	"testing"

	"github.com/heistp/valueobject/internal/test"
	"github.com/pkg/errors"
)

func TestSummarize(t *testing.T) {
	var sizes []DataSize
	for _, n := range []int64{7, 3, 10, 1, 5, 9, 2, 8, 4, 6} {
		sizes = append(sizes, OfKilobytes(n))
	}

	s, err := Summarize(sizes)
	if err != nil {
		t.Fatal(err)
	}

	test.Diff(t, "summary", Summary{
		Count:  10,
		Total:  OfKilobytes(55),
		Min:    OfKilobytes(1),
		Max:    OfKilobytes(10),
		Mean:   OfBytes(5632),
		Median: OfKilobytes(5),
		P95:    OfKilobytes(10),
	}, s)

	if sizes[0] != OfKilobytes(7) {
		t.Error("Summarize should not reorder its input")
	}
}

func TestSummarizeOne(t *testing.T) {
	s, err := Summarize([]DataSize{OfBytes(3)})
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != s.Max || s.Mean != OfBytes(3) || s.P95 != OfBytes(3) {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("error = %v, want ErrEmpty", err)
	}
}

func TestSummaryEmit(t *testing.T) {
	s, err := Summarize([]DataSize{OfKilobytes(1), OfKilobytes(3)})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	s.Emit(&b)

	want := "Count: 2\n" +
		"Stat    Size  Bytes\n" +
		"----    ----  -----\n" +
		"Total   4 KB  4096\n" +
		"Min     1 KB  1024\n" +
		"Mean    2 KB  2048\n" +
		"Median  1 KB  1024\n" +
		"P95     3 KB  3072\n" +
		"Max     3 KB  3072\n"
	test.Diff(t, "emitted summary", want, b.String())
}

func TestSummarizeLargeSizes(t *testing.T) {
	s, err := Summarize([]DataSize{OfBytes(math.MaxInt64)})
	if err != nil {
		t.Fatal(err)
	}
	want := OfBytes(math.MaxInt64)
	test.Diff(t, "summary of MaxInt64", Summary{
		Count:  1,
		Total:  want,
		Min:    want,
		Max:    want,
		Mean:   want,
		Median: want,
		P95:    want,
	}, s)

	// 1<<53+1 is not representable as a float64
	big := OfBytes(1<<53 + 1)
	if s, err = Summarize([]DataSize{big, big, big}); err != nil {
		t.Fatal(err)
	}
	if s.Median != big || s.P95 != big || s.Mean != big {
		t.Errorf("median %d, p95 %d, mean %d, want %d",
			s.Median.Bytes(), s.P95.Bytes(), s.Mean.Bytes(), big.Bytes())
	}
}

func TestSummarizeMeanDoesNotOverflow(t *testing.T) {
	tests := []struct {
		name  string
		sizes []DataSize
		mean  int64
	}{
		{"max", []DataSize{OfBytes(math.MaxInt64), OfBytes(math.MaxInt64 - 2)}, math.MaxInt64 - 1},
		{"min", []DataSize{OfBytes(math.MinInt64), OfBytes(math.MinInt64)}, math.MinInt64},
		{"truncates positive", []DataSize{OfBytes(-3), OfBytes(4)}, 0},
		{"truncates negative", []DataSize{OfBytes(-4), OfBytes(1)}, -1},
		{"mixed", []DataSize{OfBytes(math.MaxInt64), OfBytes(math.MinInt64), OfBytes(2)}, 0},
		{"odd", []DataSize{OfBytes(1), OfBytes(2), OfBytes(4)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Summarize(tt.sizes)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Mean.Bytes(); got != tt.mean {
				t.Errorf("Mean = %d, want %d", got, tt.mean)
			}
		})
	}
}

func TestSummaryQuantilesAreElements(t *testing.T) {
	sizes := []DataSize{OfBytes(math.MaxInt64), OfBytes(math.MaxInt64 - 1),
		OfBytes(math.MinInt64), OfBytes(1<<53 + 1)}
	s, err := Summarize(sizes)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []DataSize{s.Min, s.Median, s.P95, s.Max} {
		found := false
		for _, d := range sizes {
			found = found || d == q
		}
		if !found {
			t.Errorf("%d is not one of the summarized sizes", q.Bytes())
		}
	}
	if s.Median != OfBytes(1<<53+1) || s.P95 != OfBytes(math.MaxInt64) {
		t.Errorf("median %d, p95 %d", s.Median.Bytes(), s.P95.Bytes())
	}
}
