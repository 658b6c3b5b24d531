// Package datasize provides DataSize, an immutable quantity of bytes.
//
// A DataSize is created with one of the Of functions, which fix the unit the
// caller is thinking in, and from then on is an opaque magnitude. Conversions
// back to a unit truncate toward zero.
//
// Arithmetic and unit scaling do not detect int64 overflow. Results wrap
// around the way Go's integer arithmetic does, and negative sizes are valid.
// The Checked variants return an error wrapping unit.ErrOverflow instead.
package datasize

import (
	"encoding/json"
	"strconv"

	"github.com/heistp/valueobject/pretty"
	"github.com/heistp/valueobject/unit"
	"github.com/pkg/errors"
)

// DataSize is a number of bytes. The zero value is Zero. DataSize values are
// comparable with == and may be used as map keys.
type DataSize struct {
	bytes int64
}

// Zero is the empty DataSize.
var Zero = DataSize{}

// OfBytes returns n bytes.
func OfBytes(n int64) DataSize {
	return DataSize{n}
}

// OfKilobytes returns n kilobytes.
func OfKilobytes(n int64) DataSize {
	return DataSize{n * unit.Kilobyte}
}

// OfMegabytes returns n megabytes.
func OfMegabytes(n int64) DataSize {
	return DataSize{n * unit.Megabyte}
}

// OfGigabytes returns n gigabytes.
func OfGigabytes(n int64) DataSize {
	return DataSize{n * unit.Gigabyte}
}

// OfTerabytes returns n terabytes.
func OfTerabytes(n int64) DataSize {
	return DataSize{n * unit.Terabyte}
}

// Of returns value units as a DataSize.
func Of(value int64, u unit.SizeUnit) DataSize {
	return DataSize{u.ToBytes(value)}
}

// OfChecked is Of with overflow detection.
func OfChecked(value int64, u unit.SizeUnit) (d DataSize, err error) {
	d.bytes, err = u.ToBytesChecked(value)
	return
}

// Bytes returns the size in bytes.
func (d DataSize) Bytes() int64 {
	return d.bytes
}

// Kilobytes returns the size in whole kilobytes.
func (d DataSize) Kilobytes() int64 {
	return d.bytes / unit.Kilobyte
}

// Megabytes returns the size in whole megabytes.
func (d DataSize) Megabytes() int64 {
	return d.bytes / unit.Megabyte
}

// Gigabytes returns the size in whole gigabytes.
func (d DataSize) Gigabytes() int64 {
	return d.bytes / unit.Gigabyte
}

// Terabytes returns the size in whole terabytes.
func (d DataSize) Terabytes() int64 {
	return d.bytes / unit.Terabyte
}

// To returns the size in whole units of u.
func (d DataSize) To(u unit.SizeUnit) int64 {
	return u.FromBytes(d.bytes)
}

// In returns the size in units of u, including any fraction.
func (d DataSize) In(u unit.SizeUnit) float64 {
	return float64(d.bytes) / float64(u.Scale())
}

// Add returns d + o.
func (d DataSize) Add(o DataSize) DataSize {
	return DataSize{d.bytes + o.bytes}
}

// Subtract returns d - o.
func (d DataSize) Subtract(o DataSize) DataSize {
	return DataSize{d.bytes - o.bytes}
}

// Multiply returns d * k.
func (d DataSize) Multiply(k int64) DataSize {
	return DataSize{d.bytes * k}
}

// AddChecked is Add with overflow detection.
func (d DataSize) AddChecked(o DataSize) (DataSize, error) {
	b, err := unit.AddChecked(d.bytes, o.bytes)
	if err != nil {
		return Zero, errors.Wrapf(err, "%d B + %d B", d.bytes, o.bytes)
	}
	return DataSize{b}, nil
}

// SubtractChecked is Subtract with overflow detection.
func (d DataSize) SubtractChecked(o DataSize) (DataSize, error) {
	b, err := unit.SubChecked(d.bytes, o.bytes)
	if err != nil {
		return Zero, errors.Wrapf(err, "%d B - %d B", d.bytes, o.bytes)
	}
	return DataSize{b}, nil
}

// MultiplyChecked is Multiply with overflow detection.
func (d DataSize) MultiplyChecked(k int64) (DataSize, error) {
	b, err := unit.MulChecked(d.bytes, k)
	if err != nil {
		return Zero, errors.Wrapf(err, "%d B * %d", d.bytes, k)
	}
	return DataSize{b}, nil
}

// Sum returns the total of sizes, or Zero if there are none.
func Sum(sizes ...DataSize) (s DataSize) {
	for _, d := range sizes {
		s.bytes += d.bytes
	}
	return
}

// IsLargerThan returns true if d > o.
func (d DataSize) IsLargerThan(o DataSize) bool {
	return d.bytes > o.bytes
}

// IsLargerThanOrEqualTo returns true if d >= o.
func (d DataSize) IsLargerThanOrEqualTo(o DataSize) bool {
	return d.bytes >= o.bytes
}

// IsSmallerThan returns true if d < o.
func (d DataSize) IsSmallerThan(o DataSize) bool {
	return d.bytes < o.bytes
}

// IsSmallerThanOrEqualTo returns true if d <= o.
func (d DataSize) IsSmallerThanOrEqualTo(o DataSize) bool {
	return d.bytes <= o.bytes
}

// Equal returns true if d and o have the same number of bytes.
func (d DataSize) Equal(o DataSize) bool {
	return d.bytes == o.bytes
}

// Compare returns -1, 0 or +1 as d is smaller than, equal to or larger
// than o.
func (d DataSize) Compare(o DataSize) int {
	switch {
	case d.bytes < o.bytes:
		return -1
	case d.bytes > o.bytes:
		return 1
	}
	return 0
}

// displayUnit returns the largest unit for which d is at least one whole
// unit. Values exactly on a threshold use the larger unit, and negative values
// always use bytes.
func (d DataSize) displayUnit() unit.SizeUnit {
	switch {
	case d.bytes < unit.Kilobyte:
		return unit.Bytes
	case d.bytes < unit.Megabyte:
		return unit.Kilobytes
	case d.bytes < unit.Gigabyte:
		return unit.Megabytes
	case d.bytes < unit.Terabyte:
		return unit.Gigabytes
	default:
		return unit.Terabytes
	}
}

// String renders d in whole units, e.g. "100 B", "1 KB" or "5 MB".
func (d DataSize) String() string {
	u := d.displayUnit()
	return strconv.FormatInt(d.To(u), 10) + " " + u.String()
}

// Format renders d like String, but with up to prec decimals, rounded,
// e.g. "1.5 KB". When rounding reaches 1024 the next larger unit is used, so
// 1048575 bytes renders as "1 MB" rather than "1024 KB".
func (d DataSize) Format(prec int) string {
	u := d.displayUnit()
	s := pretty.Float64(d.In(u), prec)
	for u < unit.Terabytes {
		if v, err := strconv.ParseFloat(s, 64); err != nil || v < 1024 {
			break
		}
		u++
		s = pretty.Float64(d.In(u), prec)
	}
	return s + " " + u.String()
}

// MarshalJSON encodes d as an integer number of bytes.
func (d DataSize) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.bytes, 10), nil
}

// UnmarshalJSON decodes an integer number of bytes.
func (d *DataSize) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrapf(err, "invalid data size %s", b)
	}
	d.bytes = n
	return nil
}
