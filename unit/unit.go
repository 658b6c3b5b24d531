// Package unit defines the byte-scale units used to express data sizes.
package unit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Scale factors in bytes.
const (
	Byte     int64 = 1
	Kilobyte       = 1024 * Byte
	Megabyte       = 1024 * Kilobyte
	Gigabyte       = 1024 * Megabyte
	Terabyte       = 1024 * Gigabyte
)

// ErrOverflow is returned by checked operations when a result does not fit
// in an int64.
var ErrOverflow = errors.New("int64 overflow")

// SizeUnit is a byte-scale unit.
type SizeUnit int

const (
	Bytes SizeUnit = iota
	Kilobytes
	Megabytes
	Gigabytes
	Terabytes
)

// Units contains all units, smallest first.
var Units = []SizeUnit{Bytes, Kilobytes, Megabytes, Gigabytes, Terabytes}

// Valid returns true if u is one of the defined units.
func (u SizeUnit) Valid() bool {
	return u >= Bytes && u <= Terabytes
}

// Scale returns the number of bytes in one u. It panics if u is not valid.
func (u SizeUnit) Scale() int64 {
	switch u {
	case Bytes:
		return Byte
	case Kilobytes:
		return Kilobyte
	case Megabytes:
		return Megabyte
	case Gigabytes:
		return Gigabyte
	case Terabytes:
		return Terabyte
	}
	panic(fmt.Sprintf("unit: invalid SizeUnit(%d)", int(u)))
}

// ToBytes returns n units in bytes. Overflow is not detected, and the result
// wraps around as int64 multiplication does. Use ToBytesChecked to detect it.
func (u SizeUnit) ToBytes(n int64) int64 {
	return n * u.Scale()
}

// ToBytesChecked is ToBytes, but returns an error wrapping ErrOverflow if the
// result does not fit in an int64.
func (u SizeUnit) ToBytesChecked(n int64) (b int64, err error) {
	if b, err = MulChecked(n, u.Scale()); err != nil {
		err = errors.Wrapf(err, "%d %s to bytes", n, u)
	}
	return
}

// FromBytes returns b bytes in units of u, truncated toward zero.
func (u SizeUnit) FromBytes(b int64) int64 {
	return b / u.Scale()
}

func (u SizeUnit) String() string {
	switch u {
	case Bytes:
		return "B"
	case Kilobytes:
		return "KB"
	case Megabytes:
		return "MB"
	case Gigabytes:
		return "GB"
	case Terabytes:
		return "TB"
	}
	return fmt.Sprintf("SizeUnit(%d)", int(u))
}

// AddChecked returns a + b, or ErrOverflow.
func AddChecked(a, b int64) (int64, error) {
	s := a + b
	// overflow iff the operands share a sign and the sum's sign differs
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

// SubChecked returns a - b, or ErrOverflow.
func SubChecked(a, b int64) (int64, error) {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, ErrOverflow
	}
	return d, nil
}

// MulChecked returns a * b, or ErrOverflow.
func MulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}
	return p, nil
}
