//go:build linux

// Package fsstat reports filesystem capacity as data sizes.
package fsstat

import (
	"io"

	"github.com/heistp/valueobject/datasize"
	"github.com/heistp/valueobject/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Log is the logger used by this package.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Usage is the capacity of a filesystem.
type Usage struct {
	// Path is the path the filesystem was looked up by.
	Path string

	// Total is the size of the filesystem.
	Total datasize.DataSize

	// Free is the free space, including space reserved for root.
	Free datasize.DataSize

	// Available is the free space available to unprivileged users.
	Available datasize.DataSize
}

// Used returns the space in use.
func (u Usage) Used() datasize.DataSize {
	return u.Total.Subtract(u.Free)
}

// Stat returns the Usage of the filesystem containing path.
func Stat(path string) (u Usage, err error) {
	var st unix.Statfs_t
	if err = unix.Statfs(path, &st); err != nil {
		err = errors.Wrapf(err, "statfs %s", path)
		return
	}

	// block counts are in units of the fragment size where one is reported
	bs := int64(st.Frsize)
	if bs == 0 {
		bs = int64(st.Bsize)
	}
	size := func(blocks uint64) datasize.DataSize {
		return datasize.OfBytes(int64(blocks)).Multiply(bs)
	}

	u = Usage{
		Path:      path,
		Total:     size(st.Blocks),
		Free:      size(st.Bfree),
		Available: size(st.Bavail),
	}

	Log.WithFields(logrus.Fields{
		"path":      path,
		"total":     u.Total,
		"available": u.Available,
	}).Debug("statfs")

	return
}

// Emit prints the usage in text form.
func (u Usage) Emit(w io.Writer) {
	tw := pretty.NewTableWriterPad(w, 2, "")
	tw.Printf("Path: %s", u.Path)
	tw.URow("Space", "Size", "Bytes")
	tw.Row("Total", u.Total.Format(1), u.Total.Bytes())
	tw.Row("Used", u.Used().Format(1), u.Used().Bytes())
	tw.Row("Free", u.Free.Format(1), u.Free.Bytes())
	tw.Row("Available", u.Available.Format(1), u.Available.Bytes())
	tw.Flush()
}
