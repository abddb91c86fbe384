package ioconvert

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a byte counting progress bar over the input.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

// trackReader wraps r with a progress bar if enabled. The returned
// function finishes the bar.
func trackReader(
	r io.Reader,
	total int64,
	enabled bool,
) (io.Reader, func()) {
	if !enabled || total <= 0 {
		return r, func() {}
	}
	bar := newProgressBar(total, "Parsing RDF ")
	return bar.NewProxyReader(r), func() { bar.Finish() }
}
