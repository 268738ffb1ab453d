package ioextract

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// isTerminal is true if stderr is attached to a terminal.
func isTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newProgressBar wraps r into a reader that shows the share of size
// already read. Without a known size or a terminal r is returned as is.
func newProgressBar(r io.Reader, size int64, prefix string) (io.Reader, func()) {
	if size <= 0 || !isTerminal() {
		return r, func() {}
	}
	bar := pb.Full.Start64(size)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar.NewProxyReader(r), func() { bar.Finish() }
}

// counter prints the number of processed pages when no progress bar is
// shown.
type counter struct {
	enabled bool
	start   time.Time
	every   int
}

func newCounter(enabled bool) *counter {
	return &counter{enabled: enabled && isTerminal(), start: time.Now(), every: 10_000}
}

func (c *counter) tick(pages int) {
	if !c.enabled || pages%c.every != 0 {
		return
	}
	spent := time.Since(c.start).Seconds()
	speed := int64(float64(pages) / spent)
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 40))
	fmt.Fprintf(os.Stderr, "\rScanned %s pages, %s pages/sec",
		humanize.Comma(int64(pages)), humanize.Comma(speed))
}

func (c *counter) done() {
	if !c.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 40))
}
