// Package progress renders download progress on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	barWidth       = 30
	redrawInterval = 100 * time.Millisecond
)

// Bar draws a single-line progress bar. Write errors are ignored.
type Bar struct {
	out      io.Writer
	label    string
	model    progress.Model
	total    int64
	current  int64
	lastDraw time.Time
	now      func() time.Time
}

func NewBar(out io.Writer, label string) *Bar {
	return &Bar{
		out:   out,
		label: label,
		model: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
		),
		now: time.Now,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start resets the bar. A negative total means the size is unknown and only
// the transferred bytes are shown.
func (b *Bar) Start(total int64) {
	b.total = total
	b.current = 0
	b.draw(true)
}

func (b *Bar) Advance(n int64) {
	b.current += n
	b.draw(false)
}

func (b *Bar) Finish() {
	b.draw(true)
	_, _ = fmt.Fprintln(b.out)
}

func (b *Bar) draw(force bool) {
	now := b.now()
	if !force && now.Sub(b.lastDraw) < redrawInterval {
		return
	}
	b.lastDraw = now
	_, _ = io.WriteString(b.out, "\r"+b.line()+"\x1b[K")
}

func (b *Bar) line() string {
	if b.total <= 0 {
		return fmt.Sprintf("%s %s", b.label, humanize.Bytes(uint64(b.current)))
	}

	percent := float64(b.current) / float64(b.total)
	if percent > 1 {
		percent = 1
	}
	return fmt.Sprintf("%s %s %s / %s",
		b.label,
		b.model.ViewAs(percent),
		humanize.Bytes(uint64(b.current)),
		humanize.Bytes(uint64(b.total)))
}
