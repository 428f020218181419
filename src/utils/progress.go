package utils

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner starts an indeterminate spinner labelled `name` on stderr and
// returns a function that stops it. The returned function blocks until the
// render goroutine has exited. Nothing is drawn when stderr is not a terminal.
func Spinner(name string) (stop func()) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	return NewSpinner(os.Stderr, name)
}

// NewSpinner is Spinner with an explicit output.
func NewSpinner(w io.Writer, name string) (stop func()) {
	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(2), mpb.WithRefreshRate(120*time.Millisecond))
	start := time.Now()
	filler := mpb.BarFillerFunc(func(w io.Writer, _ int, _ decor.Statistics) {
		i := int(time.Since(start)/(120*time.Millisecond)) % len(spinnerFrames)
		_, _ = io.WriteString(w, spinnerFrames[i])
	})
	bar := p.Add(0, filler,
		mpb.PrependDecorators(decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight})),
		mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
	)
	return func() {
		bar.Abort(true)
		p.Wait()
	}
}
