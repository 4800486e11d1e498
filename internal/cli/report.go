package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// reporter writes ERROR:/WARNING: diagnostics, coloured on a terminal.
type reporter struct {
	log   *log.Logger
	color bool
}

func newReporter(w io.Writer) reporter {
	return reporter{log: log.New(w, "", 0), color: colorEnabled(w)}
}

// colorEnabled honours NO_COLOR and TERM=dumb and requires w to be a
// terminal.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r reporter) tag(label, color string) string {
	if !r.color {
		return label
	}

	return color + label + ansiReset
}

func (r reporter) errorf(format string, args ...interface{}) {
	r.log.Print(r.tag("ERROR:", ansiRed) + " " + fmt.Sprintf(format, args...))
}

func (r reporter) warnf(format string, args ...interface{}) {
	r.log.Print(r.tag("WARNING:", ansiYellow) + " " + fmt.Sprintf(format, args...))
}
