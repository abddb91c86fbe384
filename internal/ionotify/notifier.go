// Package ionotify sends conversion notifications to the console and to
// the structured log.
package ionotify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gn"
	rdftaxon "github.com/gnames/rdftaxon/pkg"
)

// markup tags understood by gn console output
var markup = strings.NewReplacer(
	"<em>", "", "</em>", "",
	"<warn>", "", "</warn>", "",
	"<title>", "", "</title>", "",
)

type notifier struct {
	quiet bool
}

// New creates a Notifier. In quiet mode status messages go only to the
// log, warnings and errors still reach the console.
func New(quiet bool) rdftaxon.Notifier {
	return &notifier{quiet: quiet}
}

func (n *notifier) Status(format string, args ...any) {
	slog.Info(plain(format, args...))
	if n.quiet {
		return
	}
	gn.Info(format, args...)
}

func (n *notifier) Warning(format string, args ...any) {
	slog.Warn(plain(format, args...))
	gn.Warn(format, args...)
}

func (n *notifier) Error(err error) {
	if err == nil {
		return
	}
	slog.Error("Conversion failed", "error", err)
	gn.PrintErrorMessage(err)
}

// plain renders a message without console markup.
func plain(format string, args ...any) string {
	return markup.Replace(fmt.Sprintf(format, args...))
}
