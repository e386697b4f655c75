// Package logging builds the application logger. The terminal is owned by the
// effect while it runs, so log output goes to a file or nowhere.
package logging

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// New returns a logger writing to path at the given level. An empty path
// discards everything. The returned close function releases the file.
func New(path, level string) (*clog.Logger, func() error, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "sinkhole",
	})
	return logger, closeFn, nil
}
