package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

var termIsTerminal = term.IsTerminal

// newLoadProgress returns a byte-count callback that drives a progress bar
// sized to the catalog file, and a function that finishes the bar. When w is
// not a terminal, or the file size is unknown, both are no-ops.
func newLoadProgress(w io.Writer, path string) (func(int), func()) {
	noop := func() {}

	info, err := os.Stat(path)
	if err != nil || !isTerminal(w) {
		return nil, noop
	}

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Loading catalog...[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	add := func(n int) {
		if err := bar.Add(n); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
	finish := func() {
		if err := bar.Finish(); err != nil {
			slog.Warn("Failed to finish progress bar", "error", err)
		}
	}
	return add, finish
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && termIsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
