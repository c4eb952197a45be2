// Package file writes word lists as plain text files
package file

import (
	"bufio"
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/kodekulture/wordlister/repository"
)

// Stdout is the target that writes to the configured standard output instead of a file
const Stdout = "-"

var _ repository.Sink = new(Sink)

type Sink struct {
	fs     afero.Fs
	stdout io.Writer
}

// New returns a Sink writing files on fs and the Stdout target to stdout
func New(fs afero.Fs, stdout io.Writer) *Sink {
	return &Sink{fs: fs, stdout: stdout}
}

// Write implements repository.Sink.
// Files are written to a temporary sibling first and renamed over target once complete.
func (s *Sink) Write(ctx context.Context, target string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == Stdout {
		return writeLines(s.stdout, lines)
	}

	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(s.fs, dir, ".wordlist-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if err = writeLines(tmp, lines); err != nil {
		tmp.Close()
		s.fs.Remove(name)
		return err
	}
	if err = tmp.Close(); err != nil {
		s.fs.Remove(name)
		return err
	}
	if err = s.fs.Rename(name, target); err != nil {
		s.fs.Remove(name)
		return err
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
