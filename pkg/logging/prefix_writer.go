package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each complete line.
// Partial lines are held back until their newline arrives.
type PrefixWriter struct {
	prefix string
	out    io.Writer
	buf    bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: prefix, out: w}
}

// Write implements io.Writer. It reports the full input length as written
// even though incomplete lines stay buffered.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	n := len(p)
	if _, err := pw.buf.Write(p); err != nil {
		return 0, err
	}

	for {
		line, err := pw.buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line: put it back and wait for more data.
			if len(line) > 0 {
				if _, wErr := pw.buf.Write(line); wErr != nil {
					return 0, wErr
				}
			}
			break
		}

		if _, err := pw.out.Write([]byte(pw.prefix)); err != nil {
			return 0, err
		}
		if _, err := pw.out.Write(line); err != nil {
			return 0, err
		}
	}

	return n, nil
}
