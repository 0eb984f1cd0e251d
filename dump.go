package minprof

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultDumpFile is the file DumpFile writes to when given an empty
// path.
const DefaultDumpFile = "minprof.csv"

// Dump writes every registered counter to w, one "name, value" line
// per entry in registration order, values in plain base-10. Counters
// incremented concurrently with the dump are read atomically one at a
// time; the emitted lines form no cross-counter snapshot.
func (r *Registry) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.snapshot() {
		bw.WriteString(e.name)
		bw.WriteString(", ")
		bw.WriteString(strconv.FormatUint(e.c.Value(), 10))
		bw.WriteByte('\n')
	}
	// bufio write errors are sticky and resurface here
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("minprof: dump: %w", err)
	}
	return nil
}

// DumpFile dumps to the named file, creating it and truncating any
// previous contents. An empty path means DefaultDumpFile. Errors on
// open, write or close are returned; a destination that cannot be
// opened never silently swallows the dump.
func (r *Registry) DumpFile(path string) error {
	if path == "" {
		path = DefaultDumpFile
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("minprof: dump to %s: %w", path, err)
	}
	if err := r.Dump(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("minprof: dump to %s: %w", path, err)
	}
	return nil
}

// Dump writes the default registry to w.
func Dump(w io.Writer) error { return Default().Dump(w) }

// DumpFile dumps the default registry to the named file; an empty path
// means DefaultDumpFile.
func DumpFile(path string) error { return Default().DumpFile(path) }
