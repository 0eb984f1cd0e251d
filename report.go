package minprof

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	reportHeader = color.New(color.Bold)
	reportName   = color.New(color.FgCyan)
)

// reportRow is one rendered line of Report output.
type reportRow struct {
	name  string
	count string
	total string
	per   string
}

// Report writes a human-oriented summary of the registry to w. The
// count/time pairs a Section maintains (base|C and base|T) are folded
// into a single row for the base name with a derived ns/op column;
// every other counter is reported as a raw value. Names are colored
// when w is a terminal. Dump is the machine-readable companion.
func (r *Registry) Report(w io.Writer) error {
	entries := r.snapshot()

	times := make(map[string]*entry, len(entries))
	for _, e := range entries {
		if base, ok := strings.CutSuffix(e.name, TimeSuffix); ok {
			times[base] = e
		}
	}
	// mark paired timers up front; the pair renders at the position of
	// its count entry regardless of registration order
	folded := make(map[string]bool, len(times))
	for _, e := range entries {
		if base, ok := strings.CutSuffix(e.name, CountSuffix); ok {
			if te, ok := times[base]; ok {
				folded[te.name] = true
			}
		}
	}

	rows := make([]reportRow, 0, len(entries))
	for _, e := range entries {
		if base, ok := strings.CutSuffix(e.name, CountSuffix); ok {
			if te, ok := times[base]; ok {
				n := e.c.Value()
				total := time.Duration(te.c.Value())
				row := reportRow{
					name:  base,
					count: strconv.FormatUint(n, 10),
					total: total.String(),
					per:   "-",
				}
				if n > 0 {
					row.per = strconv.FormatUint(uint64(total)/n, 10)
				}
				rows = append(rows, row)
				continue
			}
		}
		if folded[e.name] {
			continue
		}
		if strings.HasSuffix(e.name, TimeSuffix) {
			rows = append(rows, reportRow{
				name:  e.name,
				count: "-",
				total: time.Duration(e.c.Value()).String(),
				per:   "-",
			})
			continue
		}
		rows = append(rows, reportRow{
			name:  e.name,
			count: strconv.FormatUint(e.c.Value(), 10),
			total: "-",
			per:   "-",
		})
	}

	nameW := len("name")
	for _, row := range rows {
		if len(row.name) > nameW {
			nameW = len(row.name)
		}
	}

	bw := bufio.NewWriter(w)
	// pad before coloring; escape codes have no printable width
	fmt.Fprintf(bw, "%s  %s  %s  %s\n",
		reportHeader.Sprint(padRight("name", nameW)),
		reportHeader.Sprint(fmt.Sprintf("%12s", "count")),
		reportHeader.Sprint(fmt.Sprintf("%14s", "total")),
		reportHeader.Sprint(fmt.Sprintf("%10s", "ns/op")),
	)
	for _, row := range rows {
		fmt.Fprintf(bw, "%s  %12s  %14s  %10s\n",
			reportName.Sprint(padRight(row.name, nameW)),
			row.count, row.total, row.per,
		)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("minprof: report: %w", err)
	}
	return nil
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// Report writes a summary of the default registry to w.
func Report(w io.Writer) error { return Default().Report(w) }
