/*
Package minprof is a minimal, low-overhead instrumentation library: it
resolves statically-known names to process-wide lock-free counters and
timers, accumulates into them from any goroutine, and dumps everything
as a flat name/value report.

# Overview

The library is organized around one directory type and a few small
timing adapters:

1. Registry: resolves a name to exactly one Counter for the life of the
process and records every instance ever created, in first-use order.
Resolution of an existing name is a single lock-free map load; first use
registers the name exactly once, even when racing. A Timer is the same
storage viewed as accumulated nanoseconds.

	reg := minprof.New()
	c := reg.Counter("requests|C", minprof.WithHelp("served requests"))
	t := reg.Timer("requests|T")

2. Adapters: Stopwatch (manual start/split/stop), Scopewatch (starts on
construction, retires exactly once on Stop, meant for defer) and
Section (a Scopewatch that also counts entries under <base>|C while
timing under <base>|T).

Most programs never construct a Registry and use the package-level
functions on the process-wide default instead. Resolving at package
variable initialization registers names before main runs:

	var nParsed = minprof.GetCounter("parse|C")

	func handle() {
		defer minprof.EnterSection("handle")()
		// ...
	}

# Reporting

Registry state is exported through enumeration (Each, Name, At, Find),
the CSV-style Dump ("name, value" per line, registration order, default
file minprof.csv), the colored console Report, and a fasthttp Handler
for scraping over HTTP. All dump paths return explicit errors; a sink
that cannot be opened or written is never silently dropped.

# Consistency

Counters are linearizable individually: the final value is the exact
sum of all increments, with no lost updates. No ordering is promised
between counters, and a dump racing ongoing increments reads each
counter atomically but takes no global snapshot. That trade-off buys
increment cost of a single atomic add.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector (enables caller-contract assertions):

	go test -race ./...

- Enable the debug build tag (same assertions, without the detector):

	go test -tags=debug ./...

Caller-contract violations — splitting an idle Stopwatch, adding a
negative duration — panic only in debug and race builds. Release builds
do not check them; the results are garbage, by contract.

# Notes

- Counters only ever go up. There is no decrement, reset or removal,
and the default registry is never torn down.

- A Stopwatch, Scopewatch or Section must stay on the goroutine that
created it; the Counter/Timer they retire into is safe to share.
*/
package minprof
