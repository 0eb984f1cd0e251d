package minprof

type registryConfig struct {
	logger Logger
}

// Option configures a Registry constructed by New.
type Option func(*registryConfig)

// WithLogger routes the registry's internal reports to l.
func WithLogger(l Logger) Option {
	return func(cfg *registryConfig) { cfg.logger = l }
}

// CounterMeta carries optional metadata attached to a named counter at
// first resolution. It is advisory only and does not affect
// accumulation.
type CounterMeta struct {
	Help string
	Unit string
}

// CounterOption mutates CounterMeta.
type CounterOption func(*CounterMeta)

// WithHelp sets an advisory description for the counter.
func WithHelp(help string) CounterOption {
	return func(m *CounterMeta) { m.Help = help }
}

// WithUnit sets an advisory unit for the counter (e.g. "1", "ns").
func WithUnit(unit string) CounterOption {
	return func(m *CounterMeta) { m.Unit = unit }
}

// applyCounterOptions builds CounterMeta from options.
func applyCounterOptions(opts []CounterOption) CounterMeta {
	var m CounterMeta
	for _, o := range opts {
		if o != nil {
			o(&m)
		}
	}
	return m
}
