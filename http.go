package minprof

import "github.com/valyala/fasthttp"

// Handler returns a fasthttp handler serving the registry dump, so a
// long-running program can expose its counters over HTTP:
//
//	fasthttp.ListenAndServe(":6060", reg.Handler())
//
// The body is the same "name, value" text Dump produces.
func (r *Registry) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("text/csv; charset=utf-8")
		if err := r.Dump(ctx); err != nil {
			ctx.Error("minprof: dump failed", fasthttp.StatusInternalServerError)
		}
	}
}

// Handler returns a fasthttp handler serving the default registry's
// dump.
func Handler() fasthttp.RequestHandler {
	return Default().Handler()
}

// ListenAndServe exposes the default registry's dump on addr. It
// blocks, like fasthttp.ListenAndServe.
func ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, Default().Handler())
}
