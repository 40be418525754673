// Package exprserve exposes the expression tools over HTTP.
package exprserve

import (
	"encoding/hex"
	"errors"
	"exprtree-go/exprtool"
	"exprtree-go/exprtree"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tevino/abool/v2"
	"github.com/valyala/fasthttp"
	"github.com/zeebo/blake3"
)

// Stats is a snapshot of the request counters.
type Stats struct {
	Requests int64
	OK       int64
	Failed   int64
	NotFound int64
}

func (s Stats) String() string {
	return fmt.Sprintf("requests=%d ok=%d failed=%d notfound=%d",
		s.Requests, s.OK, s.Failed, s.NotFound)
}

type Service struct {
	// Bindings shared by every request; query bindings shadow them.
	env    *exprtree.BindingEnv
	strict bool

	requests atomic.Int64
	ok       atomic.Int64
	failed   atomic.Int64
	notFound atomic.Int64

	statsRunning *abool.AtomicBool
	scheduler    gocron.Scheduler
	server       *fasthttp.Server
}

// NewService returns a service resolving variables against env, which may
// be nil.
func NewService(env *exprtree.BindingEnv, strict bool) *Service {
	if env == nil {
		env = exprtree.NewBindingEnv()
	}
	ret := Service{}
	ret.env = env
	ret.strict = strict
	ret.statsRunning = abool.NewBool(false)
	ret.server = &fasthttp.Server{
		Handler:      ret.Handler,
		Name:         "exprserve",
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	return &ret
}

func (s *Service) Stats() Stats {
	return Stats{
		Requests: s.requests.Load(),
		OK:       s.ok.Load(),
		Failed:   s.failed.Load(),
		NotFound: s.notFound.Load(),
	}
}

// Handler serves GET /<tool>?expr=...&bind=name=value and GET /stats.
func (s *Service) Handler(ctx *fasthttp.RequestCtx) {
	ctx.Response.Reset()
	s.requests.Add(1)

	if !ctx.IsGet() && !ctx.IsHead() {
		s.failed.Add(1)
		ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(string(ctx.Path()), "/")
	if name == "stats" {
		s.ok.Add(1)
		s.reply(ctx, s.Stats().String())
		return
	}
	tool := exprtool.Lookup(name)
	if tool == nil {
		s.notFound.Add(1)
		ctx.Error(fmt.Sprintf("unknown tool %q", name), fasthttp.StatusNotFound)
		return
	}

	env, err := s.requestEnv(ctx)
	if err != nil {
		s.failed.Add(1)
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	out, err := tool.Run(string(ctx.QueryArgs().Peek("expr")), env, s.strict)
	if err != nil {
		s.failed.Add(1)
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	s.ok.Add(1)
	s.reply(ctx, out)
}

func (s *Service) requestEnv(ctx *fasthttp.RequestCtx) (*exprtree.BindingEnv, error) {
	env := exprtree.NewBindingEnvWithParent(s.env)
	for _, bind := range ctx.QueryArgs().PeekMulti("bind") {
		name, value, err := exprtree.ParseBinding(string(bind))
		if err != nil {
			return nil, err
		}
		if err := env.AddBinding(name, value); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (s *Service) reply(ctx *fasthttp.RequestCtx, body string) {
	sum := blake3.Sum256([]byte(body))
	ctx.Response.Header.Set("ETag", `"`+hex.EncodeToString(sum[:16])+`"`)
	ctx.Success("text/plain; charset=utf-8", []byte(body+"\n"))
}

// ListenAndServe blocks serving on addr until Shutdown is called.
func (s *Service) ListenAndServe(addr string) error {
	log.Printf("Starting HTTP server on %q", addr)
	return s.server.ListenAndServe(addr)
}

// Shutdown stops the stats job and the HTTP server.
func (s *Service) Shutdown() error {
	var errs []error
	if err := s.StopStats(); err != nil {
		errs = append(errs, err)
	}
	if err := s.server.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
