package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/config"
	"github.com/valyala/fasthttp"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server exposes the planner calculators as a JSON API.
type Server struct {
	engine *calculation.PlanEngine
	parser *config.InputParser
	logger calculation.Logger
}

// New creates a server around engine; the engine's logger is reused.
func New(engine *calculation.PlanEngine) *Server {
	if engine == nil {
		engine = calculation.NewPlanEngine()
	}
	return &Server{engine: engine, parser: config.NewInputParser(), logger: engine.Logger}
}

type route struct {
	method  string
	handler func(ctx *fasthttp.RequestCtx) (any, error)
}

func (s *Server) routes() map[string]route {
	return map[string]route{
		"/healthz":    {fasthttp.MethodGet, s.handleHealth},
		"/allocation": {fasthttp.MethodGet, s.handleAllocation},
		"/comparison": {fasthttp.MethodGet, s.handleComparison},
		"/history":    {fasthttp.MethodGet, s.handleHistory},
		"/project":    {fasthttp.MethodPost, s.handleProject},
		"/growth":     {fasthttp.MethodPost, s.handleGrowth},
		"/sip":        {fasthttp.MethodPost, s.handleSIP},
		"/income":     {fasthttp.MethodPost, s.handleIncome},
		"/tax":        {fasthttp.MethodPost, s.handleTax},
		"/plan":       {fasthttp.MethodPost, s.handlePlan},
	}
}

// Handler returns the request router.
func (s *Server) Handler() fasthttp.RequestHandler {
	routes := s.routes()
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		r, ok := routes[path]
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "Unknown path "+path)
			return
		}
		if string(ctx.Method()) != r.method {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		resp, err := r.handler(ctx)
		if err != nil {
			status := statusFor(err)
			if status == fasthttp.StatusInternalServerError {
				s.logger.Errorf("%s %s: %v", r.method, path, err)
			}
			writeError(ctx, status, err.Error())
			return
		}
		s.logger.Debugf("%s %s ok", r.method, path)
		writeJSON(ctx, fasthttp.StatusOK, resp)
	}
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{Handler: s.Handler(), Name: "portfolio-planner"}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(addr) }()
	s.logger.Infof("planner API listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, calculation.ErrInvalidArgument),
		errors.Is(err, config.ErrInvalidPlan),
		errors.Is(err, errBadRequest):
		return fasthttp.StatusBadRequest
	}
	return fasthttp.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")

func decodeBody(ctx *fasthttp.RequestCtx, v any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return fmt.Errorf("%w: request body is required", errBadRequest)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		b = []byte(`{"status":500,"message":"encode response"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
