package app

import (
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/riskibarqy/futsal-stats/internal/config"
)

// fastHTTPServer serves the net/http router through fasthttp.
type fastHTTPServer struct {
	addr string
	srv  *fasthttp.Server
}

func newFastHTTPServer(cfg config.Config, router http.Handler) *fastHTTPServer {
	return &fastHTTPServer{
		addr: cfg.HTTPAddr,
		srv: &fasthttp.Server{
			Handler:      fasthttpadaptor.NewFastHTTPHandler(router),
			Name:         cfg.ServiceName,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (s *fastHTTPServer) ListenAndServe() error {
	return s.srv.ListenAndServe(s.addr)
}

func (s *fastHTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}
