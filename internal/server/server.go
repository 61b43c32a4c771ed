package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"loanexport/internal/handlers"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(port string, h *handlers.Handlers, authMW func(http.Handler) http.Handler) *Server {
	mux := http.NewServeMux()

	if h != nil {
		mux.HandleFunc("/health", h.Health)

		export := http.Handler(http.HandlerFunc(h.Export))
		list := http.Handler(http.HandlerFunc(h.ListExports))
		get := http.Handler(http.HandlerFunc(h.GetExport))
		if authMW != nil {
			export = authMW(export)
			list = authMW(list)
			get = authMW(get)
		}
		mux.Handle("POST /export", export)
		mux.Handle("GET /exports", list)
		mux.Handle("GET /exports/{id}", get)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
