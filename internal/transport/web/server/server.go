package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jbeshir/internship-recommender/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler: s.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	var err error
	if s.TLSDisabled {
		srv.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
		domain.LoggerFromContext(ctx).InfoContext(ctx, "serving HTTP", "addr", srv.Addr)
		err = srv.ListenAndServe()
	} else {
		domain.LoggerFromContext(ctx).InfoContext(ctx, "serving HTTPS", "hostnames", s.AutocertHostnames)
		err = srv.Serve(autocert.NewListener(s.AutocertHostnames...))
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
