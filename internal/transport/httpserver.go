package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gitlab.com/TitanInd/deepmatch/internal/interfaces"
)

const shutdownTimeout = 5 * time.Second

var _ interfaces.Runnable = (*HTTPServer)(nil)

type HTTPServer struct {
	serverAddr string
	handler    http.Handler

	log interfaces.ILogger
}

func NewHTTPServer(serverAddr string, handler http.Handler, log interfaces.ILogger) *HTTPServer {
	return &HTTPServer{
		serverAddr: serverAddr,
		handler:    handler,
		log:        log,
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.serverAddr,
		Handler: s.handler,
	}

	serverErr := make(chan error, 1)

	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	s.log.Infof("http server is listening: %s", s.serverAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Infof("http server closed: %s", s.serverAddr)
		return ctx.Err()
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
