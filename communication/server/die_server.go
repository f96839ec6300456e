package server

import (
	"context"
	"errors"
	"fmt"
	"ludo/communication"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// IntegersPath mirrors the random.org plain-text integer endpoint.
const IntegersPath = "/integers/"

// DieServer answers GET requests with one die value as a plain-text line, so
// an HTTP random source can run against it offline.
type DieServer struct {
	source communication.RandomSource
	mux    *http.ServeMux
}

// NewDieServer initializes and returns a new DieServer.
func NewDieServer(source communication.RandomSource) *DieServer {
	ds := &DieServer{
		source: source,
		mux:    http.NewServeMux(),
	}
	ds.mux.HandleFunc(IntegersPath, ds.handleIntegers)
	return ds
}

func (ds *DieServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ds.mux.ServeHTTP(w, r)
}

// Start listens on addr until ctx is done.
func (ds *DieServer) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           ds,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("die server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (ds *DieServer) handleIntegers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	value, err := ds.source.Roll(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("die server roll failed")
		http.Error(w, "roll unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%d\n", value)
}
