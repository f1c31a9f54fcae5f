package httpapi

import (
	"net/http"
	"time"
)

// NewServer wraps handler in an *http.Server listening on addr. The write
// timeout covers a broadcast_tx_commit round trip.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
