// Copyright © 2025 The Gotheme Project.

package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"
	"github.com/zosmac/gotheme/switcher"
	"golang.org/x/net/websocket"

	// enable web server to handle /debug/pprof queries
	_ "net/http/pprof"
)

type (
	// Source publishes the driver status.
	Source interface {
		Current() switcher.Status
	}
)

// httpHeader is added to every response.
var httpHeader = http.Header{
	"Access-Control-Allow-Origin": []string{"http://localhost"},
	"Content-Type":                []string{"application/json"},
}

// Handler returns the status endpoints for src.
func Handler(src Source) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/state", stateHandler(src))
	mux.Handle("/metrics", prometheusHandler(src))
	mux.Handle("/ws", wsHandler(src))
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	return mux
}

// stateHandler reports the status as JSON.
func stateHandler(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		for key, values := range httpHeader {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if err := json.NewEncoder(w).Encode(src.Current()); err != nil {
			gocore.Error("state Encode", err).Warn()
		}
	}
}

// prometheusHandler responds to Prometheus Collect requests.
func prometheusHandler(src Source) http.Handler {
	// the default registry is not used as it adds Go runtime metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(&prometheusCollector{src: src})
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// wsHandler opens a web socket that answers each message with the status.
func wsHandler(src Source) http.Handler {
	return websocket.Server{
		Config: websocket.Config{
			Origin: &url.URL{
				Scheme: "http",
				Host:   "localhost",
			},
			Version: websocket.ProtocolVersionHybi,
			Header:  httpHeader,
		},
		Handler: func(ws *websocket.Conn) {
			defer ws.Close()
			var msg string
			for {
				if err := websocket.Message.Receive(ws, &msg); err != nil {
					return
				}
				if err := websocket.JSON.Send(ws, src.Current()); err != nil {
					gocore.Error("websocket Send", err).Warn()
					return
				}
			}
		},
		Handshake: func(c *websocket.Config, r *http.Request) error {
			return nil
		},
	}
}

// Serve starts the status server on the -port flag's port, unless it is 0.
func Serve(ctx context.Context, src Source) {
	if flags.port == 0 {
		return
	}

	server := &http.Server{
		Addr:    "localhost:" + strconv.Itoa(flags.port),
		Handler: Handler(src),
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	go func() {
		// a cert.pem and key.pem in ~/.ssh, as made by crypto/tls's
		// generate_cert -host localhost, switch the server to https
		scheme := "http"
		serve := func() error { return server.ListenAndServe() }
		if u, err := user.Current(); err == nil {
			certfile := filepath.Join(u.HomeDir, ".ssh", "cert.pem")
			keyfile := filepath.Join(u.HomeDir, ".ssh", "key.pem")
			if _, err := os.Stat(certfile); err == nil {
				if _, err := os.Stat(keyfile); err == nil {
					scheme = "https"
					serve = func() error { return server.ListenAndServeTLS(certfile, keyfile) }
				}
			}
		}
		gocore.Error("status server", nil, map[string]string{
			"listen": scheme + "://" + server.Addr,
		}).Info()
		if err := serve(); err != http.ErrServerClosed {
			gocore.Error("status server", err).Err()
		}
	}()
}
