// Package assets serves the viewer page: the compiled WASM client and
// its static files, with every backend route proxied to the map backend.
package assets

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lpar/gzipped"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eeviewer_requests_total",
		Help: "Total number of requests by route and status code",
	}, []string{"route", "code"})
	requestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eeviewer_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000, 30000},
	}, []string{"route"})
	backendErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eeviewer_backend_errors_total",
		Help: "Total number of requests the backend could not be reached for",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDurationMs)
	prometheus.MustRegister(backendErrorsTotal)
}

// BackendRoutes are the path prefixes answered by the map backend.
var BackendRoutes = []string{"/map/", "/details/", "/custom/", "/country/", "/static/"}

// Config configures the handler.
type Config struct {
	// Dir holds the client files served under /gui/. Files may be
	// precompressed with gzip or brotli.
	Dir string

	// StaticDir, if set, serves /static/ from disk instead of the
	// backend. Precomputed detail files are written there.
	StaticDir string

	// Backend is the map backend. It also renders the page itself.
	Backend *url.URL

	Log logrus.FieldLogger
}

// NewHandler returns the handler of the viewer site.
func NewHandler(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	proxy := httputil.NewSingleHostReverseProxy(cfg.Backend)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		backendErrorsTotal.Inc()
		log.WithError(err).WithField("path", r.URL.Path).Warn("assets: backend request failed")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	}

	mux := http.NewServeMux()
	for _, p := range BackendRoutes {
		if p == "/static/" && cfg.StaticDir != "" {
			continue
		}
		mux.Handle(p, proxy)
	}
	if cfg.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", gzipped.FileServer(http.Dir(cfg.StaticDir))))
	}
	mux.Handle("/gui/", http.StripPrefix("/gui/", gzipped.FileServer(http.Dir(cfg.Dir))))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", proxy)
	return instrument(mux, log)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// route returns the metrics label of path.
func route(path string) string {
	if path == "/metrics" {
		return path
	}
	if strings.HasPrefix(path, "/gui/") {
		return "/gui/"
	}
	for _, p := range BackendRoutes {
		if strings.HasPrefix(path, p) {
			return p
		}
	}
	return "/"
}

func instrument(h http.Handler, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(sw, r)
		rt := route(r.URL.Path)
		d := time.Since(start)
		requestsTotal.WithLabelValues(rt, strconv.Itoa(sw.status)).Inc()
		requestDurationMs.WithLabelValues(rt).Observe(float64(d) / float64(time.Millisecond))
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": d,
		}).Debug("assets: request")
	})
}
