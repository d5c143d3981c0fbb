package main

import (
	"crypto/tls"
	"flag"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ctessum/eeviewer/internal/assets"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

// env returns the environment variable key, or def if it is unset.
func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load(".env")

	addr := flag.String("addr", env("EEVIEWER_ADDR", "localhost:10000"), "address to serve on")
	backend := flag.String("backend", env("EEVIEWER_BACKEND", "http://localhost:8080"), "map backend URL")
	dir := flag.String("assets", env("EEVIEWER_ASSETS", "gui/html"), "directory of the compiled client")
	static := flag.String("static", env("EEVIEWER_STATIC", ""), "directory of precomputed static files")
	certFile := flag.String("cert", env("EEVIEWER_CERT", ""), "TLS certificate file")
	keyFile := flag.String("key", env("EEVIEWER_KEY", ""), "TLS key file")
	flag.Parse()

	if lvl, err := logrus.ParseLevel(env("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.WithError(err).Warn("invalid LOG_LEVEL")
	}

	u, err := url.Parse(*backend)
	if err != nil {
		logger.WithError(err).Fatal("invalid backend URL")
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: assets.NewHandler(assets.Config{
			Dir:       *dir,
			StaticDir: *static,
			Backend:   u,
			Log:       logger,
		}),
		// Some security settings
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		TLSConfig: &tls.Config{
			PreferServerCipherSuites: true,
			CurvePreferences: []tls.CurveID{
				tls.CurveP256,
				tls.X25519,
			},
		},
	}

	if *certFile == "" {
		logger.Info("Serving on http://" + *addr)
		logger.Fatal(srv.ListenAndServe())
	}
	logger.Info("Serving on https://" + *addr)
	logger.Fatal(srv.ListenAndServeTLS(*certFile, *keyFile))
}
