package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/baropoint/tubegate/internal/app"
	"github.com/baropoint/tubegate/internal/config"
	"github.com/baropoint/tubegate/internal/infrastructure/persistence"
	"github.com/baropoint/tubegate/internal/youtube"
	"github.com/joho/godotenv"
)

var (
	addr = flag.String("addr", "", "web server address, overrides ADDR")
	cert = flag.String("cert", "", "path of TLS certificate file, overrides CERT_FILE")
	key  = flag.String("key", "", "path of TLS private key file, overrides CERT_KEY")
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	flag.Parse()

	cfg := config.FromEnv()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *cert != "" {
		cfg.CertFile = *cert
	}
	if *key != "" {
		cfg.KeyFile = *key
	}
	if cfg.YouTubeAPIKey == "" {
		log.Println("warning: YOUTUBE_API_KEY is not set, provider calls will fail")
	}

	sess := session.Must(session.NewSession())
	handler := app.NewRouter(
		cfg,
		youtube.NewClient(cfg.YouTubeAPIKey),
		persistence.NewJobRepository(sess, cfg.JobsTable),
		persistence.NewFavoriteRepository(sess, cfg.FavoritesTable),
	)

	srv := &http.Server{
		Handler:      handler,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("the server started on port: %s\n", cfg.Addr)

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		log.Fatal(srv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile))
	} else {
		log.Fatal(srv.ListenAndServe())
	}
}
