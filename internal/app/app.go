package app

import (
	"context"
	"log"
	"net/http"

	"github.com/baropoint/tubegate/internal/config"
	"github.com/baropoint/tubegate/internal/domain/repository"
	"github.com/baropoint/tubegate/internal/youtube"
	"github.com/gorilla/mux"
)

// MetadataProvider is the slice of the YouTube client the handlers need.
type MetadataProvider interface {
	Search(ctx context.Context, query string, page, pageSize int, pageToken string) (*youtube.SearchPage, error)
	FetchOne(ctx context.Context, videoId string) (*youtube.Video, error)
}

type appHandler func(http.ResponseWriter, *http.Request) error

func (fn appHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := fn(w, r); err != nil {
		log.Printf("request failed: %s %s: %v", r.Method, r.URL.Path, err)
		e := toAppError(err)
		replyJSON(w, errorResponse{e.Message}, e.Code)
	}
}

// NewRouter wires the route table and the middleware into one handler.
// Lookup is an exact (method, path) match; anything else answers with the
// 404 envelope.
func NewRouter(cfg *config.Config, provider MetadataProvider, jobs repository.JobRepository, favorites repository.FavoriteRepository) http.Handler {
	c := &controller{
		cfg:       cfg,
		provider:  provider,
		submitter: &jobSubmitter{jobs},
		jobs:      jobs,
		favorites: favorites,
	}
	r := mux.NewRouter()
	r.Methods("GET").Path("/health").Handler(appHandler(c.health))
	r.Methods("POST").Path("/user/login").Handler(appHandler(c.login))
	r.Methods("POST").Path("/search").Handler(appHandler(c.search))
	r.Methods("POST").Path("/video-info").Handler(appHandler(c.videoInfo))
	r.Methods("POST").Path("/download-links").Handler(appHandler(c.downloadLinks))
	r.Methods("POST").Path("/download").Handler(appHandler(c.download))
	r.Methods("GET").Path("/user/favorites").Handler(appHandler(c.favoritesByUser))
	r.Methods("GET").Path("/job/{id}").Handler(appHandler(c.jobStatus))
	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)
	return withCORS(stripPrefixes(cfg.PathPrefixes, r))
}

// Unlisted (method, path) pairs answer with a diagnostic 404 envelope,
// never a server error.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	replyJSON(w, notFoundResponse{
		Error:  "API endpoint not found",
		Path:   r.URL.Path,
		Method: r.Method,
	}, http.StatusNotFound)
}
