package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/baropoint/tubegate/internal/config"
	"github.com/baropoint/tubegate/internal/domain/entity"
	"github.com/baropoint/tubegate/internal/domain/repository"
	"github.com/baropoint/tubegate/internal/youtube"
	"github.com/gorilla/mux"
	"golang.org/x/exp/slices"
)

const serviceName = "youtube-gateway-api"

// Download links are synthesized watch-URL variants for client-side
// fetching; the gateway only returns metadata and constructed URLs, it
// never transfers media bytes itself.
var downloadQualities = []string{"720p", "480p", "360p", "audio"}

type controller struct {
	cfg       *config.Config
	provider  MetadataProvider
	submitter *jobSubmitter
	jobs      repository.JobRepository
	favorites repository.FavoriteRepository
}

// Report the service status.
func (c *controller) health(w http.ResponseWriter, r *http.Request) error {
	return replyJSON(w, healthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
	}, http.StatusOK)
}

// Check the submitted credentials against the pre-registered allow-list.
// No token or session is issued, and the profile never carries the
// password.
func (c *controller) login(w http.ResponseWriter, r *http.Request) error {
	var data loginRequest
	if err := parseJSON(r, &data); err != nil {
		return err
	}
	if data.Email == "" || data.Password == "" {
		return errValidation("email and password must be required")
	}
	i := slices.IndexFunc(c.cfg.AllowedUsers, func(u config.AllowedUser) bool {
		return u.Email == data.Email && u.Password == data.Password
	})
	if i < 0 {
		return errUnauthorized("unknown email or wrong password")
	}
	user := c.cfg.AllowedUsers[i]
	return replyJSON(w, loginResponse{
		Success: true,
		User: userProfile{
			Id:        user.Id,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Message: "login succeeded",
	}, http.StatusOK)
}

// Search videos and enrich the matches with duration and statistics.
func (c *controller) search(w http.ResponseWriter, r *http.Request) error {
	var data searchRequest
	if err := parseJSON(r, &data); err != nil {
		return err
	}
	if strings.TrimSpace(data.Query) == "" {
		return errValidation("search query must be required")
	}
	page, err := c.provider.Search(r.Context(), data.Query, data.Page, data.PageSize, data.PageToken)
	if err != nil {
		return err
	}
	return replyJSON(w, searchResponse{
		Success:    true,
		Query:      page.Query,
		Videos:     page.Videos,
		Pagination: page.Pagination,
	}, http.StatusOK)
}

// Resolve a raw YouTube URL to the canonical video metadata.
func (c *controller) videoInfo(w http.ResponseWriter, r *http.Request) error {
	var data videoInfoRequest
	if err := parseJSON(r, &data); err != nil {
		return err
	}
	if strings.TrimSpace(data.URL) == "" {
		return errValidation("YouTube URL must be required")
	}
	id := youtube.ExtractVideoId(data.URL)
	if id == "" {
		return errValidation("not a valid YouTube URL")
	}
	video, err := c.provider.FetchOne(r.Context(), id)
	if err != nil {
		return err
	}
	return replyJSON(w, videoInfoResponse{Success: true, Video: video}, http.StatusOK)
}

// Synthesize quality-labeled links for client-side download.
func (c *controller) downloadLinks(w http.ResponseWriter, r *http.Request) error {
	var data downloadLinksRequest
	if err := parseJSON(r, &data); err != nil {
		return err
	}
	if strings.TrimSpace(data.VideoId) == "" {
		return errValidation("video ID must be required")
	}
	if data.Format == "" {
		data.Format = "mp4"
	}
	links := make(map[string]string, len(downloadQualities))
	for _, quality := range downloadQualities {
		links[quality] = youtube.WatchURL(data.VideoId) + "&format=" + quality
	}
	return replyJSON(w, downloadLinksResponse{
		Success:       true,
		VideoId:       data.VideoId,
		Format:        data.Format,
		DownloadLinks: links,
		Message:       "download links generated, fetch them from the client directly",
	}, http.StatusOK)
}

// Fan the requested URLs out into pending download jobs.
func (c *controller) download(w http.ResponseWriter, r *http.Request) error {
	var data downloadRequest
	if err := parseJSON(r, &data); err != nil {
		return err
	}
	result, err := c.submitter.submit(data.URLs, data.UserId)
	if err != nil {
		return err
	}
	return replyJSON(w, downloadResponse{
		Success:        true,
		TotalRequested: result.TotalRequested,
		JobIds:         result.JobIds,
		Message:        result.Message,
	}, http.StatusOK)
}

// List the videos bookmarked by a user.
func (c *controller) favoritesByUser(w http.ResponseWriter, r *http.Request) error {
	userId := r.URL.Query().Get("user_id")
	if userId == "" {
		return errValidation("user ID must be required")
	}
	favorites, err := c.favorites.GetByUserId(userId)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %v", err)
	}
	if favorites == nil {
		favorites = []*entity.Favorite{}
	}
	return replyJSON(w, favoritesResponse{Success: true, Favorites: favorites}, http.StatusOK)
}

// Get the status of a single download job.
func (c *controller) jobStatus(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	job, err := c.jobs.GetById(id)
	if err != nil {
		return fmt.Errorf("failed to load download job: %v", err)
	}
	if job == nil {
		return errNotFound("download job does not exist")
	}
	return replyJSON(w, jobResponse{Success: true, Job: job}, http.StatusOK)
}

// Parse incoming request body as JSON object.
func parseJSON(r *http.Request, data interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return errValidation("cannot parse JSON from request body")
	}
	return nil
}

// Respond the output with JSON format to the client.
func replyJSON(w http.ResponseWriter, data interface{}, code int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return err
	}
	return nil
}
