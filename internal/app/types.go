package app

import (
	"github.com/baropoint/tubegate/internal/domain/entity"
	"github.com/baropoint/tubegate/internal/youtube"
)

type errorResponse struct {
	Error string `json:"error"`
}

type notFoundResponse struct {
	Error  string `json:"error"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userProfile struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    userProfile `json:"user"`
	Message string      `json:"message"`
}

type searchRequest struct {
	Query     string `json:"query"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken"`
}

type searchResponse struct {
	Success    bool               `json:"success"`
	Query      string             `json:"query"`
	Videos     []youtube.Video    `json:"videos"`
	Pagination youtube.Pagination `json:"pagination"`
}

type videoInfoRequest struct {
	URL string `json:"url"`
}

type videoInfoResponse struct {
	Success bool           `json:"success"`
	Video   *youtube.Video `json:"video"`
}

type downloadLinksRequest struct {
	VideoId string `json:"videoId"`
	Format  string `json:"format"`
}

type downloadLinksResponse struct {
	Success       bool              `json:"success"`
	VideoId       string            `json:"videoId"`
	Format        string            `json:"format"`
	DownloadLinks map[string]string `json:"downloadLinks"`
	Message       string            `json:"message"`
}

type downloadRequest struct {
	URLs   []string `json:"urls"`
	UserId string   `json:"user_id"`
}

type downloadResponse struct {
	Success        bool     `json:"success"`
	TotalRequested int      `json:"total_requested"`
	JobIds         []string `json:"job_ids"`
	Message        string   `json:"message"`
}

type favoritesResponse struct {
	Success   bool               `json:"success"`
	Favorites []*entity.Favorite `json:"favorites"`
}

type jobResponse struct {
	Success bool        `json:"success"`
	Job     *entity.Job `json:"job"`
}
