package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is not configured")
	ErrEmptyQuery    = errors.New("search query must be required")
	ErrEmptyVideoId  = errors.New("video ID must be required")
	ErrVideoNotFound = errors.New("video not found")
)

// APIError carries an error payload reported by the YouTube Data API.
// The provider message is passed through to the caller verbatim.
type APIError struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("YouTube API error: %s", e.Message)
}

// Client talks to the YouTube Data API v3 over plain HTTP. A zero API key
// is tolerated at construction and reported on the first call.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey, defaultBaseURL, http.DefaultClient}
}

// Search runs the provider's search operation and enriches the matching
// videos with duration and statistics from a single batched detail call.
// CurrentPage and PageSize in the returned descriptor echo the caller's
// input; the pagination tokens come verbatim from the provider. Videos the
// detail call no longer reports are dropped from the page.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int, pageToken string) (*SearchPage, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}
	var search searchListResponse
	if err := c.get(ctx, "/search", params, &search); err != nil {
		return nil, err
	}
	if search.Error != nil {
		return nil, search.Error
	}

	var ids []string
	snippets := make(map[string]snippet, len(search.Items))
	for _, item := range search.Items {
		if item.Id.Kind != "youtube#video" || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
		snippets[item.Id.VideoId] = item.Snippet
	}

	result := &SearchPage{
		Query:  query,
		Videos: make([]Video, 0, len(ids)),
		Pagination: Pagination{
			CurrentPage:   page,
			PageSize:      pageSize,
			TotalResults:  search.PageInfo.TotalResults,
			HasNext:       search.NextPageToken != "",
			HasPrev:       search.PrevPageToken != "",
			NextPageToken: search.NextPageToken,
			PrevPageToken: search.PrevPageToken,
		},
	}
	if len(ids) == 0 {
		return result, nil
	}

	details, err := c.listVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		detail, ok := details[id]
		if !ok {
			continue
		}
		sn := snippets[id]
		result.Videos = append(result.Videos, Video{
			Id:           id,
			Title:        sn.Title,
			Description:  sn.Description,
			Thumbnail:    sn.Thumbnails.Medium.URL,
			Channel:      sn.ChannelTitle,
			PublishedAt:  sn.PublishedAt,
			Duration:     detail.ContentDetails.Duration,
			ViewCount:    parseCount(detail.Statistics.ViewCount),
			LikeCount:    parseCount(detail.Statistics.LikeCount),
			CommentCount: parseCount(detail.Statistics.CommentCount),
			URL:          WatchURL(id),
		})
	}
	return result, nil
}

// FetchOne returns the metadata for a single video ID.
func (c *Client) FetchOne(ctx context.Context, videoId string) (*Video, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(videoId) == "" {
		return nil, ErrEmptyVideoId
	}
	details, err := c.listVideos(ctx, []string{videoId})
	if err != nil {
		return nil, err
	}
	detail, ok := details[videoId]
	if !ok {
		return nil, ErrVideoNotFound
	}
	return &Video{
		Id:           videoId,
		Title:        detail.Snippet.Title,
		Description:  detail.Snippet.Description,
		Thumbnail:    detail.Snippet.Thumbnails.Medium.URL,
		Channel:      detail.Snippet.ChannelTitle,
		PublishedAt:  detail.Snippet.PublishedAt,
		Duration:     detail.ContentDetails.Duration,
		ViewCount:    parseCount(detail.Statistics.ViewCount),
		LikeCount:    parseCount(detail.Statistics.LikeCount),
		CommentCount: parseCount(detail.Statistics.CommentCount),
		URL:          WatchURL(videoId),
	}, nil
}

// Fetch the details for a batch of video IDs with one provider call.
func (c *Client) listVideos(ctx context.Context, ids []string) (map[string]videoItem, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(ids, ","))
	var list videoListResponse
	if err := c.get(ctx, "/videos", params, &list); err != nil {
		return nil, err
	}
	if list.Error != nil {
		return nil, list.Error
	}
	details := make(map[string]videoItem, len(list.Items))
	for _, item := range list.Items {
		details[item.Id] = item
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode YouTube API response: %v", err)
	}
	return nil
}

// Absent or malformed counters decode as zero.
func parseCount(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type searchListResponse struct {
	Error         *APIError    `json:"error"`
	Items         []searchItem `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
	PrevPageToken string       `json:"prevPageToken"`
	PageInfo      struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
}

type searchItem struct {
	Id struct {
		Kind    string `json:"kind"`
		VideoId string `json:"videoId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

type videoListResponse struct {
	Error *APIError   `json:"error"`
	Items []videoItem `json:"items"`
}

type videoItem struct {
	Id             string  `json:"id"`
	Snippet        snippet `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
	} `json:"thumbnails"`
}
