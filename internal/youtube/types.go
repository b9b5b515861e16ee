package youtube

// Video is the metadata aggregate for a single YouTube video.
// Duration keeps the provider's ISO-8601 period encoding (e.g. "PT4M13S").
// Counters default to zero when the provider omits them.
type Video struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	Channel      string `json:"channel"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration,omitempty"`
	ViewCount    uint64 `json:"viewCount"`
	LikeCount    uint64 `json:"likeCount"`
	CommentCount uint64 `json:"commentCount"`
	URL          string `json:"url"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	Query      string     `json:"query"`
	Videos     []Video    `json:"videos"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the position of a search page. CurrentPage and
// PageSize echo the caller's request; the tokens and totals come verbatim
// from the provider and the total may be approximate.
type Pagination struct {
	CurrentPage   int    `json:"currentPage"`
	PageSize      int    `json:"pageSize"`
	TotalResults  int    `json:"totalResults"`
	HasNext       bool   `json:"hasNext"`
	HasPrev       bool   `json:"hasPrev"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	PrevPageToken string `json:"prevPageToken,omitempty"`
}
