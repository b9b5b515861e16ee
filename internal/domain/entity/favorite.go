package entity

// The entity of a video bookmarked by a user.
type Favorite struct {
	Id           string `json:"id"`
	UserId       string `json:"user_id"`
	VideoId      string `json:"video_id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
	VideoURL     string `json:"video_url"`
	CreatedAt    int64  `json:"created_at"`
}
