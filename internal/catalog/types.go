package catalog

import (
	"fmt"

	"github.com/tsnthiago/viewstats/internal/transcript"
)

// Channel is the owning channel of a video.
type Channel struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	Name        string `json:"name"`
	Subscribers int64  `json:"subscribers"`
	Category    string `json:"category"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
}

// VideoSummary is the list/grid shape of a video. Relevance is set only on
// text-search results; topic browsing carries no rank.
type VideoSummary struct {
	ID          string
	Title       string
	Description string
	Duration    string
	UploadDate  string
	ViewCount   int64
	Thumbnail   string
	Topics      []string
	Relevance   *float64
	Channel     Channel
}

// Video is the detail shape served on the watch page.
type Video struct {
	VideoSummary
	VideoURL   string
	Language   string
	Tags       []string
	Transcript []transcript.Item
}

// ResultPage is one page of results plus the total count across all pages.
type ResultPage struct {
	Videos []VideoSummary
	Total  int
}

// Suggestion is an ephemeral autocomplete entry.
type Suggestion struct {
	Text  string `json:"text"`
	Kind  string `json:"type"`
	Count int    `json:"count,omitempty"`
}

// Suggestion kinds.
const (
	SuggestionTopic   = "topic"
	SuggestionChannel = "channel"
	SuggestionKeyword = "keyword"
)

// videoRaw mirrors the backend wire shape. Field names vary between
// endpoints (snake_case vs camelCase); both spellings are accepted and
// reconciled during normalization.
type videoRaw struct {
	InternalID string   `json:"id"`
	YTID       string   `json:"yt_id"`
	Title      string   `json:"title"`
	Desc       string   `json:"description"`
	Duration   string   `json:"duration"`
	UploadDate string   `json:"uploadDate"`
	UploadSnk  string   `json:"upload_date"`
	Views      int64    `json:"viewCount"`
	ViewsSnk   int64    `json:"view_count"`
	ThumbURL   string   `json:"thumbnailUrl"`
	ThumbSnk   string   `json:"thumbnail"`
	TopicsPath []string `json:"topics_path"`
	Topics     []string `json:"topics"`
	Score      *float64 `json:"score"`
	Channel    Channel  `json:"channel"`

	VideoURL   string            `json:"videoUrl"`
	Language   string            `json:"language"`
	Tags       []string          `json:"tags"`
	Transcript []transcript.Item `json:"transcript"`
}

// normalize converts the wire shape into the canonical summary. The external
// video id always wins over the internal one: thumbnail and player URLs are
// derived from it downstream.
func (v videoRaw) normalize(withScore bool) VideoSummary {
	id := v.YTID
	if id == "" {
		id = v.InternalID
	}

	thumb := firstNonEmpty(v.ThumbURL, v.ThumbSnk)
	if thumb == "" && id != "" {
		thumb = fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id)
	}

	topics := v.TopicsPath
	if len(topics) == 0 {
		topics = v.Topics
	}

	s := VideoSummary{
		ID:          id,
		Title:       v.Title,
		Description: v.Desc,
		Duration:    v.Duration,
		UploadDate:  firstNonEmpty(v.UploadDate, v.UploadSnk),
		ViewCount:   max64(v.Views, v.ViewsSnk),
		Thumbnail:   thumb,
		Topics:      topics,
		Channel:     v.Channel,
	}
	if withScore {
		s.Relevance = v.Score
	}
	return s
}

func (v videoRaw) normalizeDetail() Video {
	return Video{
		VideoSummary: v.normalize(true),
		VideoURL:     v.VideoURL,
		Language:     v.Language,
		Tags:         v.Tags,
		Transcript:   v.Transcript,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
