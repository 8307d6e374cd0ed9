package domain

import "context"

// Photo is one carousel item from the photos feed.
type Photo struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// PhotoFeed is the response shape of the photos proxy endpoint.
type PhotoFeed struct {
	Items         []Photo `json:"items"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// PhotoFetcher fetches the photo feed (or a test double). A failed fetch is
// a soft error: callers fall back to the album embed.
type PhotoFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Photo, error)
}
