package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"devfestsite/internal/domain"
)

type httpFetcher struct {
	client *http.Client
	now    func() time.Time
}

// NewHTTPFetcher returns a fetcher that reads the photo feed proxy endpoint.
func NewHTTPFetcher(client *http.Client) domain.PhotoFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, now: time.Now}
}

func (f *httpFetcher) Fetch(ctx context.Context, feedURL string) ([]domain.Photo, error) {
	u, err := url.Parse(feedURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	// Cache-busting parameter; the feed sits behind long-lived CDN caching.
	q := u.Query()
	q.Set("v", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo feed returned status: %d", resp.StatusCode)
	}

	var feed domain.PhotoFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode photo feed: %w", err)
	}
	return feed.Items, nil
}
