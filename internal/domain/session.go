package domain

import "context"

// Session is a talk derived from one session-submission row. The identifier
// is a slug of the title alone, so two rows with the same title collide and
// the last row wins; no de-duplication is performed. Sessions are created
// once at generation time and consumed read-only afterwards.
type Session struct {
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	// Speaker is the combined display string, "First Last - TagLine".
	Speaker string `json:"speaker"`
	Photo   string `json:"photo"`
	// Content is the pre-rendered HTML detail fragment, embedded verbatim
	// into the detail view.
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	Status     string   `json:"status"`
}

// DataDocument is the generated data.json shape: sessions and speakers keyed
// by their slugs.
type DataDocument struct {
	Sessions map[string]Session `json:"sessions"`
	Speakers map[string]Speaker `json:"speakers"`
}

// DataExtractor produces the data document from session-submission rows.
type DataExtractor interface {
	Extract(ctx context.Context) (*DataDocument, error)
}
