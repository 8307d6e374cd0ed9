package services

import (
	"context"
	"fmt"
	"log/slog"

	"devfestsite/internal/domain"
)

type dataExtractor struct {
	source domain.RowSource
	merge  domain.SpeakerMergeStrategy
	logger *slog.Logger
}

// NewDataExtractor returns the extractor that turns session-submission rows
// into the data document. merge controls what happens when the same speaker
// appears on several rows; sessions always take the last row for a given
// title slug.
func NewDataExtractor(source domain.RowSource, merge domain.SpeakerMergeStrategy, logger *slog.Logger) domain.DataExtractor {
	return &dataExtractor{source: source, merge: merge, logger: logger}
}

func (e *dataExtractor) Extract(ctx context.Context) (*domain.DataDocument, error) {
	rows, err := e.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read submission rows: %w", err)
	}

	doc := &domain.DataDocument{
		Sessions: make(map[string]domain.Session, len(rows)),
		Speakers: make(map[string]domain.Speaker),
	}

	for _, row := range rows {
		first := row.Get("FirstName")
		last := row.Get("LastName")
		sessionID := domain.SlugifyTitle(row.Get("Title"))
		speakerID := domain.SpeakerSlug(first, last)

		doc.Sessions[sessionID] = domain.Session{
			SessionID:  sessionID,
			Title:      row.Get("Title"),
			Speaker:    fmt.Sprintf("%s %s - %s", first, last, row.Get("TagLine")),
			Photo:      row.Get("Profile Picture"),
			Content:    renderSessionContent(row),
			Categories: extractCategories(row.Get("Status")),
			Status:     row.Get("Status"),
		}

		incoming := domain.Speaker{
			SpeakerID: speakerID,
			Name:      first + " " + last,
			Position:  row.Get("TagLine"),
			Photo:     row.Get("Profile Picture"),
			Content:   renderSpeakerContent(row),
		}
		if existing, ok := doc.Speakers[speakerID]; ok {
			doc.Speakers[speakerID] = e.merge.Merge(&existing, incoming)
		} else {
			doc.Speakers[speakerID] = incoming
		}
	}

	e.logger.Info("extracted submission data",
		"rows", len(rows),
		"sessions", len(doc.Sessions),
		"speakers", len(doc.Speakers),
	)
	return doc, nil
}

// extractCategories returns the category tags for a submission. Today that
// is exactly the status string; a richer taxonomy hangs off this function.
func extractCategories(status string) []string {
	return []string{status}
}
