package domain

// Speaker is a person derived from session-submission rows, identified by
// the slug of "firstName-lastName".
type Speaker struct {
	SpeakerID string `json:"speakerId"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Photo     string `json:"photo"`
	// Content is the pre-rendered HTML bio fragment.
	Content string `json:"content"`
}

// SpeakerMergeStrategy decides which submission wins when the same speaker
// slug appears on more than one row. It is a named policy rather than an
// accident of iteration order, so it can be swapped without touching the
// extraction call sites.
type SpeakerMergeStrategy int

const (
	// KeepFirst makes the first submission canonical; later rows never
	// overwrite the speaker entry. This is the generator's default.
	KeepFirst SpeakerMergeStrategy = iota
	// KeepLast lets the most recent row replace the speaker entry.
	KeepLast
)

// Merge resolves an existing entry against an incoming one. A nil existing
// entry always yields the incoming speaker.
func (s SpeakerMergeStrategy) Merge(existing *Speaker, incoming Speaker) Speaker {
	if existing == nil || s == KeepLast {
		return incoming
	}
	return *existing
}
