package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfestsite/internal/domain"
)

type fakeShareRenderer struct {
	err error
}

func (f *fakeShareRenderer) Render(page domain.SharePage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("title=%s|desc=%s|image=%s|canonical=%s|redirect=%s",
		page.Title, page.Description, page.Image, page.CanonicalURL, page.RedirectURL), nil
}

type fakeShareStore struct {
	pages map[string]string
	order []string
	err   error
}

func (f *fakeShareStore) WriteSharePage(filename, html string) error {
	if f.err != nil {
		return f.err
	}
	if f.pages == nil {
		f.pages = map[string]string{}
	}
	f.pages[filename] = html
	f.order = append(f.order, filename)
	return nil
}

func newShareGenerator(store *fakeShareStore) *ShareArtifactGenerator {
	return NewShareArtifactGenerator(&fakeShareRenderer{}, store, discardLogger(),
		"https://gdg.am", "https://gdg.am/2025", "DevFest Armenia 2025")
}

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips tags", `<p class="mb-4">Hello <b>world</b></p>`, "Hello world"},
		{"tag boundary adds no space", "Hello <b>world</b>!", "Hello world!"},
		{"collapses whitespace", "a\n\n  b\tc", "a b c"},
		{"empty content", "<div></div>", ""},
		{"truncates at 200", strings.Repeat("x", 250), strings.Repeat("x", 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPlainText(tt.in))
		})
	}
}

func TestSpeakerDisplayName(t *testing.T) {
	assert.Equal(t, "Ann Lee", SpeakerDisplayName("Ann Lee - Staff Engineer"))
	assert.Equal(t, "Ann Lee", SpeakerDisplayName("Ann Lee"))
	assert.Equal(t, "- Mononym", SpeakerDisplayName("- Mononym"), "no space-dash-space separator, passes through")
}

func TestShareGeneratorSessionPage(t *testing.T) {
	store := &fakeShareStore{}
	data := &domain.DataDocument{
		Sessions: map[string]domain.Session{
			"intro-to-go": {
				SessionID: "intro-to-go",
				Title:     "Intro to Go",
				Speaker:   "Ann Lee - Eng",
				Photo:     "https://cdn.example/ann.jpg",
				Content:   `<p>Deep dive into Go.</p>`,
			},
		},
		Speakers: map[string]domain.Speaker{},
	}

	err := newShareGenerator(store).Generate(context.Background(), data, nil)
	require.NoError(t, err)

	html := store.pages["session-intro-to-go.html"]
	assert.Contains(t, html, "title=Intro to Go")
	assert.Contains(t, html, "desc=Deep dive into Go.")
	assert.Contains(t, html, "image=https://cdn.example/ann.jpg")
	assert.Contains(t, html, "canonical=https://gdg.am/2025/share/session-intro-to-go.html")
	assert.Contains(t, html, "redirect=https://gdg.am/2025/#session-intro-to-go")
}

func TestShareGeneratorFallbacks(t *testing.T) {
	store := &fakeShareStore{}
	data := &domain.DataDocument{
		Sessions: map[string]domain.Session{
			"quiet-talk": {Title: "Quiet Talk", Speaker: "Ann Lee - Eng"},
		},
		Speakers: map[string]domain.Speaker{
			"ann-lee": {Name: "Ann Lee", Position: "Eng"},
		},
	}

	err := newShareGenerator(store).Generate(context.Background(), data, nil)
	require.NoError(t, err)

	session := store.pages["session-quiet-talk.html"]
	assert.Contains(t, session, "desc=Quiet Talk by Ann Lee at DevFest Armenia 2025")
	assert.Contains(t, session, "image=https://gdg.am/og-image.png", "missing photo falls back to the site image")

	speaker := store.pages["speaker-ann-lee.html"]
	assert.Contains(t, speaker, "desc=Meet Ann Lee, Eng at DevFest Armenia 2025")
	assert.Contains(t, speaker, "redirect=https://gdg.am/2025/#speaker-ann-lee")
}

func TestShareGeneratorWorkshopImages(t *testing.T) {
	store := &fakeShareStore{}
	workshops := []domain.Workshop{
		{ID: "w1", Title: "Compose Lab", SpeakerName: "Bob Roy", SpeakerImage: "images/bob.jpg"},
		{ID: "w2", Title: "Cloud Lab", SpeakerName: "Ann Lee", SpeakerImage: "https://cdn.example/ann.jpg"},
		{ID: "w3", Title: "ML Lab", SpeakerName: "Kim Ode"},
	}

	err := newShareGenerator(store).Generate(context.Background(), &domain.DataDocument{
		Sessions: map[string]domain.Session{},
		Speakers: map[string]domain.Speaker{},
	}, workshops)
	require.NoError(t, err)

	assert.Contains(t, store.pages["workshop-w1.html"], "image=https://gdg.am/2025/images/bob.jpg",
		"relative image is resolved against the deployed base")
	assert.Contains(t, store.pages["workshop-w2.html"], "image=https://cdn.example/ann.jpg")
	assert.Contains(t, store.pages["workshop-w3.html"], "image=https://gdg.am/og-image.png")
	assert.Contains(t, store.pages["workshop-w1.html"], "desc=Join Compose Lab by Bob Roy at DevFest Armenia 2025")
}

func TestShareGeneratorDeterministicOrder(t *testing.T) {
	store := &fakeShareStore{}
	data := &domain.DataDocument{
		Sessions: map[string]domain.Session{
			"zeta": {Title: "Zeta"}, "alpha": {Title: "Alpha"}, "mid": {Title: "Mid"},
		},
		Speakers: map[string]domain.Speaker{},
	}

	err := newShareGenerator(store).Generate(context.Background(), data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"session-alpha.html", "session-mid.html", "session-zeta.html"}, store.order)
}

func TestShareGeneratorPropagatesErrors(t *testing.T) {
	data := &domain.DataDocument{
		Sessions: map[string]domain.Session{"a": {Title: "A"}},
		Speakers: map[string]domain.Speaker{},
	}

	t.Run("render failure", func(t *testing.T) {
		gen := NewShareArtifactGenerator(&fakeShareRenderer{err: errors.New("boom")}, &fakeShareStore{},
			discardLogger(), "https://gdg.am", "https://gdg.am/2025", "DevFest")
		require.Error(t, gen.Generate(context.Background(), data, nil))
	})

	t.Run("write failure", func(t *testing.T) {
		gen := NewShareArtifactGenerator(&fakeShareRenderer{}, &fakeShareStore{err: errors.New("disk full")},
			discardLogger(), "https://gdg.am", "https://gdg.am/2025", "DevFest")
		require.Error(t, gen.Generate(context.Background(), data, nil))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := newShareGenerator(&fakeShareStore{}).Generate(ctx, data, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
