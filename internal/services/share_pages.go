package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"devfestsite/internal/domain"
)

var (
	htmlTags       = regexp.MustCompile(`<[^>]*>`)
	collapseSpaces = regexp.MustCompile(`\s+`)
)

// shareDescriptionLimit caps social-preview descriptions, in runes.
const shareDescriptionLimit = 200

// ExtractPlainText strips markup from pre-rendered HTML content and returns
// the first 200 characters of the collapsed text. Tags are removed outright,
// so text hugging a tag boundary stays unspaced ("<b>world</b>!" is "world!").
func ExtractPlainText(html string) string {
	text := htmlTags.ReplaceAllString(html, "")
	text = collapseSpaces.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > shareDescriptionLimit {
		return string(runes[:shareDescriptionLimit])
	}
	return text
}

// SpeakerDisplayName reduces "First Last - TagLine" to the bare name. A
// string without the separator, or with nothing before it, passes through
// unchanged.
func SpeakerDisplayName(speaker string) string {
	name := strings.TrimSpace(strings.SplitN(speaker, " - ", 2)[0])
	if name == "" {
		return strings.TrimSpace(speaker)
	}
	return name
}

// SharePageWriter persists rendered share pages.
type SharePageWriter interface {
	WriteSharePage(filename, html string) error
}

// ShareArtifactGenerator renders one static share page per session, speaker,
// and workshop so link crawlers see real metadata before the redirect into
// the single-page site.
type ShareArtifactGenerator struct {
	renderer     domain.ShareRenderer
	store        SharePageWriter
	logger       *slog.Logger
	baseURL      string
	fullBaseURL  string
	siteName     string
	defaultImage string
}

// NewShareArtifactGenerator wires the generator. fullBaseURL includes the
// deployment base path ("https://gdg.am/2025"); baseURL is the bare origin.
func NewShareArtifactGenerator(renderer domain.ShareRenderer, store SharePageWriter, logger *slog.Logger, baseURL, fullBaseURL, siteName string) *ShareArtifactGenerator {
	return &ShareArtifactGenerator{
		renderer:     renderer,
		store:        store,
		logger:       logger,
		baseURL:      strings.TrimRight(baseURL, "/"),
		fullBaseURL:  strings.TrimRight(fullBaseURL, "/"),
		siteName:     siteName,
		defaultImage: strings.TrimRight(baseURL, "/") + "/og-image.png",
	}
}

// Generate writes every share page. IDs are walked in sorted order so the
// output set is deterministic run to run.
func (g *ShareArtifactGenerator) Generate(ctx context.Context, data *domain.DataDocument, workshops []domain.Workshop) error {
	var count int

	for _, id := range sortedKeys(data.Sessions) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.writeSession(id, data.Sessions[id]); err != nil {
			return err
		}
		count++
	}

	for _, id := range sortedKeys(data.Speakers) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.writeSpeaker(id, data.Speakers[id]); err != nil {
			return err
		}
		count++
	}

	for _, w := range workshops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.writeWorkshop(w); err != nil {
			return err
		}
		count++
	}

	g.logger.Info("generated share pages",
		"sessions", len(data.Sessions),
		"speakers", len(data.Speakers),
		"workshops", len(workshops),
		"total", count,
	)
	return nil
}

func (g *ShareArtifactGenerator) writeSession(id string, s domain.Session) error {
	description := ExtractPlainText(s.Content)
	if description == "" {
		description = fmt.Sprintf("%s by %s at %s", s.Title, SpeakerDisplayName(s.Speaker), g.siteName)
	}
	page := domain.SharePage{
		Title:        s.Title,
		Description:  description,
		Image:        g.imageOrDefault(s.Photo),
		CanonicalURL: fmt.Sprintf("%s/share/session-%s.html", g.fullBaseURL, id),
		RedirectURL:  fmt.Sprintf("%s/#session-%s", g.fullBaseURL, id),
		SiteName:     g.siteName,
	}
	return g.write(fmt.Sprintf("session-%s.html", id), page)
}

func (g *ShareArtifactGenerator) writeSpeaker(id string, sp domain.Speaker) error {
	description := ExtractPlainText(sp.Content)
	if description == "" {
		description = fmt.Sprintf("Meet %s, %s at %s", sp.Name, sp.Position, g.siteName)
	}
	page := domain.SharePage{
		Title:        sp.Name,
		Description:  description,
		Image:        g.imageOrDefault(sp.Photo),
		CanonicalURL: fmt.Sprintf("%s/share/speaker-%s.html", g.fullBaseURL, id),
		RedirectURL:  fmt.Sprintf("%s/#speaker-%s", g.fullBaseURL, id),
		SiteName:     g.siteName,
	}
	return g.write(fmt.Sprintf("speaker-%s.html", id), page)
}

func (g *ShareArtifactGenerator) writeWorkshop(w domain.Workshop) error {
	description := ExtractPlainText(w.Description)
	if description == "" {
		description = fmt.Sprintf("Join %s by %s at %s", w.Title, w.SpeakerName, g.siteName)
	}
	image := w.SpeakerImage
	switch {
	case image == "":
		image = g.defaultImage
	case !strings.HasPrefix(image, "http"):
		// Workshop images are authored as site-relative paths.
		image = g.fullBaseURL + "/" + strings.TrimLeft(image, "/")
	}
	page := domain.SharePage{
		Title:        w.Title,
		Description:  description,
		Image:        image,
		CanonicalURL: fmt.Sprintf("%s/share/workshop-%s.html", g.fullBaseURL, w.ID),
		RedirectURL:  fmt.Sprintf("%s/#workshop-%s", g.fullBaseURL, w.ID),
		SiteName:     g.siteName,
	}
	return g.write(fmt.Sprintf("workshop-%s.html", w.ID), page)
}

func (g *ShareArtifactGenerator) imageOrDefault(image string) string {
	if image == "" {
		return g.defaultImage
	}
	return image
}

func (g *ShareArtifactGenerator) write(filename string, page domain.SharePage) error {
	html, err := g.renderer.Render(page)
	if err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	if err := g.store.WriteSharePage(filename, html); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
