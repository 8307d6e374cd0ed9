package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	ogURLMeta      = regexp.MustCompile(`<meta property="og:url" content="[^"]*">`)
	twitterURLMeta = regexp.MustCompile(`<meta property="twitter:url" content="[^"]*">`)
	canonicalLink  = regexp.MustCompile(`<link rel="canonical" href="[^"]*">`)
	jsonLDImage    = regexp.MustCompile(`"image":\s*"[^"]*og-image\.png"`)
)

// sitemapEntry is one URL in the generated sitemap. Anchored sections change
// on roughly the cadence of their content.
type sitemapEntry struct {
	anchor     string
	changeFreq string
	priority   string
}

var sitemapEntries = []sitemapEntry{
	{"", "weekly", "1.0"},
	{"#about", "weekly", "0.8"},
	{"#agenda", "weekly", "0.8"},
	{"#sessions", "weekly", "0.8"},
	{"#workshops", "weekly", "0.8"},
	{"#speakers", "weekly", "0.8"},
	{"#location", "monthly", "0.7"},
	{"#partners", "monthly", "0.6"},
	{"#organizers", "monthly", "0.6"},
}

// SEORewriter updates the crawler-facing artifacts in the built output
// directory after bundling: the canonical/social URL tags inside index.html,
// robots.txt, and sitemap.xml. Each file is handled independently; a failure
// on one is logged and the rest still run.
type SEORewriter struct {
	outDir  string
	fullURL string
	logger  *slog.Logger
	now     func() time.Time
}

// NewSEORewriter returns a rewriter for the built site at outDir. fullURL is
// the deployed base including any base path, without a trailing slash.
func NewSEORewriter(outDir, fullURL string, logger *slog.Logger) *SEORewriter {
	return &SEORewriter{
		outDir:  outDir,
		fullURL: strings.TrimRight(fullURL, "/"),
		logger:  logger,
		now:     time.Now,
	}
}

// Rewrite runs all three updates. It returns an error only when every file
// failed, so one missing artifact does not break a release.
func (r *SEORewriter) Rewrite() error {
	failures := 0
	if err := r.rewriteIndex(); err != nil {
		r.logger.Error("update index.html failed", "error", err)
		failures++
	}
	if err := r.writeRobots(); err != nil {
		r.logger.Error("update robots.txt failed", "error", err)
		failures++
	}
	if err := r.writeSitemap(); err != nil {
		r.logger.Error("update sitemap.xml failed", "error", err)
		failures++
	}
	if failures == 3 {
		return fmt.Errorf("all seo rewrites failed in %s", r.outDir)
	}
	return nil
}

func (r *SEORewriter) rewriteIndex() error {
	path := filepath.Join(r.outDir, "index.html")
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read index.html: %w", err)
	}

	html := string(raw)
	html = ogURLMeta.ReplaceAllString(html,
		fmt.Sprintf(`<meta property="og:url" content="%s/">`, r.fullURL))
	html = twitterURLMeta.ReplaceAllString(html,
		fmt.Sprintf(`<meta property="twitter:url" content="%s/">`, r.fullURL))
	html = canonicalLink.ReplaceAllString(html,
		fmt.Sprintf(`<link rel="canonical" href="%s/">`, r.fullURL))
	html = jsonLDImage.ReplaceAllString(html,
		fmt.Sprintf(`"image": "%s/og-image.png"`, r.fullURL))

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	r.logger.Info("updated index.html meta tags", "url", r.fullURL)
	return nil
}

func (r *SEORewriter) writeRobots() error {
	content := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", r.fullURL)
	path := filepath.Join(r.outDir, "robots.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	r.logger.Info("updated robots.txt", "sitemap", r.fullURL+"/sitemap.xml")
	return nil
}

func (r *SEORewriter) writeSitemap() error {
	lastmod := r.now().UTC().Format("2006-01-02")

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	buf.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, e := range sitemapEntries {
		fmt.Fprintf(&buf, "  <url>\n    <loc>%s/%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			r.fullURL, e.anchor, lastmod, e.changeFreq, e.priority)
	}
	buf.WriteString("</urlset>\n")

	path := filepath.Join(r.outDir, "sitemap.xml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sitemap.xml: %w", err)
	}
	r.logger.Info("updated sitemap.xml", "url", r.fullURL)
	return nil
}
