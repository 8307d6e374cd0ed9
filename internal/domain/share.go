package domain

// SharePage is the material for one crawler-facing share artifact: a static
// HTML page carrying social-preview metadata that immediately redirects into
// the single-page app.
type SharePage struct {
	Title        string
	Description  string
	Image        string
	CanonicalURL string
	RedirectURL  string
	SiteName     string
}

// ShareRenderer renders a share page to self-contained HTML. All
// interpolated text must come out HTML-escaped.
type ShareRenderer interface {
	Render(page SharePage) (string, error)
}
