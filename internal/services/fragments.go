package services

import (
	"fmt"
	"strings"

	"devfestsite/internal/domain"
)

// Fragment builders for the pre-rendered HTML embedded in data.json. The
// class strings are the site's Tailwind utilities and are part of the output
// contract; cell text is interpolated raw, matching the generated documents
// the site has always shipped.

// categoryPillClasses picks pill colors by case-insensitive keyword match
// against the category text.
func categoryPillClasses(category string) string {
	lower := strings.ToLower(category)
	switch {
	case lower == "accepted":
		return "bg-green-100 dark:bg-green-900 text-green-800 dark:text-green-200"
	case strings.Contains(lower, "android"):
		return "bg-blue-100 dark:bg-blue-900 text-blue-800 dark:text-blue-200"
	case strings.Contains(lower, "firebase"):
		return "bg-purple-100 dark:bg-purple-900 text-purple-800 dark:text-purple-200"
	case strings.Contains(lower, "production"):
		return "bg-orange-100 dark:bg-orange-900 text-orange-800 dark:text-orange-200"
	default:
		return "bg-gray-100 dark:bg-gray-900 text-gray-800 dark:text-gray-200"
	}
}

// splitLines normalizes CRLF to LF, splits on newlines, trims each line, and
// drops empty ones.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// renderSessionContent builds the session detail fragment: speaker photo,
// "Speaker: First Last - TagLine" line, one colored pill per category, then
// the description as paragraphs. A paragraph that is a bare URL becomes a
// hyperlink instead of plain text.
func renderSessionContent(row domain.Row) string {
	var pills []string
	for _, cat := range extractCategories(row.Get("Status")) {
		pills = append(pills, fmt.Sprintf(
			`<span class="px-3 py-1 %s rounded-full text-sm font-medium">%s</span>`,
			categoryPillClasses(cat), cat))
	}

	var paragraphs []string
	for _, p := range splitLines(row.Get("Description")) {
		if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			paragraphs = append(paragraphs, fmt.Sprintf(
				`<p class="mb-4"><a href="%s" target="_blank" rel="noopener noreferrer" class="text-google-blue hover:underline">%s</a></p>`,
				p, p))
			continue
		}
		paragraphs = append(paragraphs, fmt.Sprintf(`<p class="mb-4">%s</p>`, p))
	}

	first, last := row.Get("FirstName"), row.Get("LastName")
	var b strings.Builder
	b.WriteString("<div class=\"flex flex-col md:flex-row gap-6 mb-6\">\n")
	fmt.Fprintf(&b, "  <div class=\"flex-shrink-0\">\n    <img src=\"%s\" alt=\"%s %s\" class=\"w-32 h-32 rounded-full object-cover\">\n  </div>\n",
		row.Get("Profile Picture"), first, last)
	b.WriteString("  <div>\n")
	fmt.Fprintf(&b, "    <p class=\"text-lg font-semibold mb-2\">Speaker: %s %s - %s</p>\n", first, last, row.Get("TagLine"))
	fmt.Fprintf(&b, "    <div class=\"flex flex-wrap gap-2\">\n      %s\n    </div>\n", strings.Join(pills, "\n      "))
	b.WriteString("  </div>\n</div>\n")
	fmt.Fprintf(&b, "<div class=\"prose dark:prose-invert max-w-none\">\n  %s\n</div>\n", strings.Join(paragraphs, "\n  "))
	return b.String()
}

// renderSpeakerContent builds the speaker bio fragment. Consecutive lines
// starting with "-" merge into a single unordered list; any other line closes
// an open list and becomes a paragraph.
func renderSpeakerContent(row domain.Row) string {
	var bio strings.Builder
	inList := false
	for _, line := range splitLines(row.Get("Bio")) {
		if strings.HasPrefix(line, "-") {
			if !inList {
				bio.WriteString("<ul class=\"list-disc list-inside space-y-2 mt-4\">\n")
				inList = true
			}
			fmt.Fprintf(&bio, "  <li>%s</li>\n", strings.TrimSpace(strings.TrimPrefix(line, "-")))
			continue
		}
		if inList {
			bio.WriteString("</ul>\n")
			inList = false
		}
		fmt.Fprintf(&bio, "<p>%s</p>\n", line)
	}
	if inList {
		bio.WriteString("</ul>\n")
	}

	first, last := row.Get("FirstName"), row.Get("LastName")
	var b strings.Builder
	b.WriteString("<div class=\"flex flex-col md:flex-row gap-6 mb-6\">\n")
	fmt.Fprintf(&b, "  <div class=\"flex-shrink-0\">\n    <img src=\"%s\" alt=\"%s %s\" class=\"w-48 h-48 rounded-full object-cover\">\n  </div>\n",
		row.Get("Profile Picture"), first, last)
	b.WriteString("  <div>\n")
	fmt.Fprintf(&b, "    <h3 class=\"text-2xl font-bold mb-2\">%s %s</h3>\n", first, last)
	fmt.Fprintf(&b, "    <p class=\"text-google-blue font-semibold text-lg mb-4\">%s</p>\n", row.Get("TagLine"))
	b.WriteString("  </div>\n</div>\n")
	fmt.Fprintf(&b, "<div class=\"text-gray-600 dark:text-gray-400 space-y-3\">\n%s</div>\n", bio.String())
	return b.String()
}
