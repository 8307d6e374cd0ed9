package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the site toolchain. Defaults reproduce
// the published DevFest Armenia 2025 site, so a bare checkout generates and
// serves without any environment setup.
type Config struct {
	Environment string
	Port        string

	// BaseURL and BasePath together form the public prefix every absolute
	// URL (share pages, SEO artifacts, deep links) is built against.
	BaseURL  string
	BasePath string

	// PublicDir is where generated artifacts live: data.json, schedule.json,
	// the hand-authored workshops.json, and the share/ directory.
	PublicDir string
	// DistDir is the bundled site output that the SEO rewrite step touches.
	DistDir string

	SessionsXLSX  string
	ScheduleXLSX  string
	WorkshopsPath string

	EventName  string
	EventDate  string
	Disclaimer string

	GalleryFeedURL  string
	GalleryAlbumURL string
}

// Load loads configuration from environment variables, reading a .env file
// first outside production. Missing variables fall back to defaults; .env
// itself is optional.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            getenv("PORT", "8080"),
		BaseURL:         getenv("BASE_URL", "https://gdg.am"),
		BasePath:        getenv("BASE_PATH", "/2025/"),
		PublicDir:       getenv("PUBLIC_DIR", "./public"),
		DistDir:         getenv("DIST_DIR", "./dist"),
		SessionsXLSX:    getenv("SESSIONS_XLSX", "./public/devfest-armenia-2025-flattened-sessions.xlsx"),
		ScheduleXLSX:    getenv("SCHEDULE_XLSX", "./public/devfest-armenia-2025 schedulelist.xlsx"),
		WorkshopsPath:   getenv("WORKSHOPS_JSON", "./public/workshops.json"),
		EventName:       getenv("EVENT_NAME", "DevFest Armenia 2025"),
		EventDate:       getenv("EVENT_DATE", "2025-12-20"),
		Disclaimer:      getenv("SCHEDULE_DISCLAIMER", "This schedule is not final and may be subject to change."),
		GalleryFeedURL:  os.Getenv("GALLERY_FEED_URL"),
		GalleryAlbumURL: os.Getenv("GALLERY_ALBUM_URL"),
	}

	return cfg, nil
}

// FullBaseURL is BaseURL joined with BasePath without a trailing slash, e.g.
// "https://gdg.am/2025". With BasePath "/" it is just BaseURL.
func (c *Config) FullBaseURL() string {
	if c.BasePath == "/" || c.BasePath == "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.Trim(c.BasePath, "/")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
