// cmd/devfestsite is the site toolchain entry point: the generation
// subcommands that turn the spreadsheet exports into the published JSON and
// HTML artifacts, and the server that renders them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"devfestsite/config"
	"devfestsite/internal/adapters/photos"
	"devfestsite/internal/adapters/share"
	"devfestsite/internal/adapters/spreadsheet"
	"devfestsite/internal/adapters/workshops"
	httpdelivery "devfestsite/internal/delivery/http"
	"devfestsite/internal/delivery/http/controllers"
	"devfestsite/internal/delivery/http/middleware"
	"devfestsite/internal/domain"
	"devfestsite/internal/repository/jsonfile"
	"devfestsite/internal/services"
)

const usage = `Usage: devfestsite [flags] <command>

Commands:
  data      extract sessions and speakers from the sessions spreadsheet
  schedule  extract the schedule grid from the schedule spreadsheet
  share     generate static share pages from the extracted documents
  seo       rewrite SEO artifacts in the built site output
  all       run data, schedule, share, and seo in sequence
  serve     serve the rendered site
`

func main() {
	flags := pflag.NewFlagSet("devfestsite", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}
	keepLast := flags.Bool("keep-last-speaker", false,
		"on duplicate speaker slugs keep the latest submission instead of the first")
	_ = flags.Parse(os.Args[1:])

	command := "all"
	if flags.NArg() > 0 {
		command = flags.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	merge := domain.KeepFirst
	if *keepLast {
		merge = domain.KeepLast
	}

	ctx := context.Background()
	store := jsonfile.NewStore(cfg.PublicDir)

	switch command {
	case "data":
		err = runData(ctx, cfg, store, merge, runLogger(logger, command))
	case "schedule":
		err = runSchedule(ctx, cfg, store, runLogger(logger, command))
	case "share":
		err = runShare(ctx, cfg, store, runLogger(logger, command))
	case "seo":
		err = runSEO(cfg, runLogger(logger, command))
	case "all":
		runLog := runLogger(logger, command)
		err = runData(ctx, cfg, store, merge, runLog)
		if err == nil {
			err = runSchedule(ctx, cfg, store, runLog)
		}
		if err == nil {
			err = runShare(ctx, cfg, store, runLog)
		}
		if err == nil {
			err = runSEO(cfg, runLog)
		}
	case "serve":
		err = runServe(cfg, store, logger)
	default:
		flags.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

// runLogger tags all generation output with a unique run id so interleaved
// CI logs stay attributable.
func runLogger(logger *slog.Logger, command string) *slog.Logger {
	return logger.With("run_id", uuid.NewString(), "command", command)
}

func runData(ctx context.Context, cfg *config.Config, store *jsonfile.Store, merge domain.SpeakerMergeStrategy, logger *slog.Logger) error {
	source := spreadsheet.NewReader(cfg.SessionsXLSX)
	doc, err := services.NewDataExtractor(source, merge, logger).Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract data: %w", err)
	}
	if err := store.SaveData(doc); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	logger.Info("wrote data.json", "sessions", len(doc.Sessions), "speakers", len(doc.Speakers))
	return nil
}

func runSchedule(ctx context.Context, cfg *config.Config, store *jsonfile.Store, logger *slog.Logger) error {
	source := spreadsheet.NewReader(cfg.ScheduleXLSX)
	event := services.EventInfo{Name: cfg.EventName, Date: cfg.EventDate, Disclaimer: cfg.Disclaimer}
	doc, err := services.NewScheduleExtractor(source, event, logger).Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract schedule: %w", err)
	}
	if err := store.SaveSchedule(doc); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	logger.Info("wrote schedule.json", "sessions", len(doc.Sessions))
	return nil
}

func runShare(ctx context.Context, cfg *config.Config, store *jsonfile.Store, logger *slog.Logger) error {
	data, err := store.LoadData()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	// Workshops are hand-authored and may not exist yet.
	workshopList, err := workshops.Load(cfg.WorkshopsPath)
	if err != nil {
		logger.Warn("workshops not loaded, skipping workshop share pages", "path", cfg.WorkshopsPath, "error", err)
		workshopList = nil
	}

	renderer, err := share.NewRenderer()
	if err != nil {
		return fmt.Errorf("init share renderer: %w", err)
	}
	generator := services.NewShareArtifactGenerator(renderer, store, logger,
		cfg.BaseURL, cfg.FullBaseURL(), cfg.EventName)
	return generator.Generate(ctx, data, workshopList)
}

func runSEO(cfg *config.Config, logger *slog.Logger) error {
	return services.NewSEORewriter(cfg.DistDir, cfg.FullBaseURL(), logger).Rewrite()
}

func runServe(cfg *config.Config, store *jsonfile.Store, logger *slog.Logger) error {
	state := loadSiteState(cfg, store, logger)

	controller := controllers.NewSiteController(state, controllers.SiteOptions{
		EventName:   cfg.EventName,
		EventDate:   cfg.EventDate,
		Disclaimer:  cfg.Disclaimer,
		BasePath:    cfg.BasePath,
		FullBaseURL: cfg.FullBaseURL(),
		AlbumURL:    cfg.GalleryAlbumURL,
	}, logger)

	mux := httpdelivery.NewRouter(controller, store.ShareDir())
	handler := middleware.CORS(middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// loadSiteState reads whatever artifacts exist. Each missing document is a
// soft failure; its section renders as a placeholder.
func loadSiteState(cfg *config.Config, store *jsonfile.Store, logger *slog.Logger) controllers.SiteState {
	var state controllers.SiteState

	data, err := store.LoadData()
	if err != nil {
		logger.Warn("data.json not loaded", "error", err)
	} else {
		state.Data = data
	}

	schedule, err := store.LoadSchedule()
	if err != nil {
		logger.Warn("schedule.json not loaded", "error", err)
	} else {
		state.Schedule = schedule
	}

	workshopList, err := workshops.Load(cfg.WorkshopsPath)
	if err != nil {
		logger.Warn("workshops.json not loaded", "error", err)
	} else {
		state.Workshops = workshopList
	}

	if cfg.GalleryFeedURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		fetcher := photos.NewHTTPFetcher(&http.Client{Timeout: 10 * time.Second})
		items, err := fetcher.Fetch(ctx, cfg.GalleryFeedURL)
		if err != nil {
			logger.Warn("photo feed not loaded, using album fallback", "error", err)
		} else {
			gallery := services.NewGallery()
			gallery.SetPhotos(items)
			state.Photos = gallery.Photos()
		}
	}

	return state
}
