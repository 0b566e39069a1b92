package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Its-donkey/convertx/internal/config"
	"github.com/Its-donkey/convertx/internal/content"
	"github.com/Its-donkey/convertx/internal/gallery"
	"github.com/Its-donkey/convertx/internal/relay"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/forms"
	"github.com/Its-donkey/convertx/internal/ui/pages"
	"github.com/Its-donkey/convertx/logging"
	"github.com/Its-donkey/convertx/ui"
)

const (
	assetsPrefix   = "/assets/"
	ogImagePath    = assetsPrefix + "og-image.png"
	screenshotsDir = "screenshots"

	descriptionLimit = 155
	shutdownTimeout  = 5 * time.Second
)

// Options configures the HTTP server.
type Options struct {
	Config config.Config
	Logger *logging.Logger
	// Content overrides the embedded site content.
	Content *content.Content
	// Relay overrides the form relay client built from Config.
	Relay forms.Relay
	// Assets overrides the embedded static files.
	Assets fs.FS
}

type server struct {
	cfg         config.Config
	logger      *logging.Logger
	content     content.Content
	screenshots []gallery.Image
	assets      fs.FS
	submitter   forms.Submitter
	qualified   forms.Schema
	disqual     forms.Schema
	site        pages.Site
	primaryHost string
}

// Run serves the site until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	srv, err := newServer(ctx, opts)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              srv.cfg.Listen(),
		Handler:           srv.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srv.logger.Info("general", "serving site", map[string]any{
			"site":   srv.site.Name,
			"listen": "http://" + httpServer.Addr,
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func newServer(ctx context.Context, opts Options) (*server, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	if missing := cfg.MissingAccessKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", relay.ErrMissingAccessKey, strings.Join(missing, ", "))
	}

	var site content.Content
	switch {
	case opts.Content != nil:
		site = *opts.Content
	case strings.TrimSpace(cfg.App.Content) != "":
		loaded, err := content.LoadFile(cfg.App.Content)
		if err != nil {
			return nil, err
		}
		site = loaded
	default:
		loaded, err := content.Load()
		if err != nil {
			return nil, err
		}
		site = loaded
	}

	assets := opts.Assets
	if assets == nil {
		assets = overlayFS{layers: assetLayers(cfg.App.Assets)}
	}

	shots := make([]string, len(site.Screenshots.Images))
	for i, name := range site.Screenshots.Images {
		shots[i] = screenshotsDir + "/" + name
	}
	measured, err := gallery.Measure(ctx, assets, shots)
	if err != nil {
		return nil, err
	}
	for i := range measured {
		measured[i].Path = site.Screenshots.Images[i]
		if measured[i].Width == 0 {
			logger.Warn("general", "screenshot size unknown", map[string]any{"path": shots[i]})
		}
	}

	relayClient := opts.Relay
	if relayClient == nil {
		relayClient = relay.New(cfg.Relay.Endpoint, cfg.Relay.Timeout())
	}

	attachments := cfg.Features.Attachments
	return &server{
		cfg:         cfg,
		logger:      logger,
		content:     site,
		screenshots: measured,
		assets:      assets,
		submitter:   forms.Submitter{Relay: relayClient, Logger: logger},
		qualified: forms.Qualified(forms.RelayConfig{
			AccessKey: cfg.Relay.Forms.Qualified.AccessKey,
			Subject:   cfg.Relay.Forms.Qualified.Subject,
		}, attachments),
		disqual: forms.Disqualified(forms.RelayConfig{
			AccessKey: cfg.Relay.Forms.Disqualified.AccessKey,
			Subject:   cfg.Relay.Forms.Disqualified.Subject,
		}, attachments),
		site: pages.Site{
			Name:         cfg.Site.Name,
			Description:  truncateWithEllipsis(cfg.Site.Description, descriptionLimit),
			ContactEmail: cfg.Site.ContactEmail,
			BookingURL:   cfg.Features.BookingURL,
			BookingEmbed: cfg.Features.BookingEmbed,
			Client:       hasClient(assets),
		},
		primaryHost: strings.TrimSpace(cfg.Site.CanonicalHost),
	}, nil
}

// assetLayers puts the build output directory, when present, in front of the
// embedded files.
func assetLayers(dir string) []fs.FS {
	layers := []fs.FS{ui.Static()}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return layers
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return layers
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return layers
	}
	return append([]fs.FS{os.DirFS(abs)}, layers...)
}

// hasClient reports whether the WASM client and its loader can be served.
func hasClient(assets fs.FS) bool {
	for _, name := range []string{"main.wasm", "wasm_exec.js"} {
		if _, err := fs.Stat(assets, name); err != nil {
			return false
		}
	}
	return true
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc(routes.GettingStarted, s.handleGettingStarted)
	mux.HandleFunc(routes.GettingStartedGo, s.handleGettingStartedNext)
	mux.HandleFunc(routes.Disqualified, s.handleDisqualified)
	mux.HandleFunc(routes.DiscoveryCall, s.leadFormHandler(s.qualified, routes.DiscoveryCall))
	mux.HandleFunc(routes.BookConsultation, s.leadFormHandler(s.disqual, routes.BookConsultation))
	mux.Handle(assetsPrefix, s.assetHandler())
	mux.HandleFunc("/robots.txt", s.handleRobots)
	mux.HandleFunc("/sitemap.xml", s.handleSitemap)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, assetsPrefix+"logo.png", http.StatusMovedPermanently)
	})

	return logging.NewHTTPLogger(s.logger).Middleware(trailingSlash(mux))
}

// trailingSlash redirects "/path/" to "/path" for the known routes.
func trailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasPrefix(p, assetsPrefix) {
			if rt, ok := routes.Lookup(p); ok {
				target := rt.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) absoluteURL(r *http.Request, path string) string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		clean = "/"
	}
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	if host := s.primaryHost; host != "" {
		return "https://" + host + clean
	}
	scheme := "https"
	if r != nil {
		if proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto != "" {
			scheme = proto
		} else if r.TLS == nil {
			scheme = "http"
		}
		if host := strings.TrimSpace(r.Host); host != "" {
			return fmt.Sprintf("%s://%s%s", scheme, host, clean)
		}
	}
	return fmt.Sprintf("%s://localhost%s", scheme, clean)
}

func truncateWithEllipsis(value string, max int) string {
	value = strings.TrimSpace(value)
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	cut := max
	for i := max; i >= 0 && i >= max-20; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	trimmed := strings.TrimSpace(string(runes[:cut]))
	if trimmed == "" {
		trimmed = strings.TrimSpace(string(runes[:max]))
	}
	return trimmed + "..."
}

// pageSite returns the site settings with request-dependent URLs resolved.
func (s *server) pageSite(r *http.Request) pages.Site {
	site := s.site
	site.OGImage = s.absoluteURL(r, ogImagePath)
	return site
}

func (s *server) pageDoc(r *http.Request, canonicalPath string) pages.Doc {
	return pages.Doc{Canonical: s.absoluteURL(r, canonicalPath)}
}
