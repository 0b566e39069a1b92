// Package metadata fetches rendered pages and checks the document metadata
// crawlers and link previews rely on.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/logging"
)

const (
	maxPageBytes   = 2 * 1024 * 1024
	requestTimeout = 10 * time.Second
)

// Metadata is what a page declares about itself.
type Metadata struct {
	URL         string
	Status      int
	Title       string
	Description string
	Canonical   string
	Robots      string
	OGTitle     string
	OGImage     string
	Headings    []string
}

// Service collects metadata over HTTP.
type Service struct {
	httpClient *http.Client
	logger     *logging.Logger
}

// NewService creates a collector using httpClient.
func NewService(httpClient *http.Client, logger *logging.Logger) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{httpClient: httpClient, logger: logger}
}

// Collect fetches rawURL and extracts its metadata. Non-200 answers are
// returned with only Status set.
func (s *Service) Collect(ctx context.Context, rawURL string) (*Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Metadata{URL: rawURL, Status: resp.StatusCode}, nil
	}

	md, err := Extract(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, err
	}
	md.URL = rawURL
	md.Status = resp.StatusCode
	return md, nil
}

// Extract reads the metadata of an HTML document.
func Extract(r io.Reader) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	md := &Metadata{
		Title:       strings.TrimSpace(doc.Find("head title").First().Text()),
		Description: attr(doc, `meta[name="description"]`, "content"),
		Canonical:   attr(doc, `link[rel="canonical"]`, "href"),
		Robots:      attr(doc, `meta[name="robots"]`, "content"),
		OGTitle:     attr(doc, `meta[property="og:title"]`, "content"),
		OGImage:     attr(doc, `meta[property="og:image"]`, "content"),
	}
	doc.Find("h1").Each(func(_ int, sel *goquery.Selection) {
		md.Headings = append(md.Headings, strings.Join(strings.Fields(sel.Text()), " "))
	})
	return md, nil
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

// Report is the audit outcome of one route.
type Report struct {
	Route    routes.Route
	Metadata *Metadata
	Problems []string
	Err      error
}

// OK reports whether the route was fetched and passed every check.
func (r Report) OK() bool {
	return r.Err == nil && len(r.Problems) == 0
}

// Check fetches every route below baseURL concurrently and audits it. Reports
// come back in route table order.
func (s *Service) Check(ctx context.Context, baseURL, siteName string) ([]Report, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	table := routes.Table()
	reports := make([]Report, len(table))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rt := range table {
		reports[i].Route = rt
		g.Go(func() error {
			target := base.JoinPath(rt.Path).String()
			md, err := s.Collect(gctx, target)
			if err != nil {
				reports[i].Err = err
				s.logger.Warn("metadata", "page fetch failed", map[string]any{"url": target, "error": err.Error()})
				return nil
			}
			reports[i].Metadata = md
			reports[i].Problems = Audit(*md, rt, siteName)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, ctx.Err()
}
