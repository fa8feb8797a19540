// Package export drives the batch: one pass over the input URL list,
// appending a formatted block per successfully fetched page to a single
// timestamped output file.
//
// Output files are named by the run-start local timestamp at second
// granularity. Two runs starting within the same second share a filename;
// because the file is opened in append mode the second run appends rather
// than truncates. Known limitation, kept as-is.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/confluence-tools/confluence-md-export/pkg/confluence"
	"github.com/confluence-tools/confluence-md-export/pkg/logging"
	"github.com/confluence-tools/confluence-md-export/pkg/markdown"
	"github.com/confluence-tools/confluence-md-export/pkg/names"
	"github.com/confluence-tools/confluence-md-export/pkg/wikiurl"
)

// Prometheus metrics for batch operations.
var (
	pagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "export_pages_total",
		Help: "Pages handled by the batch by result",
	}, []string{"result"}) // "exported", "skipped"
)

const (
	outputFilePrefix = "confluence_data_"
	timestampLayout  = "20060102_150405"
)

// PageFetcher is the page surface the exporter needs from the API client.
type PageFetcher interface {
	GetPage(ctx context.Context, baseURL, pageID string) (*confluence.Page, error)
}

// Summary reports the outcome of one batch run.
type Summary struct {
	// Processed counts pages fetched, formatted, and appended.
	Processed int

	// Skipped counts URLs dropped for parse or fetch failures.
	Skipped int

	// OutputPath is the file blocks were appended to.
	OutputPath string
}

// Exporter processes page URLs in input order, strictly sequentially.
// The resolver's cache is shared across the whole batch so repeated authors
// cost one lookup each.
type Exporter struct {
	client    PageFetcher
	resolver  *names.Resolver
	logger    zerolog.Logger
	outputDir string
	now       func() time.Time
}

// New creates an Exporter writing into outputDir.
func New(client PageFetcher, resolver *names.Resolver, outputDir string) *Exporter {
	if client == nil {
		panic("page fetcher cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	return &Exporter{
		client:    client,
		resolver:  resolver,
		logger:    logging.NewLogger("export"),
		outputDir: outputDir,
		now:       time.Now,
	}
}

// SetClock overrides the timestamp source (for testing).
func (e *Exporter) SetClock(now func() time.Time) {
	e.now = now
}

// Run processes every URL in order and appends one block per successfully
// fetched page. Parse and fetch failures are logged and skipped; nothing
// inside the loop aborts the batch. Human-readable progress lines are
// written to progress (may be nil).
func (e *Exporter) Run(ctx context.Context, urls []string, progress io.Writer) (Summary, error) {
	if progress == nil {
		progress = io.Discard
	}

	timestamp := e.now().Format(timestampLayout)

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir %s: %w", e.outputDir, err)
	}

	outputPath := filepath.Join(e.outputDir, outputFilePrefix+timestamp+".md")
	out, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Summary{}, fmt.Errorf("open output file %s: %w", outputPath, err)
	}
	defer out.Close()

	e.logger.Info().
		Int("urls", len(urls)).
		Str("output", outputPath).
		Msg("Batch started")

	summary := Summary{OutputPath: outputPath}
	for _, rawURL := range urls {
		if err := e.exportPage(ctx, rawURL, out, progress); err != nil {
			e.logger.Warn().Err(err).Str("url", rawURL).Msg("Skipping page")
			fmt.Fprintf(progress, "skipped %s: %v\n", rawURL, err)
			pagesTotal.WithLabelValues("skipped").Inc()
			summary.Skipped++
			continue
		}
		pagesTotal.WithLabelValues("exported").Inc()
		summary.Processed++
	}

	e.logger.Info().
		Int("exported", summary.Processed).
		Int("skipped", summary.Skipped).
		Str("output", outputPath).
		Msg("Batch completed")

	return summary, nil
}

// exportPage runs one URL through parse, fetch, author resolution,
// conversion, and append.
func (e *Exporter) exportPage(ctx context.Context, rawURL string, out io.Writer, progress io.Writer) error {
	parsed, err := wikiurl.Parse(rawURL)
	if err != nil {
		return err
	}

	page, err := e.client.GetPage(ctx, parsed.BaseURL, parsed.PageID)
	if err != nil {
		return err
	}

	body, err := markdown.Convert(page.Body.Storage.Value)
	if err != nil {
		return err
	}

	author := e.resolver.Resolve(ctx, parsed.BaseURL, page.History.CreatedBy.AccountID)

	block := markdown.PageBlock{
		Title:       page.DisplayTitle(),
		URL:         page.WebLink(rawURL),
		SpaceName:   page.SpaceName(),
		Author:      author,
		LastUpdated: page.LastUpdated(),
		Body:        body,
	}

	if _, err := io.WriteString(out, block.Render()); err != nil {
		return fmt.Errorf("append block: %w", err)
	}

	e.logger.Info().
		Str("title", block.Title).
		Str("page_id", parsed.PageID).
		Msg("Page exported")
	fmt.Fprintf(progress, "exported %q (page %s)\n", block.Title, parsed.PageID)

	return nil
}
