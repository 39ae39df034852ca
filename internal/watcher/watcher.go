package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sjsage522/salewatcher/helpers"
	"sjsage522/salewatcher/internal/brand"
	"sjsage522/salewatcher/internal/detector"
	"sjsage522/salewatcher/internal/report"
	"sjsage522/salewatcher/logger"
	"sjsage522/salewatcher/pkg/errors"
	"sjsage522/salewatcher/services/publisher"
)

// Options configures a watcher instance.
type Options struct {
	Rules        detector.RuleSet
	HintPolicy   detector.HintPolicy
	EnableImages bool
	RequestDelay time.Duration
	OutputPath   string
}

// Watcher drives classification passes over the configured brands.
// Execution is strictly sequential: one brand is fully fetched,
// classified, and assembled before the next begins.
type Watcher struct {
	brands    []brand.Record
	fetcher   *Fetcher
	publisher publisher.Publisher
	opts      Options
	log       *logger.Logger
}

// NewWatcher creates a new watcher. pub may be nil to disable stream
// mirroring.
func NewWatcher(brands []brand.Record, fetcher *Fetcher, pub publisher.Publisher, opts Options) *Watcher {
	return &Watcher{
		brands:    brands,
		fetcher:   fetcher,
		publisher: pub,
		opts:      opts,
		log:       logger.ForWatcher(),
	}
}

// Run performs one full pass and writes the report. Per-brand failures
// fold into error records; only context cancellation or a failed report
// write fails the pass. Exactly one record is produced per brand.
func (w *Watcher) Run(ctx context.Context) ([]report.Record, error) {
	start := time.Now()

	// One timestamp for every record in the pass
	checkedAt := time.Now().UTC().Format(time.RFC3339)

	records := make([]report.Record, 0, len(w.brands))
	for i, b := range w.brands {
		if i > 0 && w.opts.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(w.opts.RequestDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := w.checkBrand(ctx, b, checkedAt)
		records = append(records, rec)
		w.publish(rec)
	}

	if err := report.WriteJSON(w.opts.OutputPath, records); err != nil {
		return nil, err
	}

	if w.publisher != nil {
		if err := w.publisher.TrimStreams(); err != nil {
			w.log.Warn().Err(err).Msg("Failed to trim report streams")
		}
	}

	w.log.Info().
		Int("brand_count", len(records)).
		Str("output", w.opts.OutputPath).
		Dur("elapsed", time.Since(start)).
		Msg("Pass complete")

	return records, nil
}

// Start runs passes on a fixed interval until the context is cancelled.
// A failed pass is logged and the loop continues; the next pass starts
// from a clean slate.
func (w *Watcher) Start(ctx context.Context, interval time.Duration) error {
	for {
		if _, err := w.Run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.Error().Err(err).Msg("Pass failed")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// checkBrand runs the per-brand pipeline. It never lets a failure
// escape: fetch, parse, and even detector panics collapse into an
// error-status record so the pass continues.
func (w *Watcher) checkBrand(ctx context.Context, b brand.Record, checkedAt string) (rec report.Record) {
	log := w.log.WithField("brand", b.Name)
	log.Info().Str("url", b.URL).Msg("Checking brand")

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Detector panic recovered")
			rec = report.AssembleError(b, fmt.Errorf("detector panic: %v", r), checkedAt)
		}
	}()

	html, err := w.fetcher.Fetch(ctx, b.URL)
	if err != nil {
		log.Warn().Err(err).Msg("Fetch failed")
		return report.AssembleError(b, errors.NewNetwork(b.Name, "failed to fetch page", err), checkedAt)
	}

	text, err := detector.NormalizeHTML(html)
	if err != nil {
		log.Warn().Err(err).Msg("Parse failed")
		return report.AssembleError(b, errors.NewParsing(b.Name, "failed to parse page", err), checkedAt)
	}

	sig := detector.Classify(text, detector.Options{
		Keywords:   helpers.MergeKeywords(w.opts.Rules.Keywords, b.KeywordsExtra),
		Hint:       b.SaleTypeHint,
		HintPolicy: w.opts.HintPolicy,
		Rules:      w.opts.Rules,
	})

	if w.opts.EnableImages {
		sig.Image = w.resolveImage(ctx, b, html, log)
	}

	return report.Assemble(b, sig, checkedAt)
}

// resolveImage applies the manual override, else scans the designated
// image page. An image-page fetch failure degrades to no image, never
// to an error record.
func (w *Watcher) resolveImage(ctx context.Context, b brand.Record, pageHTML string, log *logger.Logger) string {
	if b.Image != "" {
		return b.Image
	}

	src := b.ImageSource()
	html := pageHTML
	if src != b.URL {
		fetched, err := w.fetcher.Fetch(ctx, src)
		if err != nil {
			log.Debug().Err(err).Str("image_page", src).Msg("Image page fetch failed")
			return ""
		}
		html = fetched
	}

	return detector.ExtractImage(html, src)
}

// publish mirrors one record onto the stream when mirroring is enabled.
// Publish failures are logged, never propagated.
func (w *Watcher) publish(rec report.Record) {
	if w.publisher == nil {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		w.log.Warn().Err(err).Str("brand", rec.Brand).Msg("Failed to marshal record for publishing")
		return
	}

	if err := w.publisher.Publish(rec.Brand, data); err != nil {
		w.log.Warn().Err(err).Str("brand", rec.Brand).Msg("Failed to publish record")
	}
}
