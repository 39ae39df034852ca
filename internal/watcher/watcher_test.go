package watcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sjsage522/salewatcher/internal/brand"
	"sjsage522/salewatcher/internal/detector"
	"sjsage522/salewatcher/internal/report"
	"sjsage522/salewatcher/services/cache"
)

const salePageHTML = `<html><head>
	<meta property="og:image" content="/promo/winter.jpg" />
</head><body>
	<div>겨울 클리어런스 세일 최대 60% 할인</div>
</body></html>`

// mockPublisher collects published payloads for assertions
type mockPublisher struct {
	published map[string][]byte
	trimmed   bool
}

func newMockPublisher() *mockPublisher {
	return &mockPublisher{published: make(map[string][]byte)}
}

func (m *mockPublisher) Publish(key string, message []byte) error {
	m.published[key] = message
	return nil
}

func (m *mockPublisher) TrimStreams() error {
	m.trimmed = true
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func newTestWatcher(t *testing.T, brands []brand.Record, pub *mockPublisher) (*Watcher, string) {
	t.Helper()
	outputPath := filepath.Join(t.TempDir(), "sales.json")
	fetcher := NewFetcher(cache.NewMemoryCache(), "salewatcher-test/1.0", 2*time.Second, time.Minute)

	opts := Options{
		Rules:        detector.DefaultRules(),
		HintPolicy:   detector.HintAlways,
		EnableImages: true,
		OutputPath:   outputPath,
	}

	if pub != nil {
		return NewWatcher(brands, fetcher, pub, opts), outputPath
	}
	return NewWatcher(brands, fetcher, nil, opts), outputPath
}

func TestRunClassifiesSalePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(salePageHTML))
	}))
	defer server.Close()

	brands := []brand.Record{{Name: "무신사", URL: server.URL, Country: "KR"}}
	w, outputPath := newTestWatcher(t, brands, nil)

	records, err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, report.StatusSale, rec.Status)
	if assert.NotNil(t, rec.MatchedKeyword) {
		assert.Equal(t, "세일", *rec.MatchedKeyword)
	}
	if assert.NotNil(t, rec.SaleType) {
		assert.Equal(t, detector.SaleTypeClearance, *rec.SaleType)
	}
	if assert.NotNil(t, rec.MaxDiscountHint) {
		assert.Equal(t, 60, *rec.MaxDiscountHint)
	}
	if assert.NotNil(t, rec.Image) {
		assert.Equal(t, server.URL+"/promo/winter.jpg", *rec.Image)
	}

	// The report landed on disk
	data, err := os.ReadFile(outputPath)
	assert.NoError(t, err)
	var written []report.Record
	assert.NoError(t, json.Unmarshal(data, &written))
	assert.Len(t, written, 1)
}

func TestRunFailedFetchDoesNotAbortPass(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>신상품 룩북</body></html>"))
	}))
	defer healthy.Close()

	brands := []brand.Record{
		{Name: "다운", URL: failing.URL, Country: "KR", SaleTypeHint: "season_off"},
		{Name: "정상", URL: healthy.URL, Country: "KR"},
	}
	w, _ := newTestWatcher(t, brands, nil)

	records, err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	failed := records[0]
	assert.Equal(t, report.StatusError, failed.Status)
	assert.NotEmpty(t, failed.Error)
	assert.False(t, failed.MembersOnly)
	assert.Nil(t, failed.MaxDiscountHint)
	assert.Nil(t, failed.MatchedKeyword)
	// Raw hint survives on the error path
	if assert.NotNil(t, failed.SaleType) {
		assert.Equal(t, "season_off", *failed.SaleType)
	}

	ok := records[1]
	assert.Equal(t, report.StatusNoSale, ok.Status)
	assert.Empty(t, ok.Error)

	// Both records share the run timestamp
	assert.Equal(t, failed.CheckedAt, ok.CheckedAt)
}

func TestRunManualImageOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(salePageHTML))
	}))
	defer server.Close()

	brands := []brand.Record{{
		Name:    "수동",
		URL:     server.URL,
		Country: "KR",
		Image:   "not-even-a-url",
	}}
	w, _ := newTestWatcher(t, brands, nil)

	records, err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	// Pass-through, no validation, no extraction attempt
	if assert.NotNil(t, records[0].Image) {
		assert.Equal(t, "not-even-a-url", *records[0].Image)
	}
}

func TestRunImagePageSharesFetch(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(salePageHTML))
	}))
	defer server.Close()

	brands := []brand.Record{{
		Name:      "공유",
		URL:       server.URL,
		Country:   "KR",
		ImagePage: server.URL,
	}}
	w, _ := newTestWatcher(t, brands, nil)

	_, err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestRunImagePageFailureDegradesToNoImage(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>세일 중</body></html>"))
	}))
	defer page.Close()

	brokenImagePage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer brokenImagePage.Close()

	brands := []brand.Record{{
		Name:      "브랜드",
		URL:       page.URL,
		Country:   "KR",
		ImagePage: brokenImagePage.URL + "/event",
	}}
	w, _ := newTestWatcher(t, brands, nil)

	records, err := w.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	// Still a normal sale record, just without an image
	assert.Equal(t, report.StatusSale, records[0].Status)
	assert.Nil(t, records[0].Image)
}

func TestRunPublishesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(salePageHTML))
	}))
	defer server.Close()

	pub := newMockPublisher()
	brands := []brand.Record{{Name: "무신사", URL: server.URL, Country: "KR"}}
	w, _ := newTestWatcher(t, brands, pub)

	_, err := w.Run(context.Background())
	assert.NoError(t, err)

	payload, ok := pub.published["무신사"]
	assert.True(t, ok)
	var rec report.Record
	assert.NoError(t, json.Unmarshal(payload, &rec))
	assert.Equal(t, report.StatusSale, rec.Status)
	assert.True(t, pub.trimmed)
}

func TestRunCancelledContext(t *testing.T) {
	brands := []brand.Record{
		{Name: "하나", URL: "https://one.example.com", Country: "KR"},
		{Name: "둘", URL: "https://two.example.com", Country: "KR"},
	}
	w, outputPath := newTestWatcher(t, brands, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Run(ctx)
	assert.Error(t, err)

	// An aborted run writes nothing
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}
