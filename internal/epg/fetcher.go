package epg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// Fetcher produces the raw decompressed guide document. A local copy
// younger than rawMaxAge is served as-is; a stale one is deleted before
// the feed is re-downloaded, so stale raw input is never parsed. No
// retries: one failure aborts the refresh and the caller decides.
type Fetcher struct {
	conf   *structures.Config
	client *http.Client
	logger providers.Logger
}

func NewFetcher(conf *structures.Config, logger providers.Logger) *Fetcher {
	return &Fetcher{
		conf:   conf,
		client: &http.Client{Timeout: conf.Epg.FetchTimeout},
		logger: logger,
	}
}

// Acquire returns the guide document bytes, narrating each step into log.
func (f *Fetcher) Acquire(ctx context.Context, log *RunLog) ([]byte, error) {
	path := f.conf.Epg.RawPath

	if fi, err := os.Stat(path); err == nil {
		age := time.Since(fi.ModTime())
		if age < f.conf.Epg.RawMaxAge {
			log.Infof("local raw feed found (age %.1fh): %s", age.Hours(), path)
			start := time.Now()
			doc, err := os.ReadFile(path)
			if err != nil {
				log.Errorf("reading local raw feed failed: %s", err)
				return nil, &FetchError{Source: path, Err: err}
			}
			log.Infof("loaded local feed: %.2f MB in %.2fs", mb(len(doc)), time.Since(start).Seconds())
			return doc, nil
		}
		log.Warnf("local raw feed is stale (age %.1fh), removing", age.Hours())
		_ = os.Remove(path)
	}

	log.Infof("downloading feed: %s", f.conf.Epg.FeedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.conf.Epg.FeedURL, nil)
	if err != nil {
		return nil, &FetchError{Source: f.conf.Epg.FeedURL, Err: err}
	}
	if f.conf.Epg.UserAgent != "" {
		req.Header.Set("User-Agent", f.conf.Epg.UserAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: f.conf.Epg.FeedURL, Err: err}
	}
	defer resp.Body.Close()
	f.logger.Debugf(providers.TypeRefresh, "feed response: status %d, content-length %d", resp.StatusCode, resp.ContentLength)

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: f.conf.Epg.FeedURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	compressed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: f.conf.Epg.FeedURL, Err: err}
	}
	if len(compressed) == 0 {
		return nil, &FetchError{Source: f.conf.Epg.FeedURL, Err: fmt.Errorf("empty response body")}
	}
	log.Infof("downloaded %.2f MB in %.2fs", mb(len(compressed)), time.Since(start).Seconds())

	log.Infof("decompressing feed...")
	start = time.Now()
	doc, err := gunzip(compressed)
	if err != nil {
		return nil, &DecompressError{Err: err}
	}
	log.Infof("decompressed: %.2f MB in %.2fs", mb(len(doc)), time.Since(start).Seconds())

	// Best effort: next refresh within rawMaxAge reuses this copy, but
	// the in-memory document is already good even if the write fails.
	if err := os.WriteFile(path, doc, 0644); err != nil {
		log.Warnf("could not save raw feed to %s: %s", path, err)
	} else {
		log.Infof("saved raw feed: %s", path)
	}

	return doc, nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func mb(n int) float64 {
	return float64(n) / 1024 / 1024
}
