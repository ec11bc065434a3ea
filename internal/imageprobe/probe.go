// Package imageprobe checks whether a record's image URL is reachable, which
// decides between the placeholder and the broken-image marker in the UI.
package imageprobe

import (
	"context"
	"net/http"
	"strings"
	"time"

	"amphibians/internal/metrics"

	"github.com/go-resty/resty/v2"
)

// Status is the display state of one image.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusBroken
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Prober issues availability checks for image URLs.
type Prober struct {
	client *resty.Client
}

// New creates a prober. Zero timeout means none.
func New(timeout time.Duration) *Prober {
	c := resty.New().SetHeader("Accept", "image/*")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Prober{client: c}
}

// Probe returns StatusReady when url answers 2xx with an image (or
// unspecified) content type, StatusBroken otherwise.
// Servers rejecting HEAD with 405 are retried once with GET.
func (p *Prober) Probe(ctx context.Context, url string) Status {
	s := p.probe(ctx, url)
	metrics.ImageProbesTotal.WithLabelValues(s.String()).Inc()
	return s
}

func (p *Prober) probe(ctx context.Context, url string) Status {
	if url == "" {
		return StatusBroken
	}

	resp, err := p.client.R().SetContext(ctx).Head(url)
	if err != nil {
		return StatusBroken
	}
	if resp.StatusCode() == http.StatusMethodNotAllowed {
		resp, err = p.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
		if err != nil {
			return StatusBroken
		}
		if body := resp.RawBody(); body != nil {
			_ = body.Close()
		}
	}
	return classify(resp.StatusCode(), resp.Header().Get("Content-Type"))
}

func classify(status int, contentType string) Status {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return StatusBroken
	}
	if contentType == "" || strings.HasPrefix(strings.ToLower(contentType), "image/") ||
		strings.HasPrefix(contentType, "application/octet-stream") {
		return StatusReady
	}
	return StatusBroken
}
