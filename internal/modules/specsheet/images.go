package specsheet

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxImageBytes caps a single fetched image; anything larger is treated as
// unavailable rather than ballooning the PDF.
const maxImageBytes = 8 << 20

// Fetcher retrieves remote product images for embedding. An optional proxy
// prefix works around hosts that refuse server-side fetches; every fetch
// has its own timeout, and a failed or timed-out image is simply skipped
// so the export continues without it.
type Fetcher struct {
	Client  *http.Client
	Proxy   string // e.g. "https://corsproxy.io/?", empty for direct fetch
	Timeout time.Duration
}

func NewFetcher(proxy string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{Client: &http.Client{}, Proxy: proxy, Timeout: timeout}
}

// FetchedImage is raw image data plus the format fpdf expects.
type FetchedImage struct {
	Data []byte
	Type string // "PNG" or "JPG"
}

// Fetch downloads one image. It returns (nil, nil) when the image is
// unavailable for any reason; the error return is reserved for ctx
// cancellation so a dead client stops the whole export.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) (*FetchedImage, error) {
	if imageURL == "" {
		return nil, nil
	}

	target := imageURL
	if f.Proxy != "" {
		target = f.Proxy + url.QueryEscape(imageURL)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil || len(data) == 0 || len(data) > maxImageBytes {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}

	imgType := detectImageType(data)
	if imgType == "" {
		return nil, nil
	}
	return &FetchedImage{Data: data, Type: imgType}, nil
}

func detectImageType(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	default:
		return ""
	}
}
