package nets

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetch issues a GET for url, following redirects. The body is drained and discarded.
type Fetch func(ctx context.Context, url string) error

func (Module) Fetch(
	client HTTPClient,
) Fetch {
	return func(ctx context.Context, url string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", url, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", url, err)
		}
		defer resp.Body.Close()
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return fmt.Errorf("fetch %s: read body: %w", url, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("fetch %s: %s", url, resp.Status)
		}
		return nil
	}
}
