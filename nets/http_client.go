package nets

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/reusee/fox/foxconfigs"
)

type HTTPClient = *http.Client

const MaxRedirects = 10

var ErrTooManyRedirects = errors.New("too many redirects")

func (Module) HTTPClient(
	dialer Dialer,
	timeout foxconfigs.FetchTimeout,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
		Timeout: time.Duration(timeout),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MaxRedirects {
				return fmt.Errorf("%w: %d", ErrTooManyRedirects, len(via))
			}
			return nil
		},
	}
}
