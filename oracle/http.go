package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/biblepay/go-gsc/common/types"
)

const maxResponseBytes = 1 << 16

type quoteResponse struct {
	Price    float64 `json:"price"`
	BTCPrice float64 `json:"btc"`
	Phase    float64 `json:"phase"`
}

// HTTPSource reads a quote from a JSON endpoint of the form
// {"price": 0.0005, "btc": 9000, "phase": 0}.
type HTTPSource struct {
	url    string
	client *retryablehttp.Client
}

func NewHTTPSource(url string, timeout time.Duration, retries int, delay time.Duration) *HTTPSource {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = retries
	client.RetryWaitMin = delay
	client.RetryWaitMax = 2 * delay
	client.Backoff = retryablehttp.LinearJitterBackoff
	client.HTTPClient.Timeout = timeout
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Quote(ctx context.Context) (types.Quote, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return types.Quote{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	res, err := s.client.Do(req)
	if err != nil {
		return types.Quote{}, fmt.Errorf("doing request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return types.Quote{}, fmt.Errorf("unexpected status: %s", res.Status)
	}
	var body quoteResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(&body); err != nil {
		return types.Quote{}, fmt.Errorf("decoding quote: %w", err)
	}
	return types.Quote{Price: body.Price, BTCPrice: body.BTCPrice, Phase: body.Phase}, nil
}
