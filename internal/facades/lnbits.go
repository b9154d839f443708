package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
)

// LNBitsFacade mints pay-to-unlock links through the LNbits paywall
// extension.
type LNBitsFacade struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// LNBitsOpt configures an LNBitsFacade.
type LNBitsOpt func(*LNBitsFacade)

// WithLNBitsHTTPClient overrides the default HTTP client.
func WithLNBitsHTTPClient(c *http.Client) LNBitsOpt {
	return func(f *LNBitsFacade) { f.httpClient = c }
}

// NewLNBitsFacade creates a facade for the LNbits instance at baseURL.
func NewLNBitsFacade(baseURL, apiKey string, opts ...LNBitsOpt) *LNBitsFacade {
	f := &LNBitsFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type paywallRequest struct {
	URL         string `json:"url"`
	Memo        string `json:"memo"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Remembers   bool   `json:"remembers"`
}

type paywallResponse struct {
	ID string `json:"id"`
}

// CreatePaywall mints a paywall for the given image URL and returns the
// public pay-to-unlock link.
func (f *LNBitsFacade) CreatePaywall(ctx context.Context, url, memo string, amount int64) (string, error) {
	reqBody := paywallRequest{
		URL:         url,
		Memo:        memo,
		Description: memo,
		Amount:      amount,
		Remembers:   true,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal paywall request: %w", err)
	}

	endpoint := f.baseURL + "/paywall/api/v1/paywalls"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build paywall request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("paywall mint request failed", "memo", memo, "error", err)
		return "", fmt.Errorf("create paywall: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read paywall response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("paywall mint error", "memo", memo, "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("create paywall: status %d", resp.StatusCode)
	}

	var result paywallResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("unmarshal paywall response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("create paywall: empty paywall id")
	}

	paywallURL := fmt.Sprintf("%s/paywall/%s", f.baseURL, result.ID)

	logger.Log.Infow("paywall minted", "memo", memo, "paywall_url", paywallURL)

	return paywallURL, nil
}
