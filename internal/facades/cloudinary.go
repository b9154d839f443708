package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
)

// maxSearchResults caps one gallery page at the media host.
const maxSearchResults = 400

// blurTransform renders a tiny, heavily blurred JPEG used as the inline
// placeholder while the full image loads.
const blurTransform = "w_16,q_1,f_jpg,e_blur:1000"

// Resource is one image as returned by the media host's search endpoint.
type Resource struct {
	PublicID    string `json:"public_id"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	DisplayName string `json:"display_name"`
}

type searchRequest struct {
	Expression string              `json:"expression"`
	SortBy     []map[string]string `json:"sort_by"`
	MaxResults int                 `json:"max_results"`
}

type searchResponse struct {
	TotalCount int        `json:"total_count"`
	Resources  []Resource `json:"resources"`
}

// CloudinaryFacade talks to the Cloudinary Admin and delivery APIs.
type CloudinaryFacade struct {
	httpClient *http.Client
	apiBaseURL string
	resBaseURL string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
}

// CloudinaryOpt configures a CloudinaryFacade.
type CloudinaryOpt func(*CloudinaryFacade)

// WithCloudinaryHTTPClient overrides the default HTTP client.
func WithCloudinaryHTTPClient(c *http.Client) CloudinaryOpt {
	return func(f *CloudinaryFacade) { f.httpClient = c }
}

// WithCloudinaryAPIBaseURL overrides the Admin API base URL.
func WithCloudinaryAPIBaseURL(u string) CloudinaryOpt {
	return func(f *CloudinaryFacade) { f.apiBaseURL = u }
}

// WithCloudinaryResBaseURL overrides the public delivery base URL.
func WithCloudinaryResBaseURL(u string) CloudinaryOpt {
	return func(f *CloudinaryFacade) { f.resBaseURL = u }
}

// NewCloudinaryFacade creates a facade for the given cloud, credentials and
// gallery folder.
func NewCloudinaryFacade(cloudName, apiKey, apiSecret, folder string, opts ...CloudinaryOpt) *CloudinaryFacade {
	f := &CloudinaryFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBaseURL: "https://api.cloudinary.com",
		resBaseURL: "https://res.cloudinary.com",
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SearchImages lists the gallery folder, newest public_id first, capped at
// 400 results.
func (f *CloudinaryFacade) SearchImages(ctx context.Context) ([]Resource, error) {
	reqBody := searchRequest{
		Expression: fmt.Sprintf("folder:%s/*", f.folder),
		SortBy:     []map[string]string{{"public_id": "desc"}},
		MaxResults: maxSearchResults,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/v1_1/%s/resources/search", f.apiBaseURL, f.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(f.apiKey, f.apiSecret)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("media search request failed", "error", err)
		return nil, fmt.Errorf("media search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("media search error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("media search: status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	logger.Log.Infow("media search",
		"folder", f.folder,
		"count", len(result.Resources),
	)

	return result.Resources, nil
}

// FetchBlurPlaceholder downloads the blurred micro render of an image and
// returns it as a base64 data URL.
func (f *CloudinaryFacade) FetchBlurPlaceholder(ctx context.Context, publicID, format string) (string, error) {
	url := fmt.Sprintf("%s/%s/image/upload/%s/%s.%s",
		f.resBaseURL, f.cloudName, blurTransform, publicID, format)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build placeholder request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("placeholder request failed", "public_id", publicID, "error", err)
		return "", fmt.Errorf("fetch placeholder: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read placeholder: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("placeholder error", "public_id", publicID, "status", resp.StatusCode)
		return "", fmt.Errorf("fetch placeholder: status %d", resp.StatusCode)
	}

	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(body)), nil
}

// ImageURL builds the public CDN URL for the 720px render shown in the
// gallery grid.
func (f *CloudinaryFacade) ImageURL(publicID, format string) string {
	return fmt.Sprintf("%s/%s/image/upload/c_scale,w_720/%s.%s",
		f.resBaseURL, f.cloudName, publicID, format)
}
