package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// Client opens orders on the payment provider.
type Client interface {
	CreateOrder(ctx context.Context, req model.ProviderOrderRequest) (model.ProviderOrder, error)
}

// HTTPClient implements Client against the provider REST API using basic
// auth with the key id and secret.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates provider client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse razorpay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("razorpay url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// CreateOrder posts the order and returns the provider's object untouched.
func (c *HTTPClient) CreateOrder(ctx context.Context, order model.ProviderOrderRequest) (model.ProviderOrder, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("razorpay request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("create provider order: %w", domainErrors.ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", domainErrors.ErrUpstream)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("razorpay rejected order", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("razorpay error %s: %w", resp.Status, domainErrors.ErrUpstream)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("provider returned invalid json: %w", domainErrors.ErrUpstream)
	}

	return model.ProviderOrder(body), nil
}
