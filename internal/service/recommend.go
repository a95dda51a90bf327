package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Recommender is the external recommendation service: an opaque ranked list
// of product ids. The catalog treats it as optional.
type Recommender interface {
	HomePicks(ctx context.Context, userID uint) ([]string, error)
	RelatedTo(ctx context.Context, productID string) ([]string, error)
}

// HTTPRecommender talks to the recommendation service over plain JSON HTTP.
type HTTPRecommender struct {
	base   string
	client *http.Client
}

func NewHTTPRecommender(base string) *HTTPRecommender {
	return &HTTPRecommender{base: base, client: &http.Client{Timeout: 3 * time.Second}}
}

func (r *HTTPRecommender) HomePicks(ctx context.Context, userID uint) ([]string, error) {
	return r.fetch(ctx, fmt.Sprintf("%s/collaborative?user_id=%d", r.base, userID))
}

func (r *HTTPRecommender) RelatedTo(ctx context.Context, productID string) ([]string, error) {
	return r.fetch(ctx, fmt.Sprintf("%s/item?product_id=%s", r.base, url.QueryEscape(productID)))
}

func (r *HTTPRecommender) fetch(ctx context.Context, u string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommend service: status %d", res.StatusCode)
	}
	var out struct {
		ProductIDs []string `json:"product_ids"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("recommend service: decode: %w", err)
	}
	return out.ProductIDs, nil
}

// NoopRecommender is used when no recommendation service is configured; the
// catalog falls back to its rating sort.
type NoopRecommender struct{}

func (NoopRecommender) HomePicks(ctx context.Context, userID uint) ([]string, error) {
	return nil, nil
}

func (NoopRecommender) RelatedTo(ctx context.Context, productID string) ([]string, error) {
	return nil, nil
}
