// Package steam talks to the public Steam store API and enriches
// catalog games that carry a Steam app id.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultStoreAPIURL = "https://store.steampowered.com"

// AppDetails is the subset of the appdetails payload we use.
type AppDetails struct {
	Name        string `json:"name"`
	HeaderImage string `json:"header_image"`
	Metacritic  *struct {
		Score int    `json:"score"`
		URL   string `json:"url"`
	} `json:"metacritic"`
}

type appDetailsEnvelope struct {
	Success bool        `json:"success"`
	Data    *AppDetails `json:"data"`
}

// ReviewSummary is the query_summary block of the appreviews endpoint.
type ReviewSummary struct {
	ReviewScore     int    `json:"review_score"`
	ReviewScoreDesc string `json:"review_score_desc"`
	TotalPositive   int    `json:"total_positive"`
	TotalNegative   int    `json:"total_negative"`
	TotalReviews    int    `json:"total_reviews"`
}

type appReviewsEnvelope struct {
	Success      int            `json:"success"`
	QuerySummary *ReviewSummary `json:"query_summary"`
}

// Client is a rate-limited client for the public Steam store API. The
// store endpoints need no API key but throttle aggressive callers, so
// requests go through a shared limiter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client against the public store API. Steam allows
// roughly 200 store requests per 5 minutes, hence one request per
// 1.5 seconds with a small burst.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultStoreAPIURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(1500*time.Millisecond), 2),
	}
}

// AppDetails fetches store details for one app. Returns an error when
// Steam reports no data for the id.
func (c *Client) AppDetails(ctx context.Context, appID int) (*AppDetails, error) {
	url := fmt.Sprintf("%s/api/appdetails?appids=%d", c.baseURL, appID)

	var envelope map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("fetch app details for %d: %w", appID, err)
	}

	entry, ok := envelope[fmt.Sprintf("%d", appID)]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, fmt.Errorf("no app details for steam app %d", appID)
	}
	return entry.Data, nil
}

// AppReviews fetches the review summary for one app.
func (c *Client) AppReviews(ctx context.Context, appID int) (*ReviewSummary, error) {
	url := fmt.Sprintf("%s/appreviews/%d?json=1&num_per_page=0&language=all&purchase_type=all", c.baseURL, appID)

	var envelope appReviewsEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("fetch reviews for %d: %w", appID, err)
	}

	if envelope.Success != 1 || envelope.QuerySummary == nil {
		return nil, fmt.Errorf("no review summary for steam app %d", appID)
	}
	return envelope.QuerySummary, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
