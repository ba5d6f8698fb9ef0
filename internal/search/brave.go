package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// braveResponse mirrors the fields we use from the Brave Web Search API.
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
		} `json:"results"`
	} `json:"web"`
}

type BraveProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewBraveProvider(apiKey, endpoint string) *BraveProvider {
	if endpoint == "" {
		endpoint = defaultBraveEndpoint
	}
	return &BraveProvider{
		apiKey:   apiKey,
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *BraveProvider) Name() string { return "brave" }

func (p *BraveProvider) Search(ctx context.Context, query string) ([]Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("brave API key not configured")
	}

	reqURL := fmt.Sprintf("%s?q=%s&count=5", p.endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("X-Subscription-Token", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching search results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 response: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var data braveResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("error unmarshaling search results: %w", err)
	}

	results := make([]Result, 0, len(data.Web.Results))
	for _, r := range data.Web.Results {
		results = append(results, Result{
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
		})
	}
	return results, nil
}
