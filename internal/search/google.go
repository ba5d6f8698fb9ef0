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

const (
	defaultGoogleEndpoint = "https://www.googleapis.com/customsearch/v1"

	// DefaultCSEID is used when no search engine id is configured.
	DefaultCSEID = "017576662512468239146:omuauf_lfve"
)

// googleResponse mirrors the fields we use from the Custom Search JSON API.
type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

type GoogleProvider struct {
	apiKey   string
	cseID    string
	endpoint string
	client   *http.Client
}

func NewGoogleProvider(apiKey, cseID, endpoint string) *GoogleProvider {
	if cseID == "" {
		cseID = DefaultCSEID
	}
	if endpoint == "" {
		endpoint = defaultGoogleEndpoint
	}
	return &GoogleProvider{
		apiKey:   apiKey,
		cseID:    cseID,
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) Search(ctx context.Context, query string) ([]Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("google API key not configured")
	}

	reqURL := fmt.Sprintf("%s?key=%s&cx=%s&q=%s&num=3",
		p.endpoint, url.QueryEscape(p.apiKey), url.QueryEscape(p.cseID), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

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

	var data googleResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("error unmarshaling search results: %w", err)
	}

	results := make([]Result, 0, len(data.Items))
	for _, item := range data.Items {
		results = append(results, Result{
			Title:       item.Title,
			Description: item.Snippet,
			URL:         item.Link,
		})
	}
	return results, nil
}
