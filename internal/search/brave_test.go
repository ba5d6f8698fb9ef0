package search

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func braveSuccessResponse() string {
	return `{
		"web": {
			"results": [
				{"title": "Dólar fecha em alta", "description": "Cotação atinge R$5,80", "url": "https://noticias.example/dolar"},
				{"title": "Mercado reage", "description": "Bolsa cai", "url": "https://noticias.example/bolsa"}
			]
		}
	}`
}

func TestBraveProviderSearchSuccess(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, defaultBraveEndpoint,
		httpmock.NewStringResponder(http.StatusOK, braveSuccessResponse()))

	p := NewBraveProvider("test-key", "")
	results, err := p.Search(context.Background(), "dólar hoje")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Dólar fecha em alta", results[0].Title)
	assert.Equal(t, "Cotação atinge R$5,80", results[0].Description)
	assert.Equal(t, "https://noticias.example/dolar", results[0].URL)
}

func TestBraveProviderNoAPIKey(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	p := NewBraveProvider("", "")
	results, err := p.Search(context.Background(), "dólar hoje")

	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "not configured")
	assert.Equal(t, 0, httpmock.GetTotalCallCount(), "missing key must not hit the network")
}

func TestBraveProviderNon200(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, defaultBraveEndpoint,
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error": "rate limited"}`))

	p := NewBraveProvider("test-key", "")
	_, err := p.Search(context.Background(), "dólar hoje")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}

func TestBraveProviderMalformedBody(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, defaultBraveEndpoint,
		httpmock.NewStringResponder(http.StatusOK, "not json"))

	p := NewBraveProvider("test-key", "")
	_, err := p.Search(context.Background(), "dólar hoje")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}
