package search

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleProviderSearchSuccess(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, defaultGoogleEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{
			"items": [
				{"title": "Dólar hoje", "snippet": "Cotação do dia", "link": "https://example.com/cotacao"}
			]
		}`))

	p := NewGoogleProvider("test-key", "", "")
	results, err := p.Search(context.Background(), "dólar hoje")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dólar hoje", results[0].Title)
	assert.Equal(t, "Cotação do dia", results[0].Description)
	assert.Equal(t, "https://example.com/cotacao", results[0].URL)
}

func TestGoogleProviderDefaultCSEID(t *testing.T) {
	p := NewGoogleProvider("test-key", "", "")
	assert.Equal(t, DefaultCSEID, p.cseID)

	p = NewGoogleProvider("test-key", "custom-id", "")
	assert.Equal(t, "custom-id", p.cseID)
}

func TestGoogleProviderNoAPIKey(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	p := NewGoogleProvider("", "", "")
	_, err := p.Search(context.Background(), "dólar hoje")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestGoogleProviderNon200(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, defaultGoogleEndpoint,
		httpmock.NewStringResponder(http.StatusForbidden, `{"error": {"code": 403}}`))

	p := NewGoogleProvider("test-key", "", "")
	_, err := p.Search(context.Background(), "dólar hoje")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}
