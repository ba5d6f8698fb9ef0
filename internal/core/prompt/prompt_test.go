package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeWithContentAndEvidence(t *testing.T) {
	p := Compose(Input{
		Content:  "O dólar subiu hoje para R$5,80",
		Evidence: "1. Dólar fecha em alta\nCotação atinge R$5,80\nFonte: https://example.com\n",
	})

	assert.Contains(t, p, "TEXTO/CONTEÚDO: O dólar subiu hoje para R$5,80")
	assert.Contains(t, p, "RESULTADOS DA BUSCA WEB:")
	assert.Contains(t, p, "Cotação atinge R$5,80")
	assert.Contains(t, p, "verificador de fatos profissional brasileiro")
	assert.Contains(t, p, `"classification": "verified|false|partial"`)
}

func TestComposeWithoutEvidence(t *testing.T) {
	p := Compose(Input{Content: "gatos gostam de dormir"})

	assert.Contains(t, p, "TEXTO/CONTEÚDO: gatos gostam de dormir")
	assert.NotContains(t, p, "RESULTADOS DA BUSCA WEB:")
}

func TestComposeURLAndImage(t *testing.T) {
	p := Compose(Input{URL: "https://example.com/noticia", HasImage: true})

	assert.Contains(t, p, "URL: https://example.com/noticia")
	assert.Contains(t, p, "IMAGEM: Análise de imagem fornecida pelo usuário")
	assert.NotContains(t, p, "TEXTO/CONTEÚDO:")
}

func TestComposeEmptyInputFallsBack(t *testing.T) {
	p := Compose(Input{Content: "   "})

	assert.Contains(t, p, "Conteúdo muito curto ou indefinido fornecido para análise")
}

func TestComposeScoringBandsPresent(t *testing.T) {
	p := Compose(Input{Content: "qualquer coisa"})

	// The judge only stays consistent if the band text survives verbatim.
	assert.Contains(t, p, "0-30 = Falsa, 31-70 = Duvidosa, 71-100 = Verdadeira")
	assert.Contains(t, p, `apenas indique "fontes verificadas" ou "busca em tempo real"`)
	for _, line := range []string{"VERDADEIRA (verified)", "FALSA (false)", "DUVIDOSA (partial)"} {
		assert.True(t, strings.Contains(p, line), "missing %q", line)
	}
}
