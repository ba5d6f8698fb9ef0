package trigger

import "strings"

// searchTriggers marks content as time-sensitive: quotes and prices, recency
// words, and the economy/politics/health/crime vocabulary that static model
// training data cannot cover. Over-triggering is acceptable; a false positive
// only costs one extra search call.
var searchTriggers = []string{
	"dólar", "dolar", "cotação", "preço", "valor", "subiu", "caiu", "aumentou", "diminuiu",
	"hoje", "ontem", "esta semana", "atual", "agora", "recente", "último", "nova",
	"bolsa", "ibovespa", "ação", "bitcoin", "cripto", "inflação", "pib", "economia",
	"eleição", "presidente", "governo", "ministro", "deputado", "senador",
	"covid", "vacina", "pandemia", "vírus", "saúde", "sus",
	"greve", "manifestação", "protesto", "acordo", "decisão", "aprovado",
	"morreu", "morte", "acidente", "crime", "prisão", "condenado",
}

// NeedsSearch reports whether content warrants a live web search before
// judgment. Case-insensitive substring match, no side effects.
func NeedsSearch(content string) bool {
	lower := strings.ToLower(content)
	for _, t := range searchTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
