package core

import (
	"github.com/verificabr/verifica/internal/core/common"
	"github.com/verificabr/verifica/internal/core/model"
)

// ParseVerdict extracts the verdict JSON from raw judge output. It never
// fails: output that cannot be extracted or decoded gets the conservative
// fallback verdict, since unparseable judge output must not pass as success.
func ParseVerdict(raw string) model.Verdict {
	verdict, err := common.ParseJSON[model.Verdict](raw)
	if err != nil {
		return FallbackVerdict()
	}
	return verdict
}

// FallbackVerdict is the fixed safety default: treat content the judge could
// not analyze as likely misinformation rather than unknown.
func FallbackVerdict() model.Verdict {
	return model.Verdict{
		Classification: model.ClassificationFalse,
		Score:          20,
		Explanation: "Não foi possível analisar esta informação adequadamente. " +
			"Conteúdo pode ser spam, desinformação ou não possui substância informativa verificável.",
		Criteria: []model.Criterion{
			{Name: "Análise automatizada", Status: false},
			{Name: "Conteúdo verificável", Status: false},
		},
		Sources: []model.Source{},
	}
}
