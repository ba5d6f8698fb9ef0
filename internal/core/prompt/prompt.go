package prompt

import (
	"fmt"
	"strings"
)

// TrustedSources are outlets the judge may use as a credibility yardstick
// when grading URL submissions.
var TrustedSources = []string{
	"g1.globo.com",
	"nytimes.com",
	"uol.com.br",
	"estadao.com.br",
	"folha.uol.com.br",
	"bbc.com",
	"reuters.com",
	"ap.org",
	"cnn.com",
	"agenciabrasil.ebc.com.br",
}

// Input carries whichever parts of the submission are present, plus any
// evidence already gathered for it.
type Input struct {
	Content  string
	URL      string
	HasImage bool
	Evidence string
}

// Compose assembles the judge prompt: role preamble, the information block,
// web evidence, the scoring instructions, and the strict JSON output
// directive. Pure string assembly.
func Compose(in Input) string {
	var sb strings.Builder

	if content := strings.TrimSpace(in.Content); content != "" {
		sb.WriteString(fmt.Sprintf("TEXTO/CONTEÚDO: %s", content))
		if in.Evidence != "" {
			sb.WriteString(fmt.Sprintf("\n\nRESULTADOS DA BUSCA WEB:\n%s", in.Evidence))
		}
	}
	if url := strings.TrimSpace(in.URL); url != "" {
		sb.WriteString(fmt.Sprintf("\nURL: %s", url))
	}
	if in.HasImage {
		sb.WriteString("\nIMAGEM: Análise de imagem fornecida pelo usuário")
	}

	analysisContent := sb.String()
	if strings.TrimSpace(analysisContent) == "" {
		analysisContent = "Conteúdo muito curto ou indefinido fornecido para análise"
	}

	return fmt.Sprintf(`
Você é um verificador de fatos profissional brasileiro. Analise a seguinte informação e forneça uma verificação completa:

INFORMAÇÃO A VERIFICAR:
%s

FONTES CONFIÁVEIS PARA REFERÊNCIA DE CREDIBILIDADE:
%s

INSTRUÇÕES IMPORTANTES:
1. Se o conteúdo for muito vago, indefinido ou sem substância informativa (como letras aleatórias, textos sem sentido), classifique como FALSA
2. Para URLs, analise o domínio e credibilidade da fonte
3. Para imagens, analise se realmente contém informação noticiosa relevante ou se é spam/desinformação
4. USE OS RESULTADOS DA BUSCA WEB fornecidos acima para verificar informações atuais como cotações, preços, eventos recentes
5. Se os resultados da busca CONFIRMAM a informação, classifique como VERDADEIRA
6. Se os resultados da busca CONTRADIZEM a informação, classifique como FALSA
7. Se NÃO há resultados de busca ou informações insuficientes, classifique como FALSA (fake news)
8. Se encontrar informações contraditórias ou parciais, classifique como DUVIDOSA
9. Para informações factuais (cotações, preços, eventos): SEMPRE se baseie nos resultados da busca web mais recentes
10. Classifique como: VERDADEIRA (verified), FALSA (false) ou DUVIDOSA (partial)
11. Dê uma pontuação de 0-100 para veracidade (0-30 = Falsa, 31-70 = Duvidosa, 71-100 = Verdadeira)
12. Forneça explicação detalhada mencionando se foi encontrada confirmação nas buscas realizadas
13. Liste critérios analisados incluindo verificação em tempo real
14. NÃO mencione nomes de sites específicos na resposta, apenas indique "fontes verificadas" ou "busca em tempo real"

IMPORTANTE: Responda APENAS em JSON válido com esta estrutura exata:
{
  "classification": "verified|false|partial",
  "score": 85,
  "explanation": "Explicação detalhada baseada na busca em tempo real e verificação de fontes",
  "criteria": [
    {"name": "Verificação em tempo real", "status": true},
    {"name": "Confirmação em múltiplas fontes", "status": true},
    {"name": "Consistência com dados atuais", "status": true}
  ],
  "sources": []
}`, analysisContent, strings.Join(TrustedSources, ", "))
}
