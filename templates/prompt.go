package templates

import (
	"fmt"
	"strings"
)

// PromptDigest is the operational context handed to a language model.
type PromptDigest struct {
	Total       int
	Delayed     int
	InFlight    int
	Scheduled   int
	Canceled    int
	Completed   int
	TopAirlines string
	Sample      []string
	History     []string
	Question    string
}

// SystemPrompt builds the model instructions for the given mode and user.
func SystemPrompt(mode, userName string) string {
	style := "respostas curtas, claras e executivas"
	if mode == "tecnico" {
		style = "respostas detalhadas, objetivas e com estrutura tecnica"
	}

	parts := []string{
		"Voce e o Assistente IA do sistema SkyTrak.",
		"Responda sempre em portugues do Brasil.",
		fmt.Sprintf("Use %s.", style),
		"Responda somente com base no contexto fornecido.",
		"Se faltar dado, diga explicitamente o que falta e sugira proximo passo.",
		"Nao invente numeros, voos ou aeroportos.",
		"Quando houver listas longas, resuma e ofereca continuidade por paginacao.",
	}
	if userName != "" {
		parts = append(parts, fmt.Sprintf("Nome do usuario atual: %s.", userName))
	}
	return strings.Join(parts, " ")
}

// UserPrompt renders the digest, the recent history and the question.
func UserPrompt(d PromptDigest) string {
	airlines := d.TopAirlines
	if airlines == "" {
		airlines = "sem dados"
	}
	sample := strings.Join(d.Sample, "\n")
	if sample == "" {
		sample = "(sem voos na amostra)"
	}
	history := strings.Join(d.History, "\n")
	if history == "" {
		history = "(sem historico)"
	}

	return strings.Join([]string{
		"Contexto operacional:",
		fmt.Sprintf("- Total de voos: %d", d.Total),
		fmt.Sprintf("- Status: atrasado=%d, em_voo=%d, previsto=%d, cancelado=%d, concluido=%d",
			d.Delayed, d.InFlight, d.Scheduled, d.Canceled, d.Completed),
		fmt.Sprintf("- Top companhias: %s", airlines),
		"- Amostra de voos:",
		sample,
		"",
		"Historico recente:",
		history,
		"",
		fmt.Sprintf("Pergunta atual do usuario: %s", d.Question),
		"",
		"Formato de resposta desejado:",
		"Resumo:",
		"Dados principais:",
		"Acao sugerida:",
		"Proxima pergunta util:",
	}, "\n")
}
