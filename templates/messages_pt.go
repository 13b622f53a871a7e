package templates

var messagesPT = map[string]string{
	// layout
	"label.summary":        "Resumo",
	"label.data":           "Dados principais",
	"label.action":         "Acao sugerida",
	"label.followup":       "Proxima pergunta util",
	"label.confidence":     "Confianca",
	"label.data.short":     "Dados",
	"label.action.short":   "Acao",
	"label.followup.short": "Proxima",
	"page.long":            "Pagina: %d/%d (itens por pagina: %d, total: %d)",
	"page.short":           "Pagina %d/%d",
	"confidence.alta":      "alta",
	"confidence.media":     "media",
	"confidence.baixa":     "baixa",
	"greeting":             "%s, ",

	// shared
	"flight.line": "%s | %s | %s -> %s | %s | %s",
	"list.header": "Voos desta pagina:",
	"list.none":   "Nenhum voo nesta selecao.",

	"nodata.summary":  "Ainda nao ha voos carregados para analisar.",
	"nodata.data":     "A base de voos esta vazia no momento.",
	"nodata.action":   "Atualize a lista de voos ou importe os dados operacionais.",
	"nodata.followup": "Depois de carregar os voos, pergunte por um resumo geral.",

	"help.summary":  "Nao consegui entender a pergunta.",
	"help.data":     "Posso responder sobre atrasos, cancelamentos, proximas partidas, companhias, aeroportos e voos especificos.",
	"help.action":   "Reformule a pergunta com um tema ou um numero de voo.",
	"help.followup": "Exemplo: quais voos estao atrasados?",

	"capability.summary":  "Sou o assistente operacional do SkyTrak.",
	"capability.data":     "Consulto status por numero de voo, listo atrasos e cancelamentos, proximas partidas, voos por companhia, escopo nacional/internacional, aeroportos mais movimentados e um resumo geral, com paginacao.",
	"capability.action":   "Pergunte por um tema ou informe um numero de voo como LA1234.",
	"capability.followup": "Quer ver o resumo geral da operacao?",

	"site.summary":  "Posso orientar a navegacao no SkyTrak.",
	"site.data":     "Dashboard: indicadores e mapa dos voos. Relatorios: exportacao CSV/PDF. Configuracoes: senha, 2FA, sessoes ativas e solicitacoes LGPD de exportacao ou exclusao de dados.",
	"site.action":   "Use o menu lateral para abrir a secao desejada.",
	"site.followup": "Quer saber como revisar suas sessoes ativas?",

	"flight.notfound.summary":  "Nao encontrei o voo %s na base atual.",
	"flight.notfound.data":     "Foram avaliados %d voos e nenhum corresponde a esse numero.",
	"flight.notfound.action":   "Confira o numero do voo ou peca a lista completa.",
	"flight.notfound.followup": "Quer listar todos os voos?",

	"flight.found.summary":  "Voo %s esta com status %s, de %s para %s.",
	"flight.found.data":     "Voo %s | Companhia %s | Status %s | Rota %s -> %s | Horario previsto %s | Risco de atraso %d%% (%s)",
	"flight.found.followup": "Quer ver outros voos da %s?",

	"risk.action.BAIXO":   "Acompanhamento normal, sem acao imediata.",
	"risk.action.MEDIO":   "Monitore o voo e confirme a janela de embarque.",
	"risk.action.ALTO":    "Avise os passageiros e prepare alternativas de conexao.",
	"risk.action.CRITICO": "Acione o centro de operacoes e prepare reacomodacao.",

	"airline.summary":  "A companhia %s tem %d voos na base.",
	"airline.action":   "Verifique atrasos e cancelamentos desta companhia.",
	"airline.followup": "Quer comparar com o resumo geral?",

	"list.summary":  "Ha %d voos na base, ordenados por horario previsto.",
	"list.action":   "Use a paginacao para percorrer a lista completa.",
	"list.followup": "Quer filtrar apenas os atrasados?",

	"delayed.summary":  "Ha %d voos atrasados de um total de %d.",
	"delayed.action":   "Priorize os atrasados com partida mais proxima.",
	"delayed.followup": "Quer ver o risco de atraso de um voo especifico?",

	"canceled.summary":  "Ha %d voos cancelados de um total de %d.",
	"canceled.action":   "Verifique a reacomodacao dos passageiros afetados.",
	"canceled.followup": "Quer ver os voos atrasados tambem?",

	"upcoming.summary":  "Ha %d voos com partida prevista a partir de agora.",
	"upcoming.action":   "Acompanhe os primeiros da lista para evitar atrasos em cadeia.",
	"upcoming.followup": "Quer saber o risco de atraso do proximo voo?",

	"scope.summary":  "A base tem %d voos nacionais e %d internacionais.",
	"scope.data":     "Nacionais: %d | Internacionais: %d | Total: %d",
	"scope.action":   "Compare a pontualidade entre os dois grupos.",
	"scope.followup": "Quer ver os aeroportos mais movimentados?",

	"airports.summary":  "%d aeroportos aparecem como origem ou destino.",
	"airports.header":   "Mais movimentados:",
	"airports.line":     "%s (%d)",
	"airports.none":     "Nenhum aeroporto informado nos voos.",
	"airports.action":   "Reforce a operacao nos aeroportos com maior movimento.",
	"airports.followup": "Quer ver as proximas partidas?",

	"overview.summary":  "Panorama de %d voos na base.",
	"overview.data":     "Atrasados: %d | Em voo: %d | Previstos: %d | Cancelados: %d | Concluidos: %d",
	"overview.airlines": "Principais companhias: %s",
	"overview.action":   "Concentre a atencao nos atrasados e cancelados.",
	"overview.followup": "Quer a lista dos voos atrasados?",

	"fallback.summary":  "Nao identifiquei um tema especifico, segue o panorama geral de %d voos.",
	"fallback.action":   "Pergunte sobre atrasos, cancelamentos, companhias ou um numero de voo.",
	"fallback.followup": "Quer saber o que eu consigo responder?",

	"none": "sem dados",
}

var suggestionsPT = map[string][]string{
	GenericTopic: {"Qual o resumo geral dos voos?", "Quais voos estao atrasados?"},
	"capacidade": {"Qual o resumo geral dos voos?", "Quais voos estao atrasados?", "Status do voo LA1234"},
	"site":       {"Como solicitar exportacao de dados LGPD?", "Onde vejo minhas sessoes ativas?"},
	"voo_numero": {"Quais voos estao atrasados?", "Quais as proximas partidas?"},
	"companhia":  {"Quais voos estao atrasados?", "Qual o resumo geral dos voos?"},
	"lista_voos": {"Quais voos estao atrasados?", "Quais voos foram cancelados?", "Quais as proximas partidas?"},
	"atrasos":    {"Quais voos foram cancelados?", "Quais as proximas partidas?"},
	"cancelados": {"Quais voos estao atrasados?", "Qual o resumo geral dos voos?"},
	"proximos":   {"Quais voos estao atrasados?", "Quais os aeroportos mais movimentados?"},
	"escopo":     {"Quais os aeroportos mais movimentados?", "Qual o resumo geral dos voos?"},
	"aeroportos": {"Quantos voos sao nacionais e internacionais?", "Quais as proximas partidas?"},
	"resumo":     {"Quais voos estao atrasados?", "Listar todos os voos", "Quais voos foram cancelados?"},
}
