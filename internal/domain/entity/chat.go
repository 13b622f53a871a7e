package entity

import "time"

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Answer sources
const (
	SourceRules = "regras"
	SourceLLM   = "llm"
)

// ChatTurn is one message of the conversation history.
type ChatTurn struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// LLMReply is the answer of an external language-model responder.
type LLMReply struct {
	Resposta string
	Provider string
	Model    string
}

// ChatLog is the stored transcript of one assistant exchange.
type ChatLog struct {
	ID         string    `bson:"_id,omitempty"`
	UsuarioID  uint      `bson:"usuarioId"`
	Pergunta   string    `bson:"pergunta"`
	Resposta   string    `bson:"resposta"`
	Topico     string    `bson:"topico"`
	Confianca  string    `bson:"confianca"`
	Modo       string    `bson:"modo"`
	Source     string    `bson:"source"`
	Provider   string    `bson:"provider,omitempty"`
	Model      string    `bson:"model,omitempty"`
	TotalVoos  int       `bson:"totalVoos"`
	FallbackOf string    `bson:"fallbackOf,omitempty"` // provider error that forced the rule engine
	CreatedAt  time.Time `bson:"createdAt"`
}
