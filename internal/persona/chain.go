// Package persona runs the staged generation chain that turns retrieved
// context into a persona-voiced reply. Persona fidelity is hard to get in
// one shot, so each pass holds one axis fixed: the first grounds the answer
// on context, later passes re-express it toward speech patterns and tone.
package persona

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"personachat/internal/domain"
	"personachat/internal/observability"
)

// NoContextReply is returned without any model call when retrieval produced
// nothing; an ungrounded answer is considered worse than no answer.
const NoContextReply = "Não encontrei informações relevantes para responder sua pergunta."

// Completer is the single chat-completion call the chain depends on.
type Completer interface {
	Complete(ctx context.Context, msgs []domain.Message, temperature float32) (string, error)
}

// Pass is one stage of the chain. When AdaptPrevious is set, the pass sends
// a single system instruction with the previous pass's output interpolated
// into System; otherwise it sends System plus a user message carrying the
// context block and the query.
type Pass struct {
	Name          string
	System        string
	AdaptPrevious bool
}

// Config configures a Chain. Zero values fall back to the default passes
// and the original temperatures.
type Config struct {
	Passes             []Pass
	Temperature        float32
	HistoryTemperature float32
	Logger             *slog.Logger
}

// Chain executes the ordered generation passes.
type Chain struct {
	llm                Completer
	passes             []Pass
	temperature        float32
	historyTemperature float32
	log                *slog.Logger
}

// NewChain creates a chain over the given completion client.
func NewChain(llm Completer, cfg Config) *Chain {
	passes := cfg.Passes
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}
	historyTemperature := cfg.HistoryTemperature
	if historyTemperature == 0 {
		historyTemperature = 0.7
	}
	log := cfg.Logger
	if log == nil {
		log = observability.Logger()
	}
	return &Chain{
		llm:                llm,
		passes:             passes,
		temperature:        temperature,
		historyTemperature: historyTemperature,
		log:                log,
	}
}

// Answer runs the full chain over one query and its retrieved context and
// returns the last pass's output. An empty context short-circuits to
// NoContextReply. A failing pass ends the chain immediately with a
// user-visible error reply; later passes never run.
func (c *Chain) Answer(ctx context.Context, query, contextBlock string) string {
	if strings.TrimSpace(contextBlock) == "" {
		return NoContextReply
	}
	var previous string
	for _, pass := range c.passes {
		var msgs []domain.Message
		if pass.AdaptPrevious {
			msgs = []domain.Message{
				{Role: domain.RoleSystem, Content: fmt.Sprintf(pass.System, previous)},
			}
		} else {
			msgs = []domain.Message{
				{Role: domain.RoleSystem, Content: pass.System},
				{Role: domain.RoleUser, Content: groundingPrompt(query, contextBlock)},
			}
		}
		out, err := c.llm.Complete(ctx, msgs, c.temperature)
		if err != nil {
			c.log.Error("generation pass failed", "pass", pass.Name, "error", err)
			return errorReply(err)
		}
		previous = out
	}
	return previous
}

// Converse runs a single history-aware pass: the persona instruction
// followed by the entire ordered message history, at the freer conversation
// temperature. No context-grounding step occurs in this mode.
func (c *Chain) Converse(ctx context.Context, history []domain.Message) string {
	msgs := make([]domain.Message, 0, len(history)+1)
	msgs = append(msgs, domain.Message{Role: domain.RoleSystem, Content: basePrompt})
	msgs = append(msgs, history...)
	out, err := c.llm.Complete(ctx, msgs, c.historyTemperature)
	if err != nil {
		c.log.Error("conversation pass failed", "error", err)
		return errorReply(err)
	}
	return out
}

func groundingPrompt(query, contextBlock string) string {
	return fmt.Sprintf("Responda baseado no contexto abaixo:\n\nContexto:\n%s\n\nPergunta: %s\nResposta:", contextBlock, query)
}

func errorReply(err error) string {
	return fmt.Sprintf("Erro ao gerar resposta: %v", err)
}
