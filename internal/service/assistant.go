// Package service implements the per-turn orchestration: embed the query,
// retrieve context, generate a reply, and thread the conversation history.
package service

import (
	"context"
	"log/slog"
	"strings"

	"personachat/internal/config"
	"personachat/internal/domain"
	"personachat/internal/observability"
	"personachat/internal/session"
)

// Assistant runs one strictly linear turn at a time:
// query -> embed -> retrieve -> generate -> append to history.
type Assistant struct {
	embedder   domain.Embedder
	store      domain.Searcher
	chain      domain.Generator
	collection string
	limit      int
	mode       string
	log        *slog.Logger
}

// Config configures an Assistant.
type Config struct {
	Collection string
	Limit      int
	Mode       string
	Logger     *slog.Logger
}

// NewAssistant creates an assistant over the given components.
func NewAssistant(embedder domain.Embedder, store domain.Searcher, chain domain.Generator, cfg Config) *Assistant {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 3
	}
	mode := cfg.Mode
	if mode == "" {
		mode = config.ModeContextual
	}
	log := cfg.Logger
	if log == nil {
		log = observability.Logger()
	}
	return &Assistant{
		embedder:   embedder,
		store:      store,
		chain:      chain,
		collection: cfg.Collection,
		limit:      limit,
		mode:       mode,
		log:        log,
	}
}

// Respond runs one turn: the query is appended to the session, a reply is
// generated according to the configured mode, and the reply is appended and
// returned. Embedding and retrieval failures degrade to an empty context;
// generation failures come back as the reply text. No failure escapes the
// turn, so the conversation can always continue.
func (a *Assistant) Respond(ctx context.Context, sess *session.Session, query string) string {
	sess.Append(session.NewMessage(domain.RoleUser, query))

	var reply string
	if a.mode == config.ModeConversational {
		reply = a.chain.Converse(ctx, sess.Messages())
	} else {
		reply = a.chain.Answer(ctx, query, a.retrieveContext(ctx, query))
	}

	sess.Append(session.NewMessage(domain.RoleAssistant, reply))
	return reply
}

// retrieveContext embeds the query and joins the retrieved document texts,
// newline-separated, in store-returned order. Any failure returns an empty
// block; the distinction between "nothing found" and "store unreachable"
// survives in the logs.
func (a *Assistant) retrieveContext(ctx context.Context, query string) string {
	vector, err := a.embedder.Embed(ctx, query)
	if err != nil {
		a.log.Warn("embedding failed, answering without context", "error", err)
		return ""
	}
	docs, err := a.store.Search(ctx, a.collection, vector, a.limit)
	if err != nil {
		a.log.Error("vector search failed, answering without context",
			"collection", a.collection, "error", err)
		return ""
	}
	if len(docs) == 0 {
		a.log.Info("vector search returned no documents", "collection", a.collection)
		return ""
	}
	parts := make([]string, len(docs))
	for i, doc := range docs {
		parts[i] = doc.Text()
	}
	return strings.Join(parts, "\n")
}
