// Package relay turns a generation call into exactly one persisted assistant
// entry, either in one shot or by forwarding streamed fragments to a sink.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/llm"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/prompt"
	"ai-lab/backend/internal/repository"
)

// FallbackPrefix starts the assistant entry saved when a blocking generation fails.
const FallbackPrefix = "Sorry, an error occurred while generating the response: "

// Sink receives stream envelopes, typically an SSE connection.
type Sink interface {
	Send(chunk model.StreamChunk) error
}

type Relay struct {
	repo      repository.ChatRepository
	llm       llm.Provider
	modelName string
	timeout   time.Duration
}

func New(repo repository.ChatRepository, provider llm.Provider, modelName string, timeout time.Duration) *Relay {
	return &Relay{repo: repo, llm: provider, modelName: modelName, timeout: timeout}
}

// Respond generates a full response and saves it as the assistant entry.
// Generation failures are saved as a fallback message; only a failure to
// persist is returned.
func (r *Relay) Respond(ctx context.Context, chatID, userPrompt, history string) (*model.Entry, error) {
	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var content string
	resp, err := r.llm.Generate(genCtx, r.request(userPrompt, history))
	if err != nil {
		slog.Warn("Generation failed, saving fallback response", "chat_id", chatID, "error", err)
		content = FallbackPrefix + err.Error()
	} else {
		content = resp.Response
	}

	entry := model.NewEntry(chatID, model.RoleAssistant, content)
	if err := r.repo.AppendEntry(context.WithoutCancel(ctx), entry); err != nil {
		return nil, fmt.Errorf("could not save assistant entry: %w", err)
	}
	return entry, nil
}

// Stream forwards generated fragments to sink in order, then saves the
// concatenated text as the assistant entry and sends a completion envelope.
// If the stream fails, nothing is saved and an error envelope is sent while
// the sink still accepts writes.
func (r *Relay) Stream(ctx context.Context, chatID, userPrompt, history string, sink Sink) (*model.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ch := make(chan llm.StreamResponse)
	genErr := make(chan error, 1)
	go func() {
		genErr <- r.llm.GenerateStream(ctx, r.request(userPrompt, history), ch)
	}()

	var (
		text     strings.Builder
		failure  error
		finished bool
	)
	// The channel is always drained so the producer can exit.
	for chunk := range ch {
		if failure != nil || finished {
			continue
		}
		if chunk.Error != "" {
			failure = fmt.Errorf("%w: %s", app_errors.ErrGeneration, chunk.Error)
			cancel()
			continue
		}
		if chunk.Content != "" {
			if err := sink.Send(model.StreamChunk{Text: chunk.Content}); err != nil {
				failure = fmt.Errorf("could not forward chunk: %w", err)
				cancel()
				continue
			}
			text.WriteString(chunk.Content)
		}
		finished = chunk.Done
	}

	err := <-genErr
	if failure == nil && !finished {
		if err == nil {
			err = errors.New("stream closed before completion")
		}
		failure = fmt.Errorf("%w: %v", app_errors.ErrGeneration, err)
	}
	if failure != nil {
		slog.Warn("Stream aborted, nothing saved", "chat_id", chatID, "error", failure)
		r.sendError(sink, failure.Error())
		return nil, failure
	}

	entry := model.NewEntry(chatID, model.RoleAssistant, text.String())
	if err := r.repo.AppendEntry(context.WithoutCancel(ctx), entry); err != nil {
		r.sendError(sink, "could not save response")
		return nil, fmt.Errorf("could not save assistant entry: %w", err)
	}
	if err := sink.Send(model.StreamChunk{Done: true, EntryID: entry.ID}); err != nil {
		slog.Warn("Could not send completion event, client likely disconnected", "chat_id", chatID, "error", err)
	}
	return entry, nil
}

func (r *Relay) request(userPrompt, history string) *llm.GenerateRequest {
	return &llm.GenerateRequest{
		Model:  r.modelName,
		Prompt: prompt.Compose(userPrompt, history),
	}
}

func (r *Relay) sendError(sink Sink, message string) {
	if err := sink.Send(model.StreamChunk{Error: message}); err != nil {
		slog.Debug("Could not send stream error", "error", err)
	}
}
