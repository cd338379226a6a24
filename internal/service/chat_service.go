package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/prompt"
	"ai-lab/backend/internal/relay"
	"ai-lab/backend/internal/repository"
)

// DefaultChatTitle is used when a chat is created without a title.
const DefaultChatTitle = "New Chat"

type ChatService struct {
	repo          repository.ChatRepository
	relay         *relay.Relay
	contextWindow int
}

func NewChatService(repo repository.ChatRepository, r *relay.Relay, contextWindow int) *ChatService {
	return &ChatService{repo: repo, relay: r, contextWindow: contextWindow}
}

// CreateChat stores a new chat, defaulting a blank title.
func (s *ChatService) CreateChat(ctx context.Context, title string) (*model.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultChatTitle
	}
	chat := model.NewChat(title)
	if err := s.repo.CreateChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("could not create chat: %w", err)
	}
	slog.Info("Created chat", "chat_id", chat.ID)
	return chat, nil
}

func (s *ChatService) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		return nil, translate(err, "chat %s", chatID)
	}
	return chat, nil
}

// GetFullChat retrieves a chat's metadata and all its entries.
func (s *ChatService) GetFullChat(ctx context.Context, chatID string) (*model.FullChat, error) {
	chat, err := s.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ListEntries(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return &model.FullChat{Chat: *chat, Entries: entries}, nil
}

func (s *ChatService) ListChats(ctx context.Context) ([]model.Chat, error) {
	return s.repo.ListChats(ctx)
}

func (s *ChatService) SearchChats(ctx context.Context, titleFragment string) ([]model.Chat, error) {
	return s.repo.SearchChats(ctx, strings.TrimSpace(titleFragment))
}

func (s *ChatService) ListChatsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Chat, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", app_errors.ErrValidation)
	}
	return s.repo.ListChatsCreatedBetween(ctx, start, end)
}

// SearchEntries matches message content across every chat.
func (s *ChatService) SearchEntries(ctx context.Context, keyword string) ([]model.Entry, error) {
	return s.repo.SearchEntries(ctx, strings.TrimSpace(keyword))
}

func (s *ChatService) FindEntriesByRole(ctx context.Context, role string) ([]model.Entry, error) {
	r, err := model.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	}
	return s.repo.FindEntriesByRole(ctx, r)
}

// UpdateChatTitle handles the logic for manually updating a chat's title.
func (s *ChatService) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	if err := s.repo.UpdateChatTitle(ctx, chatID, newTitle); err != nil {
		return translate(err, "chat %s", chatID)
	}
	return nil
}

// DeleteChat removes a chat and its entries. Unknown chats are ignored.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	slog.Info("Deleting chat", "chat_id", chatID)
	return s.repo.DeleteChat(ctx, chatID)
}

func (s *ChatService) ListEntries(ctx context.Context, chatID string) ([]model.Entry, error) {
	entries, err := s.repo.ListEntries(ctx, chatID)
	if err != nil {
		return nil, translate(err, "chat %s", chatID)
	}
	return entries, nil
}

// ListEntriesByRole filters a chat's history. The role name is matched
// case-insensitively.
func (s *ChatService) ListEntriesByRole(ctx context.Context, chatID, role string) ([]model.Entry, error) {
	r, err := model.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	}
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}
	return s.repo.ListEntriesByRole(ctx, chatID, r)
}

func (s *ChatService) CountChats(ctx context.Context) (int64, error) {
	return s.repo.CountChats(ctx)
}

func (s *ChatService) CountEntries(ctx context.Context, chatID string) (int64, error) {
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return 0, err
	}
	return s.repo.CountEntries(ctx, chatID)
}

// ClearEntries drops the history of a chat but keeps the chat.
func (s *ChatService) ClearEntries(ctx context.Context, chatID string) error {
	return s.repo.DeleteEntries(ctx, chatID)
}

// DeleteEntry removes one entry of chatID. An entry owned by another chat is
// left alone.
func (s *ChatService) DeleteEntry(ctx context.Context, chatID, entryID string) error {
	return s.repo.DeleteEntry(ctx, chatID, entryID)
}

// SendMessage runs a blocking turn. A blank prompt is skipped without
// touching the store.
func (s *ChatService) SendMessage(ctx context.Context, chatID, userPrompt string) (*model.Turn, error) {
	turn, history, err := s.beginTurn(ctx, chatID, userPrompt)
	if err != nil || turn.State == model.TurnSkipped {
		return turn, err
	}

	entry, err := s.relay.Respond(ctx, chatID, userPrompt, history)
	if err != nil {
		return nil, err
	}
	turn.AssistantEntry = entry
	turn.State = model.TurnCompleted
	return turn, nil
}

// StreamMessage runs a streaming turn, forwarding fragments to sink. A blank
// prompt only produces a completion envelope.
func (s *ChatService) StreamMessage(ctx context.Context, chatID, userPrompt string, sink relay.Sink) (*model.Turn, error) {
	turn, history, err := s.beginTurn(ctx, chatID, userPrompt)
	if err != nil {
		return nil, err
	}
	if turn.State == model.TurnSkipped {
		return turn, sink.Send(model.StreamChunk{Done: true})
	}

	entry, err := s.relay.Stream(ctx, chatID, userPrompt, history, sink)
	if err != nil {
		return turn, err
	}
	turn.AssistantEntry = entry
	turn.State = model.TurnCompleted
	return turn, nil
}

// beginTurn stores the user entry and renders the context window, which
// includes the entry just stored.
func (s *ChatService) beginTurn(ctx context.Context, chatID, userPrompt string) (*model.Turn, string, error) {
	turn := &model.Turn{ChatID: chatID}
	if strings.TrimSpace(userPrompt) == "" {
		turn.State = model.TurnSkipped
		return turn, "", nil
	}

	userEntry := model.NewEntry(chatID, model.RoleUser, userPrompt)
	if err := s.repo.AppendEntry(ctx, userEntry); err != nil {
		return nil, "", translate(err, "chat %s", chatID)
	}
	turn.UserEntry = userEntry
	turn.State = model.TurnAwaitingResponse

	entries, err := s.repo.ListEntries(ctx, chatID)
	if err != nil {
		return nil, "", translate(err, "chat %s", chatID)
	}
	return turn, prompt.BuildContext(entries, s.contextWindow), nil
}

// translate maps repository sentinels to domain errors.
func translate(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", app_errors.ErrNotFound, fmt.Sprintf(format, args...))
	}
	if errors.Is(err, repository.ErrDimensionMismatch) {
		return fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	}
	return err
}
