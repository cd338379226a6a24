package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/llm"
	mock_llm "ai-lab/backend/internal/llm/mocks"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/relay"
	"ai-lab/backend/internal/repository"
	mock_repo "ai-lab/backend/internal/repository/mocks"
	"ai-lab/backend/internal/service"
)

type Mocks struct {
	repo *mock_repo.MockChatRepository
	llm  *mock_llm.MockProvider
}

func setupChatService(t *testing.T) (*service.ChatService, Mocks) {
	mocks := Mocks{
		repo: mock_repo.NewMockChatRepository(t),
		llm:  mock_llm.NewMockProvider(t),
	}
	r := relay.New(mocks.repo, mocks.llm, "llama3.2", time.Minute)
	return service.NewChatService(mocks.repo, r, 5), mocks
}

type chunkSink struct {
	chunks []model.StreamChunk
}

func (s *chunkSink) Send(chunk model.StreamChunk) error {
	s.chunks = append(s.chunks, chunk)
	return nil
}

func TestChatService_CreateChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank title defaults", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("CreateChat", ctx, mock.MatchedBy(func(c *model.Chat) bool {
			return c.Title == service.DefaultChatTitle && c.ID != ""
		})).Return(nil).Once()

		chat, err := chatService.CreateChat(ctx, "   ")
		require.NoError(t, err)
		assert.Equal(t, "New Chat", chat.Title)
	})

	t.Run("Repository error", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("CreateChat", ctx, mock.Anything).Return(errors.New("db error")).Once()

		_, err := chatService.CreateChat(ctx, "Title")
		assert.ErrorContains(t, err, "db error")
	})
}

func TestChatService_UpdateChatTitle(t *testing.T) {
	ctx := context.Background()
	chatID := "chat123"
	newTitle := "New Title"

	t.Run("Success", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("UpdateChatTitle", ctx, chatID, newTitle).Return(nil).Once()

		err := chatService.UpdateChatTitle(ctx, chatID, newTitle)
		assert.NoError(t, err)
	})

	t.Run("Failure - Repository returns not found", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("UpdateChatTitle", ctx, chatID, newTitle).Return(repository.ErrNotFound).Once()

		err := chatService.UpdateChatTitle(ctx, chatID, newTitle)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Failure - Blank title", func(t *testing.T) {
		chatService, _ := setupChatService(t)

		err := chatService.UpdateChatTitle(ctx, chatID, " ")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestChatService_GetFullChat(t *testing.T) {
	ctx := context.Background()
	chatID := "chat123"

	t.Run("Success", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		chat := &model.Chat{ID: chatID}
		entries := []model.Entry{{ID: "entry1"}}

		mocks.repo.On("GetChat", ctx, chatID).Return(chat, nil).Once()
		mocks.repo.On("ListEntries", ctx, chatID).Return(entries, nil).Once()

		fullChat, err := chatService.GetFullChat(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, *chat, fullChat.Chat)
		assert.Equal(t, entries, fullChat.Entries)
	})

	t.Run("Failure - Unknown chat", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("GetChat", ctx, chatID).Return(nil, repository.ErrNotFound).Once()

		_, err := chatService.GetFullChat(ctx, chatID)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()
	chatID := "chat123"

	t.Run("Blank prompt is skipped", func(t *testing.T) {
		chatService, _ := setupChatService(t)

		turn, err := chatService.SendMessage(ctx, chatID, "  \n")
		require.NoError(t, err)
		assert.Equal(t, model.TurnSkipped, turn.State)
		assert.Nil(t, turn.UserEntry)
	})

	t.Run("Unknown chat fails the turn", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("AppendEntry", ctx, mock.Anything).Return(repository.ErrNotFound).Once()

		_, err := chatService.SendMessage(ctx, chatID, "hello")
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Context window includes the new entry", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		history := make([]model.Entry, 0, 7)
		for i := 0; i < 6; i++ {
			history = append(history, model.Entry{Role: model.RoleAssistant, Content: "old"})
		}
		history = append(history, model.Entry{Role: model.RoleUser, Content: "hello"})

		mocks.repo.On("AppendEntry", ctx, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleUser && e.Content == "hello"
		})).Return(nil).Once()
		mocks.repo.On("ListEntries", ctx, chatID).Return(history, nil).Once()
		mocks.llm.On("Generate", mock.Anything, mock.MatchedBy(func(req *llm.GenerateRequest) bool {
			want := "Context: ASSISTANT: old\nASSISTANT: old\nASSISTANT: old\nASSISTANT: old\nUSER: hello\n\n\nUser: hello"
			return req.Prompt == want
		})).Return(&llm.GenerateResponse{Response: "Hi!"}, nil).Once()
		mocks.repo.On("AppendEntry", mock.Anything, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleAssistant && e.Content == "Hi!"
		})).Return(nil).Once()

		turn, err := chatService.SendMessage(ctx, chatID, "hello")
		require.NoError(t, err)
		assert.Equal(t, model.TurnCompleted, turn.State)
		assert.Equal(t, "Hi!", turn.AssistantEntry.Content)
	})

	t.Run("Generation failure still completes the turn", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("AppendEntry", ctx, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleUser
		})).Return(nil).Once()
		mocks.repo.On("ListEntries", ctx, chatID).Return([]model.Entry{{Role: model.RoleUser, Content: "hello"}}, nil).Once()
		mocks.llm.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
		mocks.repo.On("AppendEntry", mock.Anything, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleAssistant && e.Content == relay.FallbackPrefix+"timeout"
		})).Return(nil).Once()

		turn, err := chatService.SendMessage(ctx, chatID, "hello")
		require.NoError(t, err)
		assert.Equal(t, model.TurnCompleted, turn.State)
	})
}

func TestChatService_StreamMessage(t *testing.T) {
	ctx := context.Background()
	chatID := "chat123"

	t.Run("Blank prompt only completes", func(t *testing.T) {
		chatService, _ := setupChatService(t)
		sink := &chunkSink{}

		turn, err := chatService.StreamMessage(ctx, chatID, "", sink)
		require.NoError(t, err)
		assert.Equal(t, model.TurnSkipped, turn.State)
		assert.Equal(t, []model.StreamChunk{{Done: true}}, sink.chunks)
	})

	t.Run("Streams and persists", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		sink := &chunkSink{}

		mocks.repo.On("AppendEntry", ctx, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleUser
		})).Return(nil).Once()
		mocks.repo.On("ListEntries", ctx, chatID).Return([]model.Entry{{Role: model.RoleUser, Content: "hello"}}, nil).Once()
		mocks.llm.On("GenerateStream", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			ch := args.Get(2).(chan<- llm.StreamResponse)
			ch <- llm.StreamResponse{Content: "Hi"}
			ch <- llm.StreamResponse{Content: "!", Done: true}
			close(ch)
		}).Return(nil).Once()
		mocks.repo.On("AppendEntry", mock.Anything, mock.MatchedBy(func(e *model.Entry) bool {
			return e.Role == model.RoleAssistant && e.Content == "Hi!"
		})).Return(nil).Once()

		turn, err := chatService.StreamMessage(ctx, chatID, "hello", sink)
		require.NoError(t, err)
		assert.Equal(t, model.TurnCompleted, turn.State)
		require.Len(t, sink.chunks, 3)
		assert.Equal(t, "Hi", sink.chunks[0].Text)
		assert.Equal(t, "!", sink.chunks[1].Text)
		assert.True(t, sink.chunks[2].Done)
		assert.Equal(t, turn.AssistantEntry.ID, sink.chunks[2].EntryID)
	})
}

func TestChatService_ListEntriesByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Role is case-insensitive", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("GetChat", ctx, "c1").Return(&model.Chat{ID: "c1"}, nil).Once()
		mocks.repo.On("ListEntriesByRole", ctx, "c1", model.RoleAssistant).
			Return([]model.Entry{{ID: "e2", Role: model.RoleAssistant}}, nil).Once()

		entries, err := chatService.ListEntriesByRole(ctx, "c1", "assistant")
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("Unknown role is a validation error", func(t *testing.T) {
		chatService, _ := setupChatService(t)

		_, err := chatService.ListEntriesByRole(ctx, "c1", "system")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestChatService_CountEntries(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	mocks.repo.On("GetChat", ctx, "missing").Return(nil, repository.ErrNotFound).Once()

	_, err := chatService.CountEntries(ctx, "missing")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}

func TestChatService_DeleteEntry(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	mocks.repo.On("DeleteEntry", ctx, "c1", "e1").Return(nil).Once()

	require.NoError(t, chatService.DeleteEntry(ctx, "c1", "e1"))
}

func TestChatService_SearchEntries(t *testing.T) {
	ctx := context.Background()
	chatService, mocks := setupChatService(t)
	mocks.repo.On("SearchEntries", ctx, "goroutine").
		Return([]model.Entry{{ID: "e1", Content: "goroutine leak"}}, nil).Once()

	entries, err := chatService.SearchEntries(ctx, "  goroutine ")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestChatService_FindEntriesByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Spans every chat", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("FindEntriesByRole", ctx, model.RoleUser).
			Return([]model.Entry{{ID: "e1", ChatID: "a"}, {ID: "e2", ChatID: "b"}}, nil).Once()

		entries, err := chatService.FindEntriesByRole(ctx, "USER")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("Unknown role is a validation error", func(t *testing.T) {
		chatService, _ := setupChatService(t)

		_, err := chatService.FindEntriesByRole(ctx, "system")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestChatService_ListChatsCreatedBetween(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("Forwards the range", func(t *testing.T) {
		chatService, mocks := setupChatService(t)
		mocks.repo.On("ListChatsCreatedBetween", ctx, start, end).
			Return([]model.Chat{{ID: "c1"}}, nil).Once()

		chats, err := chatService.ListChatsCreatedBetween(ctx, start, end)
		require.NoError(t, err)
		assert.Len(t, chats, 1)
	})

	t.Run("Inverted range is rejected", func(t *testing.T) {
		chatService, _ := setupChatService(t)

		_, err := chatService.ListChatsCreatedBetween(ctx, end, start)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}
