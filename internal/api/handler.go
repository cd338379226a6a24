package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ai-lab/backend/internal/interfaces"
	"ai-lab/backend/internal/model"
)

// UpdateTitleRequest is the DTO for the manual chat title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"My Custom Chat Title"`
}

// ChatHandler serves chat pages, the JSON chat API and the response stream.
type ChatHandler struct {
	chatService interfaces.ChatService
}

func NewChatHandler(chatSvc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatSvc}
}

// Home godoc
// @Summary      List chats
// @Description  Landing view: every chat, newest first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.Chat
// @Failure      500  {object}  ErrorResponse
// @Router       / [get]
func (h *ChatHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.GetChats(w, r)
}

// ViewChat godoc
// @Summary      View a chat
// @Description  Chat metadata with its entries in chronological order.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      404     {object}  ErrorResponse
// @Router       /chat/{chatID} [get]
func (h *ChatHandler) ViewChat(w http.ResponseWriter, r *http.Request) {
	fullChat, err := h.chatService.GetFullChat(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// NewChat godoc
// @Summary      Create a chat
// @Description  Creates a chat from the form field `title` (default "New Chat") and redirects to it.
// @Tags         Chats
// @Accept       x-www-form-urlencoded
// @Param        title  formData  string  false  "Chat title"
// @Success      303
// @Failure      500  {object}  ErrorResponse
// @Router       /chat/new [post]
func (h *ChatHandler) NewChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chatService.CreateChat(r.Context(), r.FormValue("title"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	http.Redirect(w, r, "/chat/"+chat.ID, http.StatusSeeOther)
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Removes the chat and all its entries, then redirects home. Unknown chats are ignored.
// @Tags         Chats
// @Param        chatID  path  string  true  "Chat ID"
// @Success      303
// @Failure      500  {object}  ErrorResponse
// @Router       /chat/{chatID}/delete [post]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.DeleteChat(r.Context(), chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PostEntry godoc
// @Summary      Send a prompt
// @Description  Runs a blocking turn for the form field `prompt`. A blank prompt is ignored.
// @Tags         Chats
// @Accept       x-www-form-urlencoded
// @Param        chatID  path      string  true  "Chat ID"
// @Param        prompt  formData  string  true  "User prompt"
// @Success      303
// @Failure      404  {object}  ErrorResponse
// @Router       /chat/{chatID}/entry [post]
func (h *ChatHandler) PostEntry(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if _, err := h.chatService.SendMessage(r.Context(), chatID, r.FormValue("prompt")); err != nil {
		respondWithError(w, err)
		return
	}
	http.Redirect(w, r, "/chat/"+chatID, http.StatusSeeOther)
}

// StreamChat godoc
// @Summary      Stream a response
// @Description  Stores the prompt and streams the response as server-sent events: `{"text":...}` per fragment, then an `event: done` with the saved entry id, or an `event: error`.
// @Tags         Chats
// @Produce      text/event-stream
// @Param        chatID      path   string  true  "Chat ID"
// @Param        userPrompt  query  string  true  "User prompt"
// @Success      200  {object}  model.StreamChunk
// @Failure      404  {object}  ErrorResponse
// @Router       /chat-stream/{chatID} [get]
func (h *ChatHandler) StreamChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if _, err := h.chatService.GetChat(r.Context(), chatID); err != nil {
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sink := &sseSink{w: w}
	turn, err := h.chatService.StreamMessage(r.Context(), chatID, r.URL.Query().Get("userPrompt"), sink)
	if err != nil {
		// A failed turn that never reached the relay has not told the client yet.
		if turn == nil {
			_ = sink.Send(model.StreamChunk{Error: "could not start response"})
		}
		slog.Warn("Stream finished with error", "chat_id", chatID, "error", err)
		return
	}
	slog.Info("Finished streaming response.", "chat_id", chatID, "state", turn.State)
}

// GetChats godoc
// @Summary      List chats
// @Description  Every chat, newest first. With `from` or `to` only chats created in that range, oldest first.
// @Tags         Chats
// @Produce      json
// @Param        from  query     string  false  "RFC 3339 lower bound"
// @Param        to    query     string  false  "RFC 3339 upper bound"
// @Success      200   {array}   model.Chat
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		chats []model.Chat
		err   error
	)
	if q.Get("from") != "" || q.Get("to") != "" {
		var start, end time.Time
		if start, end, err = parseRange(q.Get("from"), q.Get("to")); err == nil {
			chats, err = h.chatService.ListChatsCreatedBetween(r.Context(), start, end)
		}
	} else {
		chats, err = h.chatService.ListChats(r.Context())
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// SearchChats godoc
// @Summary      Search chats by title
// @Description  Case-insensitive substring match on the chat title.
// @Tags         Chats
// @Produce      json
// @Param        title  query     string  true  "Title fragment"
// @Success      200    {array}   model.Chat
// @Router       /api/chats/search [get]
func (h *ChatHandler) SearchChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatService.SearchChats(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// SearchEntries godoc
// @Summary      Search messages
// @Description  Case-insensitive substring match on entry content across every chat, oldest first.
// @Tags         Entries
// @Produce      json
// @Param        q    query     string  true  "Keyword"
// @Success      200  {array}   model.Entry
// @Router       /api/entries/search [get]
func (h *ChatHandler) SearchEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.chatService.SearchEntries(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// FindEntries godoc
// @Summary      List messages by role
// @Description  Entries of the given role across every chat, oldest first.
// @Tags         Entries
// @Produce      json
// @Param        role  query     string  true  "USER or ASSISTANT"
// @Success      200   {array}   model.Entry
// @Failure      400   {object}  ErrorResponse
// @Router       /api/entries [get]
func (h *ChatHandler) FindEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.chatService.FindEntriesByRole(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// GetEntries godoc
// @Summary      List chat entries
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true   "Chat ID"
// @Param        role    query     string  false  "USER or ASSISTANT"
// @Success      200     {array}   model.Entry
// @Failure      404     {object}  ErrorResponse
// @Router       /api/chat/{chatID}/entries [get]
func (h *ChatHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	var (
		entries []model.Entry
		err     error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		entries, err = h.chatService.ListEntriesByRole(r.Context(), chatID, role)
	} else {
		entries, err = h.chatService.ListEntries(r.Context(), chatID)
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// CountChats godoc
// @Summary      Count chats
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  CountResponse
// @Router       /api/chats/count [get]
func (h *ChatHandler) CountChats(w http.ResponseWriter, r *http.Request) {
	n, err := h.chatService.CountChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{Count: n})
}

// CountEntries godoc
// @Summary      Count chat entries
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  CountResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/chat/{chatID}/entries/count [get]
func (h *ChatHandler) CountEntries(w http.ResponseWriter, r *http.Request) {
	n, err := h.chatService.CountEntries(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{Count: n})
}

// ClearEntries godoc
// @Summary      Clear chat history
// @Description  Removes every entry but keeps the chat.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Router       /api/chat/{chatID}/entries [delete]
func (h *ChatHandler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.ClearEntries(r.Context(), chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteEntry godoc
// @Summary      Delete one entry
// @Description  Entries that belong to another chat are left untouched.
// @Tags         Chats
// @Produce      json
// @Param        chatID   path      string  true  "Chat ID"
// @Param        entryID  path      string  true  "Entry ID"
// @Success      200      {object}  StatusResponse
// @Router       /api/chat/{chatID}/entries/{entryID} [delete]
func (h *ChatHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	err := h.chatService.DeleteEntry(r.Context(), chi.URLParam(r, "chatID"), chi.URLParam(r, "entryID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// UpdateChatTitle godoc
// @Summary      Rename a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID  path      string              true  "Chat ID"
// @Param        title   body      UpdateTitleRequest  true  "New title"
// @Success      200     {object}  StatusResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/chat/{chatID}/title [put]
func (h *ChatHandler) UpdateChatTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.chatService.UpdateChatTitle(r.Context(), chi.URLParam(r, "chatID"), req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// sseSink writes stream envelopes as server-sent events.
type sseSink struct {
	w http.ResponseWriter
}

func (s *sseSink) Send(chunk model.StreamChunk) error {
	switch {
	case chunk.Error != "":
		return writeStreamEvent(s.w, "error", chunk)
	case chunk.Done:
		return writeStreamEvent(s.w, "done", chunk)
	default:
		return writeStreamEvent(s.w, "", chunk)
	}
}
