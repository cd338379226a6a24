package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-lab/backend/internal/model"
)

type sqliteChatRepository struct {
	db *sql.DB
}

func NewSQLiteChatRepository(db *sql.DB) ChatRepository {
	return &sqliteChatRepository{db: db}
}

const chatColumns = "id, title, created_at"

func (r *sqliteChatRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	query := "INSERT INTO chats (id, title, created_at) VALUES (?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, query, chat.ID, chat.Title, chat.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("could not insert chat: %w", err)
	}
	return nil
}

func (r *sqliteChatRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	query := "SELECT " + chatColumns + " FROM chats WHERE id = ?"
	var chat model.Chat
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&chat.ID, &chat.Title, &chat.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (r *sqliteChatRepository) ListChats(ctx context.Context) ([]model.Chat, error) {
	query := "SELECT " + chatColumns + " FROM chats ORDER BY created_at DESC, rowid DESC"
	return r.queryChats(ctx, query)
}

func (r *sqliteChatRepository) SearchChats(ctx context.Context, titleFragment string) ([]model.Chat, error) {
	query := "SELECT " + chatColumns + ` FROM chats
		WHERE LOWER(title) LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, rowid DESC`
	return r.queryChats(ctx, query, containsPattern(strings.ToLower(titleFragment)))
}

// ListChatsCreatedBetween returns chats created in [start, end], oldest first.
func (r *sqliteChatRepository) ListChatsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Chat, error) {
	query := "SELECT " + chatColumns + " FROM chats WHERE created_at BETWEEN ? AND ? ORDER BY created_at ASC, rowid ASC"
	return r.queryChats(ctx, query, start.UTC(), end.UTC())
}

func (r *sqliteChatRepository) queryChats(ctx context.Context, query string, args ...any) ([]model.Chat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []model.Chat{}
	for rows.Next() {
		var chat model.Chat
		if err := rows.Scan(&chat.ID, &chat.Title, &chat.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (r *sqliteChatRepository) UpdateChatTitle(ctx context.Context, chatID, title string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE chats SET title = ? WHERE id = ?", title, chatID)
	if err != nil {
		return fmt.Errorf("could not update chat title: %w", err)
	}
	return requireAffected(res)
}

// DeleteChat removes the entries itself; the schema cascade is not relied on.
func (r *sqliteChatRepository) DeleteChat(ctx context.Context, chatID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_entries WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("could not delete chat entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM chats WHERE id = ?", chatID); err != nil {
		return fmt.Errorf("could not delete chat: %w", err)
	}
	return tx.Commit()
}

func (r *sqliteChatRepository) CountChats(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chats").Scan(&n)
	return n, err
}

func (r *sqliteChatRepository) AppendEntry(ctx context.Context, entry *model.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer func() { _ = tx.Rollback() }()

	if err := chatExists(ctx, tx, entry.ChatID); err != nil {
		return err
	}

	insert := "INSERT INTO chat_entries (id, chat_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err = tx.ExecContext(ctx, insert, entry.ID, entry.ChatID, string(entry.Role), entry.Content, entry.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("could not insert entry: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteChatRepository) ListEntries(ctx context.Context, chatID string) ([]model.Entry, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM chat_entries
		WHERE chat_id = ?
		ORDER BY created_at ASC, rowid ASC
	`
	return r.queryEntries(ctx, chatID, query, chatID)
}

func (r *sqliteChatRepository) ListEntriesByRole(ctx context.Context, chatID string, role model.Role) ([]model.Entry, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM chat_entries
		WHERE chat_id = ? AND role = ?
		ORDER BY created_at ASC, rowid ASC
	`
	return r.queryEntries(ctx, chatID, query, chatID, string(role))
}

// SearchEntries matches content case-insensitively across every chat.
func (r *sqliteChatRepository) SearchEntries(ctx context.Context, keyword string) ([]model.Entry, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM chat_entries
		WHERE LOWER(content) LIKE ? ESCAPE '\'
		ORDER BY created_at ASC, rowid ASC
	`
	return r.scanEntries(ctx, query, containsPattern(strings.ToLower(keyword)))
}

func (r *sqliteChatRepository) FindEntriesByRole(ctx context.Context, role model.Role) ([]model.Entry, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM chat_entries
		WHERE role = ?
		ORDER BY created_at ASC, rowid ASC
	`
	return r.scanEntries(ctx, query, string(role))
}

// queryEntries lists the entries of one chat. Reads run outside a
// transaction so they never wait for the write lock.
func (r *sqliteChatRepository) queryEntries(ctx context.Context, chatID, query string, args ...any) ([]model.Entry, error) {
	if err := chatExists(ctx, r.db, chatID); err != nil {
		return nil, err
	}
	return r.scanEntries(ctx, query, args...)
}

func (r *sqliteChatRepository) scanEntries(ctx context.Context, query string, args ...any) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var e model.Entry
		var role string
		if err := rows.Scan(&e.ID, &e.ChatID, &role, &e.Content, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Role = model.Role(role)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *sqliteChatRepository) DeleteEntries(ctx context.Context, chatID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM chat_entries WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("could not delete chat entries: %w", err)
	}
	return nil
}

// DeleteEntry only removes the entry when it belongs to chatID.
func (r *sqliteChatRepository) DeleteEntry(ctx context.Context, chatID, entryID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM chat_entries WHERE id = ? AND chat_id = ?", entryID, chatID); err != nil {
		return fmt.Errorf("could not delete entry: %w", err)
	}
	return nil
}

func (r *sqliteChatRepository) CountEntries(ctx context.Context, chatID string) (int64, error) {
	if _, err := r.GetChat(ctx, chatID); err != nil {
		return 0, err
	}
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chat_entries WHERE chat_id = ?", chatID).Scan(&n)
	return n, err
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func chatExists(ctx context.Context, q rowQuerier, chatID string) error {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM chats WHERE id = ?", chatID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("could not look up chat: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// containsPattern builds a LIKE pattern matching s anywhere, escaping the
// LIKE wildcards with a backslash.
func containsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}
