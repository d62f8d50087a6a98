package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/advice-service/internal/config"
	"github.com/s21platform/advice-service/internal/model"
)

type connKey string

const keyConn = connKey("postgres_tx")

type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the active transaction from the context if there is one, the
// plain connection otherwise.
func (r *Repository) Chk(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyConn).(*sqlx.Tx); ok {
		return tx
	}

	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyConn).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := cb(context.WithValue(ctx, keyConn, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) CreateConversation(ctx context.Context, title string) (*model.Conversation, error) {
	query, args, err := sq.Insert("conversations").
		Columns("title").
		Values(title).
		Suffix("RETURNING id, title, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) GetConversations(ctx context.Context) (*model.ConversationList, error) {
	query, args, err := sq.Select("id", "title", "created_at", "updated_at").
		From("conversations").
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversations model.ConversationList
	err = r.Chk(ctx).SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	return &conversations, nil
}

func (r *Repository) GetConversationByID(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "title", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

// TouchConversation refreshes updated_at so the sidebar ordering reflects the
// latest message activity.
func (r *Repository) TouchConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %v", err)
	}

	return nil
}

// DeleteConversation removes the conversation; owned messages and their
// excerpts go with it via ON DELETE CASCADE.
func (r *Repository) DeleteConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Delete("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %v", err)
	}

	return nil
}

func (r *Repository) CreateMessage(ctx context.Context, conversationID, role, content string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("conversation_id", "role", "content").
		Values(conversationID, role, content).
		Suffix("RETURNING id, conversation_id, role, content, position, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %v", err)
	}

	return &message, nil
}

func (r *Repository) GetMessageByID(ctx context.Context, messageID string) (*model.Message, error) {
	query, args, err := sq.Select("id", "conversation_id", "role", "content", "position", "created_at").
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

type messageExcerptRow struct {
	ID               uuid.UUID  `db:"id"`
	ConversationID   uuid.UUID  `db:"conversation_id"`
	Role             string     `db:"role"`
	Content          string     `db:"content"`
	Position         int64      `db:"position"`
	CreatedAt        time.Time  `db:"created_at"`
	ExcerptID        *uuid.UUID `db:"excerpt_id"`
	ExcerptTitle     *string    `db:"excerpt_title"`
	ExcerptContent   *string    `db:"excerpt_content"`
	ExcerptOrder     *string    `db:"excerpt_order"`
	ExcerptCreatedAt *time.Time `db:"excerpt_created_at"`
}

// conversationMessagesQuery orders by created_at with position as the
// tiebreaker: a prompt exchange inserts both messages in one transaction, so
// their transaction-fixed now() timestamps are identical.
func conversationMessagesQuery(conversationID string) (string, []interface{}, error) {
	return sq.Select(
		"m.id",
		"m.conversation_id",
		"m.role",
		"m.content",
		"m.position",
		"m.created_at",
		"e.id AS excerpt_id",
		"e.title AS excerpt_title",
		"e.content AS excerpt_content",
		`e."order" AS excerpt_order`,
		"e.created_at AS excerpt_created_at",
	).
		From("messages m").
		LeftJoin("excerpts e ON e.message_id = m.id").
		Where(sq.Eq{"m.conversation_id": conversationID}).
		OrderBy("m.created_at", "m.position", `(e."order")::int`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// GetConversationMessages fetches the full ordered message list with excerpts
// in a single round trip. This is the dominant read path, so messages and
// excerpts are joined instead of fetched per message.
func (r *Repository) GetConversationMessages(ctx context.Context, conversationID string) (*model.MessageWithExcerptsList, error) {
	query, args, err := conversationMessagesQuery(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageExcerptRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation messages: %v", err)
	}

	return groupMessageRows(rows), nil
}

// groupMessageRows folds the joined rows into messages with their excerpts,
// preserving the query ordering.
func groupMessageRows(rows []messageExcerptRow) *model.MessageWithExcerptsList {
	messages := make(model.MessageWithExcerptsList, 0, len(rows))
	indexByID := make(map[uuid.UUID]int, len(rows))

	for _, row := range rows {
		idx, ok := indexByID[row.ID]
		if !ok {
			idx = len(messages)
			indexByID[row.ID] = idx
			messages = append(messages, model.MessageWithExcerpts{
				Message: model.Message{
					ID:             row.ID,
					ConversationID: row.ConversationID,
					Role:           row.Role,
					Content:        row.Content,
					Position:       row.Position,
					CreatedAt:      row.CreatedAt,
				},
				Excerpts: model.ExcerptList{},
			})
		}

		if row.ExcerptID != nil {
			messages[idx].Excerpts = append(messages[idx].Excerpts, model.Excerpt{
				ID:        *row.ExcerptID,
				MessageID: row.ID,
				Title:     *row.ExcerptTitle,
				Content:   *row.ExcerptContent,
				Order:     *row.ExcerptOrder,
				CreatedAt: *row.ExcerptCreatedAt,
			})
		}
	}

	return &messages
}

func (r *Repository) UpdateMessageContent(ctx context.Context, messageID, content string) (*model.Message, error) {
	query, args, err := sq.Update("messages").
		Set("content", content).
		Where(sq.Eq{"id": messageID}).
		Suffix("RETURNING id, conversation_id, role, content, position, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %v", err)
	}

	return &message, nil
}

// DeleteMessage removes the message; its excerpts go with it via cascade.
func (r *Repository) DeleteMessage(ctx context.Context, messageID string) error {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	return nil
}

func (r *Repository) DeleteMessages(ctx context.Context, messageIDs []uuid.UUID) error {
	if len(messageIDs) == 0 {
		return nil
	}

	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"id": messageIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete messages: %v", err)
	}

	return nil
}

// CreateExcerpts persists one excerpt per advice item, in list order, with the
// zero-based index recorded as the order value.
func (r *Repository) CreateExcerpts(ctx context.Context, messageID string, items []model.ListItem) (*model.ExcerptList, error) {
	if len(items) == 0 {
		return &model.ExcerptList{}, nil
	}

	query := sq.Insert("excerpts").
		Columns("message_id", "title", "content", `"order"`).
		Suffix(`RETURNING id, message_id, title, content, "order", created_at`).
		PlaceholderFormat(sq.Dollar)

	for i, item := range items {
		query = query.Values(messageID, item.Title, item.Content, strconv.Itoa(i))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var excerpts model.ExcerptList
	err = r.Chk(ctx).SelectContext(ctx, &excerpts, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create excerpts: %v", err)
	}

	return &excerpts, nil
}

func (r *Repository) GetExcerptByID(ctx context.Context, excerptID string) (*model.Excerpt, error) {
	query, args, err := sq.Select("id", "message_id", "title", "content", `"order"`, "created_at").
		From("excerpts").
		Where(sq.Eq{"id": excerptID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var excerpt model.Excerpt
	err = r.Chk(ctx).GetContext(ctx, &excerpt, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get excerpt: %v", err)
	}

	return &excerpt, nil
}

func (r *Repository) UpdateExcerpt(ctx context.Context, excerptID, title, content string) (*model.Excerpt, error) {
	query, args, err := sq.Update("excerpts").
		Set("title", title).
		Set("content", content).
		Where(sq.Eq{"id": excerptID}).
		Suffix(`RETURNING id, message_id, title, content, "order", created_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var excerpt model.Excerpt
	err = r.Chk(ctx).GetContext(ctx, &excerpt, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update excerpt: %v", err)
	}

	return &excerpt, nil
}

func (r *Repository) DeleteExcerpt(ctx context.Context, excerptID string) error {
	query, args, err := sq.Delete("excerpts").
		Where(sq.Eq{"id": excerptID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete excerpt: %v", err)
	}

	return nil
}
