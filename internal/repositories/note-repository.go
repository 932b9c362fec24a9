package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
)

// NoteRepositoryInterface has no update or delete: messages are append-only
// and threads live as long as their entity.
type NoteRepositoryInterface interface {
	CreateThreadInTx(ctx context.Context, tx pgx.Tx, entityID uint64) (uint64, error)
	AddMessage(ctx context.Context, tx pgx.Tx, threadID uint64, text string, actor *uint64) (*entities.NoteMessage, error)
	FindThread(ctx context.Context, threadID uint64) (*entities.NoteThread, error)
	ListMessages(ctx context.Context, threadID uint64) ([]entities.NoteMessage, error)
}

type NoteRepository struct {
	storage *pgxpool.Pool
}

func NewNoteRepository(storage *pgxpool.Pool) NoteRepositoryInterface {
	return &NoteRepository{storage: storage}
}

func (r *NoteRepository) CreateThreadInTx(ctx context.Context, tx pgx.Tx, entityID uint64) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		`INSERT INTO note_thread (entity_id) VALUES ($1) RETURNING note_thread_id`, entityID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert note thread: %w", err)
	}
	return id, nil
}

// AddMessage runs on tx when given, otherwise directly on the pool.
func (r *NoteRepository) AddMessage(ctx context.Context, tx pgx.Tx, threadID uint64, text string, actor *uint64) (*entities.NoteMessage, error) {
	m := entities.NoteMessage{NoteThreadID: threadID, MessageText: text, CreatedBy: actor}
	err := pick(r.storage, tx).QueryRow(ctx,
		`INSERT INTO note_message (note_thread_id, message_text, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING note_message_id, created_at`,
		threadID, text, actor,
	).Scan(&m.NoteMessageID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert note message: %w", err)
	}
	return &m, nil
}

func (r *NoteRepository) FindThread(ctx context.Context, threadID uint64) (*entities.NoteThread, error) {
	var t entities.NoteThread
	err := r.storage.QueryRow(ctx,
		`SELECT note_thread_id, entity_id, created_at FROM note_thread WHERE note_thread_id = $1`, threadID,
	).Scan(&t.NoteThreadID, &t.EntityID, &t.CreatedAt)
	if err != nil {
		return nil, readErr(err, "find note thread")
	}
	return &t, nil
}

// ListMessages returns the thread newest first. The id breaks ties between
// messages written in the same microsecond.
func (r *NoteRepository) ListMessages(ctx context.Context, threadID uint64) ([]entities.NoteMessage, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT note_message_id, note_thread_id, message_text, created_by, created_at
		 FROM note_message
		 WHERE note_thread_id = $1
		 ORDER BY created_at DESC, note_message_id DESC`, threadID)
	if err != nil {
		return nil, fmt.Errorf("list note messages: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.NoteMessage, 0)
	for rows.Next() {
		var m entities.NoteMessage
		if err := rows.Scan(&m.NoteMessageID, &m.NoteThreadID, &m.MessageText, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
