package entities

import "time"

type NoteThread struct {
	NoteThreadID uint64    `json:"noteThreadId" db:"note_thread_id"`
	EntityID     uint64    `json:"entityId" db:"entity_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// NoteMessage rows are append-only.
type NoteMessage struct {
	NoteMessageID uint64    `json:"noteMessageId" db:"note_message_id"`
	NoteThreadID  uint64    `json:"noteThreadId" db:"note_thread_id"`
	MessageText   string    `json:"messageText" db:"message_text"`
	CreatedBy     *uint64   `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
