package services

import (
	"context"

	"go.uber.org/zap"

	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/utils"
)

// Notes are append-only.
type NoteServiceInterface interface {
	ListMessages(ctx context.Context, threadID uint64) ([]entities.NoteMessage, error)
	AddMessage(ctx context.Context, threadID uint64, text string) (*entities.NoteMessage, error)
}

type NoteService struct {
	noteRepo repositories.NoteRepositoryInterface
	logger   *zap.Logger
}

func NewNoteService(noteRepo repositories.NoteRepositoryInterface, logger *zap.Logger) NoteServiceInterface {
	return &NoteService{noteRepo: noteRepo, logger: logger}
}

// ListMessages returns the thread newest first.
func (s *NoteService) ListMessages(ctx context.Context, threadID uint64) ([]entities.NoteMessage, error) {
	if _, err := s.noteRepo.FindThread(ctx, threadID); err != nil {
		return nil, err
	}
	messages, err := s.noteRepo.ListMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []entities.NoteMessage{}
	}
	return messages, nil
}

func (s *NoteService) AddMessage(ctx context.Context, threadID uint64, text string) (*entities.NoteMessage, error) {
	if _, err := s.noteRepo.FindThread(ctx, threadID); err != nil {
		return nil, err
	}
	msg, err := s.noteRepo.AddMessage(ctx, nil, threadID, text, utils.ActorFromCtx(ctx))
	if err != nil {
		s.logger.Error("add note", zap.Uint64("threadID", threadID), zap.Error(err))
		return nil, err
	}
	return msg, nil
}
