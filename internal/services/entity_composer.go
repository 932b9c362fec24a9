package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/metrics"
	"freight-admin/pkg/utils"
)

// ComposeRequest describes the cross-cutting rows created alongside a
// business row: its entity tag, its note thread and its addresses.
type ComposeRequest struct {
	EntityType  entities.EntityType
	EntityName  string
	InitialNote string
	Addresses   []entities.EntityAddress
}

// InsertRowFunc inserts the business row inside the composition transaction.
type InsertRowFunc func(tx pgx.Tx, link entities.EntityLink) (uint64, error)

type EntityComposerInterface interface {
	Compose(ctx context.Context, req ComposeRequest, insertRow InsertRowFunc) (uint64, error)
	UpdateWithAddresses(ctx context.Context, entityID uint64, addresses []entities.EntityAddress, updateRow func(tx pgx.Tx) error) error
	LoadAttachments(ctx context.Context, entityID, noteThreadID uint64) (dto.Attachments, error)
}

type EntityComposer struct {
	txManager   repositories.TxManagerInterface
	entityRepo  repositories.EntityRepositoryInterface
	noteRepo    repositories.NoteRepositoryInterface
	addressRepo repositories.AddressRepositoryInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewEntityComposer(
	txManager repositories.TxManagerInterface,
	entityRepo repositories.EntityRepositoryInterface,
	noteRepo repositories.NoteRepositoryInterface,
	addressRepo repositories.AddressRepositoryInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) EntityComposerInterface {
	return &EntityComposer{
		txManager:   txManager,
		entityRepo:  entityRepo,
		noteRepo:    noteRepo,
		addressRepo: addressRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Compose creates the entity tag, the note thread, the optional first note,
// the business row and its addresses in one transaction. Nothing is left
// behind when any step fails.
func (c *EntityComposer) Compose(ctx context.Context, req ComposeRequest, insertRow InsertRowFunc) (uint64, error) {
	actor := utils.ActorFromCtx(ctx)
	var rowID uint64

	err := c.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		entityID, err := c.entityRepo.CreateEntityInTx(ctx, tx, req.EntityType, req.EntityName)
		if err != nil {
			return err
		}

		threadID, err := c.noteRepo.CreateThreadInTx(ctx, tx, entityID)
		if err != nil {
			return err
		}

		if req.InitialNote != "" {
			if _, err := c.noteRepo.AddMessage(ctx, tx, threadID, req.InitialNote, actor); err != nil {
				return err
			}
		}

		rowID, err = insertRow(tx, entities.EntityLink{EntityID: entityID, NoteThreadID: threadID})
		if err != nil {
			return err
		}

		_, err = c.addressRepo.AttachAddressesInTx(ctx, tx, entityID, req.Addresses, actor)
		return err
	})

	c.metrics.ObserveComposition(string(req.EntityType), err)
	if err != nil {
		c.logger.Warn("entity composition rolled back",
			zap.String("entityType", string(req.EntityType)),
			zap.String("entityName", req.EntityName),
			zap.Error(err))
		return 0, err
	}

	c.logger.Debug("entity composed",
		zap.String("entityType", string(req.EntityType)),
		zap.Uint64("rowID", rowID),
		zap.Int("addresses", len(req.Addresses)))
	return rowID, nil
}

// UpdateWithAddresses runs the business row update and every address change
// in one transaction. Addresses carrying an entityAddressId are rewritten,
// the rest are attached as new.
func (c *EntityComposer) UpdateWithAddresses(ctx context.Context, entityID uint64, addresses []entities.EntityAddress, updateRow func(tx pgx.Tx) error) error {
	actor := utils.ActorFromCtx(ctx)

	var existing, added []entities.EntityAddress
	for _, a := range addresses {
		if a.EntityAddressID != 0 {
			existing = append(existing, a)
		} else {
			added = append(added, a)
		}
	}

	return c.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := updateRow(tx); err != nil {
			return err
		}
		for _, a := range existing {
			if err := c.addressRepo.UpdateAddressInTx(ctx, tx, entityID, a, actor); err != nil {
				return err
			}
		}
		_, err := c.addressRepo.AttachAddressesInTx(ctx, tx, entityID, added, actor)
		return err
	})
}

// LoadAttachments fetches addresses and notes concurrently on the pool.
func (c *EntityComposer) LoadAttachments(ctx context.Context, entityID, noteThreadID uint64) (dto.Attachments, error) {
	out := dto.Attachments{
		Addresses: []entities.EntityAddress{},
		Notes:     []entities.NoteMessage{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addresses, err := c.addressRepo.ListByEntity(gctx, entityID)
		if err != nil {
			return err
		}
		if addresses != nil {
			out.Addresses = addresses
		}
		return nil
	})
	if noteThreadID != 0 {
		g.Go(func() error {
			notes, err := c.noteRepo.ListMessages(gctx, noteThreadID)
			if err != nil {
				return err
			}
			if notes != nil {
				out.Notes = notes
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Error("load attachments", zap.Uint64("entityID", entityID), zap.Error(err))
		return dto.Attachments{}, err
	}
	return out, nil
}
