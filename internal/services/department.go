package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	"freight-admin/pkg/types"
	"freight-admin/pkg/utils"
)

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	stationRepo    repositories.StationRepositoryInterface
	composer       EntityComposerInterface
	logger         *zap.Logger
}

func NewDepartmentService(
	departmentRepo repositories.DepartmentRepositoryInterface,
	stationRepo repositories.StationRepositoryInterface,
	composer EntityComposerInterface,
	logger *zap.Logger,
) DepartmentServiceInterface {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		stationRepo:    stationRepo,
		composer:       composer,
		logger:         logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return s.departmentRepo.GetDepartments(ctx, filter)
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.composer.LoadAttachments(ctx, department.EntityID, department.NoteThreadID)
	if err != nil {
		return nil, err
	}
	return &dto.DepartmentDTO{Department: *department, Attachments: attachments}, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if _, err := s.stationRepo.FindStation(ctx, payload.StationID); err != nil {
		return nil, ensureReference(err, "stationId", payload.StationID)
	}

	actor := utils.ActorFromCtx(ctx)
	req := ComposeRequest{
		EntityType:  entities.EntityTypeDepartment,
		EntityName:  payload.DepartmentName,
		InitialNote: payload.InitialNote,
		Addresses:   dto.AddressesToEntities(payload.Addresses),
	}

	id, err := s.composer.Compose(ctx, req, func(tx pgx.Tx, link entities.EntityLink) (uint64, error) {
		department := entities.Department{
			StationID:      payload.StationID,
			DepartmentName: payload.DepartmentName,
			Phone:          dto.NullableString(payload.Phone),
			Email:          dto.NullableString(payload.Email),
			EntityID:       link.EntityID,
			NoteThreadID:   link.NoteThreadID,
		}
		department.CreatedBy = actor
		return s.departmentRepo.CreateDepartmentInTx(ctx, tx, department)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("department created", zap.Uint64("departmentID", id), zap.Uint64("stationID", payload.StationID))
	return s.FindDepartment(ctx, id)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	current, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.DepartmentName = dto.StringOr(current.DepartmentName, payload.DepartmentName)
	updated.Phone = dto.OptionalString(current.Phone, payload.Phone)
	updated.Email = dto.OptionalString(current.Email, payload.Email)
	updated.ActiveStatus = dto.StringOr(current.ActiveStatus, payload.ActiveStatus)
	updated.UpdatedBy = utils.ActorFromCtx(ctx)

	err = s.composer.UpdateWithAddresses(ctx, current.EntityID, dto.AddressesToEntities(payload.Addresses), func(tx pgx.Tx) error {
		return s.departmentRepo.UpdateDepartmentInTx(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return s.FindDepartment(ctx, id)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.departmentRepo.DeleteDepartment(ctx, id, utils.ActorFromCtx(ctx))
}
