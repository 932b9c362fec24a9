package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var departmentQuery = listQuery{
	From: "department d",
	Columns: []string{
		"d.department_id", "d.station_id", "d.department_name", "d.phone", "d.email",
		"d.entity_id", "d.note_thread_id", "d.active_status",
		"d.created_at", "d.created_by", "d.updated_at", "d.updated_by",
	},
}

var departmentListDef = db.ListDef{
	Columns: map[string]string{
		"departmentId":   "d.department_id",
		"stationId":      "d.station_id",
		"departmentName": "d.department_name",
		"createdAt":      "d.created_at",
	},
	SearchColumns: []string{"d.department_name"},
	ActiveColumn:  "d.active_status",
	DefaultOrder:  "d.department_id ASC",
	KeyColumn:     "d.department_id",
}

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartmentInTx(ctx context.Context, tx pgx.Tx, department entities.Department) (uint64, error)
	UpdateDepartmentInTx(ctx context.Context, tx pgx.Tx, department entities.Department) error
	DeleteDepartment(ctx context.Context, id uint64, actor *uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
}

func NewDepartmentRepository(storage *pgxpool.Pool) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(
		&d.DepartmentID, &d.StationID, &d.DepartmentName, &d.Phone, &d.Email,
		&d.EntityID, &d.NoteThreadID, &d.ActiveStatus,
		&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan department")
	}
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return listPage(ctx, r.storage, departmentQuery, filter, departmentListDef, scanDepartment)
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	return findOne(ctx, r.storage, departmentQuery, sq.Eq{"d.department_id": id}, scanDepartment)
}

func (r *DepartmentRepository) CreateDepartmentInTx(ctx context.Context, tx pgx.Tx, d entities.Department) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO department (station_id, department_name, phone, email,
		                        entity_id, note_thread_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING department_id`,
		d.StationID, d.DepartmentName, d.Phone, d.Email, d.EntityID, d.NoteThreadID, d.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert department", "departmentName", d.DepartmentName)
	}
	return id, nil
}

func (r *DepartmentRepository) UpdateDepartmentInTx(ctx context.Context, tx pgx.Tx, d entities.Department) error {
	result, err := tx.Exec(ctx, `
		UPDATE department
		SET department_name = $1, phone = $2, email = $3,
		    active_status = $4, updated_at = NOW(), updated_by = $5
		WHERE department_id = $6`,
		d.DepartmentName, d.Phone, d.Email, d.ActiveStatus, d.UpdatedBy, d.DepartmentID,
	)
	if err != nil {
		return writeErr(err, "update department", "departmentName", d.DepartmentName)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "department", "department_id", id, actor)
}
