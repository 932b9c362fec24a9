package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var personnelQuery = listQuery{
	From: "customer_personnel p",
	Columns: []string{
		"p.personnel_id", "p.customer_id", "p.first_name", "p.last_name", "p.email", "p.phone", "p.job_title",
		"p.entity_id", "p.note_thread_id", "p.active_status",
		"p.created_at", "p.created_by", "p.updated_at", "p.updated_by",
	},
}

var personnelListDef = db.ListDef{
	Columns: map[string]string{
		"personnelId": "p.personnel_id",
		"customerId":  "p.customer_id",
		"firstName":   "p.first_name",
		"lastName":    "p.last_name",
		"email":       "p.email",
	},
	SearchColumns: []string{"p.first_name", "p.last_name", "p.email"},
	ActiveColumn:  "p.active_status",
	DefaultOrder:  "p.personnel_id ASC",
	KeyColumn:     "p.personnel_id",
}

type PersonnelRepositoryInterface interface {
	GetPersonnel(ctx context.Context, filter types.Filter) ([]entities.CustomerPersonnel, uint64, error)
	FindPersonnel(ctx context.Context, id uint64) (*entities.CustomerPersonnel, error)
	FindByEmail(ctx context.Context, email string) (*entities.CustomerPersonnel, error)
	CreatePersonnelInTx(ctx context.Context, tx pgx.Tx, p entities.CustomerPersonnel) (uint64, error)
	UpdatePersonnelInTx(ctx context.Context, tx pgx.Tx, p entities.CustomerPersonnel) error
	DeletePersonnel(ctx context.Context, id uint64, actor *uint64) error
}

type PersonnelRepository struct {
	storage *pgxpool.Pool
}

func NewPersonnelRepository(storage *pgxpool.Pool) PersonnelRepositoryInterface {
	return &PersonnelRepository{storage: storage}
}

func scanPersonnel(row pgx.Row) (*entities.CustomerPersonnel, error) {
	var p entities.CustomerPersonnel
	err := row.Scan(
		&p.PersonnelID, &p.CustomerID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.JobTitle,
		&p.EntityID, &p.NoteThreadID, &p.ActiveStatus,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan personnel")
	}
	return &p, nil
}

func (r *PersonnelRepository) GetPersonnel(ctx context.Context, filter types.Filter) ([]entities.CustomerPersonnel, uint64, error) {
	return listPage(ctx, r.storage, personnelQuery, filter, personnelListDef, scanPersonnel)
}

func (r *PersonnelRepository) FindPersonnel(ctx context.Context, id uint64) (*entities.CustomerPersonnel, error) {
	return findOne(ctx, r.storage, personnelQuery, sq.Eq{"p.personnel_id": id}, scanPersonnel)
}

func (r *PersonnelRepository) FindByEmail(ctx context.Context, email string) (*entities.CustomerPersonnel, error) {
	return findOne(ctx, r.storage, personnelQuery, sq.Expr("LOWER(p.email) = ?", strings.ToLower(email)), scanPersonnel)
}

func (r *PersonnelRepository) CreatePersonnelInTx(ctx context.Context, tx pgx.Tx, p entities.CustomerPersonnel) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO customer_personnel (customer_id, first_name, last_name, email, phone, job_title,
		                                entity_id, note_thread_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING personnel_id`,
		p.CustomerID, p.FirstName, p.LastName, p.Email, p.Phone, p.JobTitle,
		p.EntityID, p.NoteThreadID, p.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert personnel", "email", p.Email)
	}
	return id, nil
}

func (r *PersonnelRepository) UpdatePersonnelInTx(ctx context.Context, tx pgx.Tx, p entities.CustomerPersonnel) error {
	result, err := tx.Exec(ctx, `
		UPDATE customer_personnel
		SET first_name = $1, last_name = $2, email = $3, phone = $4, job_title = $5,
		    active_status = $6, updated_at = NOW(), updated_by = $7
		WHERE personnel_id = $8`,
		p.FirstName, p.LastName, p.Email, p.Phone, p.JobTitle, p.ActiveStatus, p.UpdatedBy, p.PersonnelID,
	)
	if err != nil {
		return writeErr(err, "update personnel", "email", p.Email)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PersonnelRepository) DeletePersonnel(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, "customer_personnel", "personnel_id", id, actor)
}
