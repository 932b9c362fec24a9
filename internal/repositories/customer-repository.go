package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"freight-admin/internal/entities"
	db "freight-admin/internal/infrastructure/bd"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

const customerTable = "customer"

var customerQuery = listQuery{
	From: "customer c",
	Columns: []string{
		"c.customer_id", "c.customer_name", "c.rm_account_number", "c.phone", "c.email", "c.website",
		"c.entity_id", "c.note_thread_id", "c.active_status",
		"c.created_at", "c.created_by", "c.updated_at", "c.updated_by",
	},
}

var customerListDef = db.ListDef{
	Columns: map[string]string{
		"customerId":      "c.customer_id",
		"customerName":    "c.customer_name",
		"rmAccountNumber": "c.rm_account_number",
		"createdAt":       "c.created_at",
		"updatedAt":       "c.updated_at",
	},
	SearchColumns: []string{"c.customer_name", "c.rm_account_number"},
	ActiveColumn:  "c.active_status",
	DefaultOrder:  "c.customer_id ASC",
	KeyColumn:     "c.customer_id",
}

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*entities.Customer, error)
	CreateCustomerInTx(ctx context.Context, tx pgx.Tx, customer entities.Customer) (uint64, error)
	UpdateCustomerInTx(ctx context.Context, tx pgx.Tx, customer entities.Customer) error
	DeleteCustomer(ctx context.Context, id uint64, actor *uint64) error
}

type CustomerRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCustomerRepository(storage *pgxpool.Pool, logger *zap.Logger) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage, logger: logger}
}

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(
		&c.CustomerID, &c.CustomerName, &c.RmAccountNumber, &c.Phone, &c.Email, &c.Website,
		&c.EntityID, &c.NoteThreadID, &c.ActiveStatus,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
	)
	if err != nil {
		return nil, readErr(err, "scan customer")
	}
	return &c, nil
}

func (r *CustomerRepository) GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	return listPage(ctx, r.storage, customerQuery, filter, customerListDef, scanCustomer)
}

func (r *CustomerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	return findOne(ctx, r.storage, customerQuery, sq.Eq{"c.customer_id": id}, scanCustomer)
}

func (r *CustomerRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*entities.Customer, error) {
	return findOne(ctx, r.storage, customerQuery, sq.Eq{"c.rm_account_number": accountNumber}, scanCustomer)
}

func (r *CustomerRepository) CreateCustomerInTx(ctx context.Context, tx pgx.Tx, c entities.Customer) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO customer (customer_name, rm_account_number, phone, email, website,
		                      entity_id, note_thread_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING customer_id`,
		c.CustomerName, c.RmAccountNumber, c.Phone, c.Email, c.Website,
		c.EntityID, c.NoteThreadID, c.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, writeErr(err, "insert customer", "rmAccountNumber", c.RmAccountNumber)
	}
	return id, nil
}

func (r *CustomerRepository) UpdateCustomerInTx(ctx context.Context, tx pgx.Tx, c entities.Customer) error {
	result, err := tx.Exec(ctx, `
		UPDATE customer
		SET customer_name = $1, rm_account_number = $2, phone = $3, email = $4, website = $5,
		    active_status = $6, updated_at = NOW(), updated_by = $7
		WHERE customer_id = $8`,
		c.CustomerName, c.RmAccountNumber, c.Phone, c.Email, c.Website,
		c.ActiveStatus, c.UpdatedBy, c.CustomerID,
	)
	if err != nil {
		return writeErr(err, "update customer", "rmAccountNumber", c.RmAccountNumber)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uint64, actor *uint64) error {
	return softDelete(ctx, r.storage, customerTable, "customer_id", id, actor)
}
