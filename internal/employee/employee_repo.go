package employee

import (
	"context"
	"database/sql"

	"employee-service/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Save(ctx context.Context, empl *Employee) (*Employee, error)
	DeleteByID(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	if err := r.conn(ctx).First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindByEmail returns the oldest record with that email; uniqueness is not
// enforced by the schema.
func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	if err := r.conn(ctx).Where("email = ?", email).First(&empl).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

// Save inserts when ID is zero and updates every column otherwise.
func (r *repository) Save(ctx context.Context, empl *Employee) (*Employee, error) {
	if err := r.conn(ctx).Save(empl).Error; err != nil {
		return nil, err
	}
	return empl, nil
}

// DeleteByID is a no-op when the row does not exist.
func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.conn(ctx).Delete(&Employee{}, "id = ?", id).Error
}
