package address

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий адресов доставки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория адресов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает адрес доставки.
// Вызывается только внутри транзакции аллокации: при откате транзакции
// адрес не должен остаться в базе.
func (r *Repository) Create(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("addresses").
		Columns(
			"user_id",
			"city",
			"street",
			"building",
			"apartment",
			"phone",
			"comment",
		).
		Values(
			a.UserID,
			a.City,
			a.Street,
			a.Building,
			a.Apartment,
			a.Phone,
			a.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time

	return a, nil
}
