package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/pkg/dbmetrics"
	"github.com/mojtermin/MT-BookingPlatform/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository репозиторий предрачуна (proforma invoice)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет предрачун. Колонка reference уникальна:
// при коллизии возвращается ErrDuplicateReference, и генератор
// референсов на стороне сервиса повторяет попытку с новым суффиксом
func (r *Repository) Create(ctx context.Context, invoice *domain.ProformaInvoice) (*domain.ProformaInvoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("proforma_invoices").
		Columns("id", "salon_name", "plan", "amount", "reference", "platform_iban", "platform_pib", "trial_days").
		Values(
			invoice.ID,
			invoice.SalonName,
			invoice.Plan,
			invoice.Amount,
			invoice.Reference,
			invoice.PlatformIBAN,
			invoice.PlatformPIB,
			invoice.TrialDays,
		).
		Suffix("RETURNING issued_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&invoice.IssuedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return invoice, nil
}

// GetByID получает предрачун по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ProformaInvoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "salon_name", "plan", "amount", "reference",
		"platform_iban", "platform_pib", "trial_days", "issued_at",
	).
		From("proforma_invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var invoice domain.ProformaInvoice
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.SalonName,
		&invoice.Plan,
		&invoice.Amount,
		&invoice.Reference,
		&invoice.PlatformIBAN,
		&invoice.PlatformPIB,
		&invoice.TrialDays,
		&invoice.IssuedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan invoice: %v", ErrScanRow, err)
	}

	return &invoice, nil
}
