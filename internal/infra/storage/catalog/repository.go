package catalog

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

// Repository репозиторий каталога: бизнесы, их услуги и сотрудники
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessByID получает бизнес вместе с услугами и сотрудниками
func (r *Repository) GetBusinessByID(ctx context.Context, id string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "category", "city",
		"rating", "image_url", "address", "description",
		"created_at", "updated_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessByID - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.OwnerID,
		&business.Name,
		&business.Category,
		&business.City,
		&business.Rating,
		&business.ImageURL,
		&business.Address,
		&business.Description,
		&business.CreatedAt,
		&business.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessByID - scan business: %v", ErrScanRow, err)
	}

	business.Services, err = r.getServices(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	business.Staff, err = r.getStaff(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	return &business, nil
}

// ListBusinesses получает список бизнесов по фильтру витрины.
// Услуги и сотрудники подгружаются для каждого бизнеса - каталог
// небольшой, N+1 здесь осознанный выбор в пользу простоты
func (r *Repository) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "owner_id", "name", "category", "city",
		"rating", "image_url", "address", "description",
		"created_at", "updated_at",
	).
		From("businesses").
		OrderBy("rating DESC, name ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinesses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinesses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		var business domain.Business
		err := rows.Scan(
			&business.ID,
			&business.OwnerID,
			&business.Name,
			&business.Category,
			&business.City,
			&business.Rating,
			&business.ImageURL,
			&business.Address,
			&business.Description,
			&business.CreatedAt,
			&business.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBusinesses - scan business: %v", ErrScanRow, err)
		}
		businesses = append(businesses, &business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBusinesses - rows error: %v", ErrScanRow, err)
	}

	for _, business := range businesses {
		business.Services, err = r.getServices(ctx, executor, business.ID)
		if err != nil {
			return nil, err
		}
		business.Staff, err = r.getStaff(ctx, executor, business.ID)
		if err != nil {
			return nil, err
		}
	}

	return businesses, nil
}

// AddStaff добавляет сотрудника в бизнес
func (r *Repository) AddStaff(ctx context.Context, staff *domain.Staff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("id", "business_id", "name", "role", "avatar_url", "specialties").
		Values(staff.ID, staff.BusinessID, staff.Name, staff.Role, staff.AvatarURL, pq.Array(staff.Specialties)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddStaff - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrStaffExists
		}
		return fmt.Errorf("%w: AddStaff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveStaff удаляет сотрудника из бизнеса
func (r *Repository) RemoveStaff(ctx context.Context, businessID, staffID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
		Where(squirrel.Eq{"id": staffID, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveStaff - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveStaff - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveStaff - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

func (r *Repository) getServices(ctx context.Context, executor DBExecutor, businessID string) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id", "business_id", "name", "duration_minutes", "price", "description",
	).
		From("services").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		err := rows.Scan(
			&service.ID,
			&service.BusinessID,
			&service.Name,
			&service.DurationMinutes,
			&service.Price,
			&service.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func (r *Repository) getStaff(ctx context.Context, executor DBExecutor, businessID string) ([]domain.Staff, error) {
	query, args, err := psqlbuilder.Select(
		"id", "business_id", "name", "role", "avatar_url", "specialties",
	).
		From("staff").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffMembers := make([]domain.Staff, 0)
	for rows.Next() {
		var staff domain.Staff
		err := rows.Scan(
			&staff.ID,
			&staff.BusinessID,
			&staff.Name,
			&staff.Role,
			&staff.AvatarURL,
			pq.Array(&staff.Specialties),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getStaff - scan staff: %v", ErrScanRow, err)
		}
		staffMembers = append(staffMembers, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getStaff - rows error: %v", ErrScanRow, err)
	}

	return staffMembers, nil
}
