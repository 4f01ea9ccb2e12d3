package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/dbmetrics"
	"github.com/bookora/venue-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий настроек сборов и отмены заведения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVenue получает настройки заведения вместе со списком особых дней.
// Возвращает ErrSettingsNotFound, если настройки не заведены.
func (r *Repository) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"venue_id",
		"weekend_fee_amount",
		"allow_free_weekend_bookings",
		"fee_refundable",
		"fee_type",
		"currency",
		"cancellation_policy_hours",
		"updated_at",
	).
		From("venue_settings").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.BusinessSettings
	var feeType string
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.VenueID,
		&result.WeekendFeeAmount,
		&result.AllowFreeWeekendBookings,
		&result.FeeRefundable,
		&feeType,
		&result.Currency,
		&result.CancellationPolicyHours,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - scan settings: %v", ErrScanRow, err)
	}

	result.FeeType = domain.FeeType(feeType)
	result.UpdatedAt = updatedAt.Time

	specialDays, err := r.getSpecialDays(ctx, venueID)
	if err != nil {
		return nil, err
	}
	result.SpecialDays = specialDays

	return &result, nil
}

// Upsert создает или обновляет настройки заведения и заменяет особые дни
func (r *Repository) Upsert(ctx context.Context, s *domain.BusinessSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venue_settings").
		Columns(
			"venue_id",
			"weekend_fee_amount",
			"allow_free_weekend_bookings",
			"fee_refundable",
			"fee_type",
			"currency",
			"cancellation_policy_hours",
		).
		Values(
			s.VenueID,
			s.WeekendFeeAmount,
			s.AllowFreeWeekendBookings,
			s.FeeRefundable,
			string(s.FeeType),
			s.Currency,
			s.CancellationPolicyHours,
		).
		Suffix(`ON CONFLICT (venue_id) DO UPDATE SET
			weekend_fee_amount = EXCLUDED.weekend_fee_amount,
			allow_free_weekend_bookings = EXCLUDED.allow_free_weekend_bookings,
			fee_refundable = EXCLUDED.fee_refundable,
			fee_type = EXCLUDED.fee_type,
			currency = EXCLUDED.currency,
			cancellation_policy_hours = EXCLUDED.cancellation_policy_hours,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return r.replaceSpecialDays(ctx, s.VenueID, s.SpecialDays)
}

func (r *Repository) getSpecialDays(ctx context.Context, venueID int64) ([]domain.SpecialDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"special_date",
		"name",
		"requires_payment",
		"fee_amount",
	).
		From("venue_special_days").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("special_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.SpecialDay, 0)

	for rows.Next() {
		var day domain.SpecialDay
		err := rows.Scan(
			&day.ID,
			&day.Date,
			&day.Name,
			&day.RequiresPayment,
			&day.FeeAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getSpecialDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSpecialDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

func (r *Repository) replaceSpecialDays(ctx context.Context, venueID int64, days []domain.SpecialDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_special_days").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - execute delete: %v", ErrExecQuery, err)
	}

	if len(days) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("venue_special_days").
		Columns("venue_id", "special_date", "name", "requires_payment", "fee_amount")

	for _, day := range days {
		insert = insert.Values(venueID, day.Date, day.Name, day.RequiresPayment, day.FeeAmount)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceSpecialDays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
