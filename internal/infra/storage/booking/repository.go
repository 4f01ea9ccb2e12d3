package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/dbmetrics"
	"github.com/bookora/venue-booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"venue_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"party_size",
	"status",
	"fee_amount",
	"fee_type",
	"fee_refundable",
	"fee_description",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - так create_booking выполняет проверку доступности слота
// и вставку в одной сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"venue_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"party_size",
			"status",
			"fee_amount",
			"fee_type",
			"fee_refundable",
			"fee_description",
			"notes",
		).
		Values(
			b.UserID,
			b.VenueID,
			b.BookingDate,
			b.StartTime,
			b.DurationMinutes,
			b.PartySize,
			b.Status,
			b.FeeAmount,
			feeTypeToDB(b.FeeType),
			b.FeeRefundable,
			b.FeeDescription,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByVenueWithFilter получает бронирования заведения с гибкой фильтрацией:
// по периоду (StartDate, EndDate), статусу и включению неактивных бронирований.
// Именно через этот метод usecases получают леджер бронирований на дату.
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"venue_id": filter.VenueID}).
		OrderBy("booking_date ASC, start_time ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// LedgerForDate строит леджер занятой вместимости для даты: суммы party_size
// активных бронирований, сгруппированные по времени начала
func (r *Repository) LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error) {
	bookings, err := r.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID:   venueID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		return nil, err
	}

	ledger := make([]domain.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		ledger = append(ledger, domain.ExistingBooking{
			StartTime: b.StartTime,
			Occupied:  b.PartySize,
		})
	}

	return ledger, nil
}

// UpdateStatus обновляет статус бронирования.
// Для статусов отмены дополнительно записывает причину и время отмены.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancellationReason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelledByUser || status == domain.StatusCancelledByVenue {
		updateBuilder = updateBuilder.
			Set("cancellation_reason", cancellationReason).
			Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Helper functions

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var feeType sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.UserID,
		&b.VenueID,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.PartySize,
		&b.Status,
		&b.FeeAmount,
		&feeType,
		&b.FeeRefundable,
		&b.FeeDescription,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if feeType.Valid {
		ft := domain.FeeType(feeType.String)
		b.FeeType = &ft
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func feeTypeToDB(t *domain.FeeType) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}
