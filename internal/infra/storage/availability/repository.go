package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/dbmetrics"
	"github.com/bookora/venue-booking-service/pkg/psqlbuilder"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Repository репозиторий конфигурации доступности заведения.
// Расписание раскладывается по таблицам:
// venue_week_schedule, venue_breaks, venue_holidays,
// venue_special_hours, venue_booking_limits.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVenue собирает полную конфигурацию доступности заведения.
// Возвращает ErrAvailabilityNotFound, если недельное расписание не настроено.
func (r *Repository) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error) {
	week, updatedAt, err := r.getWeekSchedule(ctx, venueID)
	if err != nil {
		return nil, err
	}

	breaks, err := r.getBreaks(ctx, venueID)
	if err != nil {
		return nil, err
	}

	holidays, err := r.getHolidays(ctx, venueID)
	if err != nil {
		return nil, err
	}

	specialHours, err := r.getSpecialHours(ctx, venueID)
	if err != nil {
		return nil, err
	}

	advanceDays, minLeadHours, err := r.getBookingLimits(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return &domain.BusinessAvailability{
		VenueID:            venueID,
		Week:               *week,
		Breaks:             breaks,
		Holidays:           holidays,
		SpecialHours:       specialHours,
		AdvanceBookingDays: advanceDays,
		MinLeadTimeHours:   minLeadHours,
		UpdatedAt:          updatedAt,
	}, nil
}

// ReplaceForVenue атомарно заменяет конфигурацию доступности заведения.
// Вызывается внутри транзакции (через txmanager), чтобы читатели не видели
// частично обновлённое расписание.
func (r *Repository) ReplaceForVenue(ctx context.Context, av *domain.BusinessAvailability) error {
	if err := r.replaceWeekSchedule(ctx, av.VenueID, &av.Week); err != nil {
		return err
	}
	if err := r.replaceBreaks(ctx, av.VenueID, av.Breaks); err != nil {
		return err
	}
	if err := r.replaceHolidays(ctx, av.VenueID, av.Holidays); err != nil {
		return err
	}
	if err := r.replaceSpecialHours(ctx, av.VenueID, av.SpecialHours); err != nil {
		return err
	}
	return r.upsertBookingLimits(ctx, av.VenueID, av.AdvanceBookingDays, av.MinLeadTimeHours)
}

func (r *Repository) getWeekSchedule(ctx context.Context, venueID int64) (*domain.WeekSchedule, time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"max_capacity",
		"slot_duration_minutes",
		"updated_at",
	).
		From("venue_week_schedule").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: getWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: getWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var week domain.WeekSchedule
	var updatedAt time.Time
	found := false

	for rows.Next() {
		var weekday int
		var day domain.DaySchedule
		var openTime, closeTime sql.NullString
		var rowUpdatedAt sql.NullTime

		err := rows.Scan(
			&weekday,
			&day.IsOpen,
			&openTime,
			&closeTime,
			&day.MaxCapacity,
			&day.SlotDurationMinutes,
			&rowUpdatedAt,
		)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("%w: getWeekSchedule - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			day.OpenTime = timeStringFromDB(openTime.String)
		}
		if closeTime.Valid {
			day.CloseTime = timeStringFromDB(closeTime.String)
		}
		if rowUpdatedAt.Valid && rowUpdatedAt.Time.After(updatedAt) {
			updatedAt = rowUpdatedAt.Time
		}

		if err := setWeekday(&week, weekday, day); err != nil {
			return nil, time.Time{}, err
		}
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: getWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, time.Time{}, ErrAvailabilityNotFound
	}

	return &week, updatedAt, nil
}

func (r *Repository) getBreaks(ctx context.Context, venueID int64) ([]domain.BreakWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"label",
		"start_time",
		"end_time",
		"weekdays",
	).
		From("venue_breaks").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.BreakWindow, 0)

	for rows.Next() {
		var window domain.BreakWindow
		var startTime, endTime string
		var weekdays pq.Int64Array

		err := rows.Scan(
			&window.ID,
			&window.Label,
			&startTime,
			&endTime,
			&weekdays,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getBreaks - scan row: %v", ErrScanRow, err)
		}

		window.StartTime = timeStringFromDB(startTime)
		window.EndTime = timeStringFromDB(endTime)
		window.Weekdays = make([]time.Weekday, 0, len(weekdays))
		for _, d := range weekdays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: getBreaks - weekday %d", ErrInvalidWeekday, d)
			}
			window.Weekdays = append(window.Weekdays, time.Weekday(d))
		}

		breaks = append(breaks, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBreaks - rows error: %v", ErrScanRow, err)
	}

	return breaks, nil
}

func (r *Repository) getHolidays(ctx context.Context, venueID int64) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"holiday_date",
		"recurring",
		"is_closed",
		"custom_open_time",
		"custom_close_time",
		"custom_max_capacity",
		"custom_slot_duration_minutes",
	).
		From("venue_holidays").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("holiday_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)

	for rows.Next() {
		var holiday domain.Holiday
		var customOpen, customClose sql.NullString
		var customCapacity, customDuration sql.NullInt64

		err := rows.Scan(
			&holiday.ID,
			&holiday.Name,
			&holiday.Date,
			&holiday.Recurring,
			&holiday.IsClosed,
			&customOpen,
			&customClose,
			&customCapacity,
			&customDuration,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getHolidays - scan row: %v", ErrScanRow, err)
		}

		// Кастомное расписание есть только если заданы оба времени
		if !holiday.IsClosed && customOpen.Valid && customClose.Valid {
			custom := &domain.DaySchedule{
				IsOpen:    true,
				OpenTime:  timeStringFromDB(customOpen.String),
				CloseTime: timeStringFromDB(customClose.String),
			}
			if customCapacity.Valid {
				custom.MaxCapacity = int(customCapacity.Int64)
			}
			if customDuration.Valid {
				custom.SlotDurationMinutes = int(customDuration.Int64)
			}
			holiday.CustomSchedule = custom
		}

		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

func (r *Repository) getSpecialHours(ctx context.Context, venueID int64) ([]domain.SpecialHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"override_date",
		"is_open",
		"open_time",
		"close_time",
		"max_capacity",
		"slot_duration_minutes",
		"reason",
	).
		From("venue_special_hours").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.SpecialHours, 0)

	for rows.Next() {
		var override domain.SpecialHours
		var openTime, closeTime sql.NullString
		var capacity, duration sql.NullInt64

		err := rows.Scan(
			&override.ID,
			&override.Date,
			&override.IsOpen,
			&openTime,
			&closeTime,
			&capacity,
			&duration,
			&override.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getSpecialHours - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			override.OpenTime = timeStringFromDB(openTime.String)
		}
		if closeTime.Valid {
			override.CloseTime = timeStringFromDB(closeTime.String)
		}
		if capacity.Valid {
			override.MaxCapacity = int(capacity.Int64)
		}
		if duration.Valid {
			override.SlotDurationMinutes = int(duration.Int64)
		}

		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSpecialHours - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

func (r *Repository) getBookingLimits(ctx context.Context, venueID int64) (int, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"advance_booking_days",
		"min_lead_time_hours",
	).
		From("venue_booking_limits").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: getBookingLimits - build select query: %v", ErrBuildQuery, err)
	}

	var advanceDays, minLeadHours int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&advanceDays, &minLeadHours)

	if err == sql.ErrNoRows {
		// Лимиты не настроены - действуют значения по умолчанию
		return domain.DefaultAdvanceBookingDays, domain.DefaultMinLeadTimeHours, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%w: getBookingLimits - scan limits: %v", ErrScanRow, err)
	}

	return advanceDays, minLeadHours, nil
}

func (r *Repository) replaceWeekSchedule(ctx context.Context, venueID int64, week *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_week_schedule").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceWeekSchedule - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceWeekSchedule - execute delete: %v", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert("venue_week_schedule").
		Columns("venue_id", "weekday", "is_open", "open_time", "close_time", "max_capacity", "slot_duration_minutes")

	for weekday := 0; weekday <= 6; weekday++ {
		day := week.ForWeekday(time.Weekday(weekday))
		insert = insert.Values(
			venueID,
			weekday,
			day.IsOpen,
			nullableTime(day.OpenTime),
			nullableTime(day.CloseTime),
			day.MaxCapacity,
			day.SlotDurationMinutes,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceWeekSchedule - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceWeekSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) replaceBreaks(ctx context.Context, venueID int64, breaks []domain.BreakWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_breaks").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceBreaks - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceBreaks - execute delete: %v", ErrExecQuery, err)
	}

	if len(breaks) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("venue_breaks").
		Columns("venue_id", "label", "start_time", "end_time", "weekdays")

	for _, window := range breaks {
		weekdays := make(pq.Int64Array, 0, len(window.Weekdays))
		for _, d := range window.Weekdays {
			weekdays = append(weekdays, int64(d))
		}
		insert = insert.Values(venueID, window.Label, window.StartTime, window.EndTime, weekdays)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceBreaks - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceBreaks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) replaceHolidays(ctx context.Context, venueID int64, holidays []domain.Holiday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_holidays").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHolidays - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHolidays - execute delete: %v", ErrExecQuery, err)
	}

	if len(holidays) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("venue_holidays").
		Columns(
			"venue_id", "name", "holiday_date", "recurring", "is_closed",
			"custom_open_time", "custom_close_time", "custom_max_capacity", "custom_slot_duration_minutes",
		)

	for _, holiday := range holidays {
		var customOpen, customClose interface{}
		var customCapacity, customDuration interface{}
		if holiday.CustomSchedule != nil {
			customOpen = holiday.CustomSchedule.OpenTime
			customClose = holiday.CustomSchedule.CloseTime
			customCapacity = holiday.CustomSchedule.MaxCapacity
			customDuration = holiday.CustomSchedule.SlotDurationMinutes
		}
		insert = insert.Values(
			venueID, holiday.Name, holiday.Date, holiday.Recurring, holiday.IsClosed,
			customOpen, customClose, customCapacity, customDuration,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHolidays - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHolidays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) replaceSpecialHours(ctx context.Context, venueID int64, overrides []domain.SpecialHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_special_hours").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceSpecialHours - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceSpecialHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(overrides) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("venue_special_hours").
		Columns(
			"venue_id", "override_date", "is_open", "open_time", "close_time",
			"max_capacity", "slot_duration_minutes", "reason",
		)

	for _, override := range overrides {
		insert = insert.Values(
			venueID,
			override.Date,
			override.IsOpen,
			nullableTime(override.OpenTime),
			nullableTime(override.CloseTime),
			override.MaxCapacity,
			override.SlotDurationMinutes,
			override.Reason,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceSpecialHours - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceSpecialHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) upsertBookingLimits(ctx context.Context, venueID int64, advanceDays, minLeadHours int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venue_booking_limits").
		Columns("venue_id", "advance_booking_days", "min_lead_time_hours").
		Values(venueID, advanceDays, minLeadHours).
		Suffix("ON CONFLICT (venue_id) DO UPDATE SET advance_booking_days = EXCLUDED.advance_booking_days, min_lead_time_hours = EXCLUDED.min_lead_time_hours, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsertBookingLimits - build upsert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertBookingLimits - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Helper functions

func setWeekday(week *domain.WeekSchedule, weekday int, day domain.DaySchedule) error {
	switch time.Weekday(weekday) {
	case time.Sunday:
		week.Sunday = day
	case time.Monday:
		week.Monday = day
	case time.Tuesday:
		week.Tuesday = day
	case time.Wednesday:
		week.Wednesday = day
	case time.Thursday:
		week.Thursday = day
	case time.Friday:
		week.Friday = day
	case time.Saturday:
		week.Saturday = day
	default:
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	return nil
}

func timeStringFromDB(s string) (ts types.TimeString) {
	_ = ts.Scan(s)
	return ts
}

func nullableTime(ts types.TimeString) interface{} {
	if ts.IsZero() {
		return nil
	}
	return ts
}
