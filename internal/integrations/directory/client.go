package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с DirectoryService (каталог заведений)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DirectoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVenue получает заведение по ID
func (c *Client) GetVenue(ctx context.Context, venueID int64) (*Venue, error) {
	url := fmt.Sprintf("%s/internal/venues/%d", c.baseURL, venueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid venue ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var venue Venue
	if err := json.NewDecoder(resp.Body).Decode(&venue); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !venue.Active {
		return nil, ErrVenueInactive
	}

	return &venue, nil
}

// IsManager проверяет, является ли пользователь менеджером заведения
func (c *Client) IsManager(ctx context.Context, venueID, userID int64) (bool, error) {
	url := fmt.Sprintf("%s/internal/venues/%d/managers/%d", c.baseURL, venueID, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// GetVenueWithGracefulDegradation получает заведение с graceful degradation.
// При недоступности DirectoryService возвращает ErrServiceDegraded: вызывающий
// код может продолжить работу по локальной конфигурации доступности.
func (c *Client) GetVenueWithGracefulDegradation(ctx context.Context, venueID int64) (*Venue, error) {
	c.log.Info("Fetching venue id=%d", venueID)

	venue, err := c.GetVenue(ctx, venueID)
	if err != nil {
		// Критичные бизнес-ошибки пробрасываем дальше
		if err == ErrVenueNotFound || err == ErrVenueInactive {
			c.log.Info("Venue id=%d rejected by directory: %v", venueID, err)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation.
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("DirectoryService unavailable, applying graceful degradation for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: venue=%d, error=%v", ErrServiceDegraded, venueID, err)
	}

	c.log.Info("Successfully fetched venue id=%d, kind=%s", venueID, venue.Kind)
	return venue, nil
}
