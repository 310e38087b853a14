package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// Client клиент для работы с hotel API
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента hotel API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithObserver подключает сбор метрик вызовов
func (c *Client) WithObserver(o Observer) *Client {
	c.observer = o
	return c
}

// GetProfile получает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, opGetProfile, http.MethodGet, "/api/v1/auth/my-profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMyReservations получает бронирования текущего пользователя
func (c *Client) GetMyReservations(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := c.do(ctx, opGetReservations, http.MethodGet, "/reservations/my-reservations", nil, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return reservations, nil
}

// GetMyIncidents получает инциденты, заявленные текущим пользователем
func (c *Client) GetMyIncidents(ctx context.Context) ([]domain.Incident, error) {
	var incidents []domain.Incident
	if err := c.do(ctx, opGetIncidents, http.MethodGet, "/api/incidents/my-incidents", nil, &incidents); err != nil {
		return nil, err
	}
	if incidents == nil {
		incidents = []domain.Incident{}
	}
	return incidents, nil
}

// CreateIncident заявляет инцидент по комнате и возвращает созданную запись
func (c *Client) CreateIncident(ctx context.Context, roomID int64, description string) (*domain.Incident, error) {
	path := fmt.Sprintf("/api/incidents/create/%d", roomID)
	var incident domain.Incident
	if err := c.do(ctx, opCreateIncident, http.MethodPost, path, createIncidentRequest{Description: description}, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// PayReservation отмечает бронирование оплаченным.
// Тело запроса пустое, ответ не используется.
func (c *Client) PayReservation(ctx context.Context, reservationID int64) error {
	path := fmt.Sprintf("/reservations/%d/pay", reservationID)
	return c.do(ctx, opPayReservation, http.MethodPut, path, nil, nil)
}

// do выполняет запрос и декодирует JSON ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, op, method, path string, in, out interface{}) (err error) {
	started := time.Now()
	defer func() {
		if c.observer == nil {
			return
		}
		result := resultSuccess
		if err != nil {
			result = resultFailure
		}
		c.observer.ObserveHotelAPI(op, result, time.Since(started))
	}()

	var body io.Reader
	if in != nil {
		payload, mErr := json.Marshal(in)
		if mErr != nil {
			return fmt.Errorf("%w: %s - failed to encode request: %v", ErrInternal, op, mErr)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, op, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds, ok := CredentialsFromContext(ctx); ok {
		if creds.BearerToken != "" {
			req.Header.Set("Authorization", "Bearer "+creds.BearerToken)
		}
		if creds.Cookie != "" {
			req.Header.Set("Cookie", creds.Cookie)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("hotelapi %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %s - failed to execute request: %v", ErrInternal, op, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.Warn("hotelapi %s %s - unauthorized (status=%d)", method, path, resp.StatusCode)
		return fmt.Errorf("%w: %s - status %d", ErrUnauthorized, op, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		c.log.Warn("hotelapi %s %s - not found", method, path)
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("hotelapi %s %s - unexpected status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrInvalidResponse, op, resp.StatusCode, string(raw))
	}

	if out == nil {
		// Ответ не нужен, но дочитываем тело, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, op, err)
	}

	c.log.Info("hotelapi %s %s - ok (%s)", method, path, time.Since(started))
	return nil
}
