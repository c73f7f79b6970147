package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса уведомлений
// Доставка best-effort: ошибки логируются вызывающим кодом и не влияют
// на статусные переходы бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send доставляет уведомление пользователю
func (c *Client) Send(ctx context.Context, notification *Notification) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Info("Notification %s delivered to user=%d (booking=%d)",
			notification.NotificationType, notification.UserID, notification.BookingID)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s",
			ErrDeliveryFailed, resp.StatusCode, string(respBody))
	}
}
