package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const parseModeHTML = "HTML"

// Client клиент Telegram Bot API для отправки уведомлений администраторам
type Client struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента Bot API
func NewClient(baseURL, token, chatID string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name имя канала доставки (для логов и метрик)
func (c *Client) Name() string {
	return "telegram"
}

// Send отправляет сообщение в чат администраторов (HTML-разметка)
func (c *Client) Send(ctx context.Context, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                c.chatID,
		Text:                  text,
		ParseMode:             parseModeHTML,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// токен входит в URL, поэтому в ошибку попадает только описание без адреса
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, unwrapURLError(err))
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return fmt.Errorf("%w: status %d, failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, result.Description)
	}

	return nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
