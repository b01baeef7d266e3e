// Package telegram delivers message bodies through the Telegram Bot API.
package telegram

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/slovoapp/slovo-server/internal/errors"
)

const defaultBaseURL = "https://api.telegram.org"

// parseModeHTML is the only markup mode the composer emits.
const parseModeHTML = "HTML"

// Client sends messages to one Telegram chat.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	token       string
	chatID      string
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Bot API base URL. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// NewClient creates a Telegram client for one bot and destination chat.
// Sends are rate limited to one message per second, the Bot API per-chat
// guidance.
func NewClient(token, chatID string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
		baseURL:     defaultBaseURL,
		token:       token,
		chatID:      chatID,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sendMessageRequest is the sendMessage call payload.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// apiResponse is the Bot API envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// SendMessage delivers one HTML-formatted message body to the configured
// chat. Both outcomes are terminal for the caller: failures are returned,
// never retried here.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "rate limit")
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: parseModeHTML,
	})
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode sendMessage payload")
	}

	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, strings.NewReader(string(payload)))
	if err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "send message")
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.UnmarshalRead(resp.Body, &apiResp); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "parse sendMessage response")
	}

	if !apiResp.OK {
		return errors.Unavailablef("sendMessage rejected: %d %s", apiResp.ErrorCode, apiResp.Description)
	}

	c.logger.Info("message delivered", "chat_id", c.chatID, "chars", len(text))

	return nil
}
