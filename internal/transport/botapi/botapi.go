// Package botapi implements the outbound chat transport over the bot HTTP
// API: JSON POSTs to <base>/bot<token>/<method>.
package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anfield5/tg-event-bot/internal/config"
	"github.com/anfield5/tg-event-bot/internal/transport"
)

type Client struct {
	base   string
	token  string
	client *http.Client
}

func New(cfg config.Chat) *Client {
	return &Client{
		base:   cfg.APIBase,
		token:  cfg.Token,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.base, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	if !apiResp.OK {
		return fmt.Errorf("%s rejected: %s", method, apiResp.Description)
	}

	if result != nil && apiResp.Result != nil {
		if err = json.Unmarshal(apiResp.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}

	return nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, markup *transport.Markup) (int64, error) {
	req := struct {
		ChatID    int64             `json:"chat_id"`
		Text      string            `json:"text"`
		ParseMode string            `json:"parse_mode"`
		Markup    *transport.Markup `json:"reply_markup,omitempty"`
	}{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
		Markup:    markup,
	}

	var result struct {
		MessageID int64 `json:"message_id"`
	}

	if err := c.call(ctx, "sendMessage", req, &result); err != nil {
		return 0, err
	}

	return result.MessageID, nil
}

func (c *Client) EditMessage(ctx context.Context, chatID, messageID int64, text string, markup *transport.Markup) error {
	req := struct {
		ChatID    int64             `json:"chat_id"`
		MessageID int64             `json:"message_id"`
		Text      string            `json:"text"`
		ParseMode string            `json:"parse_mode"`
		Markup    *transport.Markup `json:"reply_markup,omitempty"`
	}{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: "Markdown",
		Markup:    markup,
	}

	return c.call(ctx, "editMessageText", req, nil)
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID, notice string) error {
	req := struct {
		CallbackQueryID string `json:"callback_query_id"`
		Text            string `json:"text,omitempty"`
	}{
		CallbackQueryID: callbackID,
		Text:            notice,
	}

	return c.call(ctx, "answerCallbackQuery", req, nil)
}
