// Package transport defines the chat-transport wire types the bot consumes
// and the outbound client interface it needs: send a message and learn its
// id, edit a sent message in place, answer a button press with a notice.
package transport

import "context"

// Update is one inbound delivery from the chat transport. Exactly one of
// Message and CallbackQuery is set.
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message is a chat message, usually a command addressed to the bot.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      User   `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// CallbackQuery is an inline button press.
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// DisplayName prefers the username, falling back to the first name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

type Chat struct {
	ID int64 `json:"id"`
}

// Button and Markup are the outbound inline-keyboard wire shapes.
type Button struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type Markup struct {
	InlineKeyboard [][]Button `json:"inline_keyboard"`
}

// Client is the outbound side of the chat transport. Implementations may
// fail; callers log and move on, the in-memory state change stands.
type Client interface {
	// SendMessage posts a new message and returns its message id.
	SendMessage(ctx context.Context, chatID int64, text string, markup *Markup) (int64, error)
	// EditMessage replaces the text and keyboard of a sent message.
	EditMessage(ctx context.Context, chatID, messageID int64, text string, markup *Markup) error
	// AnswerCallback acknowledges a button press, optionally with a
	// short notice shown to the pressing user only.
	AnswerCallback(ctx context.Context, callbackID, notice string) error
}
