package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/event-manager/backend/internal/config"
	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/storage/models"
)

const defaultAPIBase = "https://api.telegram.org/bot"

// TelegramNotifier sends notifications as Telegram bot messages.
// Credentials are read from the settings store on every send, falling back
// to the build-time configuration, so the user can change them at runtime
// without a restart. A missing credential pair skips the send (logged, not
// an error) and the caller proceeds as if delivery succeeded.
type TelegramNotifier struct {
	apiBase    string
	httpClient *http.Client
	settings   *storage.SettingsRepository
	fallback   config.TelegramConfig
}

// NewTelegramNotifier creates a Telegram notifier backed by the settings store.
func NewTelegramNotifier(settings *storage.SettingsRepository, fallback config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase: defaultAPIBase,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		settings: settings,
		fallback: fallback,
	}
}

// EventCreated implements Notifier.
func (n *TelegramNotifier) EventCreated(ctx context.Context, event models.Event) error {
	return n.send(ctx, formatEventCreated(event))
}

// EventReminder implements Notifier.
func (n *TelegramNotifier) EventReminder(ctx context.Context, event models.Event, timeUntil string) error {
	return n.send(ctx, formatEventReminder(event, timeUntil))
}

// EventStarting implements Notifier.
func (n *TelegramNotifier) EventStarting(ctx context.Context, event models.Event) error {
	return n.send(ctx, formatEventStarting(event))
}

// CommentAdded implements Notifier.
func (n *TelegramNotifier) CommentAdded(ctx context.Context, event models.Event) error {
	return n.send(ctx, formatCommentAdded(event))
}

// credentials resolves the bot token and chat ID, preferring stored settings
// over the build-time fallback.
func (n *TelegramNotifier) credentials(ctx context.Context) (token, chatID string, err error) {
	token, err = n.settings.Get(ctx, storage.SettingTelegramBotToken)
	if err != nil {
		return "", "", err
	}
	chatID, err = n.settings.Get(ctx, storage.SettingTelegramChatID)
	if err != nil {
		return "", "", err
	}

	if token == "" {
		token = n.fallback.BotToken
	}
	if chatID == "" {
		chatID = n.fallback.ChatID
	}

	return token, chatID, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	token, chatID, err := n.credentials(ctx)
	if err != nil {
		return fmt.Errorf("reading notification credentials: %w", err)
	}

	if token == "" || chatID == "" {
		log.Println("Telegram notifications are not configured, skipping")
		return nil
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	url := n.apiBase + token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	// Only the status matters; the response body is not parsed.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}
