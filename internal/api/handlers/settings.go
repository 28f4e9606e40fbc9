package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/storage"
)

// SettingsResponse represents settings in API requests and responses.
type SettingsResponse struct {
	Language         string `json:"language"`
	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`
}

// GetSettings returns all stored settings.
func GetSettings(settings *storage.SettingsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := settings.All(r.Context())
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to query settings")
			return
		}

		response := SettingsResponse{
			Language:         all[storage.SettingLanguage],
			TelegramBotToken: all[storage.SettingTelegramBotToken],
			TelegramChatID:   all[storage.SettingTelegramChatID],
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// UpdateSettings stores the provided settings. Empty fields are left untouched.
func UpdateSettings(settings *storage.SettingsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		values := map[string]string{
			storage.SettingLanguage:         req.Language,
			storage.SettingTelegramBotToken: req.TelegramBotToken,
			storage.SettingTelegramChatID:   req.TelegramChatID,
		}

		for key, value := range values {
			if value == "" {
				continue
			}
			if err := settings.Set(r.Context(), key, value); err != nil {
				middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to update settings")
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(req)
	}
}
