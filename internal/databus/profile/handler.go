// Package profile consumes identity updates published by the auth platform
// and mirrors the display fields into the local profiles table.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/skillsprout/marketplace-service/internal/config"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

type profileUpdatedMessage struct {
	UUID      string `json:"uuid"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("profile.Handler")

	var msg profileUpdatedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile message: %v", err))
		return
	}

	if msg.UUID == "" {
		logger.Warn("skipping profile message without uuid")
		return
	}

	if err := h.repository.UpdateProfileIdentity(ctx, msg.UUID, msg.FullName, msg.AvatarURL); err != nil {
		logger.Error(fmt.Sprintf("failed to update profile %s: %v", msg.UUID, err))
		return
	}

	logger.Info(fmt.Sprintf("profile %s synced", msg.UUID))
}
