package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
	"github.com/slovoapp/slovo-server/internal/validation"
)

type TestSettings struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN" validate:"required"`
	ChatID   string `env:"TELEGRAM_CHAT_ID" validate:"required"`
	SheetGID string `env:"GOOGLE_SHEET_GID" validate:"numeric"`
	Env      string `env:"ENV" validate:"oneof=development staging production"`
}

func validSettings() TestSettings {
	return TestSettings{
		BotToken: "123456:token",
		ChatID:   "@channel",
		SheetGID: "0",
		Env:      "development",
	}
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(validSettings()))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		mutate     func(*TestSettings)
		wantErrMsg string
	}{
		{
			name:       "missing bot token",
			mutate:     func(s *TestSettings) { s.BotToken = "" },
			wantErrMsg: "TELEGRAM_BOT_TOKEN is required",
		},
		{
			name:       "missing chat id",
			mutate:     func(s *TestSettings) { s.ChatID = "" },
			wantErrMsg: "TELEGRAM_CHAT_ID is required",
		},
		{
			name:       "non-numeric gid",
			mutate:     func(s *TestSettings) { s.SheetGID = "abc" },
			wantErrMsg: "GOOGLE_SHEET_GID must be numeric",
		},
		{
			name:       "unknown environment",
			mutate:     func(s *TestSettings) { s.Env = "prod" },
			wantErrMsg: "ENV must be one of: development staging production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := v.Validate(s)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}

func TestValidator_CollectsAllFieldErrors(t *testing.T) {
	v := validation.New()

	err := v.Validate(TestSettings{Env: "development", SheetGID: "0"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN is required")
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID is required")
}
