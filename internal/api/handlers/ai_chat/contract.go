package ai_chat

import (
	"context"

	"github.com/m04kA/booking-platform/internal/usecase/ai_chat"
)

type ChatUseCase interface {
	Execute(ctx context.Context, req *ai_chat.Request) (*ai_chat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
