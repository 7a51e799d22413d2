package assistant_chat

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/concierge"
)

type ConciergeService interface {
	Chat(ctx context.Context, req *concierge.ChatRequest) (*concierge.ChatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
