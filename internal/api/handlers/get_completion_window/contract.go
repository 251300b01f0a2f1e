package get_completion_window

import (
	"context"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings/models"
)

type BookingService interface {
	GetCompletionWindow(ctx context.Context, id string, actor domain.Actor) (*models.CompletionWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
