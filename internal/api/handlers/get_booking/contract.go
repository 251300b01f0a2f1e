package get_booking

import (
	"context"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
