package confirm_bookings

import (
	"context"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings/models"
)

type BookingService interface {
	ConfirmMany(ctx context.Context, ids []string, actor domain.Actor) (*models.ConfirmManyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
