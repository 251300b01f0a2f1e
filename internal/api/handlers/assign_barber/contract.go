package assign_barber

import (
	"context"

	assignBarber "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
)

type AssignBarberUseCase interface {
	Execute(ctx context.Context, req *assignBarber.Request) (*assignBarber.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
