package create_batch_booking

import (
	"context"

	createBatchBooking "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_batch_booking"
)

type CreateBatchBookingUseCase interface {
	Execute(ctx context.Context, req *createBatchBooking.Request) (*createBatchBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
