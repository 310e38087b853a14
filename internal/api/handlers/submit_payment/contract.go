package submit_payment

import (
	"context"

	paymentUseCase "github.com/m04kA/SMC-ProfileService/internal/usecase/submit_payment"
)

type SubmitPaymentUseCase interface {
	Execute(ctx context.Context, req *paymentUseCase.Request) (*paymentUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
