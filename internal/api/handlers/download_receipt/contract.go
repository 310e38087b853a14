package download_receipt

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/usecase/export_receipt"
)

type ExportReceiptUseCase interface {
	Execute(ctx context.Context, req *export_receipt.Request) (*export_receipt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
