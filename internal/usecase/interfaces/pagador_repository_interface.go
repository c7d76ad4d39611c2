package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IPagadorRepository gives read access to payer records owned by the
// surrounding system.

type IPagadorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Pagador, error)
	GetByDocumento(ctx context.Context, documento string) (entities.Pagador, error)
}
