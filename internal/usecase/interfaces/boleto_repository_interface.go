package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IBoletoRepository abstracts DynamoDB persistence for Boleto.
//
// Boletos are never physically deleted; terminal states keep the row for
// audit. Update persists the full entity delta produced by the use cases.

type IBoletoRepository interface {
	Create(ctx context.Context, b entities.Boleto) (entities.Boleto, error)
	GetByID(ctx context.Context, id string) (entities.Boleto, error)
	GetByNossoNumero(ctx context.Context, nossoNumero string) (entities.Boleto, error)
	Update(ctx context.Context, b entities.Boleto) (entities.Boleto, error)
	ListByStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error)
}
