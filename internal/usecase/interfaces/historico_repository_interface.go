package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IHistoricoRepository abstracts the append-only audit trail. There is no
// update or delete on purpose.

type IHistoricoRepository interface {
	Append(ctx context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error)
	ListByBoletoID(ctx context.Context, boletoID string) ([]entities.HistoricoBoleto, error)
}
