package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IBillingConfigRepository abstracts persistence for beneficiary/bank-account
// contracts. UpdateToken persists the cached bearer token after a refresh.

type IBillingConfigRepository interface {
	Create(ctx context.Context, c entities.BillingConfiguration) (entities.BillingConfiguration, error)
	GetByID(ctx context.Context, id string) (entities.BillingConfiguration, error)
	GetAtiva(ctx context.Context) (entities.BillingConfiguration, error)
	UpdateToken(ctx context.Context, id, accessToken string, expiraEm int64) error
}
