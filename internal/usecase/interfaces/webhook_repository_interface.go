package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IWebhookEventRepository abstracts DynamoDB persistence for WebhookEvent.
//
// Create must be durable before the HTTP ack is sent; MarkProcessed is the
// only mutation after insert.

type IWebhookEventRepository interface {
	Create(ctx context.Context, e entities.WebhookEvent) (entities.WebhookEvent, error)
	GetByID(ctx context.Context, id string) (entities.WebhookEvent, error)
	MarkProcessed(ctx context.Context, id string, processingErr string) error
	ListUnprocessed(ctx context.Context) ([]entities.WebhookEvent, error)
}
