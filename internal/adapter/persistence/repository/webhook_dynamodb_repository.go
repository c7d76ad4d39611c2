package repository

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookTableName = "webhook_events"
	webhookProcessadoIndex  = "processado-index"
)

// processado is stored as "0"/"1" so it can key a GSI (DynamoDB cannot index
// booleans).
type webhookItem struct {
	ID          string `dynamodbav:"id"`
	TipoEvento  string `dynamodbav:"tipo_evento"`
	NossoNumero string `dynamodbav:"nosso_numero"`
	SeuNumero   string `dynamodbav:"seu_numero,omitempty"`

	Payload       string   `dynamodbav:"payload"`
	ValorPago     *float64 `dynamodbav:"valor_pago,omitempty"`
	DataPagamento string   `dynamodbav:"data_pagamento,omitempty"`
	DataCredito   string   `dynamodbav:"data_credito,omitempty"`

	Processado        string `dynamodbav:"processado"`
	ProcessadoEm      string `dynamodbav:"processado_em,omitempty"`
	ErroProcessamento string `dynamodbav:"erro_processamento,omitempty"`

	HTTPStatus int               `dynamodbav:"http_status"`
	OrigemIP   string            `dynamodbav:"origem_ip,omitempty"`
	Headers    map[string]string `dynamodbav:"headers,omitempty"`

	RecebidoEm string `dynamodbav:"recebido_em"`
}

// WebhookDynamoRepository persists inbound bank notifications.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: processado-index (PK: processado, SK: recebido_em)

type WebhookDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookDynamoRepository)(nil)

func NewWebhookDynamoRepository(ddb *dynamodb.Client) *WebhookDynamoRepository {
	return &WebhookDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookTableName),
	}
}

func (r *WebhookDynamoRepository) Create(ctx context.Context, e entities.WebhookEvent) (entities.WebhookEvent, error) {
	av, err := attributevalue.MarshalMap(toWebhookItem(e))
	if err != nil {
		return entities.WebhookEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WebhookEvent{}, err
	}
	return e, nil
}

func (r *WebhookDynamoRepository) GetByID(ctx context.Context, id string) (entities.WebhookEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.WebhookEvent{}, nil
	}

	var it webhookItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookEvent{}, err
	}
	return fromWebhookItem(it), nil
}

func (r *WebhookDynamoRepository) MarkProcessed(ctx context.Context, id string, processingErr string) error {
	now := formatTime(time.Now())
	expr := "SET #processado = :processado, #processado_em = :processado_em"
	vals := map[string]types.AttributeValue{
		":processado":    &types.AttributeValueMemberS{Value: "1"},
		":processado_em": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#processado":    "processado",
		"#processado_em": "processado_em",
	}
	if processingErr != "" {
		expr += ", #erro = :erro"
		vals[":erro"] = &types.AttributeValueMemberS{Value: processingErr}
		names["#erro"] = "erro_processamento"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	return err
}

func (r *WebhookDynamoRepository) ListUnprocessed(ctx context.Context) ([]entities.WebhookEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookProcessadoIndex),
		KeyConditionExpression: aws.String("processado = :p"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: "0"},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WebhookEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it webhookItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWebhookItem(it))
	}
	return items, nil
}

func toWebhookItem(e entities.WebhookEvent) webhookItem {
	processado := "0"
	if e.Processado {
		processado = "1"
	}
	return webhookItem{
		ID:                e.ID,
		TipoEvento:        string(e.TipoEvento),
		NossoNumero:       e.NossoNumero,
		SeuNumero:         e.SeuNumero,
		Payload:           string(e.Payload),
		ValorPago:         e.ValorPago,
		DataPagamento:     formatTimePtr(e.DataPagamento),
		DataCredito:       formatTimePtr(e.DataCredito),
		Processado:        processado,
		ProcessadoEm:      formatTimePtr(e.ProcessadoEm),
		ErroProcessamento: e.ErroProcessamento,
		HTTPStatus:        e.HTTPStatus,
		OrigemIP:          e.OrigemIP,
		Headers:           e.Headers,
		RecebidoEm:        formatTime(e.RecebidoEm),
	}
}

func fromWebhookItem(it webhookItem) entities.WebhookEvent {
	e := entities.WebhookEvent{
		ID:                it.ID,
		TipoEvento:        entities.TipoEvento(it.TipoEvento),
		NossoNumero:       it.NossoNumero,
		SeuNumero:         it.SeuNumero,
		ValorPago:         it.ValorPago,
		DataPagamento:     parseTimePtr(it.DataPagamento),
		DataCredito:       parseTimePtr(it.DataCredito),
		Processado:        it.Processado == "1",
		ProcessadoEm:      parseTimePtr(it.ProcessadoEm),
		ErroProcessamento: it.ErroProcessamento,
		HTTPStatus:        it.HTTPStatus,
		OrigemIP:          it.OrigemIP,
		Headers:           it.Headers,
		RecebidoEm:        parseTime(it.RecebidoEm),
	}
	if it.Payload != "" {
		e.Payload = []byte(it.Payload)
	}
	return e
}
