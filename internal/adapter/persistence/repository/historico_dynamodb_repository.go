package repository

import (
	"context"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoricoTableName = "boletos_historico"
	historicoBoletoIDIndex    = "boleto_id-index"
)

type historicoItem struct {
	ID             string   `dynamodbav:"id"`
	BoletoID       string   `dynamodbav:"boleto_id"`
	StatusAnterior string   `dynamodbav:"status_anterior"`
	StatusNovo     string   `dynamodbav:"status_novo"`
	TipoMovimento  string   `dynamodbav:"tipo_movimento"`
	Detalhes       string   `dynamodbav:"detalhes,omitempty"`
	ValorAnterior  *float64 `dynamodbav:"valor_anterior,omitempty"`
	ValorNovo      *float64 `dynamodbav:"valor_novo,omitempty"`
	Origem         string   `dynamodbav:"origem"`
	Autor          string   `dynamodbav:"autor"`
	IP             string   `dynamodbav:"ip,omitempty"`
	UserAgent      string   `dynamodbav:"user_agent,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
}

// HistoricoDynamoRepository persists the append-only audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: boleto_id-index (PK: boleto_id, SK: created_at)
//
// There is intentionally no update or delete path.

type HistoricoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoricoRepository = (*HistoricoDynamoRepository)(nil)

func NewHistoricoDynamoRepository(ddb *dynamodb.Client) *HistoricoDynamoRepository {
	return &HistoricoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORICO_TABLE", defaultHistoricoTableName),
	}
}

func (r *HistoricoDynamoRepository) Append(ctx context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
	av, err := attributevalue.MarshalMap(toHistoricoItem(h))
	if err != nil {
		return entities.HistoricoBoleto{}, err
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
		return entities.HistoricoBoleto{}, err
	}
	return h, nil
}

func (r *HistoricoDynamoRepository) ListByBoletoID(ctx context.Context, boletoID string) ([]entities.HistoricoBoleto, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historicoBoletoIDIndex),
		KeyConditionExpression: aws.String("boleto_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: boletoID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.HistoricoBoleto, 0, len(out.Items))
	for _, raw := range out.Items {
		var it historicoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromHistoricoItem(it))
	}
	return items, nil
}

func toHistoricoItem(h entities.HistoricoBoleto) historicoItem {
	return historicoItem{
		ID:             h.ID,
		BoletoID:       h.BoletoID,
		StatusAnterior: string(h.StatusAnterior),
		StatusNovo:     string(h.StatusNovo),
		TipoMovimento:  string(h.TipoMovimento),
		Detalhes:       string(h.Detalhes),
		ValorAnterior:  h.ValorAnterior,
		ValorNovo:      h.ValorNovo,
		Origem:         string(h.Origem),
		Autor:          h.Autor,
		IP:             h.IP,
		UserAgent:      h.UserAgent,
		CreatedAt:      formatTime(h.CreatedAt),
	}
}

func fromHistoricoItem(it historicoItem) entities.HistoricoBoleto {
	h := entities.HistoricoBoleto{
		ID:             it.ID,
		BoletoID:       it.BoletoID,
		StatusAnterior: entities.BoletoStatus(it.StatusAnterior),
		StatusNovo:     entities.BoletoStatus(it.StatusNovo),
		TipoMovimento:  entities.TipoMovimento(it.TipoMovimento),
		ValorAnterior:  it.ValorAnterior,
		ValorNovo:      it.ValorNovo,
		Origem:         entities.OrigemMovimento(it.Origem),
		Autor:          it.Autor,
		IP:             it.IP,
		UserAgent:      it.UserAgent,
		CreatedAt:      parseTime(it.CreatedAt),
	}
	if it.Detalhes != "" {
		h.Detalhes = []byte(it.Detalhes)
	}
	return h
}
