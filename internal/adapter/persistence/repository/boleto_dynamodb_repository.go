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
	defaultBoletosTableName = "boletos"
	boletosNossoNumeroIndex = "nosso_numero-index"
	boletosStatusIndex      = "status-index"
)

type descontoItem struct {
	DataLimite string  `dynamodbav:"data_limite"`
	Percentual float64 `dynamodbav:"percentual"`
}

type rateioItem struct {
	Documento  string  `dynamodbav:"documento"`
	Percentual float64 `dynamodbav:"percentual"`
	Valor      float64 `dynamodbav:"valor"`
}

type boletoItem struct {
	ID          string `dynamodbav:"id"`
	ConfigID    string `dynamodbav:"config_id"`
	PagadorID   string `dynamodbav:"pagador_id"`
	NossoNumero string `dynamodbav:"nosso_numero,omitempty"`
	SeuNumero   string `dynamodbav:"seu_numero"`
	Status      string `dynamodbav:"status"`

	ValorNominal    float64  `dynamodbav:"valor_nominal"`
	ValorAbatimento float64  `dynamodbav:"valor_abatimento"`
	ValorJuros      float64  `dynamodbav:"valor_juros"`
	ValorMulta      float64  `dynamodbav:"valor_multa"`
	ValorDesconto   float64  `dynamodbav:"valor_desconto"`
	ValorPago       *float64 `dynamodbav:"valor_pago,omitempty"`

	DataEmissao    string `dynamodbav:"data_emissao"`
	DataVencimento string `dynamodbav:"data_vencimento"`
	DataPagamento  string `dynamodbav:"data_pagamento,omitempty"`

	EspecieDocumento string   `dynamodbav:"especie_documento"`
	Aceite           bool     `dynamodbav:"aceite"`
	Instrucoes       []string `dynamodbav:"instrucoes,omitempty"`

	JurosPercentualDia float64        `dynamodbav:"juros_percentual_dia"`
	MultaPercentual    float64        `dynamodbav:"multa_percentual"`
	Descontos          []descontoItem `dynamodbav:"descontos,omitempty"`

	ProtestoAutomatico      bool         `dynamodbav:"protesto_automatico"`
	ProtestoDias            int          `dynamodbav:"protesto_dias"`
	BaixaAutomatica         bool         `dynamodbav:"baixa_automatica"`
	BaixaDias               int          `dynamodbav:"baixa_dias"`
	PermitePagamentoParcial bool         `dynamodbav:"permite_pagamento_parcial"`
	Rateio                  []rateioItem `dynamodbav:"rateio,omitempty"`

	CodigoBarras   string `dynamodbav:"codigo_barras,omitempty"`
	LinhaDigitavel string `dynamodbav:"linha_digitavel,omitempty"`

	RequestPayload  string `dynamodbav:"request_payload,omitempty"`
	ResponsePayload string `dynamodbav:"response_payload,omitempty"`

	Registrado             bool `dynamodbav:"registrado"`
	AvisoVencimentoEnviado bool `dynamodbav:"aviso_vencimento_enviado"`
	AvisoAtrasoEnviado     bool `dynamodbav:"aviso_atraso_enviado"`
	ProtestoSolicitado     bool `dynamodbav:"protesto_solicitado"`
	Baixado                bool `dynamodbav:"baixado"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BoletoDynamoRepository persists Boleto entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: nosso_numero-index (PK: nosso_numero)
//   - GSI: status-index (PK: status)

type BoletoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBoletoRepository = (*BoletoDynamoRepository)(nil)

func NewBoletoDynamoRepository(ddb *dynamodb.Client) *BoletoDynamoRepository {
	return &BoletoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOLETOS_TABLE", defaultBoletosTableName),
	}
}

func (r *BoletoDynamoRepository) Create(ctx context.Context, b entities.Boleto) (entities.Boleto, error) {
	av, err := attributevalue.MarshalMap(toBoletoItem(b))
	if err != nil {
		return entities.Boleto{}, err
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
		return entities.Boleto{}, err
	}
	return b, nil
}

func (r *BoletoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Boleto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it), nil
}

func (r *BoletoDynamoRepository) GetByNossoNumero(ctx context.Context, nossoNumero string) (entities.Boleto, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(boletosNossoNumeroIndex),
		KeyConditionExpression: aws.String("nosso_numero = :nn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nn": &types.AttributeValueMemberS{Value: nossoNumero},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	if len(out.Items) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it), nil
}

// Update overwrites the full item. Boletos are single-writer per request in
// practice; the existence condition keeps a concurrent delete (which never
// happens in this domain) from resurrecting a row.
func (r *BoletoDynamoRepository) Update(ctx context.Context, b entities.Boleto) (entities.Boleto, error) {
	av, err := attributevalue.MarshalMap(toBoletoItem(b))
	if err != nil {
		return entities.Boleto{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	return b, nil
}

func (r *BoletoDynamoRepository) ListByStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(boletosStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Boleto, 0, len(out.Items))
	for _, raw := range out.Items {
		var it boletoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBoletoItem(it))
	}
	return items, nil
}

func toBoletoItem(b entities.Boleto) boletoItem {
	it := boletoItem{
		ID:          b.ID,
		ConfigID:    b.ConfigID,
		PagadorID:   b.PagadorID,
		NossoNumero: b.NossoNumero,
		SeuNumero:   b.SeuNumero,
		Status:      string(b.Status),

		ValorNominal:    b.ValorNominal,
		ValorAbatimento: b.ValorAbatimento,
		ValorJuros:      b.ValorJuros,
		ValorMulta:      b.ValorMulta,
		ValorDesconto:   b.ValorDesconto,
		ValorPago:       b.ValorPago,

		DataEmissao:    formatTime(b.DataEmissao),
		DataVencimento: formatTime(b.DataVencimento),
		DataPagamento:  formatTimePtr(b.DataPagamento),

		EspecieDocumento: string(b.EspecieDocumento),
		Aceite:           b.Aceite,
		Instrucoes:       b.Instrucoes,

		JurosPercentualDia: b.JurosPercentualDia,
		MultaPercentual:    b.MultaPercentual,

		ProtestoAutomatico:      b.ProtestoAutomatico,
		ProtestoDias:            b.ProtestoDias,
		BaixaAutomatica:         b.BaixaAutomatica,
		BaixaDias:               b.BaixaDias,
		PermitePagamentoParcial: b.PermitePagamentoParcial,

		CodigoBarras:   b.CodigoBarras,
		LinhaDigitavel: b.LinhaDigitavel,

		RequestPayload:  string(b.RequestPayload),
		ResponsePayload: string(b.ResponsePayload),

		Registrado:             b.Registrado,
		AvisoVencimentoEnviado: b.AvisoVencimentoEnviado,
		AvisoAtrasoEnviado:     b.AvisoAtrasoEnviado,
		ProtestoSolicitado:     b.ProtestoSolicitado,
		Baixado:                b.Baixado,

		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
	for _, d := range b.Descontos {
		it.Descontos = append(it.Descontos, descontoItem{DataLimite: formatTime(d.DataLimite), Percentual: d.Percentual})
	}
	for _, rr := range b.Rateio {
		it.Rateio = append(it.Rateio, rateioItem{Documento: rr.Documento, Percentual: rr.Percentual, Valor: rr.Valor})
	}
	return it
}

func fromBoletoItem(it boletoItem) entities.Boleto {
	b := entities.Boleto{
		ID:          it.ID,
		ConfigID:    it.ConfigID,
		PagadorID:   it.PagadorID,
		NossoNumero: it.NossoNumero,
		SeuNumero:   it.SeuNumero,
		Status:      entities.BoletoStatus(it.Status),

		ValorNominal:    it.ValorNominal,
		ValorAbatimento: it.ValorAbatimento,
		ValorJuros:      it.ValorJuros,
		ValorMulta:      it.ValorMulta,
		ValorDesconto:   it.ValorDesconto,
		ValorPago:       it.ValorPago,

		DataEmissao:    parseTime(it.DataEmissao),
		DataVencimento: parseTime(it.DataVencimento),
		DataPagamento:  parseTimePtr(it.DataPagamento),

		EspecieDocumento: entities.EspecieDocumento(it.EspecieDocumento),
		Aceite:           it.Aceite,
		Instrucoes:       it.Instrucoes,

		JurosPercentualDia: it.JurosPercentualDia,
		MultaPercentual:    it.MultaPercentual,

		ProtestoAutomatico:      it.ProtestoAutomatico,
		ProtestoDias:            it.ProtestoDias,
		BaixaAutomatica:         it.BaixaAutomatica,
		BaixaDias:               it.BaixaDias,
		PermitePagamentoParcial: it.PermitePagamentoParcial,

		CodigoBarras:   it.CodigoBarras,
		LinhaDigitavel: it.LinhaDigitavel,

		Registrado:             it.Registrado,
		AvisoVencimentoEnviado: it.AvisoVencimentoEnviado,
		AvisoAtrasoEnviado:     it.AvisoAtrasoEnviado,
		ProtestoSolicitado:     it.ProtestoSolicitado,
		Baixado:                it.Baixado,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.RequestPayload != "" {
		b.RequestPayload = []byte(it.RequestPayload)
	}
	if it.ResponsePayload != "" {
		b.ResponsePayload = []byte(it.ResponsePayload)
	}
	for _, d := range it.Descontos {
		b.Descontos = append(b.Descontos, entities.Desconto{DataLimite: parseTime(d.DataLimite), Percentual: d.Percentual})
	}
	for _, rr := range it.Rateio {
		b.Rateio = append(b.Rateio, entities.RateioCredito{Documento: rr.Documento, Percentual: rr.Percentual, Valor: rr.Valor})
	}
	return b
}
