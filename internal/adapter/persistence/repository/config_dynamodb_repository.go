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
	defaultConfigTableName = "billing_configurations"
	configAtivoIndex       = "ativo-index"
)

type descontoPadraoItem struct {
	DiasAntes  int     `dynamodbav:"dias_antes"`
	Percentual float64 `dynamodbav:"percentual"`
}

// ativo is stored as "0"/"1" so it can key the ativo-index GSI.
type configItem struct {
	ID                    string `dynamodbav:"id"`
	BeneficiarioDocumento string `dynamodbav:"beneficiario_documento"`
	BeneficiarioNome      string `dynamodbav:"beneficiario_nome"`

	CodigoBanco      string `dynamodbav:"codigo_banco"`
	Agencia          string `dynamodbav:"agencia"`
	Conta            string `dynamodbav:"conta"`
	Carteira         string `dynamodbav:"carteira"`
	CodigoNegociacao string `dynamodbav:"codigo_negociacao"`

	ClientID      string `dynamodbav:"client_id"`
	ClientSecret  string `dynamodbav:"client_secret"`
	AccessToken   string `dynamodbav:"access_token,omitempty"`
	TokenExpiraEm int64  `dynamodbav:"token_expira_em,omitempty"`

	JurosPercentualDia float64              `dynamodbav:"juros_percentual_dia"`
	MultaPercentual    float64              `dynamodbav:"multa_percentual"`
	Descontos          []descontoPadraoItem `dynamodbav:"descontos,omitempty"`

	DiasProtesto int    `dynamodbav:"dias_protesto"`
	Ambiente     string `dynamodbav:"ambiente"`
	Ativo        string `dynamodbav:"ativo"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ConfigDynamoRepository persists beneficiary/bank-account contracts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ativo-index (PK: ativo, SK: created_at)

type ConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingConfigRepository = (*ConfigDynamoRepository)(nil)

func NewConfigDynamoRepository(ddb *dynamodb.Client) *ConfigDynamoRepository {
	return &ConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *ConfigDynamoRepository) Create(ctx context.Context, c entities.BillingConfiguration) (entities.BillingConfiguration, error) {
	av, err := attributevalue.MarshalMap(toConfigItem(c))
	if err != nil {
		return entities.BillingConfiguration{}, err
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
		return entities.BillingConfiguration{}, err
	}
	return c, nil
}

func (r *ConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingConfiguration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingConfiguration{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingConfiguration{}, nil
	}

	var it configItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingConfiguration{}, err
	}
	return fromConfigItem(it), nil
}

func (r *ConfigDynamoRepository) GetAtiva(ctx context.Context) (entities.BillingConfiguration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(configAtivoIndex),
		KeyConditionExpression: aws.String("ativo = :a"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":a": &types.AttributeValueMemberS{Value: "1"},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.BillingConfiguration{}, err
	}
	if len(out.Items) == 0 {
		return entities.BillingConfiguration{}, nil
	}

	var it configItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.BillingConfiguration{}, err
	}
	return fromConfigItem(it), nil
}

func (r *ConfigDynamoRepository) UpdateToken(ctx context.Context, id, accessToken string, expiraEm int64) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #token = :token, #expira = :expira, #updated = :updated"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#token":   "access_token",
			"#expira":  "token_expira_em",
			"#updated": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token":   &types.AttributeValueMemberS{Value: accessToken},
			":expira":  &types.AttributeValueMemberN{Value: int64ToString(expiraEm)},
			":updated": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func toConfigItem(c entities.BillingConfiguration) configItem {
	ativo := "0"
	if c.Ativo {
		ativo = "1"
	}
	descontos := make([]descontoPadraoItem, 0, len(c.Descontos))
	for _, d := range c.Descontos {
		descontos = append(descontos, descontoPadraoItem{
			DiasAntes:  d.DiasAntes,
			Percentual: d.Percentual,
		})
	}

	it := configItem{
		ID:                    c.ID,
		BeneficiarioDocumento: c.BeneficiarioDocumento,
		BeneficiarioNome:      c.BeneficiarioNome,
		CodigoBanco:           c.CodigoBanco,
		Agencia:               c.Agencia,
		Conta:                 c.Conta,
		Carteira:              c.Carteira,
		CodigoNegociacao:      c.CodigoNegociacao,
		ClientID:              c.ClientID,
		ClientSecret:          c.ClientSecret,
		AccessToken:           c.AccessToken,
		JurosPercentualDia:    c.JurosPercentualDia,
		MultaPercentual:       c.MultaPercentual,
		Descontos:             descontos,
		DiasProtesto:          c.DiasProtesto,
		Ambiente:              string(c.Ambiente),
		Ativo:                 ativo,
		CreatedAt:             formatTime(c.CreatedAt),
		UpdatedAt:             formatTime(c.UpdatedAt),
	}
	if !c.TokenExpiraEm.IsZero() {
		it.TokenExpiraEm = c.TokenExpiraEm.Unix()
	}
	return it
}

func fromConfigItem(it configItem) entities.BillingConfiguration {
	descontos := make([]entities.DescontoPadrao, 0, len(it.Descontos))
	for _, d := range it.Descontos {
		descontos = append(descontos, entities.DescontoPadrao{
			DiasAntes:  d.DiasAntes,
			Percentual: d.Percentual,
		})
	}

	c := entities.BillingConfiguration{
		ID:                    it.ID,
		BeneficiarioDocumento: it.BeneficiarioDocumento,
		BeneficiarioNome:      it.BeneficiarioNome,
		CodigoBanco:           it.CodigoBanco,
		Agencia:               it.Agencia,
		Conta:                 it.Conta,
		Carteira:              it.Carteira,
		CodigoNegociacao:      it.CodigoNegociacao,
		ClientID:              it.ClientID,
		ClientSecret:          it.ClientSecret,
		AccessToken:           it.AccessToken,
		JurosPercentualDia:    it.JurosPercentualDia,
		MultaPercentual:       it.MultaPercentual,
		Descontos:             descontos,
		DiasProtesto:          it.DiasProtesto,
		Ambiente:              entities.Ambiente(it.Ambiente),
		Ativo:                 it.Ativo == "1",
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	if it.TokenExpiraEm > 0 {
		c.TokenExpiraEm = time.Unix(it.TokenExpiraEm, 0).UTC()
	}
	return c
}
