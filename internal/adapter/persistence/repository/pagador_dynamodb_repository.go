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
	defaultPagadoresTableName = "pagadores"
	pagadoresDocumentoIndex   = "documento-index"
)

type pagadorItem struct {
	ID            string `dynamodbav:"id"`
	Documento     string `dynamodbav:"documento"`
	Nome          string `dynamodbav:"nome"`
	TipoPessoa    string `dynamodbav:"tipo_pessoa"`
	Logradouro    string `dynamodbav:"logradouro"`
	Numero        string `dynamodbav:"numero"`
	Complemento   string `dynamodbav:"complemento,omitempty"`
	Bairro        string `dynamodbav:"bairro"`
	Cidade        string `dynamodbav:"cidade"`
	UF            string `dynamodbav:"uf"`
	CEP           string `dynamodbav:"cep"`
	Telefone      string `dynamodbav:"telefone,omitempty"`
	Email         string `dynamodbav:"email,omitempty"`
	CodigoInterno string `dynamodbav:"codigo_interno,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PagadorDynamoRepository reads payer records. The owning system writes
// them; the billing core never does.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: documento-index (PK: documento)

type PagadorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPagadorRepository = (*PagadorDynamoRepository)(nil)

func NewPagadorDynamoRepository(ddb *dynamodb.Client) *PagadorDynamoRepository {
	return &PagadorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGADORES_TABLE", defaultPagadoresTableName),
	}
}

func (r *PagadorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pagador, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pagador{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pagador{}, nil
	}

	var it pagadorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pagador{}, err
	}
	return fromPagadorItem(it), nil
}

func (r *PagadorDynamoRepository) GetByDocumento(ctx context.Context, documento string) (entities.Pagador, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pagadoresDocumentoIndex),
		KeyConditionExpression: aws.String("documento = :doc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":doc": &types.AttributeValueMemberS{Value: documento},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Pagador{}, err
	}
	if len(out.Items) == 0 {
		return entities.Pagador{}, nil
	}

	var it pagadorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Pagador{}, err
	}
	return fromPagadorItem(it), nil
}

func fromPagadorItem(it pagadorItem) entities.Pagador {
	return entities.Pagador{
		ID:         it.ID,
		Documento:  it.Documento,
		Nome:       it.Nome,
		TipoPessoa: entities.TipoPessoa(it.TipoPessoa),
		Endereco: entities.Endereco{
			Logradouro:  it.Logradouro,
			Numero:      it.Numero,
			Complemento: it.Complemento,
			Bairro:      it.Bairro,
			Cidade:      it.Cidade,
			UF:          it.UF,
			CEP:         it.CEP,
		},
		Telefone:      it.Telefone,
		Email:         it.Email,
		CodigoInterno: it.CodigoInterno,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
