package repository

import (
	"context"
	"sort"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProvidersTableName = "providers"
	defaultClientsTableName   = "clients"
	nameIndex                 = "nome-index"

	providerSequenceName = "providers"
)

type providerItem struct {
	ID                 int64   `dynamodbav:"id"`
	Nome               string  `dynamodbav:"nome"`
	Telefone           string  `dynamodbav:"telefone,omitempty"`
	Email              string  `dynamodbav:"email,omitempty"`
	Aprovado           bool    `dynamodbav:"aprovado"`
	CriadoEm           string  `dynamodbav:"criado_em"`
	ValorAcionamento   float64 `dynamodbav:"valor_acionamento"`
	ValorHoraAdicional float64 `dynamodbav:"valor_hora_adicional"`
	ValorKmAdicional   float64 `dynamodbav:"valor_km_adicional"`
	FranquiaHoras      float64 `dynamodbav:"franquia_horas"`
	FranquiaKm         float64 `dynamodbav:"franquia_km"`
}

type clientItem struct {
	ID       int64  `dynamodbav:"id"`
	Nome     string `dynamodbav:"nome"`
	CNPJ     string `dynamodbav:"cnpj"`
	CriadoEm string `dynamodbav:"criado_em"`
}

// ProviderDynamoRepository persists Provider entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: nome-index (PK: nome)
type ProviderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ids       sequence
}

var _ interfaces.IProviderRepository = (*ProviderDynamoRepository)(nil)

func NewProviderDynamoRepository(ddb *dynamodb.Client) *ProviderDynamoRepository {
	return &ProviderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
		ids:       newSequence(ddb, providerSequenceName),
	}
}

func (r *ProviderDynamoRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	id, err := r.ids.next(ctx)
	if err != nil {
		return entities.Provider{}, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toProviderItem(p))
	if err != nil {
		return entities.Provider{}, err
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
		return entities.Provider{}, err
	}
	return p, nil
}

func (r *ProviderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Provider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func (r *ProviderDynamoRepository) GetByName(ctx context.Context, name string) (entities.Provider, error) {
	raw, err := queryByName(ctx, r.ddb, r.tableName, name)
	if err != nil || raw == nil {
		return entities.Provider{}, err
	}
	var it providerItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func (r *ProviderDynamoRepository) List(ctx context.Context) ([]entities.Provider, error) {
	var out []entities.Provider
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it providerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromProviderItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

// ClientDynamoRepository is the read side of the clients table.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: nome-index (PK: nome)
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByName(ctx context.Context, name string) (entities.Client, error) {
	raw, err := queryByName(ctx, r.ddb, r.tableName, name)
	if err != nil || raw == nil {
		return entities.Client{}, err
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func queryByName(ctx context.Context, ddb *dynamodb.Client, table, name string) (map[string]types.AttributeValue, error) {
	if name == "" {
		return nil, nil
	}
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(nameIndex),
		KeyConditionExpression:   aws.String("#nome = :nome"),
		ExpressionAttributeNames: map[string]string{"#nome": "nome"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	return out.Items[0], nil
}

func toProviderItem(p entities.Provider) providerItem {
	return providerItem{
		ID:                 p.ID,
		Nome:               p.Nome,
		Telefone:           p.Telefone,
		Email:              p.Email,
		Aprovado:           p.Aprovado,
		CriadoEm:           formatTime(p.CriadoEm),
		ValorAcionamento:   p.ValorAcionamento,
		ValorHoraAdicional: p.ValorHoraAdicional,
		ValorKmAdicional:   p.ValorKmAdicional,
		FranquiaHoras:      p.FranquiaHoras,
		FranquiaKm:         p.FranquiaKm,
	}
}

func fromProviderItem(it providerItem) entities.Provider {
	return entities.Provider{
		ID:                 it.ID,
		Nome:               it.Nome,
		Telefone:           it.Telefone,
		Email:              it.Email,
		Aprovado:           it.Aprovado,
		CriadoEm:           parseTime(it.CriadoEm),
		ValorAcionamento:   it.ValorAcionamento,
		ValorHoraAdicional: it.ValorHoraAdicional,
		ValorKmAdicional:   it.ValorKmAdicional,
		FranquiaHoras:      it.FranquiaHoras,
		FranquiaKm:         it.FranquiaKm,
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:       it.ID,
		Nome:     it.Nome,
		CNPJ:     it.CNPJ,
		CriadoEm: parseTime(it.CriadoEm),
	}
}
