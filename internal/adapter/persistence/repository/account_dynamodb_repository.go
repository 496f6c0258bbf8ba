package repository

import (
	"context"
	"strings"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAccountsTableName = "accounts"
	accountsEmailIndex       = "email-index"
)

type accountItem struct {
	ID          int64    `dynamodbav:"id"`
	Email       string   `dynamodbav:"email"`
	Nome        string   `dynamodbav:"nome,omitempty"`
	SenhaHash   string   `dynamodbav:"senha_hash"`
	Tipo        string   `dynamodbav:"tipo"`
	PrestadorID int64    `dynamodbav:"prestador_id,omitempty"`
	ClienteID   int64    `dynamodbav:"cliente_id,omitempty"`
	Permissoes  []string `dynamodbav:"permissoes,omitempty,stringset"`
	Ativo       bool     `dynamodbav:"ativo"`
	CriadoEm    string   `dynamodbav:"criado_em"`
}

// AccountDynamoRepository resolves login accounts.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: email-index (PK: email, stored lower-cased)
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Account{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(accountsEmailIndex),
		KeyConditionExpression:   aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{"#email": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:          a.ID,
		Email:       strings.ToLower(a.Email),
		Nome:        a.Nome,
		SenhaHash:   a.SenhaHash,
		Tipo:        string(a.Tipo),
		PrestadorID: a.PrestadorID,
		ClienteID:   a.ClienteID,
		Permissoes:  a.Permissoes,
		Ativo:       a.Ativo,
		CriadoEm:    formatTime(a.CriadoEm),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		ID:          it.ID,
		Email:       it.Email,
		Nome:        it.Nome,
		SenhaHash:   it.SenhaHash,
		Tipo:        entities.IdentityKind(it.Tipo),
		PrestadorID: it.PrestadorID,
		ClienteID:   it.ClienteID,
		Permissoes:  it.Permissoes,
		Ativo:       it.Ativo,
		CriadoEm:    parseTime(it.CriadoEm),
	}
}
