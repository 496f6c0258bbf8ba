package repository

import (
	"context"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultPositionsTableName = "positions"
	positionsOccurrenceIndex  = "ocorrencia_id-index"
)

type positionItem struct {
	PrestadorID  int64  `dynamodbav:"prestador_id"`
	RecordedKey  string `dynamodbav:"recorded_key"`
	ID           string `dynamodbav:"id"`
	OcorrenciaID int64  `dynamodbav:"ocorrencia_id,omitempty"`

	Latitude   float64  `dynamodbav:"latitude"`
	Longitude  float64  `dynamodbav:"longitude"`
	Velocidade *float64 `dynamodbav:"velocidade,omitempty"`
	Direcao    *float64 `dynamodbav:"direcao,omitempty"`
	Altitude   *float64 `dynamodbav:"altitude,omitempty"`
	Precisao   *float64 `dynamodbav:"precisao,omitempty"`
	Bateria    *float64 `dynamodbav:"bateria,omitempty"`

	Status     string `dynamodbav:"status"`
	DeviceTime string `dynamodbav:"device_time,omitempty"`
	RecordedAt string `dynamodbav:"recorded_at"`
}

// PositionDynamoRepository stores position samples.
//
// Table requirements:
//   - PK: prestador_id (number), SK: recorded_key (string)
//   - GSI: ocorrencia_id-index (PK: ocorrencia_id, SK: recorded_key)
//
// recorded_key is the fixed-width server time followed by "#" and the
// sample id, so key order is time order and same-instant samples stay
// distinct.
type PositionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPositionRepository = (*PositionDynamoRepository)(nil)

func NewPositionDynamoRepository(ddb *dynamodb.Client) *PositionDynamoRepository {
	return &PositionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POSITIONS_TABLE", defaultPositionsTableName),
	}
}

func (r *PositionDynamoRepository) Append(ctx context.Context, s entities.PositionSample) (entities.PositionSample, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toPositionItem(s))
	if err != nil {
		return entities.PositionSample{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PositionSample{}, err
	}
	return s, nil
}

func (r *PositionDynamoRepository) LatestByOccurrence(ctx context.Context, occurrenceID int64) (entities.PositionSample, error) {
	list, err := r.query(ctx, positionsOccurrenceIndex, "ocorrencia_id", occurrenceID, "", 1)
	if err != nil || len(list) == 0 {
		return entities.PositionSample{}, err
	}
	return list[0], nil
}

func (r *PositionDynamoRepository) LatestByProvider(ctx context.Context, providerID int64) (entities.PositionSample, error) {
	list, err := r.query(ctx, "", "prestador_id", providerID, "", 1)
	if err != nil || len(list) == 0 {
		return entities.PositionSample{}, err
	}
	return list[0], nil
}

func (r *PositionDynamoRepository) RecentByOccurrence(ctx context.Context, occurrenceID int64, limit int) ([]entities.PositionSample, error) {
	return r.query(ctx, positionsOccurrenceIndex, "ocorrencia_id", occurrenceID, "", limit)
}

func (r *PositionDynamoRepository) ByOccurrenceSince(ctx context.Context, occurrenceID int64, since time.Time) ([]entities.PositionSample, error) {
	return r.query(ctx, positionsOccurrenceIndex, "ocorrencia_id", occurrenceID, formatTime(since), 0)
}

// query walks a partition newest first. A non-empty since bounds the sort
// key from below; limit <= 0 means all pages.
func (r *PositionDynamoRepository) query(ctx context.Context, index, key string, id int64, since string, limit int) ([]entities.PositionSample, error) {
	cond := "#k = :k"
	values := map[string]types.AttributeValue{":k": numberAV(id)}
	if since != "" {
		cond += " AND recorded_key >= :since"
		values[":since"] = &types.AttributeValueMemberS{Value: since}
	}
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String(cond),
		ExpressionAttributeNames:  map[string]string{"#k": key},
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}
	if index != "" {
		in.IndexName = aws.String(index)
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	var out []entities.PositionSample
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it positionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromPositionItem(it))
			if limit > 0 && len(out) >= limit {
				return out, nil
			}
		}
	}
	return out, nil
}

func positionRecordedKey(recordedAt time.Time, id string) string {
	return formatTime(recordedAt) + "#" + id
}

func toPositionItem(s entities.PositionSample) positionItem {
	it := positionItem{
		PrestadorID: s.PrestadorID,
		RecordedKey: positionRecordedKey(s.RecordedAt, s.ID),
		ID:          s.ID,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Velocidade:  s.Velocidade,
		Direcao:     s.Direcao,
		Altitude:    s.Altitude,
		Precisao:    s.Precisao,
		Bateria:     s.Bateria,
		Status:      s.Status,
		DeviceTime:  formatTimePtr(s.DeviceTime),
		RecordedAt:  formatTime(s.RecordedAt),
	}
	if s.OcorrenciaID != nil {
		it.OcorrenciaID = *s.OcorrenciaID
	}
	return it
}

func fromPositionItem(it positionItem) entities.PositionSample {
	s := entities.PositionSample{
		ID:          it.ID,
		PrestadorID: it.PrestadorID,
		Latitude:    it.Latitude,
		Longitude:   it.Longitude,
		Velocidade:  it.Velocidade,
		Direcao:     it.Direcao,
		Altitude:    it.Altitude,
		Precisao:    it.Precisao,
		Bateria:     it.Bateria,
		Status:      it.Status,
		DeviceTime:  parseTimePtr(it.DeviceTime),
		RecordedAt:  parseTime(it.RecordedAt),
	}
	if s.ID == "" {
		if i := strings.LastIndex(it.RecordedKey, "#"); i >= 0 {
			s.ID = it.RecordedKey[i+1:]
		}
	}
	if it.OcorrenciaID != 0 {
		id := it.OcorrenciaID
		s.OcorrenciaID = &id
	}
	return s
}
