package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// timeLayout is fixed-width so stored timestamps sort lexicographically.
// RFC3339Nano trims trailing zeros and does not.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t.UTC()
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func numberAV(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// sequence hands out increasing integer ids from a counters table row.
type sequence struct {
	ddb       *dynamodb.Client
	tableName string
	name      string
}

func newSequence(ddb *dynamodb.Client, name string) sequence {
	return sequence{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		name:      name,
	}
}

func (s sequence) next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: s.name},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAV(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no value", s.name)
	}
	return strconv.ParseInt(raw.Value, 10, 64)
}

// TableNames lists every table the DynamoDB repositories use, resolved from
// the environment the same way the constructors resolve them.
func TableNames() []string {
	return []string{
		getenvDefault("OCCURRENCES_TABLE", defaultOccurrencesTableName),
		getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
		getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
		getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
		getenvDefault("POSITIONS_TABLE", defaultPositionsTableName),
		getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}
