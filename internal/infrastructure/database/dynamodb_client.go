package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ocorrencias_api/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const describeTimeout = 5 * time.Second

// ConnectDynamoDB creates a DynamoDB client. A non-empty Endpoint points the
// client at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(cfg config.DynamoDB) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	log.Printf("[database] dynamodb client region=%s local=%t", cfg.Region, cfg.Endpoint != "")
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}

// NewDynamoDBConfig uses static credentials when both keys are set and the
// default AWS chain (env, shared profile, task role) otherwise. DynamoDB
// Local ignores credentials but the SDK still requires some.
func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDB) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	case cfg.Endpoint != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", "")))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// VerifyTables checks that every table exists. Missing tables are reported
// together so a fresh environment can be fixed in one pass.
func VerifyTables(ctx context.Context, ddb *dynamodb.Client, tables []string) error {
	var missing []string
	for _, name := range tables {
		dctx, cancel := context.WithTimeout(ctx, describeTimeout)
		_, err := ddb.DescribeTable(dctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		cancel()
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			missing = append(missing, name)
			continue
		}
		return fmt.Errorf("describe table %s: %w", name, err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing dynamodb tables: %v", missing)
	}
	return nil
}
