package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"order_confirmation/internal/infrastructure/logger"
)

// ConnectDynamoDB creates a DynamoDB client from an already loaded AWS config.
//
// Supported env vars:
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(cfg aws.Config) *dynamodb.Client {
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewAWSConfigFromEnv loads the AWS config shared by the DynamoDB and SNS clients.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
//   - DYNAMODB_ENDPOINT / SNS_ENDPOINT
//
// When a local endpoint is configured, static credentials are used (default "local"),
// since emulators do not validate them but the SDK requires some.
// Otherwise the default credential chain applies.
func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if usesLocalEndpoints() {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
		logger.Named("aws.config").Info("using local endpoints with static credentials",
			zap.String("region", region),
			zap.String("dynamodb_endpoint", os.Getenv("DYNAMODB_ENDPOINT")),
			zap.String("sns_endpoint", os.Getenv("SNS_ENDPOINT")),
		)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func usesLocalEndpoints() bool {
	return os.Getenv("DYNAMODB_ENDPOINT") != "" || os.Getenv("SNS_ENDPOINT") != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
