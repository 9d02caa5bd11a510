package messaging

import (
	"context"
	"errors"
	"os"
	"strings"

	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

var ErrSNSSenderNotConfigured = errors.New("sns sender not configured")

// SNSPublisher is the subset of *sns.Client used to text OTPs.
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ SNSPublisher = (*sns.Client)(nil)

// SNSSender delivers OTP messages as SMS through AWS SNS.
//
// With SMS_GATEWAY_MOCK enabled, messages are logged instead of published.
type SNSSender struct {
	client   SNSPublisher
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IOTPSender = (*SNSSender)(nil)

// ConnectSNS creates an SNS client from an already loaded AWS config.
//
// Supported env vars:
//   - SNS_ENDPOINT (optional; e.g. http://localstack:4566)
func ConnectSNS(cfg aws.Config) *sns.Client {
	endpoint := os.Getenv("SNS_ENDPOINT")
	return sns.NewFromConfig(cfg, func(o *sns.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewSNSSender(client SNSPublisher) *SNSSender {
	log := logger.Named("sms.gateway")
	if IsSMSGatewayMockEnabled() {
		log.Info("mock mode enabled")
		return &SNSSender{mockMode: true, log: log}
	}
	return &SNSSender{client: client, log: log}
}

func (s *SNSSender) SendOTP(ctx context.Context, phone string, message string) error {
	if s != nil && s.mockMode {
		s.log.Info("mock publish", zap.String("phone", phone), zap.String("message", message))
		return nil
	}
	if s == nil || s.client == nil {
		return ErrSNSSenderNotConfigured
	}

	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		s.log.Error("publish failed", zap.Error(err))
		return err
	}
	s.log.Debug("publish success", zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}

// IsSMSGatewayMockEnabled reports whether SMS_GATEWAY_MOCK is set to a truthy value.
func IsSMSGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SMS_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
