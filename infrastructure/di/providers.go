package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"beacon-backend/application/operations"
	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/infrastructure/authority"
	"beacon-backend/infrastructure/config"
	"beacon-backend/infrastructure/messaging/eventbridge"
	"beacon-backend/infrastructure/persistence/dynamodb"
	"beacon-backend/pkg/auth"
	"beacon-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the metrics sink. When metrics are disabled the
// sink is nil and every count is a no-op.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(cfg.MetricsNamespace, client, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.UserRepository {
	return dynamodb.NewUserRepository(client, cfg.DynamoDBTable, cfg.IndexName, logger)
}

// ProvideApplicationRepository creates an application repository
func ProvideApplicationRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ApplicationRepository {
	return dynamodb.NewApplicationRepository(client, cfg.DynamoDBTable, cfg.IndexName, logger)
}

// ProvideFollowerRepository creates a follower repository
func ProvideFollowerRepository(client *awsdynamodb.Client, userRepo ports.UserRepository, cfg *config.Config, logger *zap.Logger) ports.FollowerRepository {
	return dynamodb.NewFollowerRepository(client, cfg.DynamoDBTable, cfg.IndexName, userRepo, logger)
}

// ProvideMessageRepository creates a message repository
func ProvideMessageRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.MessageRepository {
	return dynamodb.NewMessageRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideInboxRepository creates an inbox repository
func ProvideInboxRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.InboxRepository {
	return dynamodb.NewInboxRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideActivityRepository creates an activity repository
func ProvideActivityRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ActivityRepository {
	return dynamodb.NewActivityRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideMediaRepository creates a media repository
func ProvideMediaRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.MediaRepository {
	return dynamodb.NewMediaRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates an event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideTokenService creates the local token service
func ProvideTokenService(cfg *config.Config) (*auth.TokenService, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		// Development fallback; production config requires a real secret.
		secret = "beacon-development-secret"
	}
	return auth.NewTokenService(auth.TokenServiceConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		TTL:       cfg.TokenTTL,
	})
}

// ProvideTokenIssuer creates the token issuer
func ProvideTokenIssuer(tokens *auth.TokenService, logger *zap.Logger) (ports.TokenIssuer, error) {
	return authority.NewLocalAuthority(tokens, logger)
}

// ProvideTokenVerifier creates the token verifier. A configured authority
// endpoint routes verification to the remote authority; otherwise tokens
// are checked locally. Either way the verifier is wrapped so every
// verification outcome is counted.
func ProvideTokenVerifier(tokens *auth.TokenService, cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) (ports.TokenVerifier, error) {
	var (
		verifier ports.TokenVerifier
		err      error
	)
	if cfg.AuthorityEndpoint != "" {
		verifier, err = authority.NewRemoteVerifier(cfg.AuthorityEndpoint, logger)
	} else {
		verifier, err = authority.NewLocalAuthority(tokens, logger)
	}
	if err != nil {
		return nil, err
	}
	return authority.NewMeteredVerifier(verifier, metrics)
}

// ProvideOperations assembles every operation into the dispatching service
func ProvideOperations(
	userRepo ports.UserRepository,
	appRepo ports.ApplicationRepository,
	followerRepo ports.FollowerRepository,
	messageRepo ports.MessageRepository,
	inboxRepo ports.InboxRepository,
	activityRepo ports.ActivityRepository,
	mediaRepo ports.MediaRepository,
	publisher ports.EventPublisher,
	issuer ports.TokenIssuer,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *operations.Service {
	return operations.NewService(
		&operations.GetAPIVersionOperation{},
		operations.NewSignInOperation(userRepo, issuer, logger),
		operations.NewSignUpOperation(userRepo, issuer, logger),
		operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, logger),
		operations.NewRegenerateApplicationTokenOperation(appRepo, activityRepo, logger),
		operations.NewDeleteApplicationOperation(activityRepo, appRepo, followerRepo, mediaRepo, messageRepo, publisher, metrics, logger),
		operations.NewSendMessageOperation(appRepo, messageRepo, followerRepo, inboxRepo, publisher, metrics, logger),
		operations.NewDismissMessageOperation(inboxRepo, publisher, metrics, logger),
		operations.NewFollowApplicationOperation(appRepo, followerRepo, activityRepo, logger),
		operations.NewUnfollowApplicationOperation(followerRepo, logger),
		operations.NewGetActivityOperation(activityRepo, logger),
		operations.NewGetApplicationInfoOperation(appRepo, logger),
		operations.NewGetDashboardOperation(inboxRepo, appRepo, followerRepo, logger),
		operations.NewGetInboxOperation(inboxRepo, logger),
		operations.NewGetFullMessageOperation(messageRepo, logger),
		operations.NewGetMediaOperation(mediaRepo, logger),
		operations.NewGetMyApplicationsOperation(appRepo, logger),
		operations.NewGetUserInfoOperation(userRepo, logger),
		operations.NewSearchForApplicationsOperation(appRepo, cfg.SearchResultCap, logger),
	)
}

// ProvideNotificationService fronts the operations with authentication
func ProvideNotificationService(ops *operations.Service, verifier ports.TokenVerifier) (service.NotificationService, error) {
	return service.NewAuthenticationLayer(ops, verifier)
}

// ProvideIPRateLimiter creates the per-IP request limiter
func ProvideIPRateLimiter(cfg *config.Config) *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(cfg.RateLimitPerMin)
}
