//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"beacon-backend/application/service"
	"beacon-backend/infrastructure/config"
	"beacon-backend/pkg/auth"
	"beacon-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Service     service.NotificationService
	Metrics     *observability.Metrics
	RateLimiter *auth.IPRateLimiter
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideUserRepository,
	ProvideApplicationRepository,
	ProvideFollowerRepository,
	ProvideMessageRepository,
	ProvideInboxRepository,
	ProvideActivityRepository,
	ProvideMediaRepository,
	ProvideEventPublisher,
	ProvideTokenService,
	ProvideTokenIssuer,
	ProvideTokenVerifier,
	ProvideOperations,
	ProvideNotificationService,
	ProvideIPRateLimiter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
