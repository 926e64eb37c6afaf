package dynamodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
)

// FollowerRepository implements the FollowerRepository port using DynamoDB.
// Each following relation is one item keyed by application with a GSI1
// projection keyed by user, so both directions are prefix queries.
type FollowerRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	userRepo  ports.UserRepository
	logger    *zap.Logger
}

// NewFollowerRepository creates a new FollowerRepository
func NewFollowerRepository(client *dynamodb.Client, tableName, indexName string, userRepo ports.UserRepository, logger *zap.Logger) ports.FollowerRepository {
	return &FollowerRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// followingItem represents one (user, application) following relation
type followingItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	GSI1PK        string `dynamodbav:"GSI1PK"`
	GSI1SK        string `dynamodbav:"GSI1SK"`
	EntityType    string `dynamodbav:"EntityType"`
	ApplicationID string `dynamodbav:"ApplicationID"`
	UserID        string `dynamodbav:"UserID"`
	CreatedAt     string `dynamodbav:"CreatedAt"`
}

// SaveFollowing records that a user follows an application
func (r *FollowerRepository) SaveFollowing(ctx context.Context, userID string, appID string) error {
	item := followingItem{
		PK:            appKey(appID),
		SK:            fmt.Sprintf("FOLLOWER#%s", userID),
		GSI1PK:        userKey(userID),
		GSI1SK:        fmt.Sprintf("FOLLOWS#%s", appID),
		EntityType:    "FOLLOWING",
		ApplicationID: appID,
		UserID:        userID,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal following: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to save following: %w", err)
	}

	r.logger.Debug("Following saved",
		zap.String("userID", userID),
		zap.String("applicationID", appID),
	)

	return nil
}

// GetApplicationFollowers retrieves every user following an application.
// Profiles are loaded in parallel; followers whose profile cannot be loaded
// are skipped with a warning.
func (r *FollowerRepository) GetApplicationFollowers(ctx context.Context, appID string) ([]*entities.User, error) {
	items, err := queryAllItems(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: appKey(appID)},
			":sk": &types.AttributeValueMemberS{Value: "FOLLOWER#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query followers: %w", err)
	}

	followerIDs := make([]string, 0, len(items))
	for _, raw := range items {
		var item followingItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal following item", zap.Error(err))
			continue
		}
		followerIDs = append(followerIDs, item.UserID)
	}

	slots := make([]*entities.User, len(followerIDs))
	var wg sync.WaitGroup
	for i, followerID := range followerIDs {
		wg.Add(1)
		go func(i int, followerID string) {
			defer wg.Done()

			uid, err := valueobjects.NewUserIDFromString(followerID)
			if err != nil {
				r.logger.Warn("Following item carries bad user ID",
					zap.String("userID", followerID),
				)
				return
			}
			user, err := r.userRepo.GetByID(ctx, uid)
			if err != nil {
				r.logger.Warn("Failed to load follower profile",
					zap.String("userID", followerID),
					zap.Error(err),
				)
				return
			}
			slots[i] = user
		}(i, followerID)
	}
	wg.Wait()

	followers := make([]*entities.User, 0, len(slots))
	for _, user := range slots {
		if user != nil {
			followers = append(followers, user)
		}
	}

	return followers, nil
}

// GetFollowedApplications retrieves the IDs of applications a user follows
func (r *FollowerRepository) GetFollowedApplications(ctx context.Context, userID string) ([]string, error) {
	items, err := queryAllItems(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userKey(userID)},
			":sk": &types.AttributeValueMemberS{Value: "FOLLOWS#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query followed applications: %w", err)
	}

	appIDs := make([]string, 0, len(items))
	for _, raw := range items {
		var item followingItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal following item", zap.Error(err))
			continue
		}
		appIDs = append(appIDs, item.ApplicationID)
	}

	return appIDs, nil
}

// DeleteFollowing removes one following relation
func (r *FollowerRepository) DeleteFollowing(ctx context.Context, userID string, appID string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: appKey(appID)},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("FOLLOWER#%s", userID)},
		},
	}); err != nil {
		return fmt.Errorf("failed to delete following: %w", err)
	}

	r.logger.Debug("Following deleted",
		zap.String("userID", userID),
		zap.String("applicationID", appID),
	)

	return nil
}
