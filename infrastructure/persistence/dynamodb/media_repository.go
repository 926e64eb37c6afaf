package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// MediaRepository implements the MediaRepository port using DynamoDB. Content
// lives in the CONTENT item; derived thumbnails share the partition under
// THUMB# sort keys so they can be cleared in one sweep.
type MediaRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.MediaRepository {
	return &MediaRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// mediaItem represents stored binary content
type mediaItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	MediaID    string `dynamodbav:"MediaID"`
	Data       []byte `dynamodbav:"Data"`
	MimeType   string `dynamodbav:"MimeType"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// SaveMedia stores binary content under the given key
func (r *MediaRepository) SaveMedia(ctx context.Context, id valueobjects.MediaID, data []byte, mimeType string) error {
	item := mediaItem{
		PK:         mediaKey(id.String()),
		SK:         "CONTENT",
		EntityType: "MEDIA",
		MediaID:    id.String(),
		Data:       data,
		MimeType:   mimeType,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}

	r.logger.Debug("Media saved",
		zap.String("mediaID", id.String()),
		zap.Int("bytes", len(data)),
	)

	return nil
}

// GetMedia retrieves the content stored under the given key
func (r *MediaRepository) GetMedia(ctx context.Context, id valueobjects.MediaID) ([]byte, string, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: mediaKey(id.String())},
			"SK": &types.AttributeValueMemberS{Value: "CONTENT"},
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get media: %w", err)
	}
	if out.Item == nil {
		return nil, "", pkgerrors.NewNotFound("media")
	}

	var item mediaItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal media: %w", err)
	}

	return item.Data, item.MimeType, nil
}

// DeleteMedia removes the content stored under the given key
func (r *MediaRepository) DeleteMedia(ctx context.Context, id valueobjects.MediaID) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: mediaKey(id.String())},
			"SK": &types.AttributeValueMemberS{Value: "CONTENT"},
		},
	}); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	r.logger.Debug("Media deleted", zap.String("mediaID", id.String()))
	return nil
}

// DeleteAllThumbnails removes every thumbnail derived from the given key
func (r *MediaRepository) DeleteAllThumbnails(ctx context.Context, id valueobjects.MediaID) error {
	keys, err := queryAllKeys(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: mediaKey(id.String())},
			":sk": &types.AttributeValueMemberS{Value: "THUMB#"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to list thumbnails: %w", err)
	}

	if err := batchDeleteKeys(ctx, r.client, r.tableName, keys); err != nil {
		return fmt.Errorf("failed to delete thumbnails: %w", err)
	}

	return nil
}
