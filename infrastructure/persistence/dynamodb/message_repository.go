package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// MessageRepository implements the MessageRepository port using DynamoDB
type MessageRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.MessageRepository {
	return &MessageRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// messageItem represents the DynamoDB item structure for a message
type messageItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	EntityType    string `dynamodbav:"EntityType"`
	MessageID     string `dynamodbav:"MessageID"`
	ApplicationID string `dynamodbav:"ApplicationID"`
	Title         string `dynamodbav:"Title"`
	Body          string `dynamodbav:"Body"`
	Urgency       string `dynamodbav:"Urgency"`
	Hostname      string `dynamodbav:"Hostname,omitempty"`
	CreatedAt     string `dynamodbav:"CreatedAt"`
}

// Save persists a message
func (r *MessageRepository) Save(ctx context.Context, msg *entities.Message) error {
	item := messageItem{
		PK:            appKey(msg.ApplicationID.String()),
		SK:            fmt.Sprintf("MSG#%s", msg.ID.String()),
		EntityType:    "MESSAGE",
		MessageID:     msg.ID.String(),
		ApplicationID: msg.ApplicationID.String(),
		Title:         msg.Title,
		Body:          msg.Body,
		Urgency:       string(msg.Urgency),
		Hostname:      msg.Hostname,
		CreatedAt:     msg.CreatedAt.Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

// GetByID retrieves one message of an application
func (r *MessageRepository) GetByID(ctx context.Context, appID string, msgID valueobjects.MessageID) (*entities.Message, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: appKey(appID)},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("MSG#%s", msgID.String())},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFound("message")
	}

	var item messageItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return reconstructMessage(item)
}

// GetByApplication retrieves the messages of an application, newest first
func (r *MessageRepository) GetByApplication(ctx context.Context, appID string, limit int) ([]*entities.Message, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: appKey(appID)},
			":sk": &types.AttributeValueMemberS{Value: "MSG#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	messages := make([]*entities.Message, 0, len(out.Items))
	for _, raw := range out.Items {
		var item messageItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal message item", zap.Error(err))
			continue
		}
		msg, err := reconstructMessage(item)
		if err != nil {
			r.logger.Warn("Failed to reconstruct message",
				zap.String("messageID", item.MessageID),
				zap.Error(err),
			)
			continue
		}
		messages = append(messages, msg)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}

	return messages, nil
}

// DeleteAllMessages removes every message belonging to an application
func (r *MessageRepository) DeleteAllMessages(ctx context.Context, appID string) error {
	keys, err := queryAllKeys(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: appKey(appID)},
			":sk": &types.AttributeValueMemberS{Value: "MSG#"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if err := batchDeleteKeys(ctx, r.client, r.tableName, keys); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}

	r.logger.Debug("Application messages deleted",
		zap.String("applicationID", appID),
		zap.Int("count", len(keys)),
	)

	return nil
}

func reconstructMessage(item messageItem) (*entities.Message, error) {
	msgID, err := valueobjects.NewMessageIDFromString(item.MessageID)
	if err != nil {
		return nil, fmt.Errorf("stored message has bad ID: %w", err)
	}
	appID, err := valueobjects.NewApplicationIDFromString(item.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("stored message has bad application ID: %w", err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)

	return &entities.Message{
		ID:            msgID,
		ApplicationID: appID,
		Title:         item.Title,
		Body:          item.Body,
		Urgency:       entities.Urgency(item.Urgency),
		Hostname:      item.Hostname,
		CreatedAt:     createdAt,
	}, nil
}
