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
)

// InboxRepository implements the InboxRepository port using DynamoDB. Inbox
// entries carry a full snapshot of the delivered message, so reading an
// inbox never touches the application's message records.
type InboxRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewInboxRepository creates a new InboxRepository
func NewInboxRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.InboxRepository {
	return &InboxRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// inboxItem represents one delivered message in one user's inbox
type inboxItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	EntityType    string `dynamodbav:"EntityType"`
	UserID        string `dynamodbav:"UserID"`
	MessageID     string `dynamodbav:"MessageID"`
	ApplicationID string `dynamodbav:"ApplicationID"`
	Title         string `dynamodbav:"Title"`
	Body          string `dynamodbav:"Body"`
	Urgency       string `dynamodbav:"Urgency"`
	Hostname      string `dynamodbav:"Hostname,omitempty"`
	CreatedAt     string `dynamodbav:"CreatedAt"`
}

// SaveMessageForUser delivers a message into a user's inbox
func (r *InboxRepository) SaveMessageForUser(ctx context.Context, userID string, msg *entities.Message) error {
	item := inboxItem{
		PK:            userKey(userID),
		SK:            fmt.Sprintf("INBOX#%s", msg.ID.String()),
		EntityType:    "INBOX",
		UserID:        userID,
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
		return fmt.Errorf("failed to marshal inbox entry: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to save inbox entry: %w", err)
	}

	return nil
}

// GetMessagesForUser retrieves a user's inbox entries, newest first
func (r *InboxRepository) GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userKey(userID)},
			":sk": &types.AttributeValueMemberS{Value: "INBOX#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query inbox: %w", err)
	}

	messages := make([]*entities.Message, 0, len(out.Items))
	for _, raw := range out.Items {
		var item inboxItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal inbox item", zap.Error(err))
			continue
		}
		msg, err := reconstructMessage(messageItem{
			MessageID:     item.MessageID,
			ApplicationID: item.ApplicationID,
			Title:         item.Title,
			Body:          item.Body,
			Urgency:       item.Urgency,
			Hostname:      item.Hostname,
			CreatedAt:     item.CreatedAt,
		})
		if err != nil {
			r.logger.Warn("Failed to reconstruct inbox message",
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

	return messages, nil
}

// DeleteMessageForUser removes one entry from a user's inbox. Deleting an
// entry that does not exist is not an error.
func (r *InboxRepository) DeleteMessageForUser(ctx context.Context, userID string, msgID string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userKey(userID)},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("INBOX#%s", msgID)},
		},
	}); err != nil {
		return fmt.Errorf("failed to delete inbox entry: %w", err)
	}
	return nil
}

// DeleteAllMessagesForUser clears a user's entire inbox
func (r *InboxRepository) DeleteAllMessagesForUser(ctx context.Context, userID string) error {
	keys, err := queryAllKeys(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userKey(userID)},
			":sk": &types.AttributeValueMemberS{Value: "INBOX#"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to list inbox entries: %w", err)
	}

	if err := batchDeleteKeys(ctx, r.client, r.tableName, keys); err != nil {
		return fmt.Errorf("failed to clear inbox: %w", err)
	}

	r.logger.Debug("Inbox cleared",
		zap.String("userID", userID),
		zap.Int("count", len(keys)),
	)

	return nil
}
