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
	"beacon-backend/domain/events"
)

// ActivityRepository implements the ActivityRepository port using DynamoDB.
// Feed entries sort by timestamp through the sort key, so newest-first reads
// are a single descending query.
type ActivityRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ActivityRepository {
	return &ActivityRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// activityItem represents one activity feed entry for one user
type activityItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	EntityType    string `dynamodbav:"EntityType"`
	EventID       string `dynamodbav:"EventID"`
	EventKind     string `dynamodbav:"EventKind"`
	ActorUserID   string `dynamodbav:"ActorUserID"`
	ApplicationID string `dynamodbav:"ApplicationID"`
	Message       string `dynamodbav:"Message"`
	Timestamp     string `dynamodbav:"Timestamp"`
}

// SaveEvent appends an activity event to one user's feed
func (r *ActivityRepository) SaveEvent(ctx context.Context, event events.ActivityEvent, forUser string) error {
	item := activityItem{
		PK:            userKey(forUser),
		SK:            fmt.Sprintf("ACTIVITY#%s#%s", event.Timestamp.UTC().Format(time.RFC3339Nano), event.EventID),
		EntityType:    "ACTIVITY",
		EventID:       event.EventID,
		EventKind:     event.Type,
		ActorUserID:   event.ActorUserID,
		ApplicationID: event.ApplicationID,
		Message:       event.Message,
		Timestamp:     event.Timestamp.Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to save activity event: %w", err)
	}

	return nil
}

// GetAllEventsFor retrieves a user's activity feed, newest first
func (r *ActivityRepository) GetAllEventsFor(ctx context.Context, userID string) ([]events.ActivityEvent, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userKey(userID)},
			":sk": &types.AttributeValueMemberS{Value: "ACTIVITY#"},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query activity feed: %w", err)
	}

	feed := make([]events.ActivityEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var item activityItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal activity item", zap.Error(err))
			continue
		}

		ts, _ := time.Parse(time.RFC3339Nano, item.Timestamp)
		feed = append(feed, events.ActivityEvent{
			EventID:       item.EventID,
			Type:          item.EventKind,
			ActorUserID:   item.ActorUserID,
			ApplicationID: item.ApplicationID,
			Message:       item.Message,
			Timestamp:     ts,
		})
	}

	return feed, nil
}
