package dynamodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// ApplicationRepository implements the ApplicationRepository port using DynamoDB
type ApplicationRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) ports.ApplicationRepository {
	return &ApplicationRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// applicationItem represents the DynamoDB item structure for an application
type applicationItem struct {
	PK            string   `dynamodbav:"PK"`
	SK            string   `dynamodbav:"SK"`
	EntityType    string   `dynamodbav:"EntityType"`
	ApplicationID string   `dynamodbav:"ApplicationID"`
	Name          string   `dynamodbav:"Name"`
	NameLower     string   `dynamodbav:"NameLower"`
	Description   string   `dynamodbav:"Description"`
	Owners        []string `dynamodbav:"Owners"`
	IconMediaID   string   `dynamodbav:"IconMediaID,omitempty"`
	CreatedAt     string   `dynamodbav:"CreatedAt"`
	UpdatedAt     string   `dynamodbav:"UpdatedAt"`
}

// ownershipItem links an owner to an application through GSI1
type ownershipItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	GSI1PK        string `dynamodbav:"GSI1PK"`
	GSI1SK        string `dynamodbav:"GSI1SK"`
	EntityType    string `dynamodbav:"EntityType"`
	ApplicationID string `dynamodbav:"ApplicationID"`
	UserID        string `dynamodbav:"UserID"`
}

// Save persists an application and one ownership link per owner
func (r *ApplicationRepository) Save(ctx context.Context, app *entities.Application) error {
	item := applicationItem{
		PK:            appKey(app.ID().String()),
		SK:            "METADATA",
		EntityType:    "APPLICATION",
		ApplicationID: app.ID().String(),
		Name:          app.Name(),
		NameLower:     strings.ToLower(app.Name()),
		Description:   app.Description(),
		IconMediaID:   app.IconMediaID().String(),
		CreatedAt:     app.CreatedAt().Format(time.RFC3339),
		UpdatedAt:     app.UpdatedAt().Format(time.RFC3339),
	}
	for _, owner := range app.Owners() {
		item.Owners = append(item.Owners, owner.String())
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal application: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save application",
			zap.Error(err),
			zap.String("applicationID", app.ID().String()),
		)
		return fmt.Errorf("failed to save application: %w", err)
	}

	for _, owner := range app.Owners() {
		link := ownershipItem{
			PK:            appKey(app.ID().String()),
			SK:            fmt.Sprintf("OWNER#%s", owner.String()),
			GSI1PK:        userKey(owner.String()),
			GSI1SK:        fmt.Sprintf("OWNS#%s", app.ID().String()),
			EntityType:    "OWNERSHIP",
			ApplicationID: app.ID().String(),
			UserID:        owner.String(),
		}

		linkAV, err := attributevalue.MarshalMap(link)
		if err != nil {
			return fmt.Errorf("failed to marshal ownership: %w", err)
		}
		if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      linkAV,
		}); err != nil {
			return fmt.Errorf("failed to save ownership: %w", err)
		}
	}

	r.logger.Debug("Application saved",
		zap.String("applicationID", app.ID().String()),
		zap.Int("owners", len(app.Owners())),
	)

	return nil
}

// GetByID retrieves an application by its ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id valueobjects.ApplicationID) (*entities.Application, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: appKey(id.String())},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFound("application")
	}

	var item applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application: %w", err)
	}

	return r.reconstruct(item)
}

// GetByOwner retrieves all applications owned by a user
func (r *ApplicationRepository) GetByOwner(ctx context.Context, userID string) ([]*entities.Application, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userKey(userID)},
			":sk": &types.AttributeValueMemberS{Value: "OWNS#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query owned applications: %w", err)
	}

	apps := make([]*entities.Application, 0, len(out.Items))
	for _, raw := range out.Items {
		var link ownershipItem
		if err := attributevalue.UnmarshalMap(raw, &link); err != nil {
			r.logger.Warn("Failed to unmarshal ownership item", zap.Error(err))
			continue
		}

		appID, err := valueobjects.NewApplicationIDFromString(link.ApplicationID)
		if err != nil {
			r.logger.Warn("Ownership item carries bad application ID",
				zap.String("applicationID", link.ApplicationID),
			)
			continue
		}

		app, err := r.GetByID(ctx, appID)
		if err != nil {
			r.logger.Warn("Failed to load owned application",
				zap.String("applicationID", link.ApplicationID),
				zap.Error(err),
			)
			continue
		}
		apps = append(apps, app)
	}

	return apps, nil
}

// Search finds applications whose name contains the query, case-insensitive
func (r *ApplicationRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Application, error) {
	filter := expression.Name("EntityType").Equal(expression.Value("APPLICATION")).
		And(expression.Name("NameLower").Contains(strings.ToLower(query)))

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build search expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	apps := make([]*entities.Application, 0, limit)
	for len(apps) < limit {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applications: %w", err)
		}

		for _, raw := range out.Items {
			var item applicationItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Failed to unmarshal application item", zap.Error(err))
				continue
			}
			app, err := r.reconstruct(item)
			if err != nil {
				r.logger.Warn("Failed to reconstruct application",
					zap.String("applicationID", item.ApplicationID),
					zap.Error(err),
				)
				continue
			}
			apps = append(apps, app)
			if len(apps) == limit {
				break
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return apps, nil
}

// Delete removes the application record and its ownership links
func (r *ApplicationRepository) Delete(ctx context.Context, id valueobjects.ApplicationID) error {
	keys, err := queryAllKeys(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: appKey(id.String())},
			":sk": &types.AttributeValueMemberS{Value: "OWNER#"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to list ownership links: %w", err)
	}

	keys = append(keys, map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: appKey(id.String())},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	})

	if err := batchDeleteKeys(ctx, r.client, r.tableName, keys); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	r.logger.Debug("Application deleted", zap.String("applicationID", id.String()))
	return nil
}

func (r *ApplicationRepository) reconstruct(item applicationItem) (*entities.Application, error) {
	appID, err := valueobjects.NewApplicationIDFromString(item.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("stored application has bad ID: %w", err)
	}

	owners := make([]valueobjects.UserID, 0, len(item.Owners))
	for _, raw := range item.Owners {
		owner, err := valueobjects.NewUserIDFromString(raw)
		if err != nil {
			r.logger.Warn("Skipping bad owner ID",
				zap.String("applicationID", item.ApplicationID),
				zap.String("ownerID", raw),
			)
			continue
		}
		owners = append(owners, owner)
	}

	var icon valueobjects.MediaID
	if item.IconMediaID != "" {
		icon, err = valueobjects.NewMediaIDFromString(item.IconMediaID)
		if err != nil {
			return nil, fmt.Errorf("stored application has bad icon ID: %w", err)
		}
	}

	createdAt, _ := time.Parse(time.RFC3339, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, item.UpdatedAt)

	return entities.ReconstructApplication(appID, item.Name, item.Description, owners, icon, createdAt, updatedAt), nil
}
