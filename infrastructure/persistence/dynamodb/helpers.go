// Package dynamodb implements the application's persistence ports on a
// single DynamoDB table. Entities share the table through PK/SK prefixes;
// GSI1 carries the inverted lookups (ownership, following, email).
package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxBatchWriteItems = 25

func userKey(userID string) string   { return fmt.Sprintf("USER#%s", userID) }
func appKey(appID string) string     { return fmt.Sprintf("APP#%s", appID) }
func mediaKey(mediaID string) string { return fmt.Sprintf("MEDIA#%s", mediaID) }

// batchDeleteKeys deletes the given primary keys in chunks of the
// BatchWriteItem limit. Unprocessed keys are retried once before failing.
func batchDeleteKeys(ctx context.Context, client *dynamodb.Client, tableName string, keys []map[string]types.AttributeValue) error {
	for start := 0; start < len(keys); start += maxBatchWriteItems {
		end := start + maxBatchWriteItems
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}

		pending := map[string][]types.WriteRequest{tableName: requests}
		for attempt := 0; len(pending[tableName]) > 0; attempt++ {
			if attempt > 1 {
				return fmt.Errorf("batch delete left %d unprocessed keys", len(pending[tableName]))
			}
			out, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return fmt.Errorf("batch delete failed: %w", err)
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// queryAPI is the slice of the DynamoDB client the paging helpers need
type queryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// queryAllItems pages through a query until LastEvaluatedKey runs out,
// collecting every matched item.
func queryAllItems(ctx context.Context, client queryAPI, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

// queryAllKeys pages through a query collecting only the primary keys of the
// matched items.
func queryAllKeys(ctx context.Context, client queryAPI, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	input.ProjectionExpression = aws.String("PK, SK")

	items, err := queryAllItems(ctx, client, input)
	if err != nil {
		return nil, err
	}

	keys := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		keys = append(keys, map[string]types.AttributeValue{
			"PK": item["PK"],
			"SK": item["SK"],
		})
	}
	return keys, nil
}
