package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedQueryStub serves canned query pages, chaining them through
// LastEvaluatedKey the way DynamoDB does.
type pagedQueryStub struct {
	pages []*dynamodb.QueryOutput
	calls int
	seen  []map[string]types.AttributeValue
}

func (s *pagedQueryStub) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if s.calls >= len(s.pages) {
		return nil, errors.New("no more pages")
	}
	s.seen = append(s.seen, params.ExclusiveStartKey)
	out := s.pages[s.calls]
	s.calls++
	return out, nil
}

func item(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

func TestQueryAllItems_FollowsLastEvaluatedKey(t *testing.T) {
	// Arrange
	cursor := item("APP#a", "FOLLOWER#2")
	stub := &pagedQueryStub{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{item("APP#a", "FOLLOWER#1"), item("APP#a", "FOLLOWER#2")},
			LastEvaluatedKey: cursor,
		},
		{
			Items: []map[string]types.AttributeValue{item("APP#a", "FOLLOWER#3")},
		},
	}}

	// Act
	items, err := queryAllItems(context.Background(), stub, &dynamodb.QueryInput{
		TableName: aws.String("beacon"),
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, stub.calls)
	assert.Nil(t, stub.seen[0])
	assert.Equal(t, cursor, stub.seen[1])
}

func TestQueryAllItems_SinglePageStopsImmediately(t *testing.T) {
	stub := &pagedQueryStub{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{item("APP#a", "FOLLOWER#1")}},
	}}

	items, err := queryAllItems(context.Background(), stub, &dynamodb.QueryInput{
		TableName: aws.String("beacon"),
	})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, stub.calls)
}

func TestQueryAllKeys_ProjectsPrimaryKeysAcrossPages(t *testing.T) {
	// Arrange
	stub := &pagedQueryStub{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{item("APP#a", "MSG#1")},
			LastEvaluatedKey: item("APP#a", "MSG#1"),
		},
		{
			Items: []map[string]types.AttributeValue{item("APP#a", "MSG#2")},
		},
	}}
	input := &dynamodb.QueryInput{TableName: aws.String("beacon")}

	// Act
	keys, err := queryAllKeys(context.Background(), stub, input)

	// Assert
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, item("APP#a", "MSG#1"), keys[0])
	assert.Equal(t, item("APP#a", "MSG#2"), keys[1])
	assert.Equal(t, aws.String("PK, SK"), input.ProjectionExpression)
}

func TestQueryAllItems_PropagatesQueryError(t *testing.T) {
	stub := &pagedQueryStub{}

	_, err := queryAllItems(context.Background(), stub, &dynamodb.QueryInput{
		TableName: aws.String("beacon"),
	})

	assert.Error(t, err)
}
