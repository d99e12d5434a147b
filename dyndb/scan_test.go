package dyndb_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScan_NoFilter(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	items := []map[string]types.AttributeValue{
		{"id": &types.AttributeValueMemberS{Value: "1"}, "name": &types.AttributeValueMemberS{Value: "A"}},
		{"id": &types.AttributeValueMemberS{Value: "2"}, "name": &types.AttributeValueMemberS{Value: "B"}},
	}

	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.FilterExpression == nil && *in.Limit == int32(10)
	})).Return(&dynamodb.ScanOutput{Items: items}, nil)

	result, token, err := store.Scan().Limit(10).Exec(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Empty(t, token, "exhausted scan must not produce a cursor")
}

func TestScan_ContainsFilter(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.FilterExpression != nil && len(in.ExpressionAttributeValues) == 1
	})).Return(&dynamodb.ScanOutput{Items: nil}, nil)

	result, _, err := store.Scan().FilterContains("name", "Jo").Limit(5).Exec(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
	mockClient.AssertExpectations(t)
}

func TestScan_CursorRoundTrip(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	lastKey := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "item-42"},
	}
	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.ScanOutput{Items: nil, LastEvaluatedKey: lastKey}, nil).Once()

	_, token, err := store.Scan().Limit(1).Exec(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must resume the scan at the same key.
	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		key, ok := in.ExclusiveStartKey["id"].(*types.AttributeValueMemberS)
		return ok && key.Value == "item-42"
	})).Return(&dynamodb.ScanOutput{Items: nil}, nil).Once()

	_, next, err := store.Scan().Limit(1).StartKey(token).Exec(context.Background())
	require.NoError(t, err)
	assert.Empty(t, next)
	mockClient.AssertExpectations(t)
}

func TestScan_InvalidCursor(t *testing.T) {
	t.Parallel()

	store := createTestStore(&MockDynamoClient{})

	_, _, err := store.Scan().StartKey("not base64 ***").Exec(context.Background())

	require.Error(t, err)
}
