package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/libraryshop/books-api/dyndb"
)

func TestGet_Success(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	expectedItem := map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "123"},
		"name":  &types.AttributeValueMemberS{Value: "John"},
		"email": &types.AttributeValueMemberS{Value: "john@example.com"},
	}

	mockClient.On("GetItem", mock.Anything, &dynamodb.GetItemInput{
		TableName:      aws.String("test-table"),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "123"}},
		ConsistentRead: aws.Bool(true),
	}).Return(&dynamodb.GetItemOutput{Item: expectedItem}, nil)

	item, err := store.Get(context.Background(), "123")

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "123", item.ID)
	assert.Equal(t, "John", item.Name)
	mockClient.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("GetItem", mock.Anything, mock.Anything).
		Return(&dynamodb.GetItemOutput{Item: nil}, nil)

	item, err := store.Get(context.Background(), "missing")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, dyndb.ErrNotFound)
}

func TestGet_ClientError(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("GetItem", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))

	_, err := store.Get(context.Background(), "123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, dyndb.ErrNotFound)
}

func TestPutIfAbsent_Success(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return in.ConditionExpression != nil && *in.TableName == "test-table"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := store.PutIfAbsent(context.Background(), testItem{ID: "123", Name: "John"})

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestPutIfAbsent_Conflict(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("PutItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{})

	err := store.PutIfAbsent(context.Background(), testItem{ID: "123"})

	assert.ErrorIs(t, err, dyndb.ErrConflict)
}

func TestUpdate_ReturnsNewImage(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	updated := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberS{Value: "123"},
		"name": &types.AttributeValueMemberS{Value: "Johnny"},
	}

	mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		return in.UpdateExpression != nil &&
			in.ConditionExpression != nil &&
			in.ReturnValues == types.ReturnValueAllNew
	})).Return(&dynamodb.UpdateItemOutput{Attributes: updated}, nil)

	item, err := store.Update(context.Background(), "123", map[string]any{"name": "Johnny"})

	require.NoError(t, err)
	assert.Equal(t, "Johnny", item.Name)
	mockClient.AssertExpectations(t)
}

func TestUpdate_VanishedItem(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("UpdateItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{})

	_, err := store.Update(context.Background(), "123", map[string]any{"name": "Johnny"})

	assert.ErrorIs(t, err, dyndb.ErrNotFound)
}

func TestUpdate_EmptyFields(t *testing.T) {
	t.Parallel()

	store := createTestStore(&MockDynamoClient{})

	_, err := store.Update(context.Background(), "123", map[string]any{})

	require.Error(t, err)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
		return in.ConditionExpression != nil
	})).Return(&dynamodb.DeleteItemOutput{}, nil)

	err := store.Delete(context.Background(), "123")

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestDelete_AlreadyGone(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{})

	err := store.Delete(context.Background(), "123")

	assert.ErrorIs(t, err, dyndb.ErrNotFound)
}
