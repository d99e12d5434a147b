package dyndb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/libraryshop/books-api/envloader"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig[T]
}

// New creates a reusable store. When the table name is not set in cfg it is
// resolved from the environment.
func New[T any](client DynamoDBClient, cfg TableConfig[T]) Store[T] {
	if cfg.TableName == "" {
		_ = envloader.Load(&cfg)
	}
	if cfg.HashKey == "" {
		cfg.HashKey = "id"
	}

	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

func (s *dynamoStore[T]) key(hashKey any) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.cfg.HashKey: attr(hashKey),
	}
}

// Get item by primary key, with a consistent read.
func (s *dynamoStore[T]) Get(ctx context.Context, hashKey any) (*T, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            s.key(hashKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	return &item, nil
}

// PutIfAbsent writes the item guarded by attribute_not_exists on the hash
// key, so a duplicate key can never overwrite an existing record.
func (s *dynamoStore[T]) PutIfAbsent(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dyndb: marshal failed: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name(s.cfg.HashKey))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("dyndb: condition build failed: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ErrConflict
		}
		return fmt.Errorf("dyndb: put failed: %w", err)
	}
	return nil
}

// Update performs a partial SET of the given fields and returns the ALL_NEW
// image. The attribute_exists condition turns an update racing a delete into
// ErrNotFound instead of silently recreating the item.
func (s *dynamoStore[T]) Update(ctx context.Context, hashKey any, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("dyndb: update requires at least one field")
	}

	var upd expression.UpdateBuilder
	for name, value := range fields {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}
	cond := expression.AttributeExists(expression.Name(s.cfg.HashKey))

	expr, err := expression.NewBuilder().WithUpdate(upd).WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: update build failed: %w", err)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       s.key(hashKey),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("dyndb: update failed: %w", err)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Delete removes the item, requiring it to exist.
func (s *dynamoStore[T]) Delete(ctx context.Context, hashKey any) error {
	cond := expression.AttributeExists(expression.Name(s.cfg.HashKey))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("dyndb: condition build failed: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       s.key(hashKey),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ErrNotFound
		}
		return fmt.Errorf("dyndb: delete failed: %w", err)
	}
	return nil
}

func isConditionalCheckFailure(err error) bool {
	var cf *types.ConditionalCheckFailedException
	return errors.As(err, &cf)
}

// attr converts any value to types.AttributeValue
func attr(v any) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return av
}
