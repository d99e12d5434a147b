package dyndb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Scan starts a fluent scan over the table.
func (s *dynamoStore[T]) Scan() *ScanBuilder[T] {
	return &ScanBuilder[T]{exec: s.execScan}
}

func (s *dynamoStore[T]) execScan(ctx context.Context, sb *ScanBuilder[T]) ([]T, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.cfg.TableName),
		Limit:     sb.limit,
	}

	if sb.filterField != "" {
		cond := expression.Contains(expression.Name(sb.filterField), sb.filterValue)
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, "", fmt.Errorf("dyndb: filter build failed: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if sb.startToken != "" {
		startKey, err := decodeCursor(sb.startToken)
		if err != nil {
			return nil, "", fmt.Errorf("dyndb: invalid cursor: %w", err)
		}
		input.ExclusiveStartKey = startKey
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("dyndb: scan failed: %w", err)
	}

	items := make([]T, 0, len(out.Items))
	for _, raw := range out.Items {
		var t T
		if err := attributevalue.UnmarshalMap(raw, &t); err != nil {
			return nil, "", fmt.Errorf("dyndb: unmarshal failed: %w", err)
		}
		items = append(items, t)
	}

	token, err := encodeCursor(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", err
	}
	return items, token, nil
}

// encodeCursor turns a LastEvaluatedKey into an opaque resume token. The key
// is converted to plain Go values first so it survives a JSON round trip.
func encodeCursor(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}
	plain := make(map[string]any, len(lastKey))
	if err := attributevalue.UnmarshalMap(lastKey, &plain); err != nil {
		return "", fmt.Errorf("dyndb: cursor encode failed: %w", err)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("dyndb: cursor encode failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func decodeCursor(token string) (map[string]types.AttributeValue, error) {
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var plain map[string]any
	if err := json.Unmarshal(b, &plain); err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(plain)
}
