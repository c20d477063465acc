package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by "id" that understands the few
// condition, key and filter expressions the repositories send.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	putErr   error
	putCalls int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	if n, ok := av.(*types.AttributeValueMemberN); ok {
		return n.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key["id"])]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if f.putErr != nil {
		return nil, f.putErr
	}

	id := stringAttr(in.Item["id"])
	existing, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "#version = :expected":
		if !exists || stringAttr(existing["version"]) != stringAttr(in.ExpressionAttributeValues[":expected"]) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("version")}
		}
	case "":
	default:
		return nil, errors.New("fake: unsupported condition " + aws.ToString(in.ConditionExpression))
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var attr, want string
	for _, name := range in.ExpressionAttributeNames {
		attr = name
	}
	for _, v := range in.ExpressionAttributeValues {
		want = stringAttr(v)
	}
	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if stringAttr(item[attr]) == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		if in.FilterExpression == nil {
			out.Items = append(out.Items, item)
			continue
		}
		want := stringAttr(in.ExpressionAttributeValues[":email"])
		set, ok := item[in.ExpressionAttributeNames["#emails"]].(*types.AttributeValueMemberSS)
		if !ok {
			continue
		}
		for _, v := range set.Value {
			if v == want {
				out.Items = append(out.Items, item)
				break
			}
		}
	}
	return out, nil
}
