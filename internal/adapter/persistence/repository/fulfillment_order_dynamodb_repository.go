package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOrdersTableName = "gift_orders"
	ordersStatusIndex      = "status-index"
)

type statusChangeItem struct {
	Status    string `dynamodbav:"status"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	At        string `dynamodbav:"at"`
}

type fulfillmentOrderItem struct {
	ID             string             `dynamodbav:"id"`
	ContributionID string             `dynamodbav:"contribution_id"`
	ProductRef     string             `dynamodbav:"product_ref"`
	ProductName    string             `dynamodbav:"product_name,omitempty"`
	Total          string             `dynamodbav:"total"`
	Collected      string             `dynamodbav:"collected"`
	Currency       string             `dynamodbav:"currency"`
	Recipient      string             `dynamodbav:"recipient"`
	Status         string             `dynamodbav:"status"`
	History        []statusChangeItem `dynamodbav:"history"`
	TrackingNumber string             `dynamodbav:"tracking_number,omitempty"`
	DeliveryNotes  string             `dynamodbav:"delivery_notes,omitempty"`
	DeliveredAt    string             `dynamodbav:"delivered_at,omitempty"`
	Version        int64              `dynamodbav:"version"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

// FulfillmentOrderDynamoRepository persists FulfillmentOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "ord-" + contribution id)
//   - GSI: status-index (PK: status)
type FulfillmentOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFulfillmentOrderRepository = (*FulfillmentOrderDynamoRepository)(nil)

func NewFulfillmentOrderDynamoRepository(ddb DynamoAPI, tableName string) *FulfillmentOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	return &FulfillmentOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FulfillmentOrderDynamoRepository) CreateIfAbsent(ctx context.Context, o entities.FulfillmentOrder) (entities.FulfillmentOrder, bool, error) {
	if o.Version == 0 {
		o.Version = 1
	}
	av, err := attributevalue.MarshalMap(toFulfillmentOrderItem(o))
	if err != nil {
		return entities.FulfillmentOrder{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err == nil {
		return o, true, nil
	}
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return entities.FulfillmentOrder{}, false, err
	}

	existing, err := r.GetByID(ctx, o.ID)
	if err != nil {
		return entities.FulfillmentOrder{}, false, err
	}
	return existing, false, nil
}

func (r *FulfillmentOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.FulfillmentOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.FulfillmentOrder{}, nil
	}

	var it fulfillmentOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FulfillmentOrder{}, err
	}
	return fromFulfillmentOrderItem(it), nil
}

func (r *FulfillmentOrderDynamoRepository) CompareAndSwap(ctx context.Context, id string, expectedVersion int64, mutate interfaces.OrderMutator) (entities.FulfillmentOrder, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	if current.ID == "" || current.Version != expectedVersion {
		return entities.FulfillmentOrder{}, fmt.Errorf("%w: order %s at version %d", entities.ErrVersionConflict, id, expectedVersion)
	}

	next := current.Clone()
	if err := mutate(&next); err != nil {
		return entities.FulfillmentOrder{}, err
	}
	next.ID = current.ID
	next.Version = expectedVersion + 1
	next.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toFulfillmentOrderItem(next))
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FulfillmentOrder{}, fmt.Errorf("%w: order %s at version %d", entities.ErrVersionConflict, id, expectedVersion)
		}
		return entities.FulfillmentOrder{}, err
	}
	return next, nil
}

func (r *FulfillmentOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.FulfillmentOrder, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}
	items := make([]entities.FulfillmentOrder, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		found, err := decodeOrders(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *FulfillmentOrderDynamoRepository) List(ctx context.Context) ([]entities.FulfillmentOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	items := make([]entities.FulfillmentOrder, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		found, err := decodeOrders(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func decodeOrders(raw []map[string]types.AttributeValue) ([]entities.FulfillmentOrder, error) {
	items := make([]entities.FulfillmentOrder, 0, len(raw))
	for _, av := range raw {
		var it fulfillmentOrderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFulfillmentOrderItem(it))
	}
	return items, nil
}

func toFulfillmentOrderItem(o entities.FulfillmentOrder) fulfillmentOrderItem {
	it := fulfillmentOrderItem{
		ID:             o.ID,
		ContributionID: o.ContributionID,
		ProductRef:     o.ProductRef,
		ProductName:    o.ProductName,
		Total:          formatMoney(o.Total),
		Collected:      formatMoney(o.Collected),
		Currency:       o.Currency,
		Recipient:      o.Recipient,
		Status:         string(o.Status),
		History:        make([]statusChangeItem, len(o.History)),
		TrackingNumber: o.TrackingNumber,
		DeliveryNotes:  o.DeliveryNotes,
		DeliveredAt:    formatTimePtr(o.DeliveredAt),
		Version:        o.Version,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
	for i, h := range o.History {
		it.History[i] = statusChangeItem{
			Status:    string(h.Status),
			UpdatedBy: h.UpdatedBy,
			Notes:     h.Notes,
			At:        formatTime(h.At),
		}
	}
	return it
}

func fromFulfillmentOrderItem(it fulfillmentOrderItem) entities.FulfillmentOrder {
	o := entities.FulfillmentOrder{
		ID:             it.ID,
		ContributionID: it.ContributionID,
		ProductRef:     it.ProductRef,
		ProductName:    it.ProductName,
		Total:          parseMoney(it.Total),
		Collected:      parseMoney(it.Collected),
		Currency:       it.Currency,
		Recipient:      it.Recipient,
		Status:         entities.OrderStatus(it.Status),
		History:        make([]entities.StatusChange, len(it.History)),
		TrackingNumber: it.TrackingNumber,
		DeliveryNotes:  it.DeliveryNotes,
		DeliveredAt:    parseTimePtr(it.DeliveredAt),
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	for i, h := range it.History {
		o.History[i] = entities.StatusChange{
			Status:    entities.OrderStatus(h.Status),
			UpdatedBy: h.UpdatedBy,
			Notes:     h.Notes,
			At:        parseTime(h.At),
		}
	}
	return o
}
