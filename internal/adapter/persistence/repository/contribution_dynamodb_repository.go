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
	DefaultContributionsTableName = "contributions"
	contributionsStatusIndex      = "status-index"
	contributionsCreatorIndex     = "creator-index"
)

type participantItem struct {
	Email       string `dynamodbav:"email"`
	ShareAmount string `dynamodbav:"share_amount"`
	HasPaid     bool   `dynamodbav:"has_paid"`
	Declined    bool   `dynamodbav:"declined"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	DeclinedAt  string `dynamodbav:"declined_at,omitempty"`
	PaymentLink string `dynamodbav:"payment_link,omitempty"`
}

type contributionItem struct {
	ID                string            `dynamodbav:"id"`
	ProductRef        string            `dynamodbav:"product_ref"`
	ProductName       string            `dynamodbav:"product_name,omitempty"`
	TotalPrice        string            `dynamodbav:"total_price"`
	Currency          string            `dynamodbav:"currency"`
	Deadline          string            `dynamodbav:"deadline"`
	Creator           string            `dynamodbav:"creator"`
	Participants      []participantItem `dynamodbav:"participants"`
	ParticipantEmails []string          `dynamodbav:"participant_emails,stringset"`
	Status            string            `dynamodbav:"status"`
	Version           int64             `dynamodbav:"version"`
	OrderRef          string            `dynamodbav:"order_ref,omitempty"`
	DispatchState     string            `dynamodbav:"dispatch_state,omitempty"`
	CancelledBy       string            `dynamodbav:"cancelled_by,omitempty"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
	CompletedAt       string            `dynamodbav:"completed_at,omitempty"`
}

// ContributionDynamoRepository persists Contribution entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: creator-index (PK: creator)
//
// Every write after Create is a full PutItem guarded by the version read
// before the mutation, so concurrent writers serialize on the version.
type ContributionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContributionRepository = (*ContributionDynamoRepository)(nil)

func NewContributionDynamoRepository(ddb DynamoAPI, tableName string) *ContributionDynamoRepository {
	if tableName == "" {
		tableName = DefaultContributionsTableName
	}
	return &ContributionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContributionDynamoRepository) Create(ctx context.Context, c entities.Contribution) (entities.Contribution, error) {
	if c.Version == 0 {
		c.Version = 1
	}
	if err := c.Validate(); err != nil {
		return entities.Contribution{}, err
	}
	av, err := attributevalue.MarshalMap(toContributionItem(c))
	if err != nil {
		return entities.Contribution{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contribution{}, fmt.Errorf("%w: contribution %s", entities.ErrAlreadyExists, c.ID)
		}
		return entities.Contribution{}, err
	}
	return c, nil
}

func (r *ContributionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contribution, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contribution{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contribution{}, nil
	}

	var it contributionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contribution{}, err
	}
	return fromContributionItem(it), nil
}

func (r *ContributionDynamoRepository) CompareAndSwap(ctx context.Context, id string, expectedVersion int64, mutate interfaces.ContributionMutator) (entities.Contribution, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Contribution{}, err
	}
	if current.ID == "" || current.Version != expectedVersion {
		return entities.Contribution{}, fmt.Errorf("%w: contribution %s at version %d", entities.ErrVersionConflict, id, expectedVersion)
	}

	next := current.Clone()
	if err := mutate(&next); err != nil {
		return entities.Contribution{}, err
	}
	next.ID = current.ID
	next.Version = expectedVersion + 1
	next.UpdatedAt = time.Now().UTC()
	if err := next.Validate(); err != nil {
		return entities.Contribution{}, err
	}

	av, err := attributevalue.MarshalMap(toContributionItem(next))
	if err != nil {
		return entities.Contribution{}, err
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
			return entities.Contribution{}, fmt.Errorf("%w: contribution %s at version %d", entities.ErrVersionConflict, id, expectedVersion)
		}
		return entities.Contribution{}, err
	}
	return next, nil
}

func (r *ContributionDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.ContributionStatus) ([]entities.Contribution, error) {
	items := make([]entities.Contribution, 0)
	for _, status := range statuses {
		found, err := r.query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(contributionsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
	}
	return items, nil
}

// ListForUser returns contributions created by creator or listing email as a
// participant. Either filter may be empty.
func (r *ContributionDynamoRepository) ListForUser(ctx context.Context, creator, email string) ([]entities.Contribution, error) {
	seen := make(map[string]struct{})
	items := make([]entities.Contribution, 0)
	add := func(list []entities.Contribution) {
		for _, c := range list {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			items = append(items, c)
		}
	}

	if creator != "" {
		found, err := r.query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(contributionsCreatorIndex),
			KeyConditionExpression: aws.String("#creator = :creator"),
			ExpressionAttributeNames: map[string]string{
				"#creator": "creator",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":creator": &types.AttributeValueMemberS{Value: creator},
			},
		})
		if err != nil {
			return nil, err
		}
		add(found)
	}

	if email != "" {
		var start map[string]types.AttributeValue
		for {
			out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:        aws.String(r.tableName),
				FilterExpression: aws.String("contains(#emails, :email)"),
				ExpressionAttributeNames: map[string]string{
					"#emails": "participant_emails",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":email": &types.AttributeValueMemberS{Value: email},
				},
				ExclusiveStartKey: start,
			})
			if err != nil {
				return nil, err
			}
			found, err := decodeContributions(out.Items)
			if err != nil {
				return nil, err
			}
			add(found)
			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			start = out.LastEvaluatedKey
		}
	}
	return items, nil
}

func (r *ContributionDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Contribution, error) {
	items := make([]entities.Contribution, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		found, err := decodeContributions(out.Items)
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

func decodeContributions(raw []map[string]types.AttributeValue) ([]entities.Contribution, error) {
	items := make([]entities.Contribution, 0, len(raw))
	for _, av := range raw {
		var it contributionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContributionItem(it))
	}
	return items, nil
}

func toContributionItem(c entities.Contribution) contributionItem {
	it := contributionItem{
		ID:                c.ID,
		ProductRef:        c.ProductRef,
		ProductName:       c.ProductName,
		TotalPrice:        formatMoney(c.TotalPrice),
		Currency:          c.Currency,
		Deadline:          formatTime(c.Deadline),
		Creator:           c.Creator,
		Participants:      make([]participantItem, len(c.Participants)),
		ParticipantEmails: make([]string, len(c.Participants)),
		Status:            string(c.Status),
		Version:           c.Version,
		OrderRef:          c.OrderRef,
		DispatchState:     string(c.DispatchState),
		CancelledBy:       c.CancelledBy,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
		CompletedAt:       formatTimePtr(c.CompletedAt),
	}
	for i, p := range c.Participants {
		it.Participants[i] = participantItem{
			Email:       p.Email,
			ShareAmount: formatMoney(p.ShareAmount),
			HasPaid:     p.HasPaid,
			Declined:    p.Declined,
			PaidAt:      formatTimePtr(p.PaidAt),
			DeclinedAt:  formatTimePtr(p.DeclinedAt),
			PaymentLink: p.PaymentLink,
		}
		it.ParticipantEmails[i] = p.Email
	}
	return it
}

func fromContributionItem(it contributionItem) entities.Contribution {
	c := entities.Contribution{
		ID:            it.ID,
		ProductRef:    it.ProductRef,
		ProductName:   it.ProductName,
		TotalPrice:    parseMoney(it.TotalPrice),
		Currency:      it.Currency,
		Deadline:      parseTime(it.Deadline),
		Creator:       it.Creator,
		Participants:  make([]entities.Participant, len(it.Participants)),
		Status:        entities.ContributionStatus(it.Status),
		Version:       it.Version,
		OrderRef:      it.OrderRef,
		DispatchState: entities.DispatchState(it.DispatchState),
		CancelledBy:   it.CancelledBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		CompletedAt:   parseTimePtr(it.CompletedAt),
	}
	for i, p := range it.Participants {
		c.Participants[i] = entities.Participant{
			Email:       p.Email,
			ShareAmount: parseMoney(p.ShareAmount),
			HasPaid:     p.HasPaid,
			Declined:    p.Declined,
			PaidAt:      parseTimePtr(p.PaidAt),
			DeclinedAt:  parseTimePtr(p.DeclinedAt),
			PaymentLink: p.PaymentLink,
		}
	}
	return c
}
