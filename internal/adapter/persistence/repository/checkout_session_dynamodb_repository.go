package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName  = "checkout_sessions"
	sessionsStatusExpiryIndex = "status-expires_at-index"
)

type checkoutSessionItem struct {
	CheckoutID  string `dynamodbav:"checkout_id"`
	ProductID   int    `dynamodbav:"product_id"`
	PlanID      string `dynamodbav:"plan_id,omitempty"`
	Metadata    string `dynamodbav:"metadata,omitempty"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// CheckoutSessionDynamoRepository persists CheckoutSession entities in DynamoDB.
//
// Table requirements:
//   - PK: checkout_id (string)
//   - GSI: status-expires_at-index (PK: status, SK: expires_at as number)
//
// expires_at is stored as epoch seconds so the GSI sort key gives a correct
// numeric range query for the reaper.

type CheckoutSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionDynamoRepository)(nil)

func NewCheckoutSessionDynamoRepository(ddb *dynamodb.Client) *CheckoutSessionDynamoRepository {
	return &CheckoutSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUT_SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *CheckoutSessionDynamoRepository) RecordPending(ctx context.Context, s entities.CheckoutSession) error {
	it, err := toCheckoutSessionItem(s)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	// Upsert keyed by checkout_id that refuses to downgrade a terminal
	// status: overwriting is allowed only while the row is still pending.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "checkout_id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusPending)},
		},
	})
	return err
}

func (r *CheckoutSessionDynamoRepository) RewriteCheckoutID(ctx context.Context, oldID, newID string) error {
	existing, err := r.GetByCheckoutID(ctx, oldID)
	if err != nil {
		return err
	}
	if existing.CheckoutID == "" {
		return fmt.Errorf("checkout session %s not found", oldID)
	}

	existing.CheckoutID = newID
	it, err := toCheckoutSessionItem(existing)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	// Put + Delete in one transaction: the rewrite replaces the single row,
	// it never leaves two rows for the same session.
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "checkout_id",
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"checkout_id": &types.AttributeValueMemberS{Value: oldID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "checkout_id",
					},
				},
			},
		},
	})
	return err
}

// ClaimCompleted is the only mutual-exclusion primitive in the payment core.
// It is a single conditional write, never a read-then-write: concurrent
// webhook deliveries for the same event are expected, and exactly one of
// them may observe the pending -> completed transition.
func (r *CheckoutSessionDynamoRepository) ClaimCompleted(ctx context.Context, checkoutID string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_id": &types.AttributeValueMemberS{Value: checkoutID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :completed, #completed_at = :completed_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "checkout_id",
			"#status":       "status",
			"#completed_at": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":      &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusPending)},
			":completed":    &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusCompleted)},
			":completed_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *CheckoutSessionDynamoRepository) GetByCheckoutID(ctx context.Context, checkoutID string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_id": &types.AttributeValueMemberS{Value: checkoutID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromCheckoutSessionItem(it)
}

func (r *CheckoutSessionDynamoRepository) FindExpiredPending(ctx context.Context, limit int32) ([]entities.CheckoutSession, error) {
	// Strict < on expires_at: a session exactly at its expiry instant is not
	// yet expired, so a mid-completion session is never reaped early.
	now := time.Now().UTC().Unix()

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsStatusExpiryIndex),
		KeyConditionExpression: aws.String("#status = :pending AND #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusPending)},
			":now":     &types.AttributeValueMemberN{Value: strconv.FormatInt(now, 10)},
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]entities.CheckoutSession, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checkoutSessionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		s, err := fromCheckoutSessionItem(it)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *CheckoutSessionDynamoRepository) Archive(ctx context.Context, checkoutID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_id": &types.AttributeValueMemberS{Value: checkoutID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :archived"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "checkout_id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusPending)},
			":archived": &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusArchived)},
		},
	})
	if err != nil {
		// The session may have completed between the scan and this write;
		// the claim already guards the reverse race, so losing here is fine.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toCheckoutSessionItem(s entities.CheckoutSession) (checkoutSessionItem, error) {
	meta, err := json.Marshal(s.Metadata)
	if err != nil {
		return checkoutSessionItem{}, err
	}

	it := checkoutSessionItem{
		CheckoutID: s.CheckoutID,
		ProductID:  s.ProductID,
		PlanID:     s.PlanID,
		Metadata:   string(meta),
		ExpiresAt:  s.ExpiresAt.UTC().Unix(),
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.CompletedAt != nil {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromCheckoutSessionItem(it checkoutSessionItem) (entities.CheckoutSession, error) {
	var meta entities.SessionMetadata
	if it.Metadata != "" {
		if err := json.Unmarshal([]byte(it.Metadata), &meta); err != nil {
			return entities.CheckoutSession{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.CheckoutSession{
		CheckoutID: it.CheckoutID,
		ProductID:  it.ProductID,
		PlanID:     it.PlanID,
		Metadata:   meta,
		ExpiresAt:  time.Unix(it.ExpiresAt, 0).UTC(),
		Status:     entities.CheckoutStatus(it.Status),
		CreatedAt:  createdAt,
	}
	if it.CompletedAt != "" {
		completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt)
		if err == nil {
			s.CompletedAt = &completedAt
		}
	}
	return s, nil
}
