package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAttemptsTableName = "payment_attempts"

	// Correlation ids are claimed as their own items in the attempts table,
	// keyed with this prefix. A conditional put on the claim item is what
	// makes "exactly one attempt per correlation id" atomic.
	correlationKeyPrefix = "corr#"
)

type paymentAttemptItem struct {
	ID                string  `dynamodbav:"id"`
	Provider          string  `dynamodbav:"provider"`
	PayerReference    string  `dynamodbav:"payer_reference"`
	Amount            float64 `dynamodbav:"amount"`
	Currency          string  `dynamodbav:"currency,omitempty"`
	CheckoutRequestID string  `dynamodbav:"checkout_request_id,omitempty"`
	MerchantRequestID string  `dynamodbav:"merchant_request_id,omitempty"`
	OrderID           string  `dynamodbav:"order_id,omitempty"`
	Status            string  `dynamodbav:"status"`
	ProviderPayload   string  `dynamodbav:"provider_payload,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

type correlationClaimItem struct {
	ID        string `dynamodbav:"id"`
	AttemptID string `dynamodbav:"attempt_id"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string); attempt items and corr#-prefixed claim items share it.
//
// CloseStatus maps onto a conditional UpdateItem ("status = :from"), which is
// the compare-and-set guarantee: two racing terminal callbacks apply at most
// one real transition, the loser sees a conditional check failure.

type PaymentAttemptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLedger = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultAttemptsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	it := toPaymentAttemptItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentAttempt{}, err
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
		return entities.PaymentAttempt{}, err
	}
	return a, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) FindByCorrelationID(ctx context.Context, correlationID string) (entities.PaymentAttempt, error) {
	if correlationID == "" {
		return entities.PaymentAttempt{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: correlationKeyPrefix + correlationID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var claim correlationClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return r.GetByID(ctx, claim.AttemptID)
}

func (r *PaymentAttemptDynamoRepository) AttachCorrelationIDs(ctx context.Context, id string, ids entities.CorrelationIDs, payload json.RawMessage) error {
	for _, cid := range ids.Values() {
		if err := r.claimCorrelationID(ctx, cid, id); err != nil {
			return err
		}
	}

	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}
	if ids.CheckoutRequestID != "" {
		expr += ", checkout_request_id = :checkout"
		vals[":checkout"] = &types.AttributeValueMemberS{Value: ids.CheckoutRequestID}
	}
	if ids.MerchantRequestID != "" {
		expr += ", merchant_request_id = :merchant"
		vals[":merchant"] = &types.AttributeValueMemberS{Value: ids.MerchantRequestID}
	}
	if ids.OrderID != "" {
		expr += ", order_id = :order"
		vals[":order"] = &types.AttributeValueMemberS{Value: ids.OrderID}
	}
	if len(payload) > 0 {
		expr += ", provider_payload = :payload"
		vals[":payload"] = &types.AttributeValueMemberS{Value: string(payload)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	return err
}

// claimCorrelationID writes the claim item for a correlation id. Re-claiming
// an id for the same attempt is a no-op; a claim held by another attempt is
// rejected.
func (r *PaymentAttemptDynamoRepository) claimCorrelationID(ctx context.Context, correlationID, attemptID string) error {
	av, err := attributevalue.MarshalMap(correlationClaimItem{
		ID:        correlationKeyPrefix + correlationID,
		AttemptID: attemptID,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR attempt_id = :attempt_id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":attempt_id": &types.AttributeValueMemberS{Value: attemptID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrCorrelationIDClaimed
		}
		return err
	}
	return nil
}

func (r *PaymentAttemptDynamoRepository) CloseStatus(ctx context.Context, id string, from, to entities.AttemptStatus, payload json.RawMessage) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #status = :to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if len(payload) > 0 {
		expr += ", provider_payload = :payload"
		vals[":payload"] = &types.AttributeValueMemberS{Value: string(payload)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Attempt missing or already terminal: the transition did not
			// apply, which callers treat as a duplicate-close no-op.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	return paymentAttemptItem{
		ID:                a.ID,
		Provider:          string(a.Provider),
		PayerReference:    a.PayerReference,
		Amount:            a.Amount,
		Currency:          a.Currency,
		CheckoutRequestID: a.CheckoutRequestID,
		MerchantRequestID: a.MerchantRequestID,
		OrderID:           a.OrderID,
		Status:            string(a.Status),
		ProviderPayload:   string(a.ProviderPayload),
		CreatedAt:         a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var payload json.RawMessage
	if it.ProviderPayload != "" {
		payload = json.RawMessage(it.ProviderPayload)
	}
	return entities.PaymentAttempt{
		ID:                it.ID,
		Provider:          entities.PaymentProvider(it.Provider),
		PayerReference:    it.PayerReference,
		Amount:            it.Amount,
		Currency:          it.Currency,
		CheckoutRequestID: it.CheckoutRequestID,
		MerchantRequestID: it.MerchantRequestID,
		OrderID:           it.OrderID,
		Status:            entities.AttemptStatus(it.Status),
		ProviderPayload:   payload,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
