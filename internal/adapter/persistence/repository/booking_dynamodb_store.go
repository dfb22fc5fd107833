package repository

import (
	"context"
	"errors"
	"time"

	"reservas_xpto/internal/domain/entities"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsCustomerIDIndex  = "customer_id-index"

	conditionalCheckFailed = "ConditionalCheckFailed"

	opInsertBooking = "insert_booking"
	opClaimSlot     = "claim_slot"
)

type bookingItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	ResourceID string `dynamodbav:"resource_id"`
	StartsAt   string `dynamodbav:"starts_at"`
	EndsAt     string `dynamodbav:"ends_at"`
	CreatedAt  string `dynamodbav:"created_at"`

	DepositStatus      string `dynamodbav:"deposit_status"`
	DepositAmountCents int64  `dynamodbav:"deposit_amount_cents,omitempty"`
	DepositCurrency    string `dynamodbav:"deposit_currency,omitempty"`
	CheckoutSessionID  string `dynamodbav:"checkout_session_id,omitempty"`
	PaymentIntentID    string `dynamodbav:"payment_intent_id,omitempty"`
}

// BookingDynamoStore persists bookings in DynamoDB.
//
// Table requirements:
//   - PK: id (string); booking rows use the correlation id, slot-claim rows
//     use "slot#<resource>#<start>"
//   - GSI: customer_id-index (PK: customer_id)
//
// The WithTransaction scope only stages items in memory; the whole staged
// set commits in a single TransactWriteItems call after the closure returns,
// so the "transaction" is as short as one network round trip and contains no
// caller I/O.
type BookingDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingStore = (*BookingDynamoStore)(nil)

func NewBookingDynamoStore(ddb *dynamodb.Client, tableName string) *BookingDynamoStore {
	if tableName == "" {
		tableName = defaultBookingsTableName
	}
	return &BookingDynamoStore{ddb: ddb, tableName: tableName}
}

type dynamoBookingTx struct {
	tableName string
	items     []types.TransactWriteItem
	ops       []string
}

var _ interfaces.BookingTx = (*dynamoBookingTx)(nil)

func (t *dynamoBookingTx) Insert(b entities.Booking) error {
	if err := b.ValidateDepositLink(); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return err
	}
	t.items = append(t.items, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	t.ops = append(t.ops, opInsertBooking)
	return nil
}

func (t *dynamoBookingTx) ClaimSlot(resourceID string, startsAt time.Time) error {
	t.items = append(t.items, types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(t.tableName),
		Item: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: slotClaimID(resourceID, startsAt)},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	t.ops = append(t.ops, opClaimSlot)
	return nil
}

func slotClaimID(resourceID string, startsAt time.Time) string {
	return "slot#" + resourceID + "#" + startsAt.UTC().Format(time.RFC3339)
}

func (s *BookingDynamoStore) WithTransaction(ctx context.Context, fn func(tx interfaces.BookingTx) error) error {
	tx := &dynamoBookingTx{tableName: s.tableName}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.items) == 0 {
		return nil
	}

	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx.items,
	})
	if err != nil {
		return mapTransactionError(err, tx.ops)
	}
	return nil
}

// mapTransactionError translates a cancelled transaction into the domain
// sentinel of the first item whose condition failed. Cancellation reasons
// come back positionally, matching the staged item order.
func mapTransactionError(err error, ops []string) error {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return err
	}
	for i, reason := range canceled.CancellationReasons {
		if reason.Code == nil || *reason.Code != conditionalCheckFailed {
			continue
		}
		if i >= len(ops) {
			break
		}
		switch ops[i] {
		case opClaimSlot:
			return interfaces.ErrSlotUnavailable
		case opInsertBooking:
			return interfaces.ErrBookingAlreadyExists
		}
	}
	return err
}

func (s *BookingDynamoStore) FindByCorrelationID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (s *BookingDynamoStore) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(bookingsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		ResourceID:         b.ResourceID,
		StartsAt:           b.StartsAt.UTC().Format(time.RFC3339Nano),
		EndsAt:             b.EndsAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339Nano),
		DepositStatus:      string(b.DepositStatus),
		DepositAmountCents: b.DepositAmountCents,
		DepositCurrency:    b.DepositCurrency,
		CheckoutSessionID:  b.CheckoutSessionID,
		PaymentIntentID:    b.PaymentIntentID,
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	startsAt, _ := time.Parse(time.RFC3339Nano, it.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339Nano, it.EndsAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Booking{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		ResourceID:         it.ResourceID,
		StartsAt:           startsAt,
		EndsAt:             endsAt,
		CreatedAt:          createdAt,
		DepositStatus:      entities.DepositStatus(it.DepositStatus),
		DepositAmountCents: it.DepositAmountCents,
		DepositCurrency:    it.DepositCurrency,
		CheckoutSessionID:  it.CheckoutSessionID,
		PaymentIntentID:    it.PaymentIntentID,
	}
}
