package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChangeOrdersTableName = "change_orders"
	changeOrdersJobIDIndex       = "job_id-index"
)

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	ServiceName string `dynamodbav:"service_name"`
	Category    string `dynamodbav:"category"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
	IsRequired  bool   `dynamodbav:"is_required"`
}

type changeOrderItem struct {
	ID                        string         `dynamodbav:"id"`
	JobID                     string         `dynamodbav:"job_id"`
	Title                     string         `dynamodbav:"title"`
	Description               string         `dynamodbav:"description,omitempty"`
	LineItems                 []lineItemItem `dynamodbav:"line_items"`
	TotalAmount               string         `dynamodbav:"total_amount"`
	Urgency                   string         `dynamodbav:"urgency"`
	RequiresImmediateApproval bool           `dynamodbav:"requires_immediate_approval"`
	Status                    string         `dynamodbav:"status"`
	PaymentIntentID           string         `dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt                 string         `dynamodbav:"created_at"`
	UpdatedAt                 string         `dynamodbav:"updated_at"`
	ExpiresAt                 string         `dynamodbav:"expires_at,omitempty"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Status moves are conditional on the expected current status, so a
// concurrent decision/expiry can never be overwritten; the loser observes
// the zero ChangeOrder.

type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	av, err := attributevalue.MarshalMap(toChangeOrderItem(co))
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeOrdersJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalChangeOrders(out.Items)
}

// ListPending scans for pending change orders. The expiry sweep is the only
// caller; the pending set stays small because it is bounded by in-flight
// jobs.
func (r *ChangeOrderDynamoRepository) ListPending(ctx context.Context) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalChangeOrders(out.Items)
}

func (r *ChangeOrderDynamoRepository) UpdateStatusIfCurrent(ctx context.Context, id string, current, next entities.ChangeOrderStatus, paymentIntentID string) (entities.ChangeOrder, error) {
	now := formatTime(time.Now())

	updateExpr := "SET #status = :next, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":current":    &types.AttributeValueMemberS{Value: string(current)},
		":next":       &types.AttributeValueMemberS{Value: string(next)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if paymentIntentID != "" {
		updateExpr += ", #payment_intent_id = :pi"
		names["#payment_intent_id"] = "payment_intent_id"
		values[":pi"] = &types.AttributeValueMemberS{Value: paymentIntentID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :current"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeOrder{}, nil
		}
		return entities.ChangeOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ChangeOrder{}, nil
	}
	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func unmarshalChangeOrders(raw []map[string]types.AttributeValue) ([]entities.ChangeOrder, error) {
	items := make([]entities.ChangeOrder, 0, len(raw))
	for _, m := range raw {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChangeOrderItem(it))
	}
	return items, nil
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	items := make([]lineItemItem, 0, len(co.LineItems))
	for _, li := range co.LineItems {
		items = append(items, lineItemItem{
			ID:          li.ID,
			ServiceName: li.ServiceName,
			Category:    string(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   floatToString(li.UnitPrice),
			TotalPrice:  floatToString(li.TotalPrice),
			IsRequired:  li.IsRequired,
		})
	}
	expiresAt := ""
	if co.ExpiresAt != nil {
		expiresAt = formatTime(*co.ExpiresAt)
	}
	return changeOrderItem{
		ID:                        co.ID,
		JobID:                     co.JobID,
		Title:                     co.Title,
		Description:               co.Description,
		LineItems:                 items,
		TotalAmount:               floatToString(co.TotalAmount),
		Urgency:                   string(co.Urgency),
		RequiresImmediateApproval: co.RequiresImmediateApproval,
		Status:                    string(co.Status),
		PaymentIntentID:           co.PaymentIntentID,
		CreatedAt:                 formatTime(co.CreatedAt),
		UpdatedAt:                 formatTime(co.UpdatedAt),
		ExpiresAt:                 expiresAt,
	}
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		unitPrice, _ := strconv.ParseFloat(li.UnitPrice, 64)
		totalPrice, _ := strconv.ParseFloat(li.TotalPrice, 64)
		items = append(items, entities.LineItem{
			ID:          li.ID,
			ServiceName: li.ServiceName,
			Category:    entities.LineItemCategory(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  totalPrice,
			IsRequired:  li.IsRequired,
		})
	}
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	var expiresAt *time.Time
	if it.ExpiresAt != "" {
		t := parseTime(it.ExpiresAt)
		expiresAt = &t
	}
	return entities.ChangeOrder{
		ID:                        it.ID,
		JobID:                     it.JobID,
		Title:                     it.Title,
		Description:               it.Description,
		LineItems:                 items,
		TotalAmount:               total,
		Urgency:                   entities.ChangeOrderUrgency(it.Urgency),
		RequiresImmediateApproval: it.RequiresImmediateApproval,
		Status:                    entities.ChangeOrderStatus(it.Status),
		PaymentIntentID:           it.PaymentIntentID,
		CreatedAt:                 parseTime(it.CreatedAt),
		UpdatedAt:                 parseTime(it.UpdatedAt),
		ExpiresAt:                 expiresAt,
	}
}
