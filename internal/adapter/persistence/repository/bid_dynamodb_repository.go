package repository

import (
	"context"
	"errors"
	"strconv"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "bids"
	bidsJobIDIndex       = "job_id-index"
)

type bidItem struct {
	ID                string `dynamodbav:"id"`
	JobID             string `dynamodbav:"job_id"`
	MechanicID        string `dynamodbav:"mechanic_id"`
	Amount            string `dynamodbav:"amount"`
	Message           string `dynamodbav:"message"`
	EstimatedDuration int    `dynamodbav:"estimated_duration"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// BidDynamoRepository persists Bid entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Status decisions are conditional pending -> x writes; a bid that has
// already been decided or withdrawn is reported as the zero Bid, never
// overwritten.

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
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
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	bids := make([]entities.Bid, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bidItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bids = append(bids, fromBidItem(it))
	}
	return bids, nil
}

func (r *BidDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.BidStatus) (entities.Bid, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.BidStatusPending)},
			":status":  &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bid{}, nil
		}
		return entities.Bid{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bid{}, nil
	}
	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func toBidItem(b entities.Bid) bidItem {
	return bidItem{
		ID:                b.ID,
		JobID:             b.JobID,
		MechanicID:        b.MechanicID,
		Amount:            floatToString(b.Amount),
		Message:           b.Message,
		EstimatedDuration: b.EstimatedDuration,
		Status:            string(b.Status),
		CreatedAt:         formatTime(b.CreatedAt),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Bid{
		ID:                it.ID,
		JobID:             it.JobID,
		MechanicID:        it.MechanicID,
		Amount:            amount,
		Message:           it.Message,
		EstimatedDuration: it.EstimatedDuration,
		Status:            entities.BidStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
