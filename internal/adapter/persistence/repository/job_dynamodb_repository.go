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
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
)

type timelineEntryItem struct {
	Event      string `dynamodbav:"event"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	OccurredAt string `dynamodbav:"occurred_at"`
	Note       string `dynamodbav:"note,omitempty"`
}

type jobItem struct {
	ID            string              `dynamodbav:"id"`
	Status        string              `dynamodbav:"status"`
	CustomerID    string              `dynamodbav:"customer_id"`
	MechanicID    string              `dynamodbav:"mechanic_id,omitempty"`
	Category      string              `dynamodbav:"category"`
	Urgency       string              `dynamodbav:"urgency"`
	Price         string              `dynamodbav:"price,omitempty"`
	ScheduledDate string              `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime string              `dynamodbav:"scheduled_time,omitempty"`
	Location      string              `dynamodbav:"location,omitempty"`
	Images        []string            `dynamodbav:"images,omitempty"`
	Timeline      []timelineEntryItem `dynamodbav:"timeline"`
	Version       int64               `dynamodbav:"version"`
	CreatedAt     string              `dynamodbav:"created_at"`
	UpdatedAt     string              `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Every write is guarded: creates require the id to be absent, updates
// require the stored version to match the version the caller read. The
// version check is the serialization point for accept-bid races.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// Update replaces the stored job only when its version still equals
// expectedVersion; the written item carries expectedVersion+1. A failed
// condition returns the zero Job so callers can distinguish "lost the race"
// from infrastructure errors.
func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job, expectedVersion int64) (entities.Job, error) {
	j.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	timeline := make([]timelineEntryItem, 0, len(j.Timeline))
	for _, e := range j.Timeline {
		timeline = append(timeline, timelineEntryItem{
			Event:      string(e.Event),
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			OccurredAt: formatTime(e.OccurredAt),
			Note:       e.Note,
		})
	}
	price := ""
	if j.Price != 0 {
		price = floatToString(j.Price)
	}
	return jobItem{
		ID:            j.ID,
		Status:        string(j.Status),
		CustomerID:    j.CustomerID,
		MechanicID:    j.MechanicID,
		Category:      j.Category,
		Urgency:       string(j.Urgency),
		Price:         price,
		ScheduledDate: j.ScheduledDate,
		ScheduledTime: j.ScheduledTime,
		Location:      j.Location,
		Images:        j.Images,
		Timeline:      timeline,
		Version:       j.Version,
		CreatedAt:     formatTime(j.CreatedAt),
		UpdatedAt:     formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	timeline := make([]entities.TimelineEntry, 0, len(it.Timeline))
	for _, e := range it.Timeline {
		timeline = append(timeline, entities.TimelineEntry{
			Event:      entities.JobEvent(e.Event),
			FromStatus: entities.JobStatus(e.FromStatus),
			ToStatus:   entities.JobStatus(e.ToStatus),
			OccurredAt: parseTime(e.OccurredAt),
			Note:       e.Note,
		})
	}
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Job{
		ID:            it.ID,
		Status:        entities.JobStatus(it.Status),
		CustomerID:    it.CustomerID,
		MechanicID:    it.MechanicID,
		Category:      it.Category,
		Urgency:       entities.JobUrgency(it.Urgency),
		Price:         price,
		ScheduledDate: it.ScheduledDate,
		ScheduledTime: it.ScheduledTime,
		Location:      it.Location,
		Images:        it.Images,
		Timeline:      timeline,
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
