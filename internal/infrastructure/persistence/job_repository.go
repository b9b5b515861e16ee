package persistence

import (
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/baropoint/tubegate/internal/domain/entity"
)

type JobRepository struct {
	db        *dynamodb.DynamoDB
	tableName string
}

func NewJobRepository(sess *session.Session, tableName string) *JobRepository {
	return &JobRepository{dynamodb.New(sess), tableName}
}

// Get the download job by the job ID.
func (r *JobRepository) GetById(id string) (*entity.Job, error) {
	out, err := r.db.GetItem(&dynamodb.GetItemInput{
		Key:       map[string]*dynamodb.AttributeValue{"id": {S: aws.String(id)}},
		TableName: aws.String(r.tableName),
	})
	if err != nil || len(out.Item) == 0 {
		return nil, err
	}
	var job *entity.Job
	err = dynamodbattribute.UnmarshalMap(out.Item, &job)
	return job, err
}

// Save an entity to the persistence.
func (r *JobRepository) Save(job *entity.Job) error {
	av, err := dynamodbattribute.MarshalMap(job)
	if err != nil {
		return err
	}
	_, err = r.db.PutItem(&dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		log.Printf("failed to save persistence: %v", av)
	}
	return err
}
