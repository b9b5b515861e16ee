package persistence

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/baropoint/tubegate/internal/domain/entity"
)

type FavoriteRepository struct {
	db        *dynamodb.DynamoDB
	tableName string
}

func NewFavoriteRepository(sess *session.Session, tableName string) *FavoriteRepository {
	return &FavoriteRepository{dynamodb.New(sess), tableName}
}

// Get all favorites bookmarked by the user ID.
func (r *FavoriteRepository) GetByUserId(userId string) ([]*entity.Favorite, error) {
	out, err := r.db.Query(&dynamodb.QueryInput{
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":user_id": {S: aws.String(userId)},
		},
		ScanIndexForward: aws.Bool(false),
		TableName:        aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var favorites []*entity.Favorite
	if err = dynamodbattribute.UnmarshalListOfMaps(out.Items, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}
