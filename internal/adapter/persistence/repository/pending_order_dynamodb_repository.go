package repository

import (
	"context"

	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPendingOrdersTableName = "PreliminaryOrders"

// PendingOrderDynamoRepository persists orders awaiting OTP confirmation.
//
// Table requirements:
//   - PK: order_id (string)
type PendingOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPendingOrderRepository = (*PendingOrderDynamoRepository)(nil)

func NewPendingOrderDynamoRepository(ddb DynamoDBAPI) *PendingOrderDynamoRepository {
	return &PendingOrderDynamoRepository{
		ddb:       ddb,
		tableName: PendingOrdersTableName(),
	}
}

// PendingOrdersTableName resolves PENDING_ORDERS_TABLE.
func PendingOrdersTableName() string {
	return getenvDefault("PENDING_ORDERS_TABLE", defaultPendingOrdersTableName)
}

func (r *PendingOrderDynamoRepository) Create(ctx context.Context, o entities.PendingOrder) (entities.PendingOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.PendingOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "order_id",
		},
	})
	if err != nil {
		return entities.PendingOrder{}, err
	}
	return o, nil
}

func (r *PendingOrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.PendingOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(orderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingOrder{}, err
	}
	return fromOrderItem(it), nil
}
