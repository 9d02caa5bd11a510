package repository

import (
	"context"
	"errors"

	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultConfirmedOrdersTableName = "ConfirmedOrders"

// ConfirmedOrderDynamoRepository persists confirmed orders and performs the
// pending -> confirmed promotion.
//
// Table requirements:
//   - PK: order_id (string), on both the confirmed and the pending table
type ConfirmedOrderDynamoRepository struct {
	ddb          DynamoDBAPI
	tableName    string
	pendingTable string
}

var _ interfaces.IConfirmedOrderRepository = (*ConfirmedOrderDynamoRepository)(nil)

func NewConfirmedOrderDynamoRepository(ddb DynamoDBAPI) *ConfirmedOrderDynamoRepository {
	return &ConfirmedOrderDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("CONFIRMED_ORDERS_TABLE", defaultConfirmedOrdersTableName),
		pendingTable: PendingOrdersTableName(),
	}
}

// Promote writes the pending record verbatim to the confirmed table and deletes the
// pending copy in one transaction. The put requires that no confirmed record exists
// and the delete requires that the pending record still exists, so concurrent
// verifications of the same order produce a single confirmed write; the losers get
// interfaces.ErrPromotionConflict.
func (r *ConfirmedOrderDynamoRepository) Promote(ctx context.Context, pending entities.PendingOrder) (entities.ConfirmedOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(pending))
	if err != nil {
		return entities.ConfirmedOrder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "order_id",
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName:           aws.String(r.pendingTable),
					Key:                 orderKey(pending.OrderID),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "order_id",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.ConfirmedOrder{}, interfaces.ErrPromotionConflict
		}
		return entities.ConfirmedOrder{}, err
	}
	return pending.Confirm(), nil
}

func (r *ConfirmedOrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.ConfirmedOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(orderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConfirmedOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConfirmedOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConfirmedOrder{}, err
	}
	return fromConfirmedOrderItem(it), nil
}

func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
