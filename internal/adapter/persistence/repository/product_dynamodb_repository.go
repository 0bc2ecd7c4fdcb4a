package repository

import (
	"context"
	"strconv"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID                int    `dynamodbav:"id"`
	Title             string `dynamodbav:"title"`
	Price             string `dynamodbav:"price"`
	SalePrice         string `dynamodbav:"sale_price,omitempty"`
	PlanID            string `dynamodbav:"plan_id,omitempty"`
	ProviderProductID string `dynamodbav:"provider_product_id,omitempty"`
	Addons            string `dynamodbav:"addons,omitempty"`
}

// ProductDynamoRepository reads Product records from DynamoDB. The payment
// core never writes to the catalog.
//
// Table requirements:
//   - PK: id (number)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id int) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}

	price, _ := strconv.ParseFloat(it.Price, 64)
	salePrice, _ := strconv.ParseFloat(it.SalePrice, 64)
	return entities.Product{
		ID:                it.ID,
		Title:             it.Title,
		Price:             price,
		SalePrice:         salePrice,
		PlanID:            it.PlanID,
		ProviderProductID: it.ProviderProductID,
		Addons:            []byte(it.Addons),
	}, nil
}
