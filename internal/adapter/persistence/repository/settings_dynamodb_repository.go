package repository

import (
	"context"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	billingSettingsKey       = "billing"
)

type settingsItem struct {
	Key               string `dynamodbav:"key"`
	DefaultPlanID     string `dynamodbav:"default_plan_id,omitempty"`
	DefaultCurrency   string `dynamodbav:"default_currency,omitempty"`
	ProviderProductID string `dynamodbav:"provider_product_id,omitempty"`
}

// SettingsDynamoRepository resolves store-wide billing defaults from the
// settings table, with env fallbacks so a fresh deployment works before the
// settings row exists.
//
// Table requirements:
//   - PK: key (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetBillingSettings(ctx context.Context) (entities.BillingSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: billingSettingsKey},
		},
	})
	if err != nil {
		return entities.BillingSettings{}, err
	}

	var it settingsItem
	if len(out.Item) > 0 {
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return entities.BillingSettings{}, err
		}
	}

	return entities.BillingSettings{
		DefaultPlanID:     fallbackEnv(it.DefaultPlanID, "WHOP_DEFAULT_PLAN_ID"),
		DefaultCurrency:   fallbackEnv(it.DefaultCurrency, "WHOP_DEFAULT_CURRENCY"),
		ProviderProductID: fallbackEnv(it.ProviderProductID, "WHOP_PRODUCT_ID"),
	}, nil
}

func fallbackEnv(value, envKey string) string {
	if value != "" {
		return value
	}
	return getenvDefault(envKey, "")
}
