package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName      = "bills"
	defaultUsageDailyTableName = "usage_daily"
	defaultUsersTableName      = "users"
	defaultPlansTableName      = "plans"
	defaultAddOnsTableName     = "addons"

	billIDIndexName = "bill_id-index"

	// Bills older than this are never analyzed, so deeper queries are wasted reads.
	maxBillHistory = 24

	usageDateLayout = "2006-01-02"
)

type billLineItem struct {
	Category    string  `dynamodbav:"category"`
	Subtype     string  `dynamodbav:"subtype,omitempty"`
	Description string  `dynamodbav:"description,omitempty"`
	Amount      string  `dynamodbav:"amount"`
	UnitPrice   string  `dynamodbav:"unit_price,omitempty"`
	Quantity    float64 `dynamodbav:"quantity,omitempty"`
	TaxRate     float64 `dynamodbav:"tax_rate,omitempty"`
}

type billItem struct {
	UserID      string         `dynamodbav:"user_id"`
	Period      string         `dynamodbav:"period"`
	BillID      string         `dynamodbav:"bill_id"`
	PeriodStart string         `dynamodbav:"period_start"`
	PeriodEnd   string         `dynamodbav:"period_end"`
	TotalAmount string         `dynamodbav:"total_amount"`
	Subtotal    string         `dynamodbav:"subtotal"`
	Taxes       string         `dynamodbav:"taxes"`
	Currency    string         `dynamodbav:"currency"`
	Items       []billLineItem `dynamodbav:"items"`
}

type usageDailyItem struct {
	UserID      string  `dynamodbav:"user_id"`
	UsageDate   string  `dynamodbav:"usage_date"`
	MBUsed      float64 `dynamodbav:"mb_used"`
	MinutesUsed float64 `dynamodbav:"minutes_used"`
	SMSUsed     int     `dynamodbav:"sms_used"`
	RoamingMB   float64 `dynamodbav:"roaming_mb"`
}

type userItem struct {
	UserID        string `dynamodbav:"user_id"`
	Name          string `dynamodbav:"name,omitempty"`
	MSISDN        string `dynamodbav:"msisdn,omitempty"`
	CurrentPlanID string `dynamodbav:"current_plan_id"`
}

type planItem struct {
	PlanID       string  `dynamodbav:"plan_id"`
	Name         string  `dynamodbav:"name,omitempty"`
	Type         string  `dynamodbav:"type,omitempty"`
	QuotaGB      float64 `dynamodbav:"quota_gb"`
	QuotaMin     float64 `dynamodbav:"quota_min"`
	QuotaSMS     float64 `dynamodbav:"quota_sms"`
	MonthlyPrice string  `dynamodbav:"monthly_price"`
	OverageGB    string  `dynamodbav:"overage_gb"`
	OverageMin   string  `dynamodbav:"overage_min"`
	OverageSMS   string  `dynamodbav:"overage_sms"`
	Active       bool    `dynamodbav:"active"`
}

type addOnItem struct {
	AddonID         string   `dynamodbav:"addon_id"`
	Name            string   `dynamodbav:"name,omitempty"`
	ExtraGB         float64  `dynamodbav:"extra_gb"`
	ExtraMin        float64  `dynamodbav:"extra_min"`
	ExtraSMS        float64  `dynamodbav:"extra_sms"`
	Price           string   `dynamodbav:"price"`
	CompatiblePlans []string `dynamodbav:"compatible_plans,omitempty"`
}

// BillingDynamoRepository reads the billing domain tables in DynamoDB.
//
// Table requirements:
//   - bills:       PK user_id (string), SK period (string YYYY-MM),
//     GSI bill_id-index on bill_id
//   - usage_daily: PK user_id (string), SK usage_date (string YYYY-MM-DD)
//   - users:       PK user_id (string)
//   - plans:       PK plan_id (string)
//   - addons:      PK addon_id (string)
//
// All reads follow the not-found-is-zero-value convention of
// interfaces.IBillingRepository; missing rows are not errors.

type BillingDynamoRepository struct {
	ddb        *dynamodb.Client
	billsTable string
	usageTable string
	usersTable string
	plansTable string
	addonTable string
}

var _ interfaces.IBillingRepository = (*BillingDynamoRepository)(nil)

func NewBillingDynamoRepository(ddb *dynamodb.Client) *BillingDynamoRepository {
	return &BillingDynamoRepository{
		ddb:        ddb,
		billsTable: getenvDefault("BILLS_TABLE", defaultBillsTableName),
		usageTable: getenvDefault("USAGE_DAILY_TABLE", defaultUsageDailyTableName),
		usersTable: getenvDefault("USERS_TABLE", defaultUsersTableName),
		plansTable: getenvDefault("PLANS_TABLE", defaultPlansTableName),
		addonTable: getenvDefault("ADDONS_TABLE", defaultAddOnsTableName),
	}
}

func (r *BillingDynamoRepository) GetBill(ctx context.Context, userID, period string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.billsTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
			"period":  &types.AttributeValueMemberS{Value: period},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillingDynamoRepository) GetBillByID(ctx context.Context, billID string) (entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.billsTable),
		IndexName:              aws.String(billIDIndexName),
		KeyConditionExpression: aws.String("#bill_id = :bill_id"),
		ExpressionAttributeNames: map[string]string{
			"#bill_id": "bill_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bill_id": &types.AttributeValueMemberS{Value: billID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Items) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillingDynamoRepository) GetHistoricalBills(ctx context.Context, userID, beforePeriod string, minMonths int) ([]entities.Bill, error) {
	limit := maxBillHistory
	if minMonths > limit {
		limit = minMonths
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.billsTable),
		KeyConditionExpression: aws.String("#user_id = :user_id AND #period < :before"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
			"#period":  "period",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":before":  &types.AttributeValueMemberS{Value: beforePeriod},
		},
		ScanIndexForward: aws.Bool(false), // newest first
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	bills := make([]entities.Bill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bills = append(bills, fromBillItem(it))
	}
	return bills, nil
}

func (r *BillingDynamoRepository) GetDailyUsage(ctx context.Context, userID string, from, to time.Time) ([]entities.UsageDailyRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.usageTable),
		KeyConditionExpression: aws.String("#user_id = :user_id AND #usage_date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#user_id":    "user_id",
			"#usage_date": "usage_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":from":    &types.AttributeValueMemberS{Value: from.Format(usageDateLayout)},
			":to":      &types.AttributeValueMemberS{Value: to.Format(usageDateLayout)},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.UsageDailyRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it usageDailyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromUsageDailyItem(it))
	}
	return records, nil
}

func (r *BillingDynamoRepository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.usersTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		UserID:        it.UserID,
		Name:          it.Name,
		MSISDN:        it.MSISDN,
		CurrentPlanID: it.CurrentPlanID,
	}, nil
}

func (r *BillingDynamoRepository) GetPlan(ctx context.Context, planID string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.plansTable),
		Key: map[string]types.AttributeValue{
			"plan_id": &types.AttributeValueMemberS{Value: planID},
		},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *BillingDynamoRepository) GetAddOn(ctx context.Context, addonID string) (entities.AddOnPack, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.addonTable),
		Key: map[string]types.AttributeValue{
			"addon_id": &types.AttributeValueMemberS{Value: addonID},
		},
	})
	if err != nil {
		return entities.AddOnPack{}, err
	}
	if len(out.Item) == 0 {
		return entities.AddOnPack{}, nil
	}

	var it addOnItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AddOnPack{}, err
	}
	return entities.AddOnPack{
		AddonID:         it.AddonID,
		Name:            it.Name,
		ExtraGB:         it.ExtraGB,
		ExtraMin:        it.ExtraMin,
		ExtraSMS:        it.ExtraSMS,
		Price:           parseFloat(it.Price),
		CompatiblePlans: it.CompatiblePlans,
	}, nil
}

func fromBillItem(it billItem) entities.Bill {
	periodStart, _ := time.Parse(time.RFC3339Nano, it.PeriodStart)
	periodEnd, _ := time.Parse(time.RFC3339Nano, it.PeriodEnd)

	items := make([]entities.BillItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.BillItem{
			Category:    entities.ItemCategory(line.Category),
			Subtype:     line.Subtype,
			Description: line.Description,
			Amount:      parseFloat(line.Amount),
			UnitPrice:   parseFloat(line.UnitPrice),
			Quantity:    line.Quantity,
			TaxRate:     line.TaxRate,
		})
	}
	return entities.Bill{
		BillID:      it.BillID,
		UserID:      it.UserID,
		Period:      it.Period,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalAmount: parseFloat(it.TotalAmount),
		Subtotal:    parseFloat(it.Subtotal),
		Taxes:       parseFloat(it.Taxes),
		Currency:    it.Currency,
		Items:       items,
	}
}

func fromUsageDailyItem(it usageDailyItem) entities.UsageDailyRecord {
	usageDate, _ := time.Parse(usageDateLayout, it.UsageDate)
	return entities.UsageDailyRecord{
		UserID:      it.UserID,
		UsageDate:   usageDate,
		MBUsed:      it.MBUsed,
		MinutesUsed: it.MinutesUsed,
		SMSUsed:     it.SMSUsed,
		RoamingMB:   it.RoamingMB,
	}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		PlanID:       it.PlanID,
		Name:         it.Name,
		Type:         it.Type,
		QuotaGB:      it.QuotaGB,
		QuotaMin:     it.QuotaMin,
		QuotaSMS:     it.QuotaSMS,
		MonthlyPrice: parseFloat(it.MonthlyPrice),
		OverageGB:    parseFloat(it.OverageGB),
		OverageMin:   parseFloat(it.OverageMin),
		OverageSMS:   parseFloat(it.OverageSMS),
		Active:       it.Active,
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
