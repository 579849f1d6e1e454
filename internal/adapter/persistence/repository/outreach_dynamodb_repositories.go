package repository

import (
	"context"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContactsTableName   = "contacts"
	defaultVolunteersTableName = "volunteers"
	defaultPartnersTableName   = "partner_applications"
)

// Outreach repositories persist form submissions in DynamoDB, one table per
// record kind (PK: id). List endpoints scan the full table; these are
// admin-reviewed rows, not high-volume data.

func putItem(ctx context.Context, ddb *dynamodb.Client, tableName string, record any) error {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func scanAll(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	out, err := ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(tableName)})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	it := contactItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := putItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) List(ctx context.Context) ([]entities.Contact, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	contacts := make([]entities.Contact, 0, len(raw))
	for _, item := range raw {
		var it contactItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		contacts = append(contacts, entities.Contact{
			ID:        it.ID,
			Name:      it.Name,
			Email:     it.Email,
			Message:   it.Message,
			CreatedAt: createdAt,
		})
	}
	return contacts, nil
}

type volunteerItem struct {
	ID           string `dynamodbav:"id"`
	FullName     string `dynamodbav:"full_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	Skills       string `dynamodbav:"skills,omitempty"`
	Availability string `dynamodbav:"availability,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

type VolunteerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVolunteerRepository = (*VolunteerDynamoRepository)(nil)

func NewVolunteerDynamoRepository(ddb *dynamodb.Client) *VolunteerDynamoRepository {
	return &VolunteerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VOLUNTEERS_TABLE", defaultVolunteersTableName),
	}
}

func (r *VolunteerDynamoRepository) Create(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error) {
	it := volunteerItem{
		ID:           v.ID,
		FullName:     v.FullName,
		Email:        v.Email,
		Phone:        v.Phone,
		Skills:       v.Skills,
		Availability: v.Availability,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := putItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Volunteer{}, err
	}
	return v, nil
}

func (r *VolunteerDynamoRepository) List(ctx context.Context) ([]entities.Volunteer, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	volunteers := make([]entities.Volunteer, 0, len(raw))
	for _, item := range raw {
		var it volunteerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		volunteers = append(volunteers, entities.Volunteer{
			ID:           it.ID,
			FullName:     it.FullName,
			Email:        it.Email,
			Phone:        it.Phone,
			Skills:       it.Skills,
			Availability: it.Availability,
			CreatedAt:    createdAt,
		})
	}
	return volunteers, nil
}

type partnerApplicationItem struct {
	ID               string `dynamodbav:"id"`
	OrganizationName string `dynamodbav:"organization_name"`
	ContactPerson    string `dynamodbav:"contact_person"`
	Phone            string `dynamodbav:"phone,omitempty"`
	Email            string `dynamodbav:"email"`
	Address          string `dynamodbav:"address,omitempty"`
	Message          string `dynamodbav:"message,omitempty"`
	DateApplied      string `dynamodbav:"date_applied"`
}

type PartnerApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartnerApplicationRepository = (*PartnerApplicationDynamoRepository)(nil)

func NewPartnerApplicationDynamoRepository(ddb *dynamodb.Client) *PartnerApplicationDynamoRepository {
	return &PartnerApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTNERS_TABLE", defaultPartnersTableName),
	}
}

func (r *PartnerApplicationDynamoRepository) Create(ctx context.Context, p entities.PartnerApplication) (entities.PartnerApplication, error) {
	it := partnerApplicationItem{
		ID:               p.ID,
		OrganizationName: p.OrganizationName,
		ContactPerson:    p.ContactPerson,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		Message:          p.Message,
		DateApplied:      p.DateApplied.UTC().Format(time.RFC3339Nano),
	}
	if err := putItem(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.PartnerApplication{}, err
	}
	return p, nil
}

func (r *PartnerApplicationDynamoRepository) List(ctx context.Context) ([]entities.PartnerApplication, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	applications := make([]entities.PartnerApplication, 0, len(raw))
	for _, item := range raw {
		var it partnerApplicationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		dateApplied, _ := time.Parse(time.RFC3339Nano, it.DateApplied)
		applications = append(applications, entities.PartnerApplication{
			ID:               it.ID,
			OrganizationName: it.OrganizationName,
			ContactPerson:    it.ContactPerson,
			Phone:            it.Phone,
			Email:            it.Email,
			Address:          it.Address,
			Message:          it.Message,
			DateApplied:      dateApplied,
		})
	}
	return applications, nil
}
