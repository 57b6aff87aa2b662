package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

const collectionConsultants = "consultants"

// ConsultantRepository implements ports.ConsultantRepository using MongoDB.
// The consultant id is the document _id, which makes it unique.
type ConsultantRepository struct {
	col *mongo.Collection
}

func NewConsultantRepository(db *mongo.Database) *ConsultantRepository {
	return &ConsultantRepository{col: db.Collection(collectionConsultants)}
}

type consultantDoc struct {
	ID         string    `bson:"_id"`
	AuthID     string    `bson:"auth_id"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	WhatsApp   string    `bson:"whatsapp"`
	DocumentID string    `bson:"document_id"`
	Address    string    `bson:"address"`
	Role       string    `bson:"role"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toConsultantDoc(c *domain.Consultant) consultantDoc {
	return consultantDoc{
		ID:         c.ID,
		AuthID:     c.AuthID,
		Name:       c.Name,
		Email:      c.Email,
		WhatsApp:   c.WhatsApp,
		DocumentID: c.DocumentID,
		Address:    c.Address,
		Role:       string(c.Role),
		CreatedAt:  c.CreatedAt.UTC(),
	}
}

func (d consultantDoc) toDomain() *domain.Consultant {
	return &domain.Consultant{
		ID:         d.ID,
		AuthID:     d.AuthID,
		Name:       d.Name,
		Email:      d.Email,
		WhatsApp:   d.WhatsApp,
		DocumentID: d.DocumentID,
		Address:    d.Address,
		Role:       domain.Role(d.Role),
		CreatedAt:  d.CreatedAt,
	}
}

// FindByID retrieves a consultant by id.
func (r *ConsultantRepository) FindByID(ctx context.Context, id string) (*domain.Consultant, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByAuthID retrieves the consultant linked to an identity.
func (r *ConsultantRepository) FindByAuthID(ctx context.Context, authID string) (*domain.Consultant, error) {
	return r.findOne(ctx, bson.M{"auth_id": authID})
}

func (r *ConsultantRepository) findOne(ctx context.Context, filter bson.M) (*domain.Consultant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc consultantDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConsultantNotFound
		}
		return nil, fmt.Errorf("find consultant: %w", err)
	}
	return doc.toDomain(), nil
}

// Insert writes a new consultant. A duplicate _id is reported as
// domain.ErrIDCollision so the caller can draw a new id.
func (r *ConsultantRepository) Insert(ctx context.Context, c *domain.Consultant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toConsultantDoc(c)); err != nil {
		return insertError(err)
	}
	return nil
}

// insertError maps an InsertOne failure onto the domain errors the
// registration flow understands.
func insertError(err error) error {
	switch {
	case isDuplicateOn(err, "_id_"):
		return domain.ErrIDCollision
	case isDuplicateOn(err, "email_1"):
		return domain.Fail(domain.ErrEmailTaken, errors.New(domain.MsgEmailTaken))
	default:
		return fmt.Errorf("insert consultant: %w", err)
	}
}

// EnsureIndexes creates necessary indexes on the consultants collection.
func (r *ConsultantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "auth_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// isDuplicateOn reports whether err is a duplicate key violation of the
// named index.
func isDuplicateOn(err error, index string) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == 11000 && strings.Contains(e.Message, "index: "+index) {
			return true
		}
	}
	return false
}
