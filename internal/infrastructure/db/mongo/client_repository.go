package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

type clientDocument struct {
	ID          int64     `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	CompanyName string    `bson:"company_name"`
	CreatedAt   time.Time `bson:"created_at"`
	IsActive    bool      `bson:"is_active"`
}

func toClientDocument(c *domain.Client) clientDocument {
	return clientDocument{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		CreatedAt:   c.CreatedAt.UTC(),
		IsActive:    c.IsActive,
	}
}

func (d clientDocument) toDomain() *domain.Client {
	return &domain.Client{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		CompanyName: d.CompanyName,
		CreatedAt:   d.CreatedAt.UTC(),
		IsActive:    d.IsActive,
	}
}

func clientIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "is_active", Value: 1}}},
	}
}

// ClientRepository implements ports.ClientRepository using MongoDB.
type ClientRepository struct {
	col *mongo.Collection
	seq *sequence
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		col: db.Collection(collectionClients),
		seq: newSequence(db, collectionClients),
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	c.ID = id

	if _, err := r.col.InsertOne(ctx, toClientDocument(c)); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, clientFilterQuery(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Client{}
	for cur.Next(ctx) {
		var doc clientDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, toClientDocument(c))
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// clientFilterQuery translates the port filter into a MongoDB query with the
// same semantics as ports.ClientFilter.Matches.
func clientFilterQuery(f ports.ClientFilter) bson.M {
	q := bson.M{}
	if f.ActiveOnly {
		q["is_active"] = true
	}
	if f.Email != "" {
		q["email"] = f.Email
	}
	if f.ExcludeID != 0 {
		q["_id"] = bson.M{"$ne": f.ExcludeID}
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		q["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern}},
			bson.M{"email": bson.M{"$regex": pattern}},
			bson.M{"company_name": bson.M{"$regex": pattern}},
		}
	}
	return q
}
