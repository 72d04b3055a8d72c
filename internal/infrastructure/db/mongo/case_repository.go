package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

type caseDocument struct {
	ID          int64     `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	ClientID    int64     `bson:"client_id"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
}

func caseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
	}
}

// CaseRepository implements ports.CaseRepository using MongoDB.
type CaseRepository struct {
	col *mongo.Collection
	seq *sequence
}

var _ ports.CaseRepository = (*CaseRepository)(nil)

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{
		col: db.Collection(collectionCases),
		seq: newSequence(db, collectionCases),
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	c.ID = id

	doc := caseDocument{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ClientID:    c.ClientID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CaseRepository) List(ctx context.Context) ([]*domain.Case, error) {
	return r.find(ctx, bson.M{})
}

func (r *CaseRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Case, error) {
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *CaseRepository) find(ctx context.Context, filter bson.M) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Case{}
	for cur.Next(ctx) {
		var d caseDocument
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		out = append(out, &domain.Case{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			ClientID:    d.ClientID,
			Status:      d.Status,
			CreatedAt:   d.CreatedAt.UTC(),
		})
	}
	return out, cur.Err()
}
