package company

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CampusHire/internal/apperr"
)

// Store is the contract the service depends on; *Repository is the Mongo
// implementation.
type Store interface {
	Create(ctx context.Context, company *CompanyProfile) error
	FindAll(ctx context.Context) ([]*CompanyProfile, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*CompanyProfile, error)
	Update(ctx context.Context, company *CompanyProfile) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("companies")}
}

func (r *Repository) Create(ctx context.Context, company *CompanyProfile) error {
	_, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]*CompanyProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var companies []*CompanyProfile
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*CompanyProfile, error) {
	var company CompanyProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *Repository) Update(ctx context.Context, company *CompanyProfile) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": company.ID}, company)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
