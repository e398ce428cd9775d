package student

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store interface {
	Upsert(ctx context.Context, profile *Profile) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
	DeleteForUser(ctx context.Context, userID primitive.ObjectID) error
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("student_profiles")}
}

// Upsert keeps the one-profile-per-user invariant by replacing on user_id.
func (r *Repository) Upsert(ctx context.Context, profile *Profile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": profile.UserID}, profile, opts)
	return err
}

func (r *Repository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	var profile Profile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]*Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var profiles []*Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteForUser is the account-deletion cascade hook.
func (r *Repository) DeleteForUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
