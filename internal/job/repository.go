package job

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CampusHire/internal/apperr"
)

type Store interface {
	Create(ctx context.Context, job *Job) error
	FindAll(ctx context.Context) ([]*Job, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("jobs")}
}

func (r *Repository) Create(ctx context.Context, job *Job) error {
	_, err := r.collection.InsertOne(ctx, job)
	return err
}

func (r *Repository) FindAll(ctx context.Context) ([]*Job, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var jobs []*Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Job, error) {
	var job Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *Repository) Update(ctx context.Context, job *Job) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": job.ID}, job)
	if err != nil {
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
