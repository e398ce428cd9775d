package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CampusHire/internal/apperr"
)

type Store interface {
	Create(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error)
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*Application, error)
	FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*Application, error)
	Update(ctx context.Context, app *Application) error
	DeleteForJob(ctx context.Context, jobID primitive.ObjectID) error
	DeleteForUser(ctx context.Context, userID primitive.ObjectID) error
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("applications")}
}

// Create relies on the unique (job_id, student_id) index to reject duplicate
// applications.
func (r *Repository) Create(ctx context.Context, app *Application) error {
	_, err := r.collection.InsertOne(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error) {
	var app Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*Application, error) {
	return r.find(ctx, bson.M{"student_id": studentID})
}

func (r *Repository) FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*Application, error) {
	return r.find(ctx, bson.M{"job_id": jobID})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]*Application, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var apps []*Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) Update(ctx context.Context, app *Application) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": app.ID}, app)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteForJob is the job-deletion cascade hook.
func (r *Repository) DeleteForJob(ctx context.Context, jobID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"job_id": jobID})
	return err
}

// DeleteForUser is the account-deletion cascade hook.
func (r *Repository) DeleteForUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"student_id": userID})
	return err
}
