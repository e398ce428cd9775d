package application

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

// Application links a student to a job. The (job_id, student_id) pair is
// unique; applying twice is a conflict.
type Application struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	JobID     primitive.ObjectID `bson:"job_id" json:"job_id"`
	StudentID primitive.ObjectID `bson:"student_id" json:"student_id"`
	Status    string             `bson:"status" json:"status"`
	AppliedAt time.Time          `bson:"applied_at" json:"applied_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
