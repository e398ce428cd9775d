package job

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is an open position posted by an admin on behalf of a company.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	CompanyID   primitive.ObjectID `bson:"company_id" json:"company_id"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	Type        string             `bson:"type" json:"type"` // full-time | internship
	SalaryMin   int                `bson:"salary_min" json:"salary_min"`
	SalaryMax   int                `bson:"salary_max" json:"salary_max"`
	Deadline    time.Time          `bson:"deadline" json:"deadline"`
	PostedBy    primitive.ObjectID `bson:"posted_by" json:"posted_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type UpsertJobRequest struct {
	Title       string    `json:"title"`
	CompanyID   string    `json:"company_id"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	SalaryMin   int       `json:"salary_min"`
	SalaryMax   int       `json:"salary_max"`
	Deadline    time.Time `json:"deadline"`
}
