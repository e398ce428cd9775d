package student

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the academic details a student attaches to their account.
// One profile per user.
type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Degree         string             `bson:"degree" json:"degree"`
	Branch         string             `bson:"branch" json:"branch"`
	GraduationYear int                `bson:"graduation_year" json:"graduation_year"`
	CGPA           float64            `bson:"cgpa" json:"cgpa"`
	Skills         []string           `bson:"skills" json:"skills"`
	ResumeURL      string             `bson:"resume_url" json:"resume_url"`
}

type UpsertProfileRequest struct {
	Degree         string   `json:"degree"`
	Branch         string   `json:"branch"`
	GraduationYear int      `json:"graduation_year"`
	CGPA           float64  `json:"cgpa"`
	Skills         []string `json:"skills"`
	ResumeURL      string   `json:"resume_url"`
}
