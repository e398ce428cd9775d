package company

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyProfile represents a recruiting company. Name is unique.
type CompanyProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Website     string             `bson:"website" json:"website"`
	Industry    string             `bson:"industry" json:"industry"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type UpsertCompanyRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}
