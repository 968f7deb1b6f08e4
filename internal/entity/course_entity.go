package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog item the engine recommends. The dialogue engine treats
// courses as read-only; only the repository layer mutates them.
type Course struct {
	Id             uuid.UUID
	CourseId       int64
	Title          string
	Provider       string
	Category       string
	Subcategory    string
	Skills         []string
	Tags           []string
	Level          string
	Price          float64
	Rating         float64
	NumReviews     int
	NumSubscribers int
	Duration       string
	Url            string
	CareerPaths    []string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
