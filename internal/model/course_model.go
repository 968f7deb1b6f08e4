package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Course struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseId       int64     `gorm:"index"`
	Title          string
	Provider       string
	Category       string
	Subcategory    string
	Skills         datatypes.JSONSlice[string]
	Tags           datatypes.JSONSlice[string]
	Level          string
	Price          float64
	Rating         float64
	NumReviews     int
	NumSubscribers int
	Duration       string
	Url            string
	CareerPaths    datatypes.JSONSlice[string]
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
