package mapper

import (
	"time"

	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/model"

	"gorm.io/datatypes"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Course{
		Id:             c.Id,
		CourseId:       c.CourseId,
		Title:          c.Title,
		Provider:       c.Provider,
		Category:       c.Category,
		Subcategory:    c.Subcategory,
		Skills:         append([]string(nil), c.Skills...),
		Tags:           append([]string(nil), c.Tags...),
		Level:          c.Level,
		Price:          c.Price,
		Rating:         c.Rating,
		NumReviews:     c.NumReviews,
		NumSubscribers: c.NumSubscribers,
		Duration:       c.Duration,
		Url:            c.Url,
		CareerPaths:    append([]string(nil), c.CareerPaths...),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Course{
		Id:             c.Id,
		CourseId:       c.CourseId,
		Title:          c.Title,
		Provider:       c.Provider,
		Category:       c.Category,
		Subcategory:    c.Subcategory,
		Skills:         datatypes.NewJSONSlice(c.Skills),
		Tags:           datatypes.NewJSONSlice(c.Tags),
		Level:          c.Level,
		Price:          c.Price,
		Rating:         c.Rating,
		NumReviews:     c.NumReviews,
		NumSubscribers: c.NumSubscribers,
		Duration:       c.Duration,
		Url:            c.Url,
		CareerPaths:    datatypes.NewJSONSlice(c.CareerPaths),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
