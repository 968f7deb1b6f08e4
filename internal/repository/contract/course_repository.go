package contract

import (
	"context"

	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/repository/specification"
)

// CourseRepository is the catalog collaborator. The dialogue engine only
// reads from it; the write operations exist for the importer.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	CreateBulk(ctx context.Context, courses []*entity.Course) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)

	// FindByAnyTag returns up to limit courses whose tags or skills overlap
	// the given tag set.
	FindByAnyTag(ctx context.Context, tags []string, limit int) ([]*entity.Course, error)
}
