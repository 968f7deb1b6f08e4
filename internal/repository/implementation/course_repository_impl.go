package implementation

import (
	"context"

	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/mapper"
	"course-mentor-be/internal/model"
	"course-mentor-be/internal/repository/contract"
	"course-mentor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CourseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseMapper
}

func NewCourseRepository(db *gorm.DB) contract.CourseRepository {
	return &CourseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseMapper(),
	}
}

func (r *CourseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, course *entity.Course) error {
	m := r.mapper.ToModel(course)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*course = *r.mapper.ToEntity(m)
	return nil
}

func (r *CourseRepositoryImpl) CreateBulk(ctx context.Context, courses []*entity.Course) error {
	if len(courses) == 0 {
		return nil
	}
	models := make([]*model.Course, len(courses))
	for i, c := range courses {
		models[i] = r.mapper.ToModel(c)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *CourseRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Course{}).Error
}

func (r *CourseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	db := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Course{}), specs...)
	if err := db.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CourseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	var models []*model.Course
	db := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Course{}), specs...)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, len(models))
	for i, m := range models {
		courses[i] = r.mapper.ToEntity(m)
	}
	return courses, nil
}

func (r *CourseRepositoryImpl) FindByAnyTag(ctx context.Context, tags []string, limit int) ([]*entity.Course, error) {
	return r.FindAll(ctx,
		specification.ByAnyTagOrSkill{Tags: tags},
		specification.LimitTo{Limit: limit},
	)
}
