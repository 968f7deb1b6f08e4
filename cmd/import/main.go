package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"course-mentor-be/internal/config"
	"course-mentor-be/internal/entity"
	"course-mentor-be/internal/model"
	"course-mentor-be/internal/repository/implementation"
	"course-mentor-be/pkg/database"

	"github.com/google/uuid"
)

// Loads the course catalog from a CSV export, replacing whatever is in the
// database. List columns use "," inside skills and ";" inside tags and
// career paths.
func main() {
	filePath := flag.String("file", "courses.csv", "path to the course catalog CSV")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.Course{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV has no data rows")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	courses := make([]*entity.Course, 0, len(records)-1)
	for _, row := range records[1:] {
		title := field(row, "title")
		if title == "" {
			continue
		}
		courses = append(courses, &entity.Course{
			Id:             uuid.New(),
			CourseId:       parseInt64(field(row, "course_id")),
			Title:          title,
			Provider:       field(row, "provider"),
			Category:       field(row, "category"),
			Subcategory:    field(row, "subcategory"),
			Skills:         splitList(field(row, "skills"), ","),
			Tags:           splitList(field(row, "tags"), ";"),
			Level:          field(row, "level"),
			Price:          parseFloat(field(row, "price")),
			Rating:         parseFloat(field(row, "rating")),
			NumReviews:     int(parseInt64(field(row, "num_reviews"))),
			NumSubscribers: int(parseInt64(field(row, "num_subscribers"))),
			Duration:       field(row, "duration"),
			Url:            field(row, "url"),
			CareerPaths:    splitList(field(row, "career_paths"), ";"),
		})
	}

	repo := implementation.NewCourseRepository(db)
	ctx := context.Background()

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to clear catalog: %v", err)
	}
	if err := repo.CreateBulk(ctx, courses); err != nil {
		log.Fatalf("failed to insert courses: %v", err)
	}

	log.Printf("✅ Courses imported: %d", len(courses))
}

func splitList(value, sep string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
