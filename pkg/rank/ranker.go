package rank

import (
	"sort"
	"strings"

	"course-mentor-be/internal/entity"
)

// Scoring weights: explicitly selected skills dominate, then the effective
// interest set, then tags extracted from the raw message.
const (
	skillWeight    = 0.6
	interestWeight = 0.3
	messageWeight  = 0.1
)

type scoredCourse struct {
	course *entity.Course
	score  float64
}

// Score computes the linear relevance of one course against the selected
// skills, the effective interests and the raw message tags. All comparisons
// are case-insensitive over the union of the course's skills and tags.
func Score(course *entity.Course, skills, interests, messageTags []string) float64 {
	fields := fieldSet(course)

	score := skillWeight * overlap(skills, fields) / float64(max(1, len(skills)))
	score += interestWeight * overlap(interests, fields) / float64(max(1, len(interests)))
	score += messageWeight * overlap(messageTags, fields) / float64(max(1, len(messageTags)))
	return score
}

// Order returns the candidates sorted by descending score, tie-broken by
// descending rating; full ties preserve the repository return order. The
// whole ordered list is returned so callers can paginate and resolve indexed
// references beyond the first page.
func Order(candidates []*entity.Course, skills, interests, messageTags []string) []*entity.Course {
	scored := make([]scoredCourse, len(candidates))
	for i, c := range candidates {
		scored[i] = scoredCourse{course: c, score: Score(c, skills, interests, messageTags)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].course.Rating > scored[j].course.Rating
	})

	ordered := make([]*entity.Course, len(scored))
	for i, s := range scored {
		ordered[i] = s.course
	}
	return ordered
}

func fieldSet(course *entity.Course) map[string]struct{} {
	fields := make(map[string]struct{}, len(course.Skills)+len(course.Tags))
	for _, s := range course.Skills {
		fields[strings.ToLower(s)] = struct{}{}
	}
	for _, t := range course.Tags {
		fields[strings.ToLower(t)] = struct{}{}
	}
	return fields
}

func overlap(tags []string, fields map[string]struct{}) float64 {
	n := 0
	for _, t := range tags {
		if _, ok := fields[strings.ToLower(t)]; ok {
			n++
		}
	}
	return float64(n)
}
