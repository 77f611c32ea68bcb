package inmemdb

import (
	"fmt"
	"math"
	"sort"

	"github.com/motebang/tlaleho/core/report"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *DB) *reportRepository {
	return &reportRepository{db: db}
}

// leaderCourseIDs collects the ids of courses owned by the leader. Callers
// must hold at least the read lock.
func (repo *reportRepository) leaderCourseIDs(programLeaderID int) map[int]struct{} {
	ids := make(map[int]struct{})
	for _, crs := range repo.db.courses {
		if crs.ProgramLeaderID != nil && *crs.ProgramLeaderID == programLeaderID {
			ids[crs.ID] = struct{}{}
		}
	}
	return ids
}

func (repo *reportRepository) ProgramStats(programLeaderID int) (report.Stats, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courseIDs := repo.leaderCourseIDs(programLeaderID)

	var stats report.Stats
	stats.TotalCourses = len(courseIDs)

	var ratioSum float64
	var ratioCount int
	for _, lec := range repo.db.lectures {
		if _, ok := courseIDs[lec.CourseID]; !ok {
			continue
		}
		stats.TotalLectures++
		if lec.ActualStudentsPresent != nil {
			stats.StudentsReached += *lec.ActualStudentsPresent
			if cls, ok := repo.db.classes[lec.ClassID]; ok &&
				cls.TotalRegisteredStudents != nil && *cls.TotalRegisteredStudents > 0 {
				ratioSum += float64(*lec.ActualStudentsPresent) / float64(*cls.TotalRegisteredStudents)
				ratioCount++
			}
		}
	}
	for _, a := range repo.db.assignments {
		if _, ok := courseIDs[a.CourseID]; ok {
			stats.TotalAssignments++
		}
	}
	if ratioCount > 0 {
		pct := int(math.Round(ratioSum / float64(ratioCount) * 100))
		stats.AttendancePct = &pct
	}
	return stats, nil
}

func (repo *reportRepository) CoursePerformance(programLeaderID int) ([]report.CoursePerformance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courseIDs := repo.leaderCourseIDs(programLeaderID)

	rows := make([]report.CoursePerformance, 0, len(courseIDs))
	for id := range courseIDs {
		crs := repo.db.courses[id]
		row := report.CoursePerformance{CourseID: crs.ID, Course: crs.CourseName}

		var attSum, attCount int
		var ratingSum, ratingCount int
		for _, lec := range repo.db.lectures {
			if lec.CourseID != crs.ID {
				continue
			}
			row.Lectures++
			if lec.ActualStudentsPresent != nil {
				attSum += *lec.ActualStudentsPresent
				attCount++
			}
			for _, r := range repo.db.ratings {
				if r.LectureID == lec.ID {
					ratingSum += r.Rating
					ratingCount++
				}
			}
		}
		if attCount > 0 {
			avg := int(math.Round(float64(attSum) / float64(attCount)))
			row.AvgAttendance = &avg
		}
		if ratingCount > 0 {
			avg := fmt.Sprintf("%.1f", float64(ratingSum)/float64(ratingCount))
			row.AvgRating = &avg
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CourseID > rows[j].CourseID })
	return rows, nil
}
