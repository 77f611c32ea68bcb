package mysqlrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/report"
)

type reportRepository struct {
	db *sqlx.DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *sqlx.DB) *reportRepository {
	return &reportRepository{db: db}
}

// ProgramStats reduces over the leader's own courses only; the report
// inherits the caller's row scope instead of applying independent checks.
func (repo *reportRepository) ProgramStats(programLeaderID int) (report.Stats, error) {
	var stats report.Stats
	err := repo.db.Get(&stats,
		`SELECT
			COUNT(DISTINCT c.id) AS total_courses,
			COUNT(l.id) AS total_lectures,
			COALESCE(SUM(l.actual_students_present), 0) AS students_reached,
			COUNT(DISTINCT la.id) AS total_assignments,
			ROUND(AVG(l.actual_students_present / NULLIF(cl.total_registered_students, 0)) * 100) AS attendance_pct
		 FROM courses c
		 LEFT JOIN lectures l ON l.course_id = c.id
		 LEFT JOIN classes cl ON l.class_id = cl.id
		 LEFT JOIN lecturer_assignments la ON la.course_id = c.id
		 WHERE c.program_leader_id = ?`,
		programLeaderID,
	)
	return stats, errors.Wrap(err, "computing program stats")
}

func (repo *reportRepository) CoursePerformance(programLeaderID int) ([]report.CoursePerformance, error) {
	var rows []report.CoursePerformance
	err := repo.db.Select(&rows,
		`SELECT
			c.id AS course_id,
			c.course_name AS course,
			COUNT(DISTINCT l.id) AS lectures,
			ROUND(AVG(l.actual_students_present)) AS average_attendance,
			FORMAT(AVG(r.rating), 1) AS average_rating
		 FROM courses c
		 LEFT JOIN lectures l ON l.course_id = c.id
		 LEFT JOIN ratings r ON r.lecture_id = l.id
		 WHERE c.program_leader_id = ?
		 GROUP BY c.id, c.course_name
		 ORDER BY c.created_at DESC`,
		programLeaderID,
	)
	return rows, errors.Wrap(err, "computing course performance")
}
