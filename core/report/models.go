package report

// Stats is the program-level reduction over the leader's own courses.
type Stats struct {
	TotalCourses     int  `json:"total_courses" db:"total_courses"`
	TotalLectures    int  `json:"total_lectures" db:"total_lectures"`
	StudentsReached  int  `json:"students_reached" db:"students_reached"`
	TotalAssignments int  `json:"total_assignments" db:"total_assignments"`
	AttendancePct    *int `json:"attendance_pct" db:"attendance_pct"`
}

// CoursePerformance is the per-course breakdown behind the program report.
type CoursePerformance struct {
	CourseID      int     `json:"course_id" db:"course_id"`
	Course        string  `json:"course" db:"course"`
	Lectures      int     `json:"lectures" db:"lectures"`
	AvgAttendance *int    `json:"average_attendance" db:"average_attendance"`
	AvgRating     *string `json:"average_rating" db:"average_rating"`
}

// ProgramReport is the full derived view; computed per request, never
// cached.
type ProgramReport struct {
	ProgramStats      Stats               `json:"programStats"`
	CoursePerformance []CoursePerformance `json:"coursePerformance"`
}

type GenerateRequest struct {
	ProgramLeaderID int    `json:"programLeaderId" validate:"required"`
	ReportType      string `json:"reportType" validate:"required"`
}
