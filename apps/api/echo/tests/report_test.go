package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/report"
)

func Test_reportApi_retrieve(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	leaderA := createUser(t, "Leader A", "leader.a@test.ls", authz.RoleProgramLeader)
	leaderB := createUser(t, "Leader B", "leader.b@test.ls", authz.RoleProgramLeader)
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)

	cls := createClass(t, "BSCIT-Y1", fac.ID) // 30 registered
	crsA := createCourse(t, "CS101", "Intro to Computing", leaderA.ID)
	crsB := createCourse(t, "BI101", "Business Informatics", leaderB.ID)
	lec1 := createLecture(t, cls.ID, crsA.ID, lecturer.ID) // 25 present
	lec2 := createLecture(t, cls.ID, crsA.ID, lecturer.ID)
	createAssignment(t, lecturer.ID, cls.ID, crsA.ID)
	seedRating(t, lec1.ID, student.ID, 4)
	seedRating(t, lec2.ID, student.ID, 5)

	attendance := 83 // round(mean(25/30, 25/30) * 100)
	avgAtt := 25
	avgRating := "4.5"
	wantA := marchallObj(t, report.ProgramReport{
		ProgramStats: report.Stats{
			TotalCourses:     1,
			TotalLectures:    2,
			StudentsReached:  50,
			TotalAssignments: 1,
			AttendancePct:    &attendance,
		},
		CoursePerformance: []report.CoursePerformance{{
			CourseID:      crsA.ID,
			Course:        crsA.CourseName,
			Lectures:      2,
			AvgAttendance: &avgAtt,
			AvgRating:     &avgRating,
		}},
	})
	wantB := marchallObj(t, report.ProgramReport{
		ProgramStats: report.Stats{TotalCourses: 1},
		CoursePerformance: []report.CoursePerformance{{
			CourseID: crsB.ID,
			Course:   crsB.CourseName,
		}},
	})

	tests := []httpTest{
		{
			name: "leader reads own program", path: "/program-reports/2", token: getToken(t, leaderA),
			wantCode: http.StatusOK, wantData: wantA,
		},
		{
			name: "program with no activity", path: "/program-reports/3", token: getToken(t, leaderB),
			wantCode: http.StatusOK, wantData: wantB,
		},
		{
			name: "leader cannot read another program", path: "/program-reports/3", token: getToken(t, leaderA),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin denied", path: "/program-reports/2", token: getToken(t, admin),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "student denied", path: "/program-reports/2", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)
}

func Test_reportApi_generate(t *testing.T) {
	db.Reset()
	leaderA := createUser(t, "Leader A", "leader.a@test.ls", authz.RoleProgramLeader)
	leaderB := createUser(t, "Leader B", "leader.b@test.ls", authz.RoleProgramLeader)

	body := func(leaderID int, reportType string) []byte {
		data, _ := json.Marshal(map[string]interface{}{"programLeaderId": leaderID, "reportType": reportType})
		return data
	}

	tests := []httpTest{
		{
			name: "missing fields", method: http.MethodPost, path: "/program-reports/generate", token: getToken(t, leaderA),
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]map[string]string{"error": {
				"programLeaderId": "this field is required",
				"reportType":      "this field is required",
			}}),
		},
		{
			name: "cannot generate for another leader", method: http.MethodPost, path: "/program-reports/generate",
			token: getToken(t, leaderA), body: body(leaderB.ID, "monthly"),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)

	t.Run("leader generates own report", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/program-reports/generate", getToken(t, leaderA), body(leaderA.ID, "monthly"))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %v", rec.Code, rec.Body.String())
		}
		var resp struct {
			Message  string `json:"message"`
			ReportID string `json:"reportId"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if want := `Report type "monthly" generated successfully!`; resp.Message != want {
			t.Errorf("message = %q; want %q", resp.Message, want)
		}
		if resp.ReportID == "" {
			t.Error("reportId is empty")
		}
	})
}
