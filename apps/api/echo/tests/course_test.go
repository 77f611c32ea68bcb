package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/motebang/tlaleho/core/authz"
)

func Test_courseApi_query(t *testing.T) {
	db.Reset()
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	leaderA := createUser(t, "Leader A", "leader.a@test.ls", authz.RoleProgramLeader)
	leaderB := createUser(t, "Leader B", "leader.b@test.ls", authz.RoleProgramLeader)
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)

	crsA1 := createCourse(t, "CS101", "Intro to Computing", leaderA.ID)
	crsA2 := createCourse(t, "CS201", "Data Structures", leaderA.ID)
	crsB := createCourse(t, "BI101", "Business Informatics", leaderB.ID)

	tests := []httpTest{
		{name: "auth required", path: "/courses", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "student denied", path: "/courses", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin sees all", path: "/courses", token: getToken(t, admin),
			wantCode: http.StatusOK, wantData: marchallList(t, crsB, crsA2, crsA1),
		},
		{
			name: "leader sees own rows only", path: "/courses", token: getToken(t, leaderA),
			wantCode: http.StatusOK, wantData: marchallList(t, crsA2, crsA1),
		},
		// unscoped pick-list for the lecture form
		{
			name: "lecturer reads pick-list", path: "/all-courses", token: getToken(t, lecturer),
			wantCode: http.StatusOK, wantData: marchallList(t, crsB, crsA2, crsA1),
		},
		{
			name: "leader denied pick-list", path: "/all-courses", token: getToken(t, leaderB),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)
}

func Test_courseApi_retrieve(t *testing.T) {
	db.Reset()
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	leaderA := createUser(t, "Leader A", "leader.a@test.ls", authz.RoleProgramLeader)
	leaderB := createUser(t, "Leader B", "leader.b@test.ls", authz.RoleProgramLeader)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)

	crsA := createCourse(t, "CS101", "Intro to Computing", leaderA.ID)

	tests := []httpTest{
		{
			name: "owner reads own", path: "/courses/5", token: getToken(t, leaderA),
			wantCode: http.StatusOK, wantData: marchallObj(t, crsA),
		},
		{
			name: "other leader denied", path: "/courses/5", token: getToken(t, leaderB),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin exempt from ownership", path: "/courses/5", token: getToken(t, admin),
			wantCode: http.StatusOK, wantData: marchallObj(t, crsA),
		},
		{
			name: "student denied", path: "/courses/5", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "missing row visible to listers", path: "/courses/99", token: getToken(t, admin),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Course not found"}),
		},
		{
			name: "missing row hidden from non-listers", path: "/courses/99", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)
}

func Test_courseApi_create(t *testing.T) {
	db.Reset()
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)
	createCourse(t, "CS101", "Intro to Computing", leader.ID)

	body := func(code, name string) []byte {
		data, _ := json.Marshal(map[string]string{"course_code": code, "course_name": name})
		return data
	}

	tests := []httpTest{
		{
			name: "admin cannot create", method: http.MethodPost, path: "/courses", token: getToken(t, admin),
			body: body("CS301", "Operating Systems"), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errForbidden),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/courses", token: getToken(t, leader),
			body: body("", ""), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]map[string]string{"error": {
				"course_code": "this field is required",
				"course_name": "this field is required",
			}}),
		},
		{
			name: "duplicate code", method: http.MethodPost, path: "/courses", token: getToken(t, leader),
			body: body("CS101", "Copy of Intro"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "Course code already exists"}),
		},
	}
	runHTTPTests(t, tests)

	t.Run("leader creates own course", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/courses", getToken(t, leader), body("CS301", "Operating Systems"))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %v", rec.Code, rec.Body.String())
		}
		var resp struct {
			Success bool `json:"success"`
			Course  struct {
				ID              int    `json:"id"`
				CourseCode      string `json:"course_code"`
				ProgramLeaderID *int   `json:"program_leader_id"`
			} `json:"course"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if !resp.Success || resp.Course.CourseCode != "CS301" {
			t.Errorf("unexpected response: %v", rec.Body.String())
		}
		if resp.Course.ProgramLeaderID == nil || *resp.Course.ProgramLeaderID != leader.ID {
			t.Error("course must be auto-assigned to the calling leader")
		}
	})
}

func Test_courseApi_mutations(t *testing.T) {
	db.Reset()
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	leaderA := createUser(t, "Leader A", "leader.a@test.ls", authz.RoleProgramLeader)
	leaderB := createUser(t, "Leader B", "leader.b@test.ls", authz.RoleProgramLeader)
	createCourse(t, "CS101", "Intro to Computing", leaderA.ID)

	update := func(code, name string) []byte {
		data, _ := json.Marshal(map[string]string{"course_code": code, "course_name": name})
		return data
	}

	tests := []httpTest{
		{
			name: "other leader cannot update", method: http.MethodPut, path: "/courses/4", token: getToken(t, leaderB),
			body: update("CS102", "Hijacked"), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin cannot update courses", method: http.MethodPut, path: "/courses/4", token: getToken(t, admin),
			body: update("CS102", "Hijacked"), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "owner updates", method: http.MethodPut, path: "/courses/4", token: getToken(t, leaderA),
			body: update("CS102", "Intro to Computing II"), wantCode: http.StatusOK,
		},
		{
			name: "other leader cannot delete", method: http.MethodDelete, path: "/courses/4", token: getToken(t, leaderB),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "owner deletes", method: http.MethodDelete, path: "/courses/4", token: getToken(t, leaderA),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "message": "Course deleted successfully"}),
		},
		{
			name: "gone afterwards", path: "/courses/4", token: getToken(t, leaderA),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Course not found"}),
		},
	}
	runHTTPTests(t, tests)
}
