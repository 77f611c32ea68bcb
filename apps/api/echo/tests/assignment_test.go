package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/motebang/tlaleho/core/authz"
)

func Test_assignmentApi_query(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	admin := createUser(t, "Admin", "admin@test.ls", authz.RoleAdmin)
	principal := createUser(t, "Principal", "principal@test.ls", authz.RolePrincipalLecturer)
	lecA := createUser(t, "Lecturer A", "lec.a@test.ls", authz.RoleLecturer)
	lecB := createUser(t, "Lecturer B", "lec.b@test.ls", authz.RoleLecturer)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)

	cls := createClass(t, "BSCIT-Y1", fac.ID)
	crs := createCourse(t, "CS101", "Intro to Computing", leader.ID)
	a1 := createAssignment(t, lecA.ID, cls.ID, crs.ID)
	a2 := createAssignment(t, lecB.ID, cls.ID, crs.ID)

	tests := []httpTest{
		{
			name: "admin lists all", path: "/lecturer-assignments", token: getToken(t, admin),
			wantCode: http.StatusOK, wantData: marchallList(t, a2, a1),
		},
		{
			name: "principal lists all", path: "/lecturer-assignments", token: getToken(t, principal),
			wantCode: http.StatusOK, wantData: marchallList(t, a2, a1),
		},
		{
			name: "filters by lecturer", path: "/lecturer-assignments?lecturer_id=4", token: getToken(t, admin),
			wantCode: http.StatusOK, wantData: marchallList(t, a1),
		},
		{
			name: "lecturer denied", path: "/lecturer-assignments", token: getToken(t, lecA),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "leader denied", path: "/lecturer-assignments", token: getToken(t, leader),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)
}

func Test_assignmentApi_create(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	principal := createUser(t, "Principal", "principal@test.ls", authz.RolePrincipalLecturer)
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)
	cls := createClass(t, "BSCIT-Y1", fac.ID)
	crs := createCourse(t, "CS101", "Intro to Computing", leader.ID)

	body := func(lecturerID int) []byte {
		data, _ := json.Marshal(map[string]int{"lecturer_id": lecturerID, "class_id": cls.ID, "course_id": crs.ID})
		return data
	}

	tests := []httpTest{
		{
			name: "lecturer cannot self-assign", method: http.MethodPost, path: "/lecturer-assignments", token: getToken(t, lecturer),
			body: body(lecturer.ID), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "student denied", method: http.MethodPost, path: "/lecturer-assignments", token: getToken(t, student),
			body: body(lecturer.ID), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/lecturer-assignments", token: getToken(t, principal),
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]map[string]string{"error": {
				"lecturer_id": "this field is required",
				"class_id":    "this field is required",
				"course_id":   "this field is required",
			}}),
		},
		{
			name: "principal assigns", method: http.MethodPost, path: "/lecturer-assignments", token: getToken(t, principal),
			body: body(lecturer.ID), wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "id": 8}),
		},
		{
			name: "duplicate triple", method: http.MethodPost, path: "/lecturer-assignments", token: getToken(t, principal),
			body: body(lecturer.ID), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "Lecturer already assigned to this class and course"}),
		},
	}
	runHTTPTests(t, tests)
}
