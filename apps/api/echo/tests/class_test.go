package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/motebang/tlaleho/core/authz"
)

func Test_classApi_query(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)

	cls1 := createClass(t, "BSCIT-Y1", fac.ID)
	cls2 := createClass(t, "BSCIT-Y2", fac.ID)
	all := marchallList(t, cls2, cls1)

	tests := []httpTest{
		{name: "auth required", path: "/classes", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "student lists classes", path: "/classes", token: getToken(t, student), wantCode: http.StatusOK, wantData: all},
		{name: "leader lists classes", path: "/classes", token: getToken(t, leader), wantCode: http.StatusOK, wantData: all},
		{name: "lecturer reads pick-list", path: "/all-classes", token: getToken(t, lecturer), wantCode: http.StatusOK, wantData: all},
		{
			name: "student denied pick-list", path: "/all-classes", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	runHTTPTests(t, tests)
}

func Test_classApi_retrieve(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	assigned := createUser(t, "Assigned", "assigned@test.ls", authz.RoleLecturer)
	unassigned := createUser(t, "Unassigned", "unassigned@test.ls", authz.RoleLecturer)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)

	cls := createClass(t, "BSCIT-Y1", fac.ID)
	crs := createCourse(t, "CS101", "Intro to Computing", leader.ID)
	createAssignment(t, assigned.ID, cls.ID, crs.ID)

	tests := []httpTest{
		{
			name: "student reads class", path: "/classes/6", token: getToken(t, student),
			wantCode: http.StatusOK, wantData: marchallObj(t, cls),
		},
		{
			name: "assigned lecturer reads class", path: "/classes/6", token: getToken(t, assigned),
			wantCode: http.StatusOK, wantData: marchallObj(t, cls),
		},
		{
			name: "unassigned lecturer denied", path: "/classes/6", token: getToken(t, unassigned),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "unknown id", path: "/classes/99", token: getToken(t, student),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Class not found"}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_classApi_mutations(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	principal := createUser(t, "Principal", "principal@test.ls", authz.RolePrincipalLecturer)
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	createClass(t, "BSCIT-Y1", fac.ID)

	body := func(name string) []byte {
		data, _ := json.Marshal(map[string]interface{}{
			"class_name":                name,
			"faculty_id":                fac.ID,
			"total_registered_students": 40,
			"venue":                     "Room 202",
			"scheduled_time":            "Tue 11:00",
		})
		return data
	}

	tests := []httpTest{
		{
			name: "lecturer cannot create", method: http.MethodPost, path: "/classes", token: getToken(t, lecturer),
			body: body("BSCIT-Y3"), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "student cannot create", method: http.MethodPost, path: "/classes", token: getToken(t, student),
			body: body("BSCIT-Y3"), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "principal creates", method: http.MethodPost, path: "/classes", token: getToken(t, principal),
			body: body("BSCIT-Y3"), wantCode: http.StatusOK,
		},
		{
			name: "principal updates", method: http.MethodPut, path: "/classes/5", token: getToken(t, principal),
			body: body("BSCIT-Y1-B"), wantCode: http.StatusOK,
		},
		{
			name: "update unknown id", method: http.MethodPut, path: "/classes/99", token: getToken(t, principal),
			body: body("Ghost"), wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Class not found"}),
		},
		{
			name: "principal deletes", method: http.MethodDelete, path: "/classes/5", token: getToken(t, principal),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "message": "Class deleted successfully"}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_classApi_faculties(t *testing.T) {
	db.Reset()
	ict := db.AddFaculty("ICT")
	biz := db.AddFaculty("Business")
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)

	tests := []httpTest{
		{
			name: "leader lists faculties", path: "/faculties", token: getToken(t, leader),
			wantCode: http.StatusOK, wantData: marchallList(t, ict, biz),
		},
		{
			name: "student denied", path: "/faculties", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "reads one faculty", path: "/faculties/2", token: getToken(t, leader),
			wantCode: http.StatusOK, wantData: marchallObj(t, biz),
		},
		{
			name: "unknown faculty", path: "/faculties/99", token: getToken(t, leader),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Faculty not found"}),
		},
	}
	runHTTPTests(t, tests)
}
