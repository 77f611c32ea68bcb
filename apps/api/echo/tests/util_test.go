package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/motebang/tlaleho/apps/api/echo"
	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/user"
)

var (
	errMissingToken = httpErr{Error: "Access token required"}
	errInvalidToken = httpErr{Error: "Invalid or expired token"}
	errForbidden    = httpErr{Error: "permission denied"}
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	token, err := echoapi.GenerateToken(conf, echoapi.GetUserClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

// checkCodeAndData compares status and, when wantData is set, the JSON body.
func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %v", rec.Code, tt.wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// seed helpers; callers reset the DB first.

func createUser(t *testing.T, name, email string, role authz.Role, password ...string) user.User {
	usr := user.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if len(password) > 0 {
		if err := usr.SetPassword(password[0]); err != nil {
			t.Fatalf("createUser(): %v", err)
		}
	}
	usr, err := usrRepo.CreateUser(usr)
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func createCourse(t *testing.T, code, name string, leaderID int) course.Course {
	crs, err := courseRepo.CreateCourse(course.Course{
		CourseCode:      code,
		CourseName:      name,
		ProgramLeaderID: &leaderID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createCourse(): %v", err)
	}
	return crs
}

func createClass(t *testing.T, name string, facultyID int) class.Class {
	students := 30
	venue := "Room 101"
	scheduled := "Mon 09:00"
	cls, err := classRepo.CreateClass(class.Class{
		ClassName:               name,
		FacultyID:               &facultyID,
		TotalRegisteredStudents: &students,
		Venue:                   &venue,
		ScheduledTime:           &scheduled,
		CreatedAt:               time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createClass(): %v", err)
	}
	return cls
}

func createLecture(t *testing.T, classID, courseID, lecturerID int) lecture.Lecture {
	present := 25
	topic := "Pointers"
	lec, err := lectureRepo.CreateLecture(lecture.Lecture{
		ClassID:               classID,
		CourseID:              courseID,
		LecturerID:            lecturerID,
		DateOfLecture:         "2026-02-16",
		ActualStudentsPresent: &present,
		TopicTaught:           &topic,
		CreatedAt:             time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createLecture(): %v", err)
	}
	return lec
}

func createAssignment(t *testing.T, lecturerID, classID, courseID int) assignment.Assignment {
	a, err := assignmentRepo.CreateAssignment(assignment.Assignment{
		LecturerID: lecturerID,
		ClassID:    classID,
		CourseID:   courseID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createAssignment(): %v", err)
	}
	return a
}
