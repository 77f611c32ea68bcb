package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/feedback"
)

func seedFeedback(t *testing.T, lectureID, userID int, text string) feedback.Feedback {
	fb, err := feedbackRepo.CreateFeedback(feedback.Feedback{
		LectureID:    lectureID,
		UserID:       userID,
		FeedbackText: text,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seedFeedback(): %v", err)
	}
	return fb
}

func Test_feedbackApi_create(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	principal := createUser(t, "Principal", "principal@test.ls", authz.RolePrincipalLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)
	cls := createClass(t, "BSCIT-Y1", fac.ID)
	crs := createCourse(t, "CS101", "Intro to Computing", leader.ID)
	lec := createLecture(t, cls.ID, crs.ID, lecturer.ID)

	body := func(lectureID int, text string) []byte {
		data, _ := json.Marshal(map[string]interface{}{"lecture_id": lectureID, "feedback_text": text})
		return data
	}
	submitted := marchallObj(t, map[string]interface{}{"success": true, "message": "Feedback submitted successfully"})

	tests := []httpTest{
		{
			name: "student cannot comment", method: http.MethodPost, path: "/feedback", token: getToken(t, student),
			body: body(lec.ID, "Nice session"), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/feedback", token: getToken(t, principal),
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]map[string]string{"error": {
				"lecture_id":    "this field is required",
				"feedback_text": "this field is required",
			}}),
		},
		{
			name: "unknown lecture", method: http.MethodPost, path: "/feedback", token: getToken(t, principal),
			body: body(99, "Ghost lecture"), wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "Lecture not found"}),
		},
		{
			name: "principal comments", method: http.MethodPost, path: "/feedback", token: getToken(t, principal),
			body: body(lec.ID, "Cover recursion next time"), wantCode: http.StatusOK, wantData: submitted,
		},
		{
			name: "lecturer comments too", method: http.MethodPost, path: "/feedback", token: getToken(t, lecturer),
			body: body(lec.ID, "Projector was broken"), wantCode: http.StatusOK, wantData: submitted,
		},
	}
	runHTTPTests(t, tests)
}

func Test_feedbackApi_queryByLecture(t *testing.T) {
	db.Reset()
	fac := db.AddFaculty("ICT")
	lecturer := createUser(t, "Lecturer", "lecturer@test.ls", authz.RoleLecturer)
	principal := createUser(t, "Principal", "principal@test.ls", authz.RolePrincipalLecturer)
	student := createUser(t, "Student", "student@test.ls", authz.RoleStudent)
	leader := createUser(t, "Leader", "leader@test.ls", authz.RoleProgramLeader)
	cls := createClass(t, "BSCIT-Y1", fac.ID)
	crs := createCourse(t, "CS101", "Intro to Computing", leader.ID)
	lec := createLecture(t, cls.ID, crs.ID, lecturer.ID)
	other := createLecture(t, cls.ID, crs.ID, lecturer.ID)

	fb1 := seedFeedback(t, lec.ID, principal.ID, "Cover recursion next time")
	fb2 := seedFeedback(t, lec.ID, lecturer.ID, "Projector was broken")
	seedFeedback(t, other.ID, principal.ID, "Different lecture")

	tests := []httpTest{
		{
			name: "student reads the thread", path: "/feedback/8", token: getToken(t, student),
			wantCode: http.StatusOK, wantData: marchallList(t, fb2, fb1),
		},
		{
			name: "lecturer reads the thread", path: "/feedback/8", token: getToken(t, lecturer),
			wantCode: http.StatusOK, wantData: marchallList(t, fb2, fb1),
		},
		{
			name: "leader denied", path: "/feedback/8", token: getToken(t, leader),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "lecture with no feedback", path: "/feedback/77", token: getToken(t, student),
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
	}
	runHTTPTests(t, tests)

	t.Run("rows carry the author", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/feedback/8", getToken(t, student))
		app.ServeHTTP(rec, req)
		var rows []feedback.Feedback
		if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("len = %v; want 2", len(rows))
		}
		if rows[1].UserName == nil || *rows[1].UserName != principal.Name {
			t.Errorf("user_name = %v; want %q", rows[1].UserName, principal.Name)
		}
		if rows[1].UserRole == nil || *rows[1].UserRole != authz.RolePrincipalLecturer {
			t.Errorf("user_role = %v; want %q", rows[1].UserRole, authz.RolePrincipalLecturer)
		}
	})
}
