package tests

import (
	"net/http"
	"testing"
)

func Test_server_home(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("code = %v; want 200", rec.Code)
	}
	if want := "Welcome to Tlaleho API!"; rec.Body.String() != want {
		t.Errorf("body = %q; want %q", rec.Body.String(), want)
	}
}

func Test_server_dbStatus(t *testing.T) {
	tt := httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]string{"status": "Database connection successful!"}),
	}
	req, rec := newRequest(http.MethodGet, "/db-status")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}
