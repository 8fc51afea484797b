package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc, _ := newTestService(t)
	router := gin.New()
	api := router.Group("/api/v1")
	NewModule(NewHandler(svc)).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validUserBody = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"password1"}`

func TestCreateUserHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", validUserBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	// The password hash never serializes.
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("body = %s, want no password material", rec.Body.String())
	}
}

func TestCreateUserHandler_DuplicateIsConflict(t *testing.T) {
	router := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/api/v1/users", validUserBody); rec.Code != http.StatusCreated {
		t.Fatalf("first create: status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", validUserBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "A user with this email already exists") {
		t.Errorf("body = %s, want the duplicate message", rec.Body.String())
	}
}

func TestCreateUserHandler_Validation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Errorf("errors = %v, want an email entry", resp.Errors)
	}
	if got := resp.Errors["password"]; got != "min=8" {
		t.Errorf("errors[password] = %q, want min=8", got)
	}
}

func TestGetUserHandler_InvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid user id") {
		t.Errorf("body = %s, want invalid user id", rec.Body.String())
	}
}

func TestListUsersHandler_Defaults(t *testing.T) {
	router := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/api/v1/users", validUserBody); rec.Code != http.StatusCreated {
		t.Fatalf("seed: status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			Meta struct {
				Page     int `json:"page"`
				PageSize int `json:"page_size"`
			} `json:"meta"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Meta.Page != 1 || resp.Data.Meta.PageSize != 10 {
		t.Errorf("meta = %+v, want default page 1 size 10", resp.Data.Meta)
	}
}
