package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
	return resp
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.NewError(repository.KindNotFound, "gone", nil), http.StatusNotFound},
		{"duplicate key", repository.NewError(repository.KindDuplicateKey, "dup", nil), http.StatusConflict},
		{"foreign key", repository.NewError(repository.KindForeignKey, "fk", nil), http.StatusBadRequest},
		{"integrity", repository.NewError(repository.KindIntegrity, "check", nil), http.StatusBadRequest},
		{"multiple rows", repository.NewError(repository.KindMultipleRows, "many", nil), http.StatusInternalServerError},
		{"invalid request", repository.NewError(repository.KindInvalidRequest, "bad sql", nil), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestError_ExposesRepositoryMessage(t *testing.T) {
	c, rec := testContext(t)

	Error(c, repository.NewError(repository.KindDuplicateKey, "A product with this name already exists", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "A product with this name already exists" {
		t.Errorf("Message = %q, want repository message", resp.Message)
	}
	if resp.Code != http.StatusConflict {
		t.Errorf("Code = %d, want 409", resp.Code)
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	c, rec := testContext(t)

	Error(c, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "internal error" {
		t.Errorf("Message = %q, want internal error", resp.Message)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("response body leaks the underlying error")
	}
}

func TestError_WrappedRepositoryError(t *testing.T) {
	c, rec := testContext(t)

	wrapped := errors.Join(errors.New("create product"),
		repository.NewError(repository.KindNotFound, "Product not found", nil))
	Error(c, wrapped)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeResponse(t, rec).Message; got != "Product not found" {
		t.Errorf("Message = %q, want repository message", got)
	}
}

func TestSuccessCreatedBadRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, rec := testContext(t)
		Success(c, gin.H{"ok": true})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := decodeResponse(t, rec); got.Message != "success" {
			t.Errorf("Message = %q, want success", got.Message)
		}
	})

	t.Run("created", func(t *testing.T) {
		c, rec := testContext(t)
		Created(c, gin.H{"id": 1})
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
	})

	t.Run("bad request", func(t *testing.T) {
		c, rec := testContext(t)
		BadRequest(c, "missing header")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if got := decodeResponse(t, rec).Message; got != "missing header" {
			t.Errorf("Message = %q, want missing header", got)
		}
	})
}

func TestList_WrapsPage(t *testing.T) {
	c, rec := testContext(t)

	List(c, NewPage([]string{"a", "b"}, 2, 1, 10))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total_pages":1`) {
		t.Errorf("body missing page metadata: %s", body)
	}
}

type bindTestRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=50"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

func TestBindAndValidate_Valid(t *testing.T) {
	c, _ := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"Widget","price":9.99}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bindTestRequest
	if !BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate = false for a valid body")
	}
	if req.Name != "Widget" || req.Price != 9.99 {
		t.Errorf("req = %+v, want bound values", req)
	}
}

func TestBindAndValidate_ValidationErrorsUseJSONNames(t *testing.T) {
	c, rec := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"","price":-1}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bindTestRequest
	if BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate = true for an invalid body")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "validation error" {
		t.Errorf("Message = %q, want validation error", resp.Message)
	}
	if _, ok := resp.Errors["name"]; !ok {
		t.Errorf("Errors = %v, want a key for the name field's json tag", resp.Errors)
	}
	if got := resp.Errors["price"]; got != "gt=0" {
		t.Errorf("Errors[price] = %q, want gt=0", got)
	}
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c, rec := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bindTestRequest
	if BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate = true for malformed JSON")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
