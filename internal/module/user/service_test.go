package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.User{}, &domain.Post{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewService(NewRepository(db)), db
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.COM ",
		Password:  "correct horse battery",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if u.Email != "ada@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", u.Email)
	}
	if u.PasswordHash == "correct horse battery" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse battery")); err != nil {
		t.Errorf("stored hash does not verify the password: %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "password1"}
	if _, err := svc.CreateUser(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Case differences collapse to the same stored email.
	req.Email = "ADA@example.com"
	_, err := svc.CreateUser(ctx, req)
	if !repository.IsDuplicateKey(err) {
		t.Fatalf("err = %v, want duplicate key", err)
	}
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.FirstName != "Ada" {
		t.Errorf("FirstName = %q, want Ada", got.FirstName)
	}

	_, err = svc.GetUser(ctx, uuid.New())
	if !repository.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestGetUser_PreloadsPosts(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := db.Create(&domain.Post{Name: "First post", UserID: created.ID}).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	got, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].Name != "First post" {
		t.Errorf("Posts = %+v, want the seeded post loaded", got.Posts)
	}
}

func TestListUsers_Paging(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateUser(ctx, CreateUserRequest{
			FirstName: "User",
			LastName:  fmt.Sprintf("Number%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			Password:  "password1",
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	page, err := svc.ListUsers(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.Meta.Total != 5 || page.Meta.TotalPages != 3 {
		t.Errorf("Meta = %+v, want total 5 over 3 pages", page.Meta)
	}
}
