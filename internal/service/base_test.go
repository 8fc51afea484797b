package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
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
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func TestBase_AddAndList(t *testing.T) {
	db := openTestDB(t)
	repo := repository.New[domain.Product](db, repository.Config{
		OrderBy: []repository.OrderBy{repository.Asc("name")},
	})
	svc := NewBase(repo)
	ctx := context.Background()

	for _, name := range []string{"Banana", "Apple"} {
		if err := svc.Add(ctx, &domain.Product{Name: name, Category: "fruit", Price: 1}); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Name != "Apple" || items[1].Name != "Banana" {
		t.Errorf("order = %q,%q, want repository default (name asc)", items[0].Name, items[1].Name)
	}

	items, err = svc.List(ctx, repository.FilterBy("name", "Apple"))
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Apple" {
		t.Errorf("filtered = %v, want just Apple", items)
	}
}
