package store_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"tradeboard/internal/db"
	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
	"tradeboard/internal/store"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestNormalizePage(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"0":    1,
		"-3":   1,
		"abc":  1,
		"1.5":  1,
		"1":    1,
		"2":    2,
		"37":   37,
	}
	for raw, want := range cases {
		if got := store.NormalizePage(raw); got != want {
			t.Errorf("NormalizePage(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestProductRoundTrip(t *testing.T) {
	products := store.NewProducts(testDB(t))

	p := models.Product{Name: "Widget", Description: "A widget", Price: 9.99, Author: "alice"}
	if err := products.Create(&p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	got, err := products.ByID(p.ID)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Name != p.Name || got.Description != p.Description || got.Price != p.Price || got.Author != p.Author {
		t.Errorf("round trip mismatch: got %+v want %+v", got, p)
	}
}

func TestProductByIDNotFound(t *testing.T) {
	products := store.NewProducts(testDB(t))
	if _, err := products.ByID(999); !httperr.IsNotFound(err) {
		t.Errorf("want NotFound, got %v", err)
	}
}

func TestDeleteIsIdempotentlyNotFound(t *testing.T) {
	products := store.NewProducts(testDB(t))
	p := models.Product{Name: "Gone", Price: 1, Author: "alice"}
	if err := products.Create(&p); err != nil {
		t.Fatal(err)
	}
	if err := products.Delete(p.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := products.Delete(p.ID); !httperr.IsNotFound(err) {
		t.Errorf("second delete: want NotFound, got %v", err)
	}
	if _, err := products.ByID(p.ID); !httperr.IsNotFound(err) {
		t.Errorf("byID after delete: want NotFound, got %v", err)
	}
}

func TestSearchSubstringMatch(t *testing.T) {
	products := store.NewProducts(testDB(t))
	seed := []models.Product{
		{Name: "Widget", Description: "A widget", Price: 9.99, Author: "alice"},
		{Name: "Gadget", Description: "Shiny", Price: 5, Author: "bob"},
		{Name: "Plain", Description: "has widgets inside", Price: 2, Author: "bob"},
	}
	for i := range seed {
		if err := products.Create(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	// matches name OR description, case-insensitively, as a substring
	pg, err := products.Search("widget", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pg.Items) != 2 {
		t.Fatalf("want 2 matches, got %d", len(pg.Items))
	}
	if pg.TotalPages != 1 {
		t.Errorf("want totalPages 1, got %d", pg.TotalPages)
	}
	if pg.Items[0].Name != "Widget" || pg.Items[1].Name != "Plain" {
		t.Errorf("unexpected order: %q, %q", pg.Items[0].Name, pg.Items[1].Name)
	}

	// empty query matches every row
	pg, err = products.Search("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pg.Items) != 3 {
		t.Errorf("empty query: want 3 rows, got %d", len(pg.Items))
	}

	// no matches at all
	pg, err = products.Search("zzz", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pg.Items) != 0 || pg.TotalPages != 0 {
		t.Errorf("no-match: got %d rows, totalPages %d", len(pg.Items), pg.TotalPages)
	}
}

func TestSearchPagination(t *testing.T) {
	posts := store.NewPosts(testDB(t))
	for i := 1; i <= 16; i++ {
		p := models.Post{Title: fmt.Sprintf("Post %02d", i), Content: "body", Author: "alice"}
		if err := posts.Create(&p); err != nil {
			t.Fatal(err)
		}
	}

	first, err := posts.Search("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Items) != store.PageSize {
		t.Errorf("page 1: want %d rows, got %d", store.PageSize, len(first.Items))
	}
	if first.TotalPages != 2 {
		t.Errorf("page 1: want totalPages 2, got %d", first.TotalPages)
	}

	second, err := posts.Search("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("page 2: want 1 row, got %d", len(second.Items))
	}
	if second.Items[0].Title != "Post 16" {
		t.Errorf("page 2: want insertion order, got %q", second.Items[0].Title)
	}
	if second.TotalPages != 2 {
		t.Errorf("page 2: want totalPages 2, got %d", second.TotalPages)
	}

	// totalPages derives from the full count no matter which page is asked for
	far, err := posts.Search("", 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(far.Items) != 0 {
		t.Errorf("page past the end: want no rows, got %d", len(far.Items))
	}
	if far.TotalPages != 2 {
		t.Errorf("page past the end: want totalPages 2, got %d", far.TotalPages)
	}

	// non-positive pages behave as page 1
	norm, err := posts.Search("", -4)
	if err != nil {
		t.Fatal(err)
	}
	if norm.Page != 1 || len(norm.Items) != store.PageSize {
		t.Errorf("page -4: got page %d with %d rows", norm.Page, len(norm.Items))
	}
}

func TestPostReset(t *testing.T) {
	posts := store.NewPosts(testDB(t))
	for i := 0; i < 3; i++ {
		p := models.Post{Title: "t", Content: "c", Author: "alice"}
		if err := posts.Create(&p); err != nil {
			t.Fatal(err)
		}
	}
	if err := posts.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	pg, err := posts.Search("", 1)
	if err != nil {
		t.Fatalf("search after reset: %v", err)
	}
	if len(pg.Items) != 0 {
		t.Errorf("want empty table after reset, got %d rows", len(pg.Items))
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	users := store.NewUsers(testDB(t))
	hash, err := models.HashPassword("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if err := users.Create(&models.User{Username: "alice", PasswordHash: hash}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err = users.Create(&models.User{Username: "alice", PasswordHash: hash})
	if !httperr.IsConflict(err) {
		t.Errorf("want Conflict, got %v", err)
	}

	u, err := users.ByUsername("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !models.CheckPassword(u.PasswordHash, "pw1") {
		t.Error("stored hash does not verify")
	}
	if models.CheckPassword(u.PasswordHash, "wrong") {
		t.Error("wrong password verified")
	}
}
