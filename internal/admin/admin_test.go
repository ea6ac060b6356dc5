package admin

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func initRequest(secret string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/init?secret="+secret, nil)
}

func TestInitSchemaRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(db, "s3cret")

	rec := httptest.NewRecorder()
	handler.InitSchema(rec, initRequest("wrong"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if db.Migrator().HasTable("users") {
		t.Fatalf("schema was touched despite bad secret")
	}
}

func TestInitSchemaRejectsWhenNoSecretConfigured(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(db, "")

	for _, supplied := range []string{"", "anything"} {
		rec := httptest.NewRecorder()
		handler.InitSchema(rec, initRequest(supplied))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("secret %q status = %d, want 403", supplied, rec.Code)
		}
	}
	if db.Migrator().HasTable("users") {
		t.Fatalf("schema was created without a configured secret")
	}
}

func TestInitSchemaCreatesAllRelations(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(db, "s3cret")

	rec := httptest.NewRecorder()
	handler.InitSchema(rec, initRequest("s3cret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, table := range []string{
		"exam_classes",
		"modules",
		"questions",
		"question_associations",
		"collections",
		"collection_questions",
		"users",
		"history",
	} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s was not created", table)
		}
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(db, "s3cret")

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.InitSchema(rec, initRequest("s3cret"))
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d status = %d, want 200", i+1, rec.Code)
		}
	}
	if !db.Migrator().HasTable("questions") {
		t.Fatalf("questions table missing after repeated init")
	}
}
