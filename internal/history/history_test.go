package history

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"exam-bank/internal/models"

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
	if err := db.AutoMigrate(&models.HistoryEntry{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func sampleAttempt() Attempt {
	moduleID := uint(10)
	return Attempt{
		UserEmail: "a@x.com",
		ExamID:    1,
		ModuleID:  &moduleID,
		Questions: []int{3, 1, 2},
		Answers:   []string{"oui", "non", "42"},
		Score:     66.7,
	}
}

func TestRecordAttemptThenGetHistory(t *testing.T) {
	db := newTestDB(t)
	service := NewService(NewRepository(db))

	created, err := service.RecordAttempt(sampleAttempt())
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("entry has no server-assigned id")
	}
	if created.Datetime.IsZero() {
		t.Fatalf("entry has no datetime")
	}

	entries, err := service.GetHistory("a@x.com")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Score != 66.7 {
		t.Fatalf("score = %v, want 66.7", entry.Score)
	}
	if len(entry.Questions) != 3 || entry.Questions[0] != 3 {
		t.Fatalf("questions not preserved in order: %v", entry.Questions)
	}
	if len(entry.Answers) != 3 || entry.Answers[2] != "42" {
		t.Fatalf("answers not preserved in order: %v", entry.Answers)
	}
	if entry.Datetime.IsZero() {
		t.Fatalf("stored datetime is zero")
	}
	if entry.ModuleID == nil || *entry.ModuleID != 10 {
		t.Fatalf("module_id not preserved: %v", entry.ModuleID)
	}
	if entry.CollectionID != nil {
		t.Fatalf("collection_id should stay null, got %v", *entry.CollectionID)
	}
}

func TestRecordAttemptAcceptsUnknownIdentifier(t *testing.T) {
	db := newTestDB(t)
	service := NewService(NewRepository(db))

	// No users table exists here at all; attempts are recorded for any
	// identifier, registered or not.
	attempt := sampleAttempt()
	attempt.UserEmail = "anonymous-visitor"
	if _, err := service.RecordAttempt(attempt); err != nil {
		t.Fatalf("RecordAttempt for unknown identifier: %v", err)
	}
}

func TestRecordAttemptUsesInjectedClock(t *testing.T) {
	db := newTestDB(t)
	service := NewService(NewRepository(db))
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	created, err := service.RecordAttempt(sampleAttempt())
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if !created.Datetime.Equal(fixed) {
		t.Fatalf("datetime = %v, want %v", created.Datetime, fixed)
	}
}

func TestHistoryHandlerRoundTrip(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(NewService(NewRepository(db)))

	body, err := json.Marshal(sampleAttempt())
	if err != nil {
		t.Fatalf("marshal attempt: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/history", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.RecordAttempt(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("record status = %d, want 201", rec.Code)
	}
	var created models.HistoryEntry
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created entry: %v", err)
	}
	if created.ID == 0 || created.Datetime.IsZero() {
		t.Fatalf("created entry incomplete: %+v", created)
	}

	req = httptest.NewRequest(http.MethodGet, "/history?user_email=a@x.com", nil)
	rec = httptest.NewRecorder()
	handler.GetHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var entries []models.HistoryEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != created.ID {
		t.Fatalf("unexpected history: %+v", entries)
	}
}
