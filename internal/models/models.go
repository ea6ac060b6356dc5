package models

import (
	"time"

	"gorm.io/datatypes"
)

// ExamClass is a top-level grouping of questions (one exam/certification).
type ExamClass struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (ExamClass) TableName() string {
	return "exam_classes"
}

// Module is a secondary, topic-based grouping. It carries no foreign key
// itself; questions are linked through QuestionAssociation.
type Module struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// Question is an immutable content record keyed by its question number.
type Question struct {
	NoQuestion int    `json:"no_question" gorm:"column:no_question;primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer"`
}

// QuestionAssociation links a question to an exam class and/or module.
// A question may appear in any number of associations.
type QuestionAssociation struct {
	ID          uint  `json:"id" gorm:"primaryKey"`
	ExamClassID *uint `json:"exam_class_id" gorm:"column:exam_class_id"`
	ModuleID    *uint `json:"module_id"`
	NoQuestion  int   `json:"no_question" gorm:"column:no_question"`
}

// Collection is an ungraded grouping of questions, independent of the
// exam/module structure.
type Collection struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type CollectionQuestion struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CollectionID uint `json:"collection_id"`
	NoQuestion   int  `json:"no_question" gorm:"column:no_question"`
}

// User holds login credentials. Username acts as the email address and is
// unique at the storage layer; a duplicate insert surfaces as
// gorm.ErrDuplicatedKey.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// HistoryEntry records one completed quiz attempt. Questions and answers are
// positionally paired lists; the writer is responsible for keeping them the
// same length. Rows are append-only.
type HistoryEntry struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	UserEmail    string                      `json:"user_email" gorm:"index;not null"`
	ExamID       uint                        `json:"exam_id"`
	ModuleID     *uint                       `json:"module_id"`
	CollectionID *uint                       `json:"collection_id"`
	Questions    datatypes.JSONSlice[int]    `json:"questions"`
	Answers      datatypes.JSONSlice[string] `json:"answers"`
	Score        float64                     `json:"score"`
	Datetime     time.Time                   `json:"datetime" gorm:"column:datetime"`
}

func (HistoryEntry) TableName() string {
	return "history"
}

// All lists every persisted entity, in creation order, for the schema
// initializer.
func All() []any {
	return []any{
		&ExamClass{},
		&Module{},
		&Question{},
		&QuestionAssociation{},
		&Collection{},
		&CollectionQuestion{},
		&User{},
		&HistoryEntry{},
	}
}
