// file: internals/features/classroom/model/student_marks_model.go
package model

import (
	"fmt"
	"time"

	"classroom_backend/internals/helpers/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentMarkModel is one grade given by a teacher to a student.
type StudentMarkModel struct {
	StudentMarkID        uuid.UUID `gorm:"type:uuid;primaryKey;column:student_mark_id" json:"student_mark_id"`
	StudentMarkTeacherID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_marks_teacher;column:student_mark_teacher_id" json:"student_mark_teacher_id"`
	StudentMarkStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_marks_student;column:student_mark_student_id" json:"student_mark_student_id"`

	StudentMarkSubjectName   string `gorm:"type:varchar(250);not null;column:student_mark_subject_name" json:"student_mark_subject_name"`
	StudentMarkMarksObtained int    `gorm:"not null;check:chk_student_marks_obtained_range,student_mark_marks_obtained >= 0 AND student_mark_marks_obtained <= student_mark_maximum_marks;column:student_mark_marks_obtained" json:"student_mark_marks_obtained"`
	StudentMarkMaximumMarks  int    `gorm:"not null;check:chk_student_marks_maximum_non_negative,student_mark_maximum_marks >= 0;column:student_mark_maximum_marks" json:"student_mark_maximum_marks"`

	StudentMarkCreatedAt time.Time `gorm:"autoCreateTime;column:student_mark_created_at" json:"student_mark_created_at"`
	StudentMarkUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_mark_updated_at" json:"student_mark_updated_at"`

	Teacher *TeacherModel `gorm:"foreignKey:StudentMarkTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"-"`
	Student *StudentModel `gorm:"foreignKey:StudentMarkStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentMarkModel) TableName() string { return "student_marks" }

func (m StudentMarkModel) String() string {
	return fmt.Sprintf("%s - %d/%d", m.StudentMarkSubjectName, m.StudentMarkMarksObtained, m.StudentMarkMaximumMarks)
}

// ensureConsistency mirrors the CHECK constraints so bad rows fail before the round trip.
func (m *StudentMarkModel) ensureConsistency() error {
	if m.StudentMarkMaximumMarks < 0 {
		return apperr.Validation("student_mark_maximum_marks", "min=0")
	}
	if m.StudentMarkMarksObtained < 0 {
		return apperr.Validation("student_mark_marks_obtained", "min=0")
	}
	if m.StudentMarkMarksObtained > m.StudentMarkMaximumMarks {
		return apperr.Validation("student_mark_marks_obtained", "ltefield=student_mark_maximum_marks")
	}
	return nil
}

func (m *StudentMarkModel) BeforeSave(tx *gorm.DB) error { return m.ensureConsistency() }

func (m *StudentMarkModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentMarkID == uuid.Nil {
		m.StudentMarkID = uuid.New()
	}
	return nil
}
