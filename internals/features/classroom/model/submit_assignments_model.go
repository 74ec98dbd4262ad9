// file: internals/features/classroom/model/submit_assignments_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitAssignmentModel is a student's answer to an assignment.
type SubmitAssignmentModel struct {
	SubmitAssignmentID           uuid.UUID `gorm:"type:uuid;primaryKey;column:submit_assignment_id" json:"submit_assignment_id"`
	SubmitAssignmentStudentID    uuid.UUID `gorm:"type:uuid;not null;index:idx_submit_assignments_student;column:submit_assignment_student_id" json:"submit_assignment_student_id"`
	SubmitAssignmentTeacherID    uuid.UUID `gorm:"type:uuid;not null;index:idx_submit_assignments_teacher;column:submit_assignment_teacher_id" json:"submit_assignment_teacher_id"`
	SubmitAssignmentAssignmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_submit_assignments_assignment;column:submit_assignment_assignment_id" json:"submit_assignment_assignment_id"`

	SubmitAssignmentFileObjectKey string  `gorm:"type:text;not null;column:submit_assignment_file_object_key" json:"submit_assignment_file_object_key"`
	SubmitAssignmentFileURL       *string `gorm:"type:text;column:submit_assignment_file_url" json:"submit_assignment_file_url,omitempty"`

	SubmitAssignmentCreatedAt time.Time `gorm:"autoCreateTime;index:idx_submit_assignments_created_at;column:submit_assignment_created_at" json:"submit_assignment_created_at"`
	SubmitAssignmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:submit_assignment_updated_at" json:"submit_assignment_updated_at"`

	Student    *StudentModel         `gorm:"foreignKey:SubmitAssignmentStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Teacher    *TeacherModel         `gorm:"foreignKey:SubmitAssignmentTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Assignment *ClassAssignmentModel `gorm:"foreignKey:SubmitAssignmentAssignmentID;references:ClassAssignmentID;constraint:OnDelete:CASCADE" json:"assignment,omitempty"`
}

func (SubmitAssignmentModel) TableName() string { return "submit_assignments" }

// String needs Student and Assignment preloaded.
func (s SubmitAssignmentModel) String() string {
	if s.Student == nil || s.Assignment == nil {
		return "Submission " + s.SubmitAssignmentID.String()
	}
	return s.Student.StudentName + " submitted " + s.Assignment.ClassAssignmentName
}

func (s *SubmitAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubmitAssignmentID == uuid.Nil {
		s.SubmitAssignmentID = uuid.New()
	}
	return nil
}
