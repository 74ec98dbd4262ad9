// file: internals/features/classroom/model/class_assignments_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassAssignmentModel is work handed out by a teacher; targets are
// ClassAssignmentStudentModel rows. The file itself lives in external storage.
type ClassAssignmentModel struct {
	ClassAssignmentID        uuid.UUID `gorm:"type:uuid;primaryKey;column:class_assignment_id" json:"class_assignment_id"`
	ClassAssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;index:idx_class_assignments_teacher;column:class_assignment_teacher_id" json:"class_assignment_teacher_id"`

	ClassAssignmentName          string  `gorm:"type:varchar(250);not null;column:class_assignment_name" json:"class_assignment_name"`
	ClassAssignmentFileObjectKey string  `gorm:"type:text;not null;column:class_assignment_file_object_key" json:"class_assignment_file_object_key"`
	ClassAssignmentFileURL       *string `gorm:"type:text;column:class_assignment_file_url" json:"class_assignment_file_url,omitempty"`

	ClassAssignmentCreatedAt time.Time `gorm:"autoCreateTime;index:idx_class_assignments_created_at;column:class_assignment_created_at" json:"class_assignment_created_at"`
	ClassAssignmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:class_assignment_updated_at" json:"class_assignment_updated_at"`

	Teacher *TeacherModel `gorm:"foreignKey:ClassAssignmentTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
}

func (ClassAssignmentModel) TableName() string { return "class_assignments" }

func (a ClassAssignmentModel) String() string { return "Assignment: " + a.ClassAssignmentName }

func (a *ClassAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.ClassAssignmentID == uuid.Nil {
		a.ClassAssignmentID = uuid.New()
	}
	return nil
}

// ClassAssignmentStudentModel links an assignment to one target student.
type ClassAssignmentStudentModel struct {
	ClassAssignmentStudentAssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_assignment_student_assignment_id" json:"class_assignment_student_assignment_id"`
	ClassAssignmentStudentStudentID    uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_class_assignment_students_student;column:class_assignment_student_student_id" json:"class_assignment_student_student_id"`

	Assignment *ClassAssignmentModel `gorm:"foreignKey:ClassAssignmentStudentAssignmentID;references:ClassAssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	Student    *StudentModel         `gorm:"foreignKey:ClassAssignmentStudentStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ClassAssignmentStudentModel) TableName() string { return "class_assignment_students" }
