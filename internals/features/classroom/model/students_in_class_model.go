// file: internals/features/classroom/model/students_in_class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentInClassModel enrolls a student in a teacher's class. The
// (teacher, student) pair is unique at the database level.
type StudentInClassModel struct {
	StudentInClassID        uuid.UUID `gorm:"type:uuid;primaryKey;column:student_in_class_id" json:"student_in_class_id"`
	StudentInClassTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_in_class_teacher_student,priority:1;column:student_in_class_teacher_id" json:"student_in_class_teacher_id"`
	StudentInClassStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_in_class_teacher_student,priority:2;index:idx_students_in_class_student;column:student_in_class_student_id" json:"student_in_class_student_id"`

	StudentInClassCreatedAt time.Time `gorm:"autoCreateTime;column:student_in_class_created_at" json:"student_in_class_created_at"`

	Teacher *TeacherModel `gorm:"foreignKey:StudentInClassTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Student *StudentModel `gorm:"foreignKey:StudentInClassStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (StudentInClassModel) TableName() string { return "students_in_class" }

// String needs Teacher and Student preloaded.
func (e StudentInClassModel) String() string {
	if e.Teacher == nil || e.Student == nil {
		return e.StudentInClassID.String()
	}
	return e.Student.StudentName + " in " + e.Teacher.TeacherName + "'s class"
}

func (e *StudentInClassModel) BeforeCreate(tx *gorm.DB) error {
	if e.StudentInClassID == uuid.Nil {
		e.StudentInClassID = uuid.New()
	}
	return nil
}
