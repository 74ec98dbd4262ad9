// file: internals/features/classroom/model/messages_to_teacher_model.go
package model

import (
	"time"

	"classroom_backend/internals/helpers/markdown"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageToTeacherModel is a note from a student to a teacher.
// MessageToTeacherHTML is derived from MessageToTeacherMessage on every save.
type MessageToTeacherModel struct {
	MessageToTeacherID        uuid.UUID `gorm:"type:uuid;primaryKey;column:message_to_teacher_id" json:"message_to_teacher_id"`
	MessageToTeacherStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_messages_to_teacher_student_message,priority:1;column:message_to_teacher_student_id" json:"message_to_teacher_student_id"`
	MessageToTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_to_teacher_teacher;column:message_to_teacher_teacher_id" json:"message_to_teacher_teacher_id"`

	MessageToTeacherMessage string `gorm:"type:text;not null;uniqueIndex:uq_messages_to_teacher_student_message,priority:2;column:message_to_teacher_message" json:"message_to_teacher_message"`
	MessageToTeacherHTML    string `gorm:"type:text;not null;column:message_to_teacher_html" json:"message_to_teacher_html"`

	MessageToTeacherCreatedAt time.Time `gorm:"autoCreateTime;index:idx_messages_to_teacher_created_at;column:message_to_teacher_created_at" json:"message_to_teacher_created_at"`
	MessageToTeacherUpdatedAt time.Time `gorm:"autoUpdateTime;column:message_to_teacher_updated_at" json:"message_to_teacher_updated_at"`

	Student *StudentModel `gorm:"foreignKey:MessageToTeacherStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Teacher *TeacherModel `gorm:"foreignKey:MessageToTeacherTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
}

func (MessageToTeacherModel) TableName() string { return "messages_to_teacher" }

// String needs Student and Teacher preloaded.
func (m MessageToTeacherModel) String() string {
	if m.Student == nil || m.Teacher == nil {
		return "Message " + m.MessageToTeacherID.String()
	}
	return "Message from " + m.Student.StudentName + " to " + m.Teacher.TeacherName
}

func (m *MessageToTeacherModel) BeforeSave(tx *gorm.DB) error {
	html, err := markdown.Render(m.MessageToTeacherMessage)
	if err != nil {
		return err
	}
	m.MessageToTeacherHTML = html
	return nil
}

func (m *MessageToTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageToTeacherID == uuid.Nil {
		m.MessageToTeacherID = uuid.New()
	}
	return nil
}
