// file: internals/features/classroom/model/class_notices_model.go
package model

import (
	"time"
	"unicode/utf8"

	"classroom_backend/internals/helpers/markdown"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassNoticeModel is a teacher broadcast; recipients are ClassNoticeStudentModel rows.
type ClassNoticeModel struct {
	ClassNoticeID        uuid.UUID `gorm:"type:uuid;primaryKey;column:class_notice_id" json:"class_notice_id"`
	ClassNoticeTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_notices_teacher_message,priority:1;column:class_notice_teacher_id" json:"class_notice_teacher_id"`

	ClassNoticeMessage string `gorm:"type:text;not null;uniqueIndex:uq_class_notices_teacher_message,priority:2;column:class_notice_message" json:"class_notice_message"`
	ClassNoticeHTML    string `gorm:"type:text;not null;column:class_notice_html" json:"class_notice_html"`

	ClassNoticeCreatedAt time.Time `gorm:"autoCreateTime;index:idx_class_notices_created_at;column:class_notice_created_at" json:"class_notice_created_at"`
	ClassNoticeUpdatedAt time.Time `gorm:"autoUpdateTime;column:class_notice_updated_at" json:"class_notice_updated_at"`

	Teacher *TeacherModel `gorm:"foreignKey:ClassNoticeTeacherID;references:TeacherUserID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
}

func (ClassNoticeModel) TableName() string { return "class_notices" }

// String needs Teacher preloaded for the author name.
func (n ClassNoticeModel) String() string {
	author := n.ClassNoticeTeacherID.String()
	if n.Teacher != nil {
		author = n.Teacher.TeacherName
	}
	return "Notice from " + author + ": " + truncateRunes(n.ClassNoticeMessage, 20) + "..."
}

func (n *ClassNoticeModel) BeforeSave(tx *gorm.DB) error {
	html, err := markdown.Render(n.ClassNoticeMessage)
	if err != nil {
		return err
	}
	n.ClassNoticeHTML = html
	return nil
}

func (n *ClassNoticeModel) BeforeCreate(tx *gorm.DB) error {
	if n.ClassNoticeID == uuid.Nil {
		n.ClassNoticeID = uuid.New()
	}
	return nil
}

// ClassNoticeStudentModel links a notice to one recipient.
type ClassNoticeStudentModel struct {
	ClassNoticeStudentNoticeID  uuid.UUID `gorm:"type:uuid;primaryKey;column:class_notice_student_notice_id" json:"class_notice_student_notice_id"`
	ClassNoticeStudentStudentID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_class_notice_students_student;column:class_notice_student_student_id" json:"class_notice_student_student_id"`

	Notice  *ClassNoticeModel `gorm:"foreignKey:ClassNoticeStudentNoticeID;references:ClassNoticeID;constraint:OnDelete:CASCADE" json:"-"`
	Student *StudentModel     `gorm:"foreignKey:ClassNoticeStudentStudentID;references:StudentUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ClassNoticeStudentModel) TableName() string { return "class_notice_students" }

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
