// file: internals/features/classroom/model/teachers_model.go
package model

import (
	"fmt"
	"time"

	userModel "classroom_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// TeacherModel extends an account 1:1. Its class roster is the set of
// StudentInClassModel rows pointing at it.
type TeacherModel struct {
	TeacherUserID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_user_id" json:"teacher_user_id"`

	TeacherName        string `gorm:"type:varchar(250);not null;column:teacher_name" json:"teacher_name"`
	TeacherSubjectName string `gorm:"type:varchar(250);not null;column:teacher_subject_name" json:"teacher_subject_name"`
	TeacherEmail       string `gorm:"type:varchar(254);not null;column:teacher_email" json:"teacher_email"`
	TeacherPhone       string `gorm:"type:varchar(15);not null;column:teacher_phone" json:"teacher_phone"`

	TeacherProfilePicURL       *string `gorm:"type:text;column:teacher_profile_pic_url" json:"teacher_profile_pic_url,omitempty"`
	TeacherProfilePicObjectKey *string `gorm:"type:text;column:teacher_profile_pic_object_key" json:"teacher_profile_pic_object_key,omitempty"`

	TeacherCreatedAt time.Time `gorm:"autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:TeacherUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t TeacherModel) String() string {
	return fmt.Sprintf("%s (Subject: %s)", t.TeacherName, t.TeacherSubjectName)
}
