// file: internals/features/classroom/model/students_model.go
package model

import (
	"fmt"
	"time"

	userModel "classroom_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// StudentModel extends an account 1:1; the account id is the primary key.
type StudentModel struct {
	StudentUserID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_user_id" json:"student_user_id"`

	StudentName   string `gorm:"type:varchar(250);not null;column:student_name" json:"student_name"`
	StudentRollNo string `gorm:"type:varchar(50);not null;index:idx_students_roll_no;column:student_roll_no" json:"student_roll_no"`
	StudentEmail  string `gorm:"type:varchar(254);not null;column:student_email" json:"student_email"`
	StudentPhone  string `gorm:"type:varchar(15);not null;column:student_phone" json:"student_phone"`

	// Profile picture lives in external storage; only the reference is kept.
	StudentProfilePicURL       *string `gorm:"type:text;column:student_profile_pic_url" json:"student_profile_pic_url,omitempty"`
	StudentProfilePicObjectKey *string `gorm:"type:text;column:student_profile_pic_object_key" json:"student_profile_pic_object_key,omitempty"`

	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:StudentUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (s StudentModel) String() string {
	return fmt.Sprintf("%s (Roll No: %s)", s.StudentName, s.StudentRollNo)
}
