package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the authentication identity. Student and teacher profiles
// hang off it 1:1 and are removed with it.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserName  string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_user_name;column:user_name" json:"user_name"`
	Email     string    `gorm:"type:varchar(254);not null;column:email" json:"email"`
	Password  string    `gorm:"type:varchar(128);not null;column:password" json:"-"`
	FirstName string    `gorm:"type:varchar(150);not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"type:varchar(150);not null;column:last_name" json:"last_name"`

	// Role flags are independent; both may be set or both unset.
	IsStudent bool `gorm:"not null;column:is_student" json:"is_student"`
	IsTeacher bool `gorm:"not null;column:is_teacher" json:"is_teacher"`
	IsActive  bool `gorm:"not null;column:is_active" json:"is_active"`

	LastLogin  *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	DateJoined time.Time  `gorm:"autoCreateTime;column:date_joined" json:"date_joined"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first and last name, falling back to the user name.
func (u *UserModel) FullName() string {
	if n := strings.TrimSpace(u.FirstName + " " + u.LastName); n != "" {
		return n
	}
	return u.UserName
}

func (u *UserModel) String() string { return u.UserName }
