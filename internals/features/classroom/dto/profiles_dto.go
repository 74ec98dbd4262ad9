// file: internals/features/classroom/dto/profiles_dto.go
package dto

import (
	"strings"

	"classroom_backend/internals/features/classroom/model"

	"github.com/google/uuid"
)

/* =========================
   STUDENT
   ========================= */

type CreateStudentRequest struct {
	StudentUserID              uuid.UUID `json:"student_user_id" validate:"required"`
	StudentName                string    `json:"student_name" validate:"required,max=250"`
	StudentRollNo              string    `json:"student_roll_no" validate:"required,max=50"`
	StudentEmail               string    `json:"student_email" validate:"required,email,max=254"`
	StudentPhone               string    `json:"student_phone" validate:"required,phone"`
	StudentProfilePicURL       string    `json:"student_profile_pic_url" validate:"omitempty,url,max=2048"`
	StudentProfilePicObjectKey string    `json:"student_profile_pic_object_key" validate:"omitempty,max=2048"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentUserID:              r.StudentUserID,
		StudentName:                strings.TrimSpace(r.StudentName),
		StudentRollNo:              strings.TrimSpace(r.StudentRollNo),
		StudentEmail:               strings.TrimSpace(r.StudentEmail),
		StudentPhone:               strings.TrimSpace(r.StudentPhone),
		StudentProfilePicURL:       nilIfEmpty(r.StudentProfilePicURL),
		StudentProfilePicObjectKey: nilIfEmpty(r.StudentProfilePicObjectKey),
	}
}

// UpdateStudentRequest is a PATCH: nil fields are left alone.
type UpdateStudentRequest struct {
	StudentName                *string `json:"student_name" validate:"omitempty,max=250"`
	StudentRollNo              *string `json:"student_roll_no" validate:"omitempty,max=50"`
	StudentEmail               *string `json:"student_email" validate:"omitempty,email,max=254"`
	StudentPhone               *string `json:"student_phone" validate:"omitempty,phone"`
	StudentProfilePicURL       *string `json:"student_profile_pic_url" validate:"omitempty,url,max=2048"`
	StudentProfilePicObjectKey *string `json:"student_profile_pic_object_key" validate:"omitempty,max=2048"`
}

func (r UpdateStudentRequest) ApplyTo(m *model.StudentModel) {
	setTrimmed(&m.StudentName, r.StudentName)
	setTrimmed(&m.StudentRollNo, r.StudentRollNo)
	setTrimmed(&m.StudentEmail, r.StudentEmail)
	setTrimmed(&m.StudentPhone, r.StudentPhone)
	if r.StudentProfilePicURL != nil {
		m.StudentProfilePicURL = nilIfEmpty(*r.StudentProfilePicURL)
	}
	if r.StudentProfilePicObjectKey != nil {
		m.StudentProfilePicObjectKey = nilIfEmpty(*r.StudentProfilePicObjectKey)
	}
}

/* =========================
   TEACHER
   ========================= */

type CreateTeacherRequest struct {
	TeacherUserID              uuid.UUID `json:"teacher_user_id" validate:"required"`
	TeacherName                string    `json:"teacher_name" validate:"required,max=250"`
	TeacherSubjectName         string    `json:"teacher_subject_name" validate:"required,max=250"`
	TeacherEmail               string    `json:"teacher_email" validate:"required,email,max=254"`
	TeacherPhone               string    `json:"teacher_phone" validate:"required,phone"`
	TeacherProfilePicURL       string    `json:"teacher_profile_pic_url" validate:"omitempty,url,max=2048"`
	TeacherProfilePicObjectKey string    `json:"teacher_profile_pic_object_key" validate:"omitempty,max=2048"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherUserID:              r.TeacherUserID,
		TeacherName:                strings.TrimSpace(r.TeacherName),
		TeacherSubjectName:         strings.TrimSpace(r.TeacherSubjectName),
		TeacherEmail:               strings.TrimSpace(r.TeacherEmail),
		TeacherPhone:               strings.TrimSpace(r.TeacherPhone),
		TeacherProfilePicURL:       nilIfEmpty(r.TeacherProfilePicURL),
		TeacherProfilePicObjectKey: nilIfEmpty(r.TeacherProfilePicObjectKey),
	}
}

type UpdateTeacherRequest struct {
	TeacherName                *string `json:"teacher_name" validate:"omitempty,max=250"`
	TeacherSubjectName         *string `json:"teacher_subject_name" validate:"omitempty,max=250"`
	TeacherEmail               *string `json:"teacher_email" validate:"omitempty,email,max=254"`
	TeacherPhone               *string `json:"teacher_phone" validate:"omitempty,phone"`
	TeacherProfilePicURL       *string `json:"teacher_profile_pic_url" validate:"omitempty,url,max=2048"`
	TeacherProfilePicObjectKey *string `json:"teacher_profile_pic_object_key" validate:"omitempty,max=2048"`
}

func (r UpdateTeacherRequest) ApplyTo(m *model.TeacherModel) {
	setTrimmed(&m.TeacherName, r.TeacherName)
	setTrimmed(&m.TeacherSubjectName, r.TeacherSubjectName)
	setTrimmed(&m.TeacherEmail, r.TeacherEmail)
	setTrimmed(&m.TeacherPhone, r.TeacherPhone)
	if r.TeacherProfilePicURL != nil {
		m.TeacherProfilePicURL = nilIfEmpty(*r.TeacherProfilePicURL)
	}
	if r.TeacherProfilePicObjectKey != nil {
		m.TeacherProfilePicObjectKey = nilIfEmpty(*r.TeacherProfilePicObjectKey)
	}
}

/* =========================
   helpers
   ========================= */

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
