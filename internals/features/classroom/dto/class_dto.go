// file: internals/features/classroom/dto/class_dto.go
package dto

import (
	"strings"

	"classroom_backend/internals/features/classroom/model"

	"github.com/google/uuid"
)

/* =========================
   ENROLLMENT
   ========================= */

type EnrollStudentRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

func (r EnrollStudentRequest) ToModel() model.StudentInClassModel {
	return model.StudentInClassModel{
		StudentInClassTeacherID: r.TeacherID,
		StudentInClassStudentID: r.StudentID,
	}
}

/* =========================
   GRADES
   ========================= */

type CreateGradeRequest struct {
	TeacherID     uuid.UUID `json:"teacher_id" validate:"required"`
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	SubjectName   string    `json:"subject_name" validate:"required,max=250"`
	MarksObtained int       `json:"marks_obtained" validate:"min=0,ltefield=MaximumMarks"`
	MaximumMarks  int       `json:"maximum_marks" validate:"min=0"`
}

func (r CreateGradeRequest) ToModel() model.StudentMarkModel {
	return model.StudentMarkModel{
		StudentMarkTeacherID:     r.TeacherID,
		StudentMarkStudentID:     r.StudentID,
		StudentMarkSubjectName:   strings.TrimSpace(r.SubjectName),
		StudentMarkMarksObtained: r.MarksObtained,
		StudentMarkMaximumMarks:  r.MaximumMarks,
	}
}

// UpdateGradeRequest is a PATCH; the range check runs on the merged row.
type UpdateGradeRequest struct {
	SubjectName   *string `json:"subject_name" validate:"omitempty,max=250"`
	MarksObtained *int    `json:"marks_obtained" validate:"omitempty,min=0"`
	MaximumMarks  *int    `json:"maximum_marks" validate:"omitempty,min=0"`
}

func (r UpdateGradeRequest) ApplyTo(m *model.StudentMarkModel) {
	setTrimmed(&m.StudentMarkSubjectName, r.SubjectName)
	if r.MarksObtained != nil {
		m.StudentMarkMarksObtained = *r.MarksObtained
	}
	if r.MaximumMarks != nil {
		m.StudentMarkMaximumMarks = *r.MaximumMarks
	}
}

/* =========================
   MESSAGES & NOTICES
   ========================= */

// Raw text is stored as given: the uniqueness rule compares it byte for byte.
// maxbytes keeps the (author, message) unique index under the btree row limit.
type SendMessageRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Message   string    `json:"message" validate:"required,maxbytes=2000"`
}

func (r SendMessageRequest) ToModel() model.MessageToTeacherModel {
	return model.MessageToTeacherModel{
		MessageToTeacherStudentID: r.StudentID,
		MessageToTeacherTeacherID: r.TeacherID,
		MessageToTeacherMessage:   r.Message,
	}
}

type UpdateMessageRequest struct {
	Message string `json:"message" validate:"required,maxbytes=2000"`
}

type PostNoticeRequest struct {
	TeacherID  uuid.UUID   `json:"teacher_id" validate:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"omitempty,dive,required"`
	Message    string      `json:"message" validate:"required,maxbytes=2000"`
}

func (r PostNoticeRequest) ToModel() model.ClassNoticeModel {
	return model.ClassNoticeModel{
		ClassNoticeTeacherID: r.TeacherID,
		ClassNoticeMessage:   r.Message,
	}
}

type UpdateNoticeRequest struct {
	Message string `json:"message" validate:"required,maxbytes=2000"`
}

/* =========================
   ASSIGNMENTS & SUBMISSIONS
   ========================= */

type CreateAssignmentRequest struct {
	TeacherID     uuid.UUID   `json:"teacher_id" validate:"required"`
	StudentIDs    []uuid.UUID `json:"student_ids" validate:"omitempty,dive,required"`
	Name          string      `json:"name" validate:"required,max=250"`
	FileObjectKey string      `json:"file_object_key" validate:"required,max=2048"`
	FileURL       string      `json:"file_url" validate:"omitempty,url,max=2048"`
}

func (r CreateAssignmentRequest) ToModel() model.ClassAssignmentModel {
	return model.ClassAssignmentModel{
		ClassAssignmentTeacherID:     r.TeacherID,
		ClassAssignmentName:          strings.TrimSpace(r.Name),
		ClassAssignmentFileObjectKey: strings.TrimSpace(r.FileObjectKey),
		ClassAssignmentFileURL:       nilIfEmpty(r.FileURL),
	}
}

// SubmitAssignmentRequest: the addressed teacher is taken from the assignment.
type SubmitAssignmentRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	AssignmentID  uuid.UUID `json:"assignment_id" validate:"required"`
	FileObjectKey string    `json:"file_object_key" validate:"required,max=2048"`
	FileURL       string    `json:"file_url" validate:"omitempty,url,max=2048"`
}

func (r SubmitAssignmentRequest) ToModel(teacherID uuid.UUID) model.SubmitAssignmentModel {
	return model.SubmitAssignmentModel{
		SubmitAssignmentStudentID:     r.StudentID,
		SubmitAssignmentTeacherID:     teacherID,
		SubmitAssignmentAssignmentID:  r.AssignmentID,
		SubmitAssignmentFileObjectKey: strings.TrimSpace(r.FileObjectKey),
		SubmitAssignmentFileURL:       nilIfEmpty(r.FileURL),
	}
}

// UniqueIDs drops duplicates and nil ids, keeping first-seen order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
