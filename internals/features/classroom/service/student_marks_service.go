// file: internals/features/classroom/service/student_marks_service.go
package service

import (
	"context"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *ClassroomService) CreateGrade(ctx context.Context, req dto.CreateGradeRequest) (*model.StudentMarkModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.StudentMarkCreatedAt = s.now()

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureTeacher(tx, m.StudentMarkTeacherID); err != nil {
			return err
		}
		if err := ensureStudent(tx, m.StudentMarkStudentID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateGrade patches a grade; the merged row must still satisfy
// marks_obtained <= maximum_marks.
func (s *ClassroomService) UpdateGrade(ctx context.Context, id uuid.UUID, req dto.UpdateGradeRequest) (*model.StudentMarkModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.StudentMarkModel
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &m, "student_mark_id", id, "grade"); err != nil {
			return err
		}
		req.ApplyTo(&m)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListStudentGrades returns a student's grades, newest first.
func (s *ClassroomService) ListStudentGrades(ctx context.Context, studentID uuid.UUID) ([]model.StudentMarkModel, error) {
	var out []model.StudentMarkModel
	err := s.DB.WithContext(ctx).
		Where("student_mark_student_id = ?", studentID).
		Order("student_mark_created_at DESC").
		Order("student_mark_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListGivenGrades returns grades a teacher has given, newest first.
func (s *ClassroomService) ListGivenGrades(ctx context.Context, teacherID uuid.UUID) ([]model.StudentMarkModel, error) {
	var out []model.StudentMarkModel
	err := s.DB.WithContext(ctx).
		Where("student_mark_teacher_id = ?", teacherID).
		Order("student_mark_created_at DESC").
		Order("student_mark_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}
