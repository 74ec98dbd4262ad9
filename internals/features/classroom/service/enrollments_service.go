// file: internals/features/classroom/service/enrollments_service.go
package service

import (
	"context"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollStudent adds a student to a teacher's class. A second enrollment of
// the same pair fails with apperr.ErrUniqueViolation from the unique index.
func (s *ClassroomService) EnrollStudent(ctx context.Context, req dto.EnrollStudentRequest) (*model.StudentInClassModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.StudentInClassCreatedAt = s.now()

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureTeacher(tx, m.StudentInClassTeacherID); err != nil {
			return err
		}
		if err := ensureStudent(tx, m.StudentInClassStudentID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassroomService) UnenrollStudent(ctx context.Context, teacherID, studentID uuid.UUID) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		return deleteOne(tx.Where("student_in_class_teacher_id = ?", teacherID),
			&model.StudentInClassModel{}, "student_in_class_student_id", studentID, "enrollment")
	})
}

// ListClassStudents returns a teacher's roster ordered by roll number.
func (s *ClassroomService) ListClassStudents(ctx context.Context, teacherID uuid.UUID) ([]model.StudentModel, error) {
	var out []model.StudentModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN students_in_class sic ON sic.student_in_class_student_id = students.student_user_id").
		Where("sic.student_in_class_teacher_id = ?", teacherID).
		Order("students.student_roll_no ASC").
		Order("students.student_user_id ASC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListStudentTeachers returns the teachers a student is enrolled with.
func (s *ClassroomService) ListStudentTeachers(ctx context.Context, studentID uuid.UUID) ([]model.TeacherModel, error) {
	var out []model.TeacherModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN students_in_class sic ON sic.student_in_class_teacher_id = teachers.teacher_user_id").
		Where("sic.student_in_class_student_id = ?", studentID).
		Order("teachers.teacher_name ASC").
		Order("teachers.teacher_user_id ASC").
		Find(&out).Error
	return out, wrapDB(err)
}
