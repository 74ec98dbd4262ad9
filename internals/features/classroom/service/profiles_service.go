// file: internals/features/classroom/service/profiles_service.go
package service

import (
	"context"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"
	userModel "classroom_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   STUDENTS
   ========================= */

// CreateStudent attaches a student profile to an existing account and marks
// the account as a student.
func (s *ClassroomService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*model.StudentModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.StudentCreatedAt = s.now()

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureAccount(tx, m.StudentUserID); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", m.StudentUserID).
			Update("is_student", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassroomService) UpdateStudent(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*model.StudentModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.StudentModel
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &m, "student_user_id", id, "student"); err != nil {
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

func (s *ClassroomService) GetStudent(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := s.tx(ctx, func(tx *gorm.DB) error {
		return first(tx, &m, "student_user_id", id, "student")
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListStudents orders by roll number as stored (lexicographic).
func (s *ClassroomService) ListStudents(ctx context.Context) ([]model.StudentModel, error) {
	var out []model.StudentModel
	err := s.DB.WithContext(ctx).
		Order("student_roll_no ASC").
		Order("student_user_id ASC").
		Find(&out).Error
	return out, wrapDB(err)
}

// DeleteStudent removes the profile and, by cascade, its grades, enrollments,
// messages, notice/assignment targets and submissions. The account stays.
func (s *ClassroomService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		return deleteOne(tx, &model.StudentModel{}, "student_user_id", id, "student")
	})
}

/* =========================
   TEACHERS
   ========================= */

func (s *ClassroomService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*model.TeacherModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.TeacherCreatedAt = s.now()

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureAccount(tx, m.TeacherUserID); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", m.TeacherUserID).
			Update("is_teacher", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassroomService) UpdateTeacher(ctx context.Context, id uuid.UUID, req dto.UpdateTeacherRequest) (*model.TeacherModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.TeacherModel
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &m, "teacher_user_id", id, "teacher"); err != nil {
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

func (s *ClassroomService) GetTeacher(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error) {
	var m model.TeacherModel
	if err := s.tx(ctx, func(tx *gorm.DB) error {
		return first(tx, &m, "teacher_user_id", id, "teacher")
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassroomService) ListTeachers(ctx context.Context) ([]model.TeacherModel, error) {
	var out []model.TeacherModel
	err := s.DB.WithContext(ctx).
		Order("teacher_name ASC").
		Order("teacher_user_id ASC").
		Find(&out).Error
	return out, wrapDB(err)
}

// DeleteTeacher removes the profile and everything that references it.
func (s *ClassroomService) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		return deleteOne(tx, &model.TeacherModel{}, "teacher_user_id", id, "teacher")
	})
}
