// file: internals/features/classroom/service/classroom_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom_backend/internals/features/classroom/model"
	userModel "classroom_backend/internals/features/users/user/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassroomService performs every classroom write inside one transaction and
// returns errors from the apperr taxonomy.
type ClassroomService struct {
	DB       *gorm.DB
	Validate *validator.Validate

	// Now stamps created_at; tests swap it for a fixed clock.
	Now func() time.Time
}

func NewClassroomService(db *gorm.DB, v *validator.Validate) *ClassroomService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassroomService{DB: db, Validate: v, Now: time.Now}
}

func (s *ClassroomService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *ClassroomService) validate(req any) error {
	if err := s.Validate.Struct(req); err != nil {
		return apperr.FromValidator(err)
	}
	return nil
}

func (s *ClassroomService) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return apperr.FromDB(s.DB.WithContext(ctx).Transaction(fn))
}

/* =========================
   existence checks (inside tx)
   ========================= */

func ensureExists(tx *gorm.DB, m any, column string, id uuid.UUID, label string) error {
	var n int64
	if err := tx.Model(m).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", apperr.ErrReferenceNotFound, label, id)
	}
	return nil
}

func ensureAccount(tx *gorm.DB, id uuid.UUID) error {
	return ensureExists(tx, &userModel.UserModel{}, "id", id, "account")
}

func ensureTeacher(tx *gorm.DB, id uuid.UUID) error {
	return ensureExists(tx, &model.TeacherModel{}, "teacher_user_id", id, "teacher")
}

func ensureStudent(tx *gorm.DB, id uuid.UUID) error {
	return ensureExists(tx, &model.StudentModel{}, "student_user_id", id, "student")
}

// ensureStudents checks that every id names an existing student.
func ensureStudents(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uuid.UUID
	if err := tx.Model(&model.StudentModel{}).
		Where("student_user_id IN ?", ids).
		Pluck("student_user_id", &found).Error; err != nil {
		return err
	}
	if len(found) == len(ids) {
		return nil
	}
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return fmt.Errorf("%w: student %s", apperr.ErrReferenceNotFound, id)
		}
	}
	return nil
}

// first loads one row or returns apperr.ErrNotFound.
func first(tx *gorm.DB, dst any, column string, id uuid.UUID, label string) error {
	err := tx.Where(column+" = ?", id).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", apperr.ErrNotFound, label, id)
	}
	return err
}

// deleteOne removes a row by key; the database cascades to dependents.
func deleteOne(tx *gorm.DB, m any, column string, id uuid.UUID, label string) error {
	res := tx.Where(column+" = ?", id).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", apperr.ErrNotFound, label, id)
	}
	return nil
}

func wrapDB(err error) error { return apperr.FromDB(err) }
