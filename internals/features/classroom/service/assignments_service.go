// file: internals/features/classroom/service/assignments_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"
	"classroom_backend/internals/helpers/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   ASSIGNMENTS
   ========================= */

func (s *ClassroomService) CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest) (*model.ClassAssignmentModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.ClassAssignmentCreatedAt = s.now()
	studentIDs := dto.UniqueIDs(req.StudentIDs)

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureTeacher(tx, m.ClassAssignmentTeacherID); err != nil {
			return err
		}
		if err := ensureStudents(tx, studentIDs); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(studentIDs) == 0 {
			return nil
		}
		rows := make([]model.ClassAssignmentStudentModel, 0, len(studentIDs))
		for _, sid := range studentIDs {
			rows = append(rows, model.ClassAssignmentStudentModel{
				ClassAssignmentStudentAssignmentID: m.ClassAssignmentID,
				ClassAssignmentStudentStudentID:    sid,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassroomService) GetAssignment(ctx context.Context, id uuid.UUID) (*model.ClassAssignmentModel, error) {
	var m model.ClassAssignmentModel
	if err := s.tx(ctx, func(tx *gorm.DB) error {
		return first(tx, &m, "class_assignment_id", id, "assignment")
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListTeacherAssignments returns what a teacher handed out, newest first.
func (s *ClassroomService) ListTeacherAssignments(ctx context.Context, teacherID uuid.UUID) ([]model.ClassAssignmentModel, error) {
	var out []model.ClassAssignmentModel
	err := s.DB.WithContext(ctx).
		Where("class_assignment_teacher_id = ?", teacherID).
		Order("class_assignment_created_at DESC").
		Order("class_assignment_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListStudentAssignments returns assignments targeted at a student, newest first.
func (s *ClassroomService) ListStudentAssignments(ctx context.Context, studentID uuid.UUID) ([]model.ClassAssignmentModel, error) {
	var out []model.ClassAssignmentModel
	err := s.DB.WithContext(ctx).
		Preload("Teacher").
		Joins("JOIN class_assignment_students cas ON cas.class_assignment_student_assignment_id = class_assignments.class_assignment_id").
		Where("cas.class_assignment_student_student_id = ?", studentID).
		Order("class_assignments.class_assignment_created_at DESC").
		Order("class_assignments.class_assignment_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// DeleteAssignment removes an assignment with its targets and submissions.
func (s *ClassroomService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		return deleteOne(tx, &model.ClassAssignmentModel{}, "class_assignment_id", id, "assignment")
	})
}

/* =========================
   SUBMISSIONS
   ========================= */

// SubmitAssignment records a student's file for an assignment. The
// submission is addressed to the assignment's teacher, and the student must
// be one of the assignment's targets.
func (s *ClassroomService) SubmitAssignment(ctx context.Context, req dto.SubmitAssignmentRequest) (*model.SubmitAssignmentModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.SubmitAssignmentModel

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureStudent(tx, req.StudentID); err != nil {
			return err
		}
		var a model.ClassAssignmentModel
		if err := first(tx, &a, "class_assignment_id", req.AssignmentID, "assignment"); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("%w: assignment %s", apperr.ErrReferenceNotFound, req.AssignmentID)
			}
			return err
		}

		var targeted int64
		if err := tx.Model(&model.ClassAssignmentStudentModel{}).
			Where("class_assignment_student_assignment_id = ? AND class_assignment_student_student_id = ?", a.ClassAssignmentID, req.StudentID).
			Count(&targeted).Error; err != nil {
			return err
		}
		if targeted == 0 {
			return apperr.Validation("student_id", "not_assigned")
		}

		m = req.ToModel(a.ClassAssignmentTeacherID)
		m.SubmitAssignmentCreatedAt = s.now()
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAssignmentSubmissions returns submissions for one assignment, newest first.
func (s *ClassroomService) ListAssignmentSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]model.SubmitAssignmentModel, error) {
	return s.listSubmissions(ctx, "submit_assignment_assignment_id", assignmentID)
}

// ListTeacherSubmissions returns submissions addressed to a teacher, newest first.
func (s *ClassroomService) ListTeacherSubmissions(ctx context.Context, teacherID uuid.UUID) ([]model.SubmitAssignmentModel, error) {
	return s.listSubmissions(ctx, "submit_assignment_teacher_id", teacherID)
}

// ListStudentSubmissions returns a student's submissions, newest first.
func (s *ClassroomService) ListStudentSubmissions(ctx context.Context, studentID uuid.UUID) ([]model.SubmitAssignmentModel, error) {
	return s.listSubmissions(ctx, "submit_assignment_student_id", studentID)
}

func (s *ClassroomService) listSubmissions(ctx context.Context, column string, id uuid.UUID) ([]model.SubmitAssignmentModel, error) {
	var out []model.SubmitAssignmentModel
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Preload("Assignment").
		Where(column+" = ?", id).
		Order("submit_assignment_created_at DESC").
		Order("submit_assignment_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}
