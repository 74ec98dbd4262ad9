// file: internals/features/classroom/service/messages_service.go
package service

import (
	"context"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   MESSAGES TO TEACHER
   ========================= */

// SendMessage stores a student's message; the HTML is rendered by the
// model's BeforeSave hook inside the same transaction. A repeated
// (student, message) fails with apperr.ErrUniqueViolation.
func (s *ClassroomService) SendMessage(ctx context.Context, req dto.SendMessageRequest) (*model.MessageToTeacherModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.MessageToTeacherCreatedAt = s.now()

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureStudent(tx, m.MessageToTeacherStudentID); err != nil {
			return err
		}
		if err := ensureTeacher(tx, m.MessageToTeacherTeacherID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMessage edits the raw text; the HTML is re-rendered on save.
// created_at is kept, so the message keeps its place in listings.
func (s *ClassroomService) UpdateMessage(ctx context.Context, id uuid.UUID, req dto.UpdateMessageRequest) (*model.MessageToTeacherModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.MessageToTeacherModel
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &m, "message_to_teacher_id", id, "message"); err != nil {
			return err
		}
		m.MessageToTeacherMessage = req.Message
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListReceivedMessages returns a teacher's inbox, newest first.
func (s *ClassroomService) ListReceivedMessages(ctx context.Context, teacherID uuid.UUID) ([]model.MessageToTeacherModel, error) {
	var out []model.MessageToTeacherModel
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Where("message_to_teacher_teacher_id = ?", teacherID).
		Order("message_to_teacher_created_at DESC").
		Order("message_to_teacher_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListSentMessages returns what a student has sent, newest first.
func (s *ClassroomService) ListSentMessages(ctx context.Context, studentID uuid.UUID) ([]model.MessageToTeacherModel, error) {
	var out []model.MessageToTeacherModel
	err := s.DB.WithContext(ctx).
		Preload("Teacher").
		Where("message_to_teacher_student_id = ?", studentID).
		Order("message_to_teacher_created_at DESC").
		Order("message_to_teacher_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

/* =========================
   CLASS NOTICES
   ========================= */

// PostNotice stores a notice and its recipient rows. A repeated
// (teacher, message) fails with apperr.ErrUniqueViolation.
func (s *ClassroomService) PostNotice(ctx context.Context, req dto.PostNoticeRequest) (*model.ClassNoticeModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	m.ClassNoticeCreatedAt = s.now()
	studentIDs := dto.UniqueIDs(req.StudentIDs)

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := ensureTeacher(tx, m.ClassNoticeTeacherID); err != nil {
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
		rows := make([]model.ClassNoticeStudentModel, 0, len(studentIDs))
		for _, sid := range studentIDs {
			rows = append(rows, model.ClassNoticeStudentModel{
				ClassNoticeStudentNoticeID:  m.ClassNoticeID,
				ClassNoticeStudentStudentID: sid,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateNotice edits the raw text; the HTML is re-rendered on save.
func (s *ClassroomService) UpdateNotice(ctx context.Context, id uuid.UUID, req dto.UpdateNoticeRequest) (*model.ClassNoticeModel, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var m model.ClassNoticeModel
	err := s.tx(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &m, "class_notice_id", id, "notice"); err != nil {
			return err
		}
		m.ClassNoticeMessage = req.Message
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListTeacherNotices returns a teacher's notices, newest first.
func (s *ClassroomService) ListTeacherNotices(ctx context.Context, teacherID uuid.UUID) ([]model.ClassNoticeModel, error) {
	var out []model.ClassNoticeModel
	err := s.DB.WithContext(ctx).
		Where("class_notice_teacher_id = ?", teacherID).
		Order("class_notice_created_at DESC").
		Order("class_notice_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListStudentNotices returns notices addressed to a student, newest first.
func (s *ClassroomService) ListStudentNotices(ctx context.Context, studentID uuid.UUID) ([]model.ClassNoticeModel, error) {
	var out []model.ClassNoticeModel
	err := s.DB.WithContext(ctx).
		Preload("Teacher").
		Joins("JOIN class_notice_students cns ON cns.class_notice_student_notice_id = class_notices.class_notice_id").
		Where("cns.class_notice_student_student_id = ?", studentID).
		Order("class_notices.class_notice_created_at DESC").
		Order("class_notices.class_notice_id DESC").
		Find(&out).Error
	return out, wrapDB(err)
}

// ListNoticeRecipients returns the students a notice was sent to.
func (s *ClassroomService) ListNoticeRecipients(ctx context.Context, noticeID uuid.UUID) ([]model.StudentModel, error) {
	var out []model.StudentModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN class_notice_students cns ON cns.class_notice_student_student_id = students.student_user_id").
		Where("cns.class_notice_student_notice_id = ?", noticeID).
		Order("students.student_roll_no ASC").
		Find(&out).Error
	return out, wrapDB(err)
}
