package classroom

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	classDto "classroom_backend/internals/features/classroom/dto"
	classService "classroom_backend/internals/features/classroom/service"
	userDto "classroom_backend/internals/features/users/user/dto"
	userModel "classroom_backend/internals/features/users/user/model"
	userService "classroom_backend/internals/features/users/user/service"
	"classroom_backend/internals/helpers/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:embed data_classroom.json
var DefaultData []byte

type accountSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type teacherSeed struct {
	accountSeed
	Subject string `json:"subject"`
}

type studentSeed struct {
	accountSeed
	RollNo string `json:"roll_no"`
}

type ClassroomSeed struct {
	Teachers    []teacherSeed `json:"teachers"`
	Students    []studentSeed `json:"students"`
	Enrollments []struct {
		Teacher string `json:"teacher"`
		Student string `json:"student"`
	} `json:"enrollments"`
	Grades []struct {
		Teacher       string `json:"teacher"`
		Student       string `json:"student"`
		Subject       string `json:"subject"`
		MarksObtained int    `json:"marks_obtained"`
		MaximumMarks  int    `json:"maximum_marks"`
	} `json:"grades"`
	Notices []struct {
		Teacher  string   `json:"teacher"`
		Students []string `json:"students"`
		Message  string   `json:"message"`
	} `json:"notices"`
}

type seeder struct {
	ctx   context.Context
	db    *gorm.DB
	users *userService.UserService
	class *classService.ClassroomService
	ids   map[string]uuid.UUID
}

// SeedClassroomFromJSON loads demo accounts, profiles and class data through
// the services. Rows that already exist are skipped, so it is safe to rerun.
func SeedClassroomFromJSON(ctx context.Context, db *gorm.DB, raw []byte) error {
	var in ClassroomSeed
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("decode classroom seed: %w", err)
	}
	s := &seeder{
		ctx:   ctx,
		db:    db,
		users: userService.NewUserService(db, nil),
		class: classService.NewClassroomService(db, nil),
		ids:   map[string]uuid.UUID{},
	}

	for _, t := range in.Teachers {
		id, err := s.account(t.accountSeed, false, true)
		if err != nil {
			return err
		}
		_, err = s.class.CreateTeacher(ctx, classDto.CreateTeacherRequest{
			TeacherUserID:      id,
			TeacherName:        t.Name,
			TeacherSubjectName: t.Subject,
			TeacherEmail:       t.Email,
			TeacherPhone:       t.Phone,
		})
		if err := skipExisting("teacher "+t.UserName, err); err != nil {
			return err
		}
	}

	for _, st := range in.Students {
		id, err := s.account(st.accountSeed, true, false)
		if err != nil {
			return err
		}
		_, err = s.class.CreateStudent(ctx, classDto.CreateStudentRequest{
			StudentUserID: id,
			StudentName:   st.Name,
			StudentRollNo: st.RollNo,
			StudentEmail:  st.Email,
			StudentPhone:  st.Phone,
		})
		if err := skipExisting("student "+st.UserName, err); err != nil {
			return err
		}
	}

	for _, e := range in.Enrollments {
		_, err := s.class.EnrollStudent(ctx, classDto.EnrollStudentRequest{
			TeacherID: s.ids[e.Teacher],
			StudentID: s.ids[e.Student],
		})
		if err := skipExisting("enrollment "+e.Teacher+"/"+e.Student, err); err != nil {
			return err
		}
	}

	for _, g := range in.Grades {
		if err := s.seedGrade(g.Teacher, g.Student, g.Subject, g.MarksObtained, g.MaximumMarks); err != nil {
			return err
		}
	}

	for _, n := range in.Notices {
		studentIDs := make([]uuid.UUID, 0, len(n.Students))
		for _, name := range n.Students {
			studentIDs = append(studentIDs, s.ids[name])
		}
		_, err := s.class.PostNotice(ctx, classDto.PostNoticeRequest{
			TeacherID:  s.ids[n.Teacher],
			StudentIDs: studentIDs,
			Message:    n.Message,
		})
		if err := skipExisting("notice from "+n.Teacher, err); err != nil {
			return err
		}
	}
	return nil
}

// account registers the user or reuses the existing one with that user name.
func (s *seeder) account(a accountSeed, isStudent, isTeacher bool) (uuid.UUID, error) {
	u, err := s.users.RegisterAccount(s.ctx, userDto.RegisterRequest{
		UserName:  a.UserName,
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.Name,
		IsStudent: isStudent,
		IsTeacher: isTeacher,
	})
	switch {
	case err == nil:
		log.Printf("[SEED] account %s created", a.UserName)
		s.ids[a.UserName] = u.ID
		return u.ID, nil
	case errors.Is(err, apperr.ErrUniqueViolation):
		var existing userModel.UserModel
		if err := s.db.WithContext(s.ctx).Where("user_name = ?", a.UserName).First(&existing).Error; err != nil {
			return uuid.Nil, fmt.Errorf("seed account %s: %w", a.UserName, apperr.FromDB(err))
		}
		s.ids[a.UserName] = existing.ID
		return existing.ID, nil
	default:
		return uuid.Nil, fmt.Errorf("seed account %s: %w", a.UserName, err)
	}
}

// seedGrade has no natural key, so an identical existing grade counts as seeded.
func (s *seeder) seedGrade(teacher, student, subject string, obtained, maximum int) error {
	var n int64
	err := s.db.WithContext(s.ctx).Table("student_marks").
		Where("student_mark_teacher_id = ? AND student_mark_student_id = ? AND student_mark_subject_name = ?",
			s.ids[teacher], s.ids[student], subject).
		Count(&n).Error
	if err != nil {
		return fmt.Errorf("seed grade %s/%s: %w", teacher, student, apperr.FromDB(err))
	}
	if n > 0 {
		return nil
	}
	_, err = s.class.CreateGrade(s.ctx, classDto.CreateGradeRequest{
		TeacherID:     s.ids[teacher],
		StudentID:     s.ids[student],
		SubjectName:   subject,
		MarksObtained: obtained,
		MaximumMarks:  maximum,
	})
	if err != nil {
		return fmt.Errorf("seed grade %s/%s: %w", teacher, student, err)
	}
	return nil
}

func skipExisting(what string, err error) error {
	switch {
	case err == nil:
		log.Printf("[SEED] %s created", what)
		return nil
	case errors.Is(err, apperr.ErrUniqueViolation):
		log.Printf("[SEED] %s already exists, skipped", what)
		return nil
	default:
		return fmt.Errorf("seed %s: %w", what, err)
	}
}
