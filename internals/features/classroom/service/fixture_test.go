package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"classroom_backend/internals/databases/testdb"
	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"
	"classroom_backend/internals/features/classroom/service"
	userDto "classroom_backend/internals/features/users/user/dto"
	userService "classroom_backend/internals/features/users/user/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	ctx   context.Context
	db    *gorm.DB
	users *userService.UserService
	svc   *service.ClassroomService
	mu    sync.Mutex
	clock time.Time
}

// newFixture wires services over a fresh database. The clock advances one
// minute per write so creation order is strict.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	f := &fixture{
		ctx:   context.Background(),
		db:    db,
		clock: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	f.users = userService.NewUserService(db, nil)
	f.users.Cost = bcrypt.MinCost
	f.svc = service.NewClassroomService(db, nil)
	f.svc.Now = func() time.Time {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}
	return f
}

func (f *fixture) account(t *testing.T, userName string) uuid.UUID {
	t.Helper()
	u, err := f.users.RegisterAccount(f.ctx, userDto.RegisterRequest{
		UserName: userName,
		Email:    userName + "@school.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return u.ID
}

func (f *fixture) teacher(t *testing.T, name, subject string) *model.TeacherModel {
	t.Helper()
	m, err := f.svc.CreateTeacher(f.ctx, dto.CreateTeacherRequest{
		TeacherUserID:      f.account(t, slug(name)),
		TeacherName:        name,
		TeacherSubjectName: subject,
		TeacherEmail:       slug(name) + "@school.test",
		TeacherPhone:       "+15550100",
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) student(t *testing.T, name, rollNo string) *model.StudentModel {
	t.Helper()
	m, err := f.svc.CreateStudent(f.ctx, dto.CreateStudentRequest{
		StudentUserID: f.account(t, slug(name)+"-"+strings.ToLower(rollNo)),
		StudentName:   name,
		StudentRollNo: rollNo,
		StudentEmail:  slug(name) + "@school.test",
		StudentPhone:  "5550101",
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func slug(s string) string {
	r := strings.NewReplacer(" ", "", ".", "")
	return strings.ToLower(r.Replace(s))
}
