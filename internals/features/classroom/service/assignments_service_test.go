package service_test

import (
	"testing"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"
	userModel "classroom_backend/internals/features/users/user/model"
	"classroom_backend/internals/helpers/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAssignment(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	bob := f.student(t, "Bob", "R2")

	a, err := f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
		TeacherID:     lee.TeacherUserID,
		StudentIDs:    []uuid.UUID{amy.StudentUserID},
		Name:          "Fractions worksheet",
		FileObjectKey: "assignments/fractions.pdf",
		FileURL:       "https://cdn.school.test/assignments/fractions.pdf",
	})
	require.NoError(t, err)

	sub, err := f.svc.SubmitAssignment(f.ctx, dto.SubmitAssignmentRequest{
		StudentID:     amy.StudentUserID,
		AssignmentID:  a.ClassAssignmentID,
		FileObjectKey: "submissions/amy-fractions.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, lee.TeacherUserID, sub.SubmitAssignmentTeacherID)
	assert.Nil(t, sub.SubmitAssignmentFileURL)

	_, err = f.svc.SubmitAssignment(f.ctx, dto.SubmitAssignmentRequest{
		StudentID:     bob.StudentUserID,
		AssignmentID:  a.ClassAssignmentID,
		FileObjectKey: "submissions/bob-fractions.pdf",
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "not_assigned", ve.Fields["student_id"])

	_, err = f.svc.SubmitAssignment(f.ctx, dto.SubmitAssignmentRequest{
		StudentID:     amy.StudentUserID,
		AssignmentID:  uuid.New(),
		FileObjectKey: "submissions/x.pdf",
	})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)

	byAssignment, err := f.svc.ListAssignmentSubmissions(f.ctx, a.ClassAssignmentID)
	require.NoError(t, err)
	require.Len(t, byAssignment, 1)
	require.NotNil(t, byAssignment[0].Student)
	assert.Equal(t, "Amy", byAssignment[0].Student.StudentName)
	require.NotNil(t, byAssignment[0].Assignment)
	assert.Equal(t, "Fractions worksheet", byAssignment[0].Assignment.ClassAssignmentName)

	forTeacher, err := f.svc.ListTeacherSubmissions(f.ctx, lee.TeacherUserID)
	require.NoError(t, err)
	assert.Len(t, forTeacher, 1)

	fromAmy, err := f.svc.ListStudentSubmissions(f.ctx, amy.StudentUserID)
	require.NoError(t, err)
	assert.Len(t, fromAmy, 1)
}

func TestAssignmentListings(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	for _, name := range []string{"Week 1", "Week 2"} {
		_, err := f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
			TeacherID:     lee.TeacherUserID,
			StudentIDs:    []uuid.UUID{amy.StudentUserID},
			Name:          name,
			FileObjectKey: "assignments/" + name + ".pdf",
		})
		require.NoError(t, err)
	}

	mine, err := f.svc.ListTeacherAssignments(f.ctx, lee.TeacherUserID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Week 2", mine[0].ClassAssignmentName)

	todo, err := f.svc.ListStudentAssignments(f.ctx, amy.StudentUserID)
	require.NoError(t, err)
	require.Len(t, todo, 2)
	require.NotNil(t, todo[0].Teacher)
	assert.Equal(t, "Ms. Lee", todo[0].Teacher.TeacherName)

	got, err := f.svc.GetAssignment(f.ctx, mine[1].ClassAssignmentID)
	require.NoError(t, err)
	assert.Equal(t, "Week 1", got.ClassAssignmentName)

	_, err = f.svc.GetAssignment(f.ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateAssignmentValidation(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")

	_, err := f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
		TeacherID:     lee.TeacherUserID,
		Name:          "No file",
		FileObjectKey: "",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
		TeacherID:     uuid.New(),
		Name:          "Orphan",
		FileObjectKey: "assignments/orphan.pdf",
	})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)
}

func TestDeleteAssignmentRemovesTargetsAndSubmissions(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	a, err := f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
		TeacherID:     lee.TeacherUserID,
		StudentIDs:    []uuid.UUID{amy.StudentUserID},
		Name:          "Essay",
		FileObjectKey: "assignments/essay.pdf",
	})
	require.NoError(t, err)
	_, err = f.svc.SubmitAssignment(f.ctx, dto.SubmitAssignmentRequest{
		StudentID: amy.StudentUserID, AssignmentID: a.ClassAssignmentID, FileObjectKey: "submissions/essay.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAssignment(f.ctx, a.ClassAssignmentID))
	assert.EqualValues(t, 0, f.count(t, &model.ClassAssignmentStudentModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.SubmitAssignmentModel{}))
	assert.ErrorIs(t, f.svc.DeleteAssignment(f.ctx, a.ClassAssignmentID), apperr.ErrNotFound)
}

// seedClassroom gives a teacher and a student one row in every dependent table.
func seedClassroom(t *testing.T, f *fixture, teacher *model.TeacherModel, student *model.StudentModel) {
	t.Helper()
	tid, sid := teacher.TeacherUserID, student.StudentUserID

	_, err := f.svc.EnrollStudent(f.ctx, dto.EnrollStudentRequest{TeacherID: tid, StudentID: sid})
	require.NoError(t, err)
	_, err = f.svc.CreateGrade(f.ctx, dto.CreateGradeRequest{TeacherID: tid, StudentID: sid, SubjectName: "Math", MarksObtained: 7, MaximumMarks: 10})
	require.NoError(t, err)
	_, err = f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: sid, TeacherID: tid, Message: "hello"})
	require.NoError(t, err)
	_, err = f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: tid, StudentIDs: []uuid.UUID{sid}, Message: "welcome"})
	require.NoError(t, err)
	a, err := f.svc.CreateAssignment(f.ctx, dto.CreateAssignmentRequest{
		TeacherID: tid, StudentIDs: []uuid.UUID{sid}, Name: "Quiz", FileObjectKey: "assignments/quiz.pdf",
	})
	require.NoError(t, err)
	_, err = f.svc.SubmitAssignment(f.ctx, dto.SubmitAssignmentRequest{
		StudentID: sid, AssignmentID: a.ClassAssignmentID, FileObjectKey: "submissions/quiz.pdf",
	})
	require.NoError(t, err)
}

func dependentTables() []any {
	return []any{
		&model.StudentInClassModel{},
		&model.StudentMarkModel{},
		&model.MessageToTeacherModel{},
		&model.ClassNoticeModel{},
		&model.ClassNoticeStudentModel{},
		&model.ClassAssignmentModel{},
		&model.ClassAssignmentStudentModel{},
		&model.SubmitAssignmentModel{},
	}
}

func TestDeleteTeacherCascades(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	seedClassroom(t, f, lee, amy)

	require.NoError(t, f.svc.DeleteTeacher(f.ctx, lee.TeacherUserID))

	for _, m := range dependentTables() {
		assert.EqualValues(t, 0, f.count(t, m), "%T", m)
	}
	_, err := f.svc.GetStudent(f.ctx, amy.StudentUserID)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.svc.DeleteTeacher(f.ctx, lee.TeacherUserID), apperr.ErrNotFound)
}

func TestDeleteStudentCascades(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	seedClassroom(t, f, lee, amy)

	require.NoError(t, f.svc.DeleteStudent(f.ctx, amy.StudentUserID))

	assert.EqualValues(t, 0, f.count(t, &model.StudentInClassModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.StudentMarkModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.MessageToTeacherModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.ClassNoticeStudentModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.ClassAssignmentStudentModel{}))
	assert.EqualValues(t, 0, f.count(t, &model.SubmitAssignmentModel{}))
	// the teacher's own notices and assignments stay
	assert.EqualValues(t, 1, f.count(t, &model.ClassNoticeModel{}))
	assert.EqualValues(t, 1, f.count(t, &model.ClassAssignmentModel{}))
}

func TestDeleteAccountCascadesThroughProfile(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	seedClassroom(t, f, lee, amy)

	require.NoError(t, f.users.DeleteAccount(f.ctx, lee.TeacherUserID))

	assert.EqualValues(t, 0, f.count(t, &model.TeacherModel{}))
	for _, m := range dependentTables() {
		assert.EqualValues(t, 0, f.count(t, m), "%T", m)
	}
	assert.EqualValues(t, 1, f.count(t, &model.StudentModel{}))
	assert.EqualValues(t, 1, f.count(t, &userModel.UserModel{}))
}
