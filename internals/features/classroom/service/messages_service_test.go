package service_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"classroom_backend/internals/features/classroom/dto"
	"classroom_backend/internals/features/classroom/model"
	"classroom_backend/internals/helpers/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageUniquePerStudent(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	kim := f.teacher(t, "Mr. Kim", "Art")
	amy := f.student(t, "Amy", "R1")
	bob := f.student(t, "Bob", "R2")

	send := func(student, teacher uuid.UUID, text string) error {
		_, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: student, TeacherID: teacher, Message: text})
		return err
	}

	require.NoError(t, send(amy.StudentUserID, lee.TeacherUserID, "Can I get an extension?"))
	// same text from the same student is rejected even to another teacher
	assert.ErrorIs(t, send(amy.StudentUserID, kim.TeacherUserID, "Can I get an extension?"), apperr.ErrUniqueViolation)
	assert.NoError(t, send(bob.StudentUserID, lee.TeacherUserID, "Can I get an extension?"))
	assert.NoError(t, send(amy.StudentUserID, lee.TeacherUserID, "can I get an extension?"))

	assert.EqualValues(t, 3, f.count(t, &model.MessageToTeacherModel{}))
}

func TestSendMessageUnknownReferences(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	_, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: uuid.New(), TeacherID: lee.TeacherUserID, Message: "hi"})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)

	_, err = f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: uuid.New(), Message: "hi"})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)

	_, err = f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMessageHTMLFollowsText(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	msg, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID, Message: "**help**"})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>help</strong></p>\n", msg.MessageToTeacherHTML)

	updated, err := f.svc.UpdateMessage(f.ctx, msg.MessageToTeacherID, dto.UpdateMessageRequest{Message: "_thanks_"})
	require.NoError(t, err)
	assert.Equal(t, "_thanks_", updated.MessageToTeacherMessage)
	assert.Equal(t, "<p><em>thanks</em></p>\n", updated.MessageToTeacherHTML)

	var stored model.MessageToTeacherModel
	require.NoError(t, f.db.First(&stored, "message_to_teacher_id = ?", msg.MessageToTeacherID).Error)
	assert.Equal(t, "<p><em>thanks</em></p>\n", stored.MessageToTeacherHTML)
	assert.True(t, stored.MessageToTeacherCreatedAt.Equal(msg.MessageToTeacherCreatedAt))

	_, err = f.svc.UpdateMessage(f.ctx, uuid.New(), dto.UpdateMessageRequest{Message: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestInboxAndOutbox(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	for _, text := range []string{"first", "second"} {
		_, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID, Message: text})
		require.NoError(t, err)
	}

	inbox, err := f.svc.ListReceivedMessages(f.ctx, lee.TeacherUserID)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "second", inbox[0].MessageToTeacherMessage)
	require.NotNil(t, inbox[0].Student)
	assert.Equal(t, "Amy", inbox[0].Student.StudentName)

	sent, err := f.svc.ListSentMessages(f.ctx, amy.StudentUserID)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	require.NotNil(t, sent[1].Teacher)
	assert.Equal(t, "Ms. Lee", sent[1].Teacher.TeacherName)
}

func TestPostNoticeUniquePerTeacher(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	kim := f.teacher(t, "Mr. Kim", "Art")

	post := func(teacher uuid.UUID, text string) error {
		_, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: teacher, Message: text})
		return err
	}

	require.NoError(t, post(lee.TeacherUserID, "Quiz on Friday"))
	assert.ErrorIs(t, post(lee.TeacherUserID, "Quiz on Friday"), apperr.ErrUniqueViolation)
	assert.NoError(t, post(kim.TeacherUserID, "Quiz on Friday"))
}

func TestNoticeRecipients(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	bob := f.student(t, "Bob", "R2")
	f.student(t, "Cat", "R3")

	n, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{
		TeacherID:  lee.TeacherUserID,
		StudentIDs: []uuid.UUID{bob.StudentUserID, amy.StudentUserID, bob.StudentUserID},
		Message:    "Bring a calculator",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.count(t, &model.ClassNoticeStudentModel{}))

	recipients, err := f.svc.ListNoticeRecipients(f.ctx, n.ClassNoticeID)
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, "R1", recipients[0].StudentRollNo)
	assert.Equal(t, "R2", recipients[1].StudentRollNo)

	forAmy, err := f.svc.ListStudentNotices(f.ctx, amy.StudentUserID)
	require.NoError(t, err)
	require.Len(t, forAmy, 1)
	require.NotNil(t, forAmy[0].Teacher)
	assert.Equal(t, "Ms. Lee", forAmy[0].Teacher.TeacherName)

	_, err = f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{
		TeacherID:  lee.TeacherUserID,
		StudentIDs: []uuid.UUID{uuid.New()},
		Message:    "Nobody",
	})
	assert.ErrorIs(t, err, apperr.ErrReferenceNotFound)
	assert.EqualValues(t, 1, f.count(t, &model.ClassNoticeModel{}))
}

func TestNoticeRecipientForeignKeyInDatabase(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	n, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: "hello"})
	require.NoError(t, err)

	err = f.db.Create(&model.ClassNoticeStudentModel{
		ClassNoticeStudentNoticeID:  n.ClassNoticeID,
		ClassNoticeStudentStudentID: uuid.New(),
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, apperr.FromDB(err), apperr.ErrReferenceNotFound)
}

func TestTeacherNoticesNewestFirst(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")

	var ids []uuid.UUID
	for _, text := range []string{"T1", "T2", "T3"} {
		n, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: text})
		require.NoError(t, err)
		ids = append(ids, n.ClassNoticeID)
	}

	// editing the oldest notice does not move it
	_, err := f.svc.UpdateNotice(f.ctx, ids[0], dto.UpdateNoticeRequest{Message: "T1 (edited)"})
	require.NoError(t, err)

	notices, err := f.svc.ListTeacherNotices(f.ctx, lee.TeacherUserID)
	require.NoError(t, err)

	var got []string
	for _, n := range notices {
		got = append(got, n.ClassNoticeMessage)
	}
	assert.Equal(t, []string{"T3", "T2", "T1 (edited)"}, got)
}

func TestUpdateNoticeRendersAndKeepsUniqueness(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")

	a, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: "# Exam"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Exam</h1>\n", a.ClassNoticeHTML)
	_, err = f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: "Homework"})
	require.NoError(t, err)

	got, err := f.svc.UpdateNotice(f.ctx, a.ClassNoticeID, dto.UpdateNoticeRequest{Message: "**Exam moved**"})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Exam moved</strong></p>\n", got.ClassNoticeHTML)

	_, err = f.svc.UpdateNotice(f.ctx, a.ClassNoticeID, dto.UpdateNoticeRequest{Message: "Homework"})
	assert.ErrorIs(t, err, apperr.ErrUniqueViolation)
}

func TestNoticeString(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")

	n, err := f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: "Field trip next Thursday, bring lunch"})
	require.NoError(t, err)

	var stored model.ClassNoticeModel
	require.NoError(t, f.db.Preload("Teacher").First(&stored, "class_notice_id = ?", n.ClassNoticeID).Error)
	assert.Equal(t, "Notice from Ms. Lee: Field trip next Thur...", stored.String())
}

func TestConcurrentDuplicateMessagesOneWins(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")
	req := dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID, Message: "Is the test open book?"}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.SendMessage(f.ctx, req)
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errors.Is(err, apperr.ErrUniqueViolation), err.Error())
	}
	assert.Equal(t, 1, ok)
	assert.EqualValues(t, 1, f.count(t, &model.MessageToTeacherModel{}))
}

func TestMessageTextLimitCountsBytes(t *testing.T) {
	f := newFixture(t)
	lee := f.teacher(t, "Ms. Lee", "Math")
	amy := f.student(t, "Amy", "R1")

	// 700 runes but 2100 bytes
	wide := strings.Repeat("語", 700)
	_, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID, Message: wide})
	require.ErrorIs(t, err, apperr.ErrValidation)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "maxbytes=2000", ve.Fields["Message"])

	_, err = f.svc.PostNotice(f.ctx, dto.PostNoticeRequest{TeacherID: lee.TeacherUserID, Message: wide})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	fits := strings.Repeat("語", 600)
	msg, err := f.svc.SendMessage(f.ctx, dto.SendMessageRequest{StudentID: amy.StudentUserID, TeacherID: lee.TeacherUserID, Message: fits})
	require.NoError(t, err)

	_, err = f.svc.UpdateMessage(f.ctx, msg.MessageToTeacherID, dto.UpdateMessageRequest{Message: wide})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
