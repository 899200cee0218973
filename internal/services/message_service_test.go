package services

import (
	"testing"

	"shiftmate/internal/models"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	svc      MessageService
	msgRepo  *fakeMessageRepo
	jobRepo  *fakeJobRepo
	ownerID  string
	workerID string
	job      *models.Job
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	msgRepo := newFakeMessageRepo()
	jobRepo := newFakeJobRepo()

	ownerID := uuid.NewString()
	job := newJobFixture(t, jobRepo, ownerID, "Barista")

	return &messageFixture{
		svc:      NewMessageService(msgRepo, jobRepo),
		msgRepo:  msgRepo,
		jobRepo:  jobRepo,
		ownerID:  ownerID,
		workerID: uuid.NewString(),
		job:      job,
	}
}

func (f *messageFixture) send(t *testing.T, content string) *models.Message {
	t.Helper()
	msg, err := f.svc.Send(f.workerID, &dto.SendMessageRequest{JobID: f.job.ID, Content: content})
	require.NoError(t, err)
	return msg
}

func TestSend_ReceiverIsJobOwner(t *testing.T) {
	f := newMessageFixture(t)

	msg := f.send(t, "Hello")
	assert.Equal(t, f.ownerID, msg.ReceiverID)
	assert.Equal(t, f.workerID, msg.SenderID)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.DeletedByWorker)
	assert.False(t, msg.DeletedByBusiness)
}

func TestSend_JobMissing(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.svc.Send(f.workerID, &dto.SendMessageRequest{JobID: uuid.NewString(), Content: "Hello"})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestMarkRead_ReceiverOnly(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.send(t, "Hello")

	// Отправитель не может отметить прочтение
	err := f.svc.MarkRead(f.workerID, &dto.MarkReadRequest{MessageID: msg.ID})
	assert.ErrorIs(t, err, apperrors.ErrNotMessageReceiver)

	require.NoError(t, f.svc.MarkRead(f.ownerID, &dto.MarkReadRequest{MessageID: msg.ID}))

	stored, err := f.msgRepo.FindByID(msg.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
}

func TestMarkRead_Missing(t *testing.T) {
	f := newMessageFixture(t)

	err := f.svc.MarkRead(f.ownerID, &dto.MarkReadRequest{MessageID: uuid.NewString()})
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestUnreadCount_Lifecycle(t *testing.T) {
	f := newMessageFixture(t)

	count, err := f.svc.UnreadCount(f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	msg := f.send(t, "Hello")

	count, err = f.svc.UnreadCount(f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, f.svc.MarkRead(f.ownerID, &dto.MarkReadRequest{MessageID: msg.ID}))

	count, err = f.svc.UnreadCount(f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSoftDelete_ParticipantOnly(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.send(t, "Hello")

	err := f.svc.SoftDelete(uuid.NewString(), models.UserTypeWorker, msg.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotMessageParticipant)
}

func TestSoftDelete_IndependentPerRole(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.send(t, "Hello")

	// Работник скрывает сообщение у себя
	require.NoError(t, f.svc.SoftDelete(f.workerID, models.UserTypeWorker, msg.ID))

	workerView, err := f.svc.ListForUser(f.workerID, models.UserTypeWorker)
	require.NoError(t, err)
	assert.Empty(t, workerView)

	// Работодатель продолжает его видеть
	businessView, err := f.svc.ListForUser(f.ownerID, models.UserTypeBusiness)
	require.NoError(t, err)
	require.Len(t, businessView, 1)
	assert.Equal(t, msg.ID, businessView[0].ID)

	// После удаления второй стороной скрыто у обеих
	require.NoError(t, f.svc.SoftDelete(f.ownerID, models.UserTypeBusiness, msg.ID))

	businessView, err = f.svc.ListForUser(f.ownerID, models.UserTypeBusiness)
	require.NoError(t, err)
	assert.Empty(t, businessView)
}

func TestListForUser_ViewFields(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.send(t, "Hello")

	// Подгружаем связи так, как это сделал бы Preload
	stored, err := f.msgRepo.FindByID(msg.ID)
	require.NoError(t, err)
	stored.Job = f.job
	stored.Sender = &models.User{
		BaseModel: models.BaseModel{ID: f.workerID},
		Name:      "Alice",
		Email:     "alice@example.com",
	}

	views, err := f.svc.ListForUser(f.ownerID, models.UserTypeBusiness)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Barista", views[0].JobTitle)
	assert.Equal(t, "Alice", views[0].Sender.Name)
	assert.Equal(t, f.workerID, views[0].SenderID)
}
