package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/identity"
)

type fakeFieldProvider struct {
	field *domain.Field
	err   error
}

func (f *fakeFieldProvider) GetField(ctx context.Context, id int64) (*domain.Field, error) {
	return f.field, f.err
}

type fakeUserResolver struct {
	users map[int64]*domain.User
}

func (f *fakeUserResolver) ResolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user, nil
}

type fakeConflictDetector struct {
	conflicts []domain.Conflict
	err       error
}

func (f *fakeConflictDetector) Check(ctx context.Context, fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
	return f.conflicts, f.err
}

type fakeWriter struct {
	created         *domain.Reservation
	createErr       error
	gotData         datalayer.CreateReservationData
	participants    []datalayer.ParticipantData
	participantErrs map[int64]error
}

func (f *fakeWriter) CreateReservation(ctx context.Context, data datalayer.CreateReservationData) (*domain.Reservation, error) {
	f.gotData = data
	return f.created, f.createErr
}

func (f *fakeWriter) CreateParticipant(ctx context.Context, reservationID int64, data datalayer.ParticipantData) error {
	if err, ok := f.participantErrs[data.ParticipantID]; ok {
		return err
	}
	f.participants = append(f.participants, data)
	return nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	start := testNow.Add(48 * time.Hour)
	return &Request{
		FieldID:       7,
		ApplicantID:   100,
		ActivityType:  domain.ActivityPracticeGroup,
		StartDatetime: start,
		EndDatetime:   start.Add(time.Hour),
	}
}

func newTestUseCase(fields *fakeFieldProvider, users *fakeUserResolver, conflicts *fakeConflictDetector, writer *fakeWriter) *UseCase {
	validator := rules.NewValidator(map[string]string{"2026-09-20": "Новый стадионный праздник"})
	uc := NewUseCase(validator, fields, users, conflicts, writer, nopLogger{})
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func TestExecutePracticeAutoApproved(t *testing.T) {
	writer := &fakeWriter{created: &domain.Reservation{ID: 1, Status: domain.StatusApproved}}
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleTrainer, RoleName: domain.RoleNameTrainer, Active: true}}},
		&fakeConflictDetector{},
		writer,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Reservation.ID)

	// Групповая практика тренера: приоритет 2 (3 - 1), авто-одобрение
	assert.Equal(t, 2, resp.Priority)
	assert.Equal(t, string(domain.StatusApproved), writer.gotData.Status)
	assert.Equal(t, "2026-09-03 12:00:00", writer.gotData.StartDatetime)
}

func TestExecuteMatchStartsPending(t *testing.T) {
	writer := &fakeWriter{created: &domain.Reservation{ID: 2, Status: domain.StatusPending}}
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleAthlete, RoleName: domain.RoleNameAthlete, Active: true}}},
		&fakeConflictDetector{},
		writer,
	)

	req := validRequest()
	req.ActivityType = domain.ActivityMatchFriendly

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), writer.gotData.Status)
	assert.Equal(t, 2, writer.gotData.Priority)
}

func TestExecuteAggregatesBusinessRuleViolations(t *testing.T) {
	uc := newTestUseCase(&fakeFieldProvider{}, &fakeUserResolver{}, &fakeConflictDetector{}, &fakeWriter{})

	// Слишком короткая длительность, недостаточный запас, заблокированная дата
	req := validRequest()
	req.StartDatetime = time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	req.EndDatetime = req.StartDatetime.Add(10 * time.Minute)
	uc.timeProvider = &fixedTime{t: req.StartDatetime.Add(-30 * time.Minute)}

	_, err := uc.Execute(context.Background(), req)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Violations, 3)
	assert.ErrorIs(t, verrs.Violations[0], rules.ErrDurationTooShort)
	assert.ErrorIs(t, verrs.Violations[1], rules.ErrTooSoon)
	assert.ErrorIs(t, verrs.Violations[2], rules.ErrDateBlocked)
}

func TestExecuteFieldNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{err: datalayer.ErrNotFound},
		&fakeUserResolver{},
		&fakeConflictDetector{},
		&fakeWriter{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecuteApplicantNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{}},
		&fakeConflictDetector{},
		&fakeWriter{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}

func TestExecuteParticipantNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleAthlete, Active: true}}},
		&fakeConflictDetector{},
		&fakeWriter{},
	)

	req := validRequest()
	req.Participants = []domain.Participant{{ParticipantID: 555, ParticipantType: domain.ParticipantIndividual}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestExecuteFieldManagerCannotBook(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleFieldManager, Active: true}}},
		&fakeConflictDetector{},
		&fakeWriter{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Violations, 1)
	assert.ErrorIs(t, verrs.Violations[0], rules.ErrFieldManagerCannotBook)
}

func TestExecuteTrainerIndividualPracticeRequiresParticipants(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleTrainer, Active: true}}},
		&fakeConflictDetector{},
		&fakeWriter{},
	)

	req := validRequest()
	req.ActivityType = domain.ActivityPracticeIndividual

	_, err := uc.Execute(context.Background(), req)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.ErrorIs(t, verrs.Violations[0], rules.ErrParticipantsRequired)
}

func TestExecuteConflictsReturned(t *testing.T) {
	conflict := domain.Conflict{ID: 42, FieldID: 7, Priority: 2, Status: domain.StatusApproved}
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleAthlete, Active: true}}},
		&fakeConflictDetector{conflicts: []domain.Conflict{conflict}},
		&fakeWriter{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Len(t, cerr.Conflicts, 1)
	assert.Equal(t, int64(42), cerr.Conflicts[0].ID)
	assert.Equal(t, cerr.Conflicts, Conflicts(err))
}

func TestExecuteDataLayerConflictIsDuplicate(t *testing.T) {
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{100: {ID: 100, RoleID: domain.RoleAthlete, Active: true}}},
		&fakeConflictDetector{},
		&fakeWriter{createErr: datalayer.ErrConflict},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestExecuteParticipantAttachFailureDoesNotRollBack(t *testing.T) {
	writer := &fakeWriter{
		created:         &domain.Reservation{ID: 3, Status: domain.StatusApproved},
		participantErrs: map[int64]error{201: errors.New("write failed")},
	}
	uc := newTestUseCase(
		&fakeFieldProvider{field: &domain.Field{ID: 7}},
		&fakeUserResolver{users: map[int64]*domain.User{
			100: {ID: 100, RoleID: domain.RoleTrainer, Active: true},
			200: {ID: 200, RoleID: domain.RoleAthlete, Active: true},
			201: {ID: 201, RoleID: domain.RoleAthlete, Active: true},
		}},
		&fakeConflictDetector{},
		writer,
	)

	req := validRequest()
	req.Participants = []domain.Participant{
		{ParticipantID: 200, ParticipantType: domain.ParticipantIndividual},
		{ParticipantID: 201, ParticipantType: domain.ParticipantIndividual},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Reservation.ID)

	// Второй участник не привязался, но резервация осталась
	require.Len(t, writer.participants, 1)
	assert.Equal(t, int64(200), writer.participants[0].ParticipantID)
}
