package create_match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
	"github.com/m04kA/SFB-ReservationBroker/pkg/ptr"
)

type fakeReservationProvider struct {
	reservation *domain.Reservation
	err         error
}

func (f *fakeReservationProvider) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.reservation, f.err
}

type fakeReservationCreator struct {
	resp *create_reservation.Response
	err  error
}

func (f *fakeReservationCreator) Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error) {
	return f.resp, f.err
}

type fakeReservationDeleter struct {
	deletedID int64
	gotForce  bool
	calls     int
}

func (f *fakeReservationDeleter) DeleteReservation(ctx context.Context, id int64, force bool) error {
	f.calls++
	f.deletedID = id
	f.gotForce = force
	return nil
}

type fakeMatchWriter struct {
	match   *domain.Match
	err     error
	gotData datalayer.CreateMatchData
}

func (f *fakeMatchWriter) CreateMatch(ctx context.Context, data datalayer.CreateMatchData) (*domain.Match, error) {
	f.gotData = data
	return f.match, f.err
}

type fakeCatalog struct {
	teams         map[int64]*datalayer.TeamWire
	championships map[int64]*datalayer.ChampionshipWire
}

func (f *fakeCatalog) GetTeam(ctx context.Context, id int64) (*datalayer.TeamWire, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, datalayer.ErrNotFound
	}
	return team, nil
}

func (f *fakeCatalog) GetChampionship(ctx context.Context, id int64) (*datalayer.ChampionshipWire, error) {
	championship, ok := f.championships[id]
	if !ok {
		return nil, datalayer.ErrNotFound
	}
	return championship, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func defaultCatalog() *fakeCatalog {
	return &fakeCatalog{
		teams: map[int64]*datalayer.TeamWire{
			1: {ID: 1, Name: "Сокол"},
			2: {ID: 2, Name: "Заря"},
		},
		championships: map[int64]*datalayer.ChampionshipWire{
			5: {ID: 5, Name: "Кубок города"},
		},
	}
}

func friendlyReservation() *domain.Reservation {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:            30,
		FieldID:       7,
		ApplicantID:   100,
		ActivityType:  domain.ActivityMatchFriendly,
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		Status:        domain.StatusPending,
	}
}

func TestExecuteWithExistingReservation(t *testing.T) {
	writer := &fakeMatchWriter{match: &domain.Match{ID: 1, ReservationID: 30, Team1ID: 1, Team2ID: 2, IsFriendly: true}}
	uc := NewUseCase(
		&fakeReservationProvider{reservation: friendlyReservation()},
		&fakeReservationCreator{},
		&fakeReservationDeleter{},
		writer,
		defaultCatalog(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: ptr.Ptr(int64(30)),
		Team1ID:       1,
		Team2ID:       2,
		IsFriendly:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Match.ID)
	assert.Nil(t, resp.Reservation)
	assert.Equal(t, int64(30), writer.gotData.ReservationID)
}

func TestExecuteWithNewReservation(t *testing.T) {
	created := friendlyReservation()
	created.ID = 31

	writer := &fakeMatchWriter{match: &domain.Match{ID: 2, ReservationID: 31}}
	uc := NewUseCase(
		&fakeReservationProvider{},
		&fakeReservationCreator{resp: &create_reservation.Response{Reservation: created, Priority: 2}},
		&fakeReservationDeleter{},
		writer,
		defaultCatalog(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		NewReservation: &create_reservation.Request{
			FieldID:      7,
			ApplicantID:  100,
			ActivityType: domain.ActivityMatchFriendly,
		},
		Team1ID:    1,
		Team2ID:    2,
		IsFriendly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Match.ID)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, int64(31), resp.Reservation.ID)
	assert.Equal(t, 2, resp.Priority)
	assert.Equal(t, int64(31), writer.gotData.ReservationID)
}

func TestExecuteCompensatesReservationOnMatchFailure(t *testing.T) {
	created := friendlyReservation()
	created.ID = 31

	deleter := &fakeReservationDeleter{}
	uc := NewUseCase(
		&fakeReservationProvider{},
		&fakeReservationCreator{resp: &create_reservation.Response{Reservation: created, Priority: 2}},
		deleter,
		&fakeMatchWriter{err: errors.New("match write failed")},
		defaultCatalog(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		NewReservation: &create_reservation.Request{FieldID: 7, ApplicantID: 100, ActivityType: domain.ActivityMatchFriendly},
		Team1ID:        1,
		Team2ID:        2,
		IsFriendly:     true,
	})
	require.Error(t, err)

	// Компенсация удалила осиротевшую резервацию
	assert.Equal(t, 1, deleter.calls)
	assert.Equal(t, int64(31), deleter.deletedID)
	assert.True(t, deleter.gotForce)
}

func TestExecuteNestedValidationErrorSurvivesSaga(t *testing.T) {
	verrs := &create_reservation.ValidationErrors{Violations: []error{errors.New("duration too short")}}
	uc := NewUseCase(
		&fakeReservationProvider{},
		&fakeReservationCreator{err: verrs},
		&fakeReservationDeleter{},
		&fakeMatchWriter{},
		defaultCatalog(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		NewReservation: &create_reservation.Request{FieldID: 7, ApplicantID: 100, ActivityType: domain.ActivityMatchFriendly},
		Team1ID:        1,
		Team2ID:        2,
		IsFriendly:     true,
	})

	var got *create_reservation.ValidationErrors
	assert.ErrorAs(t, err, &got)
}

func TestExecuteExactlyOneReservationSource(t *testing.T) {
	uc := NewUseCase(&fakeReservationProvider{}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	// Ни одного источника
	_, err := uc.Execute(context.Background(), &Request{Team1ID: 1, Team2ID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Оба источника сразу
	_, err = uc.Execute(context.Background(), &Request{
		ReservationID:  ptr.Ptr(int64(30)),
		NewReservation: &create_reservation.Request{},
		Team1ID:        1,
		Team2ID:        2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteTeamCannotPlayItself(t *testing.T) {
	uc := NewUseCase(&fakeReservationProvider{}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: ptr.Ptr(int64(30)), Team1ID: 1, Team2ID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteTeamNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationProvider{reservation: friendlyReservation()}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: ptr.Ptr(int64(30)), Team1ID: 1, Team2ID: 9})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestExecuteChampionshipNotFound(t *testing.T) {
	reservation := friendlyReservation()
	reservation.ActivityType = domain.ActivityMatchChampionship
	uc := NewUseCase(&fakeReservationProvider{reservation: reservation}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:  ptr.Ptr(int64(30)),
		Team1ID:        1,
		Team2ID:        2,
		ChampionshipID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrChampionshipNotFound)
}

func TestExecuteActivityMismatch(t *testing.T) {
	// Чемпионатный матч поверх товарищеской резервации
	uc := NewUseCase(&fakeReservationProvider{reservation: friendlyReservation()}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:  ptr.Ptr(int64(30)),
		Team1ID:        1,
		Team2ID:        2,
		ChampionshipID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrActivityMismatch)
}

func TestExecutePracticeReservationIsNotAMatch(t *testing.T) {
	reservation := friendlyReservation()
	reservation.ActivityType = domain.ActivityPracticeGroup
	uc := NewUseCase(&fakeReservationProvider{reservation: reservation}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: ptr.Ptr(int64(30)), Team1ID: 1, Team2ID: 2, IsFriendly: true})
	assert.ErrorIs(t, err, ErrActivityMismatch)
}

func TestExecuteReservationNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationProvider{err: datalayer.ErrNotFound}, &fakeReservationCreator{}, &fakeReservationDeleter{}, &fakeMatchWriter{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: ptr.Ptr(int64(99)), Team1ID: 1, Team2ID: 2})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
