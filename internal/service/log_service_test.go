package service

import (
	"testing"
	"time"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	events []notifier.Event
}

func (n *fakeNotifier) Publish(event notifier.Event) {
	n.events = append(n.events, event)
}

type fakeAssessmentRepo struct {
	assessments map[string]*model.Assessment
}

func (r *fakeAssessmentRepo) Create(a *model.Assessment) error { return nil }

func (r *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	for _, a := range r.assessments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssessmentRepo) FindByPlatformAndID(platformID, id uint) (*model.Assessment, error) {
	for _, a := range r.assessments {
		if a.ID == id && a.PlatformID == platformID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssessmentRepo) FindByIdentifier(identifier string) (*model.Assessment, error) {
	a, ok := r.assessments[identifier]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAssessmentRepo) FindByIdentifierWithQuestions(identifier string) (*model.Assessment, error) {
	return r.FindByIdentifier(identifier)
}

func (r *fakeAssessmentRepo) FindAllByPlatform(platformID uint) ([]model.Assessment, error) {
	return nil, nil
}

func (r *fakeAssessmentRepo) CountByPlatform(platformID uint) (int64, error) { return 0, nil }

func (r *fakeAssessmentRepo) ExistsByStripped(platformID uint, stripped string, excludeID uint) (bool, error) {
	return false, nil
}

func (r *fakeAssessmentRepo) Update(a *model.Assessment) error     { return nil }
func (r *fakeAssessmentRepo) Delete(platformID, id uint) error     { return nil }
func (r *fakeAssessmentRepo) HardDelete(platformID, id uint) error { return nil }

type fakeLogRepo struct {
	logs   []*model.AssessmentLog
	nextID uint
}

func (r *fakeLogRepo) Create(l *model.AssessmentLog) error {
	r.nextID++
	l.ID = r.nextID
	r.logs = append(r.logs, l)
	return nil
}

func (r *fakeLogRepo) FindByUserAndReference(userID uint, reference string) (*model.AssessmentLog, error) {
	for _, l := range r.logs {
		if l.UserID == userID && l.Reference == reference {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLogRepo) FindAllByUser(userID uint) ([]model.AssessmentLog, error) {
	var out []model.AssessmentLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) CountByAssessmentAndUser(assessmentID, userID uint) (int64, error) {
	var count int64
	for _, l := range r.logs {
		if l.AssessmentID == assessmentID && l.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLogRepo) CountDistinctOtherCandidates(assessmentID, excludeUserID uint) (int64, error) {
	seen := map[uint]bool{}
	for _, l := range r.logs {
		if l.AssessmentID == assessmentID && l.UserID != excludeUserID {
			seen[l.UserID] = true
		}
	}
	return int64(len(seen)), nil
}

func (r *fakeLogRepo) Complete(id uint, endTime time.Time) (bool, error) {
	for _, l := range r.logs {
		if l.ID == id && l.EndTime == nil {
			t := endTime
			l.EndTime = &t
			return true, nil
		}
	}
	return false, nil
}

func newLogFixture(assessment *model.Assessment) (*fakeLogRepo, *fakeAssessmentRepo, *fakeClock, *fakeNotifier, LogService) {
	logRepo := &fakeLogRepo{}
	assessmentRepo := &fakeAssessmentRepo{assessments: map[string]*model.Assessment{
		assessment.Identifier: assessment,
	}}
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	n := &fakeNotifier{}
	svc := NewLogService(logRepo, assessmentRepo, clock, n)
	return logRepo, assessmentRepo, clock, n, svc
}

func openAssessment(id uint) *model.Assessment {
	a := &model.Assessment{
		PlatformID: 1,
		Identifier: "ident-1",
		Name:       "Backend basics",
		Start:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	a.ID = id
	return a
}

func TestStartAssessmentOpensSession(t *testing.T) {
	logRepo, _, clock, n, svc := newLogFixture(openAssessment(7))

	resp, err := svc.StartAssessment(99, "ident-1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "Backend basics", resp.Assessment)
	assert.Equal(t, clock.now, resp.StartTime)
	assert.Nil(t, resp.EndTime)
	require.Len(t, logRepo.logs, 1)
	assert.True(t, logRepo.logs[0].Open())
	require.Len(t, n.events, 1)
	assert.Equal(t, "started", n.events[0].Action)
}

func TestStartAssessmentUnknownIdentifier(t *testing.T) {
	_, _, _, _, svc := newLogFixture(openAssessment(7))

	_, err := svc.StartAssessment(99, "no-such")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStartAssessmentBeforeStart(t *testing.T) {
	assessment := openAssessment(7)
	assessment.Start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, _, _, _, svc := newLogFixture(assessment)

	_, err := svc.StartAssessment(99, "ident-1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
	assert.EqualError(t, err, "Assessment hasn't started yet!")
}

func TestStartAssessmentAfterEnd(t *testing.T) {
	assessment := openAssessment(7)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	assessment.End = &end
	_, _, _, _, svc := newLogFixture(assessment)

	_, err := svc.StartAssessment(99, "ident-1")
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment has ended!")
}

func TestStartAssessmentExactlyAtStart(t *testing.T) {
	assessment := openAssessment(7)
	_, _, clock, _, svc := newLogFixture(assessment)
	clock.now = assessment.Start

	_, err := svc.StartAssessment(99, "ident-1")
	assert.NoError(t, err)
}

func TestStartAssessmentCandidateLimit(t *testing.T) {
	assessment := openAssessment(7)
	limit := 2
	assessment.CandidateLimit = &limit
	retakes := 5
	assessment.Retakes = &retakes
	logRepo, _, _, _, svc := newLogFixture(assessment)

	// Two other candidates already hold sessions.
	logRepo.logs = []*model.AssessmentLog{
		{UserID: 1, AssessmentID: 7, Reference: "a"},
		{UserID: 2, AssessmentID: 7, Reference: "b"},
	}
	logRepo.nextID = 2

	_, err := svc.StartAssessment(3, "ident-1")
	require.Error(t, err)
	assert.EqualError(t, err, "Maximum number of candidates reached!")

	// A candidate already inside the roster is never blocked by the limit.
	_, err = svc.StartAssessment(2, "ident-1")
	assert.NoError(t, err)
}

func TestStartAssessmentRetakeGate(t *testing.T) {
	assessment := openAssessment(7)
	_, _, _, _, svc := newLogFixture(assessment)

	// Retakes unset: one session allowed.
	_, err := svc.StartAssessment(99, "ident-1")
	require.NoError(t, err)
	_, err = svc.StartAssessment(99, "ident-1")
	require.Error(t, err)
	assert.EqualError(t, err, "Max retakes reached on assessment!")
}

func TestStartAssessmentRetakesAllowExtraSessions(t *testing.T) {
	assessment := openAssessment(7)
	retakes := 2
	assessment.Retakes = &retakes
	_, _, _, _, svc := newLogFixture(assessment)

	// Two retakes mean three sessions total.
	for i := 0; i < 3; i++ {
		_, err := svc.StartAssessment(99, "ident-1")
		require.NoError(t, err)
	}
	_, err := svc.StartAssessment(99, "ident-1")
	require.Error(t, err)
	assert.EqualError(t, err, "Max retakes reached on assessment!")
}

func TestEndAssessmentClosesOnce(t *testing.T) {
	_, _, clock, n, svc := newLogFixture(openAssessment(7))

	started, err := svc.StartAssessment(99, "ident-1")
	require.NoError(t, err)

	clock.now = clock.now.Add(20 * time.Minute)
	ended, err := svc.EndAssessment(99, started.Reference)
	require.NoError(t, err)
	require.NotNil(t, ended.EndTime)
	assert.Equal(t, clock.now, *ended.EndTime)

	_, err = svc.EndAssessment(99, started.Reference)
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment has already been completed!")

	var completed int
	for _, e := range n.events {
		if e.Action == "completed" {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
}

func TestEndAssessmentWrongUser(t *testing.T) {
	_, _, _, _, svc := newLogFixture(openAssessment(7))

	started, err := svc.StartAssessment(99, "ident-1")
	require.NoError(t, err)

	_, err = svc.EndAssessment(100, started.Reference)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetAllLogs(t *testing.T) {
	_, _, _, _, svc := newLogFixture(openAssessment(7))

	_, err := svc.StartAssessment(99, "ident-1")
	require.NoError(t, err)

	logs, err := svc.GetAllLogs(99)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.NotEmpty(t, logs[0].Reference)
}
