package service

import (
	"testing"
	"time"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countingAssessmentRepo extends the fake with enough write behaviour to
// exercise the creation gates.
type countingAssessmentRepo struct {
	fakeAssessmentRepo
	count    int64
	stripped map[string]bool
	created  []*model.Assessment
}

func (r *countingAssessmentRepo) Create(a *model.Assessment) error {
	a.ID = uint(len(r.created) + 1)
	r.created = append(r.created, a)
	r.count++
	return nil
}

func (r *countingAssessmentRepo) CountByPlatform(platformID uint) (int64, error) {
	return r.count, nil
}

func (r *countingAssessmentRepo) ExistsByStripped(platformID uint, stripped string, excludeID uint) (bool, error) {
	return r.stripped[stripped], nil
}

func (r *countingAssessmentRepo) FindByPlatformAndID(platformID, id uint) (*model.Assessment, error) {
	for _, a := range r.created {
		if a.ID == id && a.PlatformID == platformID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newAssessmentFixture(t *testing.T, pro bool) (*countingAssessmentRepo, AssessmentService) {
	t.Helper()
	platform := &model.Platform{Pro: pro}
	platform.ID = 1
	entitlement := NewEntitlementService(
		&fakePlatformRepo{platforms: map[uint]*model.Platform{1: platform}},
		seededCatalog(t),
		&fakeClock{now: time.Now()},
	)
	repo := &countingAssessmentRepo{stripped: map[string]bool{}}
	return repo, NewAssessmentService(repo, entitlement, &fakeNotifier{})
}

func validCreate() dto.CreateAssessmentRequest {
	return dto.CreateAssessmentRequest{
		Name:  "Backend Basics",
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssessment(t *testing.T) {
	repo, svc := newAssessmentFixture(t, false)

	resp, err := svc.CreateAssessment(1, validCreate())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Identifier)
	assert.Equal(t, "Backend Basics", resp.Name)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "backendbasics", repo.created[0].Stripped)
}

func TestCreateAssessmentCountLimit(t *testing.T) {
	repo, svc := newAssessmentFixture(t, false)
	repo.count = 10 // free tier cap

	_, err := svc.CreateAssessment(1, validCreate())
	require.Error(t, err)
	assert.EqualError(t, err, "Maximum number of assessments reached!")
}

func TestCreateAssessmentSimilarName(t *testing.T) {
	repo, svc := newAssessmentFixture(t, false)
	repo.stripped["backendbasics"] = true

	req := validCreate()
	req.Name = "BACKEND   basics!"
	_, err := svc.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "An assessment with a similar name already exists!")
}

func TestCreateAssessmentDurationRequiresPaidPlan(t *testing.T) {
	_, free := newAssessmentFixture(t, false)
	duration := 60
	req := validCreate()
	req.Duration = &duration

	_, err := free.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment duration is not available on your current plan!")

	_, paid := newAssessmentFixture(t, true)
	_, err = paid.CreateAssessment(1, req)
	assert.NoError(t, err)
}

func TestCreateAssessmentDurationOutOfRange(t *testing.T) {
	_, svc := newAssessmentFixture(t, true)
	duration := 43801 // past the paid ceiling
	req := validCreate()
	req.Duration = &duration

	_, err := svc.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment duration is out of range!")
}

func TestCreateAssessmentRetakesRequirePaidPlan(t *testing.T) {
	_, free := newAssessmentFixture(t, false)
	retakes := 2
	req := validCreate()
	req.Retakes = &retakes

	_, err := free.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment retakes are not available on your current plan!")
}

func TestCreateAssessmentCandidateLimitCap(t *testing.T) {
	_, svc := newAssessmentFixture(t, false)
	limit := 101 // free cap is 100
	req := validCreate()
	req.CandidateLimit = &limit

	_, err := svc.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "Candidate limit exceeds your current plan!")
}

func TestCreateAssessmentEndBeforeStart(t *testing.T) {
	_, svc := newAssessmentFixture(t, false)
	req := validCreate()
	end := req.Start.Add(-time.Hour)
	req.End = &end

	_, err := svc.CreateAssessment(1, req)
	require.Error(t, err)
	assert.EqualError(t, err, "Assessment end must be after its start!")
}

func TestUpdateAssessmentRenameChecksUniqueness(t *testing.T) {
	repo, svc := newAssessmentFixture(t, false)
	created, err := svc.CreateAssessment(1, validCreate())
	require.NoError(t, err)

	repo.stripped["takenname"] = true
	name := "Taken Name"
	_, err = svc.UpdateAssessment(1, created.ID, dto.UpdateAssessmentRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))

	name = "Fresh Name"
	resp, err := svc.UpdateAssessment(1, created.ID, dto.UpdateAssessmentRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Name", resp.Name)
}

func TestUpdateAssessmentUnknownID(t *testing.T) {
	_, svc := newAssessmentFixture(t, false)

	name := "x"
	_, err := svc.UpdateAssessment(1, 999, dto.UpdateAssessmentRequest{Name: &name})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStripText(t *testing.T) {
	assert.Equal(t, "backendbasics", stripText("Backend Basics"))
	assert.Equal(t, "backendbasics", stripText("  BACKEND--basics!! "))
	assert.Equal(t, "test42", stripText("Test #42"))
	assert.Equal(t, "", stripText("!!! ---"))
}
