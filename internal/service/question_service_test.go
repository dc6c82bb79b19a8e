package service

import (
	"testing"
	"time"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type questionFixture struct {
	repo *fakeQuestionRepo
	svc  QuestionService
}

func newQuestionFixture(t *testing.T, pro bool) *questionFixture {
	t.Helper()

	assessment := &model.Assessment{PlatformID: 1, Identifier: "ident-1", Name: "Basics", Start: time.Now()}
	assessment.ID = 7
	assessmentRepo := &fakeAssessmentRepo{assessments: map[string]*model.Assessment{"ident-1": assessment}}

	platform := &model.Platform{Pro: pro}
	platform.ID = 1
	entitlement := NewEntitlementService(
		&fakePlatformRepo{platforms: map[uint]*model.Platform{1: platform}},
		seededCatalog(t),
		&fakeClock{now: time.Now()},
	)

	repo := &fakeQuestionRepo{}
	return &questionFixture{
		repo: repo,
		svc:  NewQuestionService(repo, assessmentRepo, entitlement, &fakeNotifier{}),
	}
}

func (f *questionFixture) add(t *testing.T, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		resp, err := f.svc.AddQuestion(1, 7, dto.CreateQuestionRequest{Question: "q"})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}
	return ids
}

func TestAddQuestionAppendsAtNextPosition(t *testing.T) {
	f := newQuestionFixture(t, false)

	first, err := f.svc.AddQuestion(1, 7, dto.CreateQuestionRequest{Question: "What is Go?"})
	require.NoError(t, err)
	second, err := f.svc.AddQuestion(1, 7, dto.CreateQuestionRequest{Question: "What is gin?"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
}

func TestAddQuestionEnforcesPlanLimit(t *testing.T) {
	f := newQuestionFixture(t, false)
	f.add(t, 20) // free tier cap

	_, err := f.svc.AddQuestion(1, 7, dto.CreateQuestionRequest{Question: "one too many"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
	assert.EqualError(t, err, "Maximum number of questions reached!")
}

func TestAddQuestionPaidTierRaisesLimit(t *testing.T) {
	f := newQuestionFixture(t, true)
	f.add(t, 20)

	_, err := f.svc.AddQuestion(1, 7, dto.CreateQuestionRequest{Question: "still fine on paid"})
	assert.NoError(t, err)
}

func TestAddQuestionUnknownAssessment(t *testing.T) {
	f := newQuestionFixture(t, false)

	_, err := f.svc.AddQuestion(1, 999, dto.CreateQuestionRequest{Question: "q"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestReorderQuestionSwaps(t *testing.T) {
	f := newQuestionFixture(t, false)
	ids := f.add(t, 3)

	resp, err := f.svc.ReorderQuestion(1, 7, ids[0], 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Order)

	// The previous occupant of position 3 took position 1; position 2 is untouched.
	moved, _ := f.repo.FindByAssessmentAndID(7, ids[2])
	assert.Equal(t, 1, moved.Order)
	untouched, _ := f.repo.FindByAssessmentAndID(7, ids[1])
	assert.Equal(t, 2, untouched.Order)
}

func TestReorderQuestionToOwnPositionIsNoop(t *testing.T) {
	f := newQuestionFixture(t, false)
	ids := f.add(t, 2)

	resp, err := f.svc.ReorderQuestion(1, 7, ids[1], 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Order)
}

func TestReorderQuestionOutOfRange(t *testing.T) {
	f := newQuestionFixture(t, false)
	ids := f.add(t, 2)

	_, err := f.svc.ReorderQuestion(1, 7, ids[0], 0)
	require.Error(t, err)
	assert.EqualError(t, err, "Ordering is out of range!")

	_, err = f.svc.ReorderQuestion(1, 7, ids[0], 3)
	require.Error(t, err)
	assert.EqualError(t, err, "Ordering is out of range!")
}

func TestReorderQuestionFillsVacantPosition(t *testing.T) {
	f := newQuestionFixture(t, false)
	ids := f.add(t, 3)

	// Deleting the middle question leaves position 2 vacant but count drops
	// to 2, so position 2 is still within range.
	require.NoError(t, f.svc.RemoveQuestion(1, 7, ids[1]))

	resp, err := f.svc.ReorderQuestion(1, 7, ids[2], 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Order)

	// Nobody was swapped out of position 2; the first question kept its spot.
	first, _ := f.repo.FindByAssessmentAndID(7, ids[0])
	assert.Equal(t, 1, first.Order)
}

func TestRemoveQuestionKeepsOtherPositions(t *testing.T) {
	f := newQuestionFixture(t, false)
	ids := f.add(t, 3)

	require.NoError(t, f.svc.RemoveQuestion(1, 7, ids[0]))

	remaining, err := f.svc.GetAllQuestions(1, 7)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 2, remaining[0].Order)
	assert.Equal(t, 3, remaining[1].Order)
}
