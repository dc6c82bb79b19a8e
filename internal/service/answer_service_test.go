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

type answerFixture struct {
	repo   *fakeAnswerRepo
	single *model.Question
	multi  *model.Question
	svc    AnswerService
}

func newAnswerFixture(t *testing.T, pro bool) *answerFixture {
	t.Helper()

	assessment := &model.Assessment{PlatformID: 1, Identifier: "ident-1", Name: "Basics", Start: time.Now()}
	assessment.ID = 7
	assessmentRepo := &fakeAssessmentRepo{assessments: map[string]*model.Assessment{"ident-1": assessment}}

	questionRepo := &fakeQuestionRepo{}
	single := &model.Question{AssessmentID: 7, Question: "Pick one", Order: 1}
	multi := &model.Question{AssessmentID: 7, Question: "Pick many", MultipleAnswer: true, Order: 2}
	require.NoError(t, questionRepo.Create(single))
	require.NoError(t, questionRepo.Create(multi))

	platform := &model.Platform{Pro: pro}
	platform.ID = 1
	entitlement := NewEntitlementService(
		&fakePlatformRepo{platforms: map[uint]*model.Platform{1: platform}},
		seededCatalog(t),
		&fakeClock{now: time.Now()},
	)

	repo := &fakeAnswerRepo{}
	return &answerFixture{
		repo:   repo,
		single: single,
		multi:  multi,
		svc:    NewAnswerService(repo, questionRepo, assessmentRepo, entitlement, &fakeNotifier{}),
	}
}

func TestAddAnswerAppendsAtNextPosition(t *testing.T) {
	f := newAnswerFixture(t, false)

	first, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A"})
	require.NoError(t, err)
	second, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "B"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
}

func TestAddAnswerEnforcesPlanLimit(t *testing.T) {
	f := newAnswerFixture(t, false)

	for i := 0; i < 4; i++ { // free tier cap
		_, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "opt"})
		require.NoError(t, err)
	}

	_, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "opt"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
	assert.EqualError(t, err, "Maximum number of answers reached!")
}

func TestAddSecondCorrectAnswerRejectedOnSingle(t *testing.T) {
	f := newAnswerFixture(t, false)

	_, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A", Correct: true})
	require.NoError(t, err)
	_, err = f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "B", Correct: true})
	require.Error(t, err)
	assert.EqualError(t, err, "A correct answer already exists on this question!")

	// An incorrect option is still welcome.
	_, err = f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "B"})
	assert.NoError(t, err)
}

func TestAddCorrectAnswersAccumulateOnMulti(t *testing.T) {
	f := newAnswerFixture(t, false)

	_, err := f.svc.AddAnswer(1, 7, f.multi.ID, dto.CreateAnswerRequest{Option: "A", Correct: true})
	require.NoError(t, err)
	_, err = f.svc.AddAnswer(1, 7, f.multi.ID, dto.CreateAnswerRequest{Option: "B", Correct: true})
	require.NoError(t, err)

	stored, _ := f.repo.FindAllByQuestion(f.multi.ID)
	var correct int
	for _, a := range stored {
		if a.Correct {
			correct++
		}
	}
	assert.Equal(t, 2, correct)
}

func TestUpdateCriteriaKeepsSingleCorrect(t *testing.T) {
	f := newAnswerFixture(t, false)

	a, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A", Correct: true})
	require.NoError(t, err)
	b, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "B"})
	require.NoError(t, err)

	// Marking a second option correct is rejected until the first is unmarked.
	_, err = f.svc.UpdateCriteria(1, 7, f.single.ID, b.ID, true)
	require.Error(t, err)
	assert.EqualError(t, err, "A correct answer already exists on this question!")

	_, err = f.svc.UpdateCriteria(1, 7, f.single.ID, a.ID, false)
	require.NoError(t, err)

	resp, err := f.svc.UpdateCriteria(1, 7, f.single.ID, b.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Correct)
}

func TestUpdateCriteriaUnmarkRequiresCorrect(t *testing.T) {
	f := newAnswerFixture(t, false)

	a, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A"})
	require.NoError(t, err)

	_, err = f.svc.UpdateCriteria(1, 7, f.single.ID, a.ID, false)
	require.Error(t, err)
	assert.EqualError(t, err, "Answer is not marked as correct!")
}

func TestUpdateCriteriaRemarkSameAnswerIsIdempotent(t *testing.T) {
	f := newAnswerFixture(t, false)

	a, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A", Correct: true})
	require.NoError(t, err)

	resp, err := f.svc.UpdateCriteria(1, 7, f.single.ID, a.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Correct)
}

func TestReorderAnswerSwaps(t *testing.T) {
	f := newAnswerFixture(t, false)

	var ids []uint
	for _, opt := range []string{"A", "B", "C"} {
		resp, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: opt})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	resp, err := f.svc.ReorderAnswer(1, 7, f.single.ID, ids[0], 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Order)

	swapped, _ := f.repo.FindByQuestionAndID(f.single.ID, ids[2])
	assert.Equal(t, 1, swapped.Order)
	untouched, _ := f.repo.FindByQuestionAndID(f.single.ID, ids[1])
	assert.Equal(t, 2, untouched.Order)
}

func TestReorderAnswerOutOfRange(t *testing.T) {
	f := newAnswerFixture(t, false)

	resp, err := f.svc.AddAnswer(1, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A"})
	require.NoError(t, err)

	_, err = f.svc.ReorderAnswer(1, 7, f.single.ID, resp.ID, 2)
	require.Error(t, err)
	assert.EqualError(t, err, "Ordering is out of range!")
}

func TestAnswerOwnershipChain(t *testing.T) {
	f := newAnswerFixture(t, false)

	// Wrong platform, wrong assessment, wrong question all read as not found.
	_, err := f.svc.AddAnswer(2, 7, f.single.ID, dto.CreateAnswerRequest{Option: "A"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.svc.AddAnswer(1, 8, f.single.ID, dto.CreateAnswerRequest{Option: "A"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.svc.AddAnswer(1, 7, 999, dto.CreateAnswerRequest{Option: "A"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
