package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

func TestListInteractionsTypeFilter(t *testing.T) {
	ctx := context.Background()
	interactions := new(mockInteractionRepository)
	svc := NewInteractionService(interactions, new(mockStudentRepository))

	interactions.On("List", ctx, repository.InteractionFilter{}).Return(nil, nil).Once()
	items, err := svc.ListInteractions(ctx, &InteractionFilters{Type: "all"})
	require.NoError(t, err)
	assert.NotNil(t, items)

	interactions.On("List", ctx, repository.InteractionFilter{Type: "email"}).
		Return([]models.Interaction{{Type: "email"}}, nil).Once()
	items, err = svc.ListInteractions(ctx, &InteractionFilters{Type: "email"})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListInteractions(ctx, &InteractionFilters{Type: "carrier-pigeon"})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	interactions.AssertExpectations(t)
}

func TestListInteractionsForMissingStudent(t *testing.T) {
	ctx := context.Background()
	students := new(mockStudentRepository)
	svc := NewInteractionService(new(mockInteractionRepository), students)
	id := uuid.New()
	students.On("GetByID", ctx, id, mock.Anything).Return(appErr.New(appErr.CodeNotFound, "student not found"), nil)

	_, err := svc.ListInteractions(ctx, &InteractionFilters{StudentID: &id})
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestLogInteraction(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	fixed := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	newSvc := func() (*interactionService, *mockInteractionRepository, *mockStudentRepository) {
		interactions := new(mockInteractionRepository)
		students := new(mockStudentRepository)
		svc := NewInteractionService(interactions, students).(*interactionService)
		svc.now = func() time.Time { return fixed }
		return svc, interactions, students
	}

	t.Run("defaults occurred_at to now", func(t *testing.T) {
		svc, interactions, students := newSvc()
		students.On("GetByID", ctx, studentID, mock.Anything).Return(nil, &models.Student{ID: studentID})
		interactions.On("Create", ctx, mock.MatchedBy(func(it *models.Interaction) bool {
			return it.OccurredAt.Equal(fixed) && it.Summary == "Discussed course load" && it.Type == "meeting"
		})).Return(nil)

		it, err := svc.LogInteraction(ctx, &LogInteractionInput{StudentID: studentID, Type: "meeting", Summary: " Discussed course load "})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, it.ID)
	})

	t.Run("rejects all as a stored type", func(t *testing.T) {
		svc, _, _ := newSvc()
		_, err := svc.LogInteraction(ctx, &LogInteractionInput{StudentID: studentID, Type: "all", Summary: "x"})
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	})

	t.Run("requires summary", func(t *testing.T) {
		svc, _, _ := newSvc()
		_, err := svc.LogInteraction(ctx, &LogInteractionInput{StudentID: studentID, Type: "note", Summary: "  "})
		assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	})
}
