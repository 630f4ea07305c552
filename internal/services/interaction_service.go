package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/catalog"
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
	appErr "github.com/advising-studio/engine/pkg/errors"
	"github.com/advising-studio/engine/pkg/logger"
)

type InteractionService interface {
	ListInteractions(ctx context.Context, filters *InteractionFilters) ([]models.Interaction, error)
	LogInteraction(ctx context.Context, input *LogInteractionInput) (*models.Interaction, error)
	DeleteInteraction(ctx context.Context, id uuid.UUID) error
}

type InteractionFilters struct {
	// Type is an interaction type value; "" and "all" match every type.
	Type      string
	StudentID *uuid.UUID
	Limit     int
}

type LogInteractionInput struct {
	StudentID  uuid.UUID
	StaffID    *uuid.UUID
	Type       string
	Summary    string
	OccurredAt *time.Time
}

type interactionService struct {
	interactions repository.InteractionRepository
	students     repository.StudentRepository
	now          func() time.Time
}

func NewInteractionService(interactions repository.InteractionRepository, students repository.StudentRepository) InteractionService {
	return &interactionService{interactions: interactions, students: students, now: time.Now}
}

var _ InteractionService = (*interactionService)(nil)

func (s *interactionService) ListInteractions(ctx context.Context, filters *InteractionFilters) ([]models.Interaction, error) {
	f := InteractionFilters{}
	if filters != nil {
		f = *filters
	}
	typ := strings.TrimSpace(f.Type)
	if typ == catalog.AllInteractionTypes {
		typ = ""
	}
	if typ != "" && !catalog.IsInteractionType(typ) {
		return nil, appErr.Newf(appErr.CodeInvalid, "unknown interaction type %q", typ)
	}

	if f.StudentID != nil {
		var st models.Student
		if err := s.students.GetByID(ctx, *f.StudentID, &st); err != nil {
			return nil, err
		}
	}

	items, err := s.interactions.List(ctx, repository.InteractionFilter{Type: typ, StudentID: f.StudentID, Limit: f.Limit})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Interaction{}
	}
	return items, nil
}

func (s *interactionService) LogInteraction(ctx context.Context, input *LogInteractionInput) (*models.Interaction, error) {
	if !catalog.IsInteractionType(input.Type) {
		return nil, appErr.Newf(appErr.CodeInvalid, "unknown interaction type %q", input.Type)
	}
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		return nil, appErr.New(appErr.CodeInvalid, "summary is required")
	}

	var st models.Student
	if err := s.students.GetByID(ctx, input.StudentID, &st); err != nil {
		return nil, err
	}

	occurred := s.now().UTC()
	if input.OccurredAt != nil {
		occurred = input.OccurredAt.UTC()
	}

	it := &models.Interaction{
		StudentID:  input.StudentID,
		StaffID:    input.StaffID,
		Type:       input.Type,
		Summary:    summary,
		OccurredAt: occurred,
	}
	if err := s.interactions.Create(ctx, it); err != nil {
		return nil, err
	}

	logger.L().Info("interaction logged",
		zap.String("interaction_id", it.ID.String()),
		zap.String("student_id", it.StudentID.String()),
		zap.String("type", it.Type),
	)
	return it, nil
}

func (s *interactionService) DeleteInteraction(ctx context.Context, id uuid.UUID) error {
	return s.interactions.Delete(ctx, id)
}
