package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type SkillStore interface {
	Create(ctx context.Context, s *model.Skill) error
	Update(ctx context.Context, s *model.Skill) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Skill, error)
	List(ctx context.Context, search, category string) ([]model.Skill, error)
}

type SkillUsecase struct {
	skills   SkillStore
	notifier service.Notifier
}

func NewSkillUsecase(skills SkillStore, notifier service.Notifier) *SkillUsecase {
	return &SkillUsecase{skills: skills, notifier: notifier}
}

func (uc *SkillUsecase) Create(ctx context.Context, req dto.CreateSkillRequest) (*model.Skill, error) {
	s := &model.Skill{
		ID:       uuid.New(),
		Name:     req.Name,
		Category: req.Category,
	}
	if err := uc.skills.Create(ctx, s); err != nil {
		return nil, apperror.RemoteUnavailable("skill store", err)
	}
	uc.notifier.Notify("skill.create", true, "Skill "+s.Name+" added")
	return s, nil
}

func (uc *SkillUsecase) Get(ctx context.Context, id string) (*model.Skill, error) {
	s, err := uc.skills.FindByID(ctx, id)
	if err != nil {
		return nil, refError("skill", id, err)
	}
	return s, nil
}

func (uc *SkillUsecase) List(ctx context.Context, search, category string) ([]model.Skill, error) {
	skills, err := uc.skills.List(ctx, search, category)
	if err != nil {
		return nil, apperror.RemoteUnavailable("skill store", err)
	}
	return skills, nil
}

func (uc *SkillUsecase) Update(ctx context.Context, id string, req dto.UpdateSkillRequest) (*model.Skill, error) {
	s, err := uc.skills.FindByID(ctx, id)
	if err != nil {
		return nil, refError("skill", id, err)
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if err := uc.skills.Update(ctx, s); err != nil {
		return nil, apperror.RemoteUnavailable("skill store", err)
	}
	return s, nil
}

func (uc *SkillUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.skills.FindByID(ctx, id); err != nil {
		return refError("skill", id, err)
	}
	if err := uc.skills.Delete(ctx, id); err != nil {
		return apperror.RemoteUnavailable("skill store", err)
	}
	uc.notifier.Notify("skill.delete", true, "Skill deleted")
	return nil
}
