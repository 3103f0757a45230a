package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type DemoRequestStore interface {
	Create(ctx context.Context, d *model.DemoRequest) error
}

type DemoRequestUsecase struct {
	demos    DemoRequestStore
	notifier service.Notifier
	log      *zap.Logger
}

func NewDemoRequestUsecase(demos DemoRequestStore, notifier service.Notifier, log *zap.Logger) *DemoRequestUsecase {
	return &DemoRequestUsecase{demos: demos, notifier: notifier, log: log}
}

func (uc *DemoRequestUsecase) Submit(ctx context.Context, req dto.DemoRequestInput) (*model.DemoRequest, error) {
	d := &model.DemoRequest{
		ID:          uuid.New(),
		FullName:    req.FullName,
		WorkEmail:   req.WorkEmail,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		TeamSize:    req.TeamSize,
		HiringGoals: req.HiringGoals,
		HowHeard:    req.HowHeard,
	}
	if err := uc.demos.Create(ctx, d); err != nil {
		uc.notifier.Notify("demo.request", false, "Failed to submit demo request")
		return nil, apperror.RemoteUnavailable("demo request store", err)
	}
	uc.notifier.Notify("demo.request", true, "Demo request received")
	uc.log.Info("demo request submitted", zap.String("company", d.CompanyName))
	return d, nil
}
