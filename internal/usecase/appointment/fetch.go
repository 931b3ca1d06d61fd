package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type FetchAppointments struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewFetchAppointments(repo domain.Repository, log *zap.Logger) *FetchAppointments {
	return &FetchAppointments{repo: repo, log: log}
}

func (uc *FetchAppointments) Execute(ctx context.Context, userID string) ([]models.Appointment, error) {
	list, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		uc.log.Error("FetchAppointments: load failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	list, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == appointmentID {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
