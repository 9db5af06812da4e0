package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

type ListProfessionals struct {
	repo domain.Repository
}

func NewListProfessionals(repo domain.Repository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

func (uc *ListProfessionals) Execute(
	ctx context.Context,
	page int,
	pageSize int,
) ([]models.HealthcareProfessional, int64, error) {
	return uc.repo.ListProfessionals(ctx, page, pageSize)
}
