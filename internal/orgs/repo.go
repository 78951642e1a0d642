package orgs

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Repository is the organization directory. Quote invites and branch
// resolution read through it.
type Repository interface {
	FindOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	FindOrganizations(ctx context.Context, ids []uuid.UUID) ([]models.Organization, error)
	FindBranches(ctx context.Context, parentOrgID uuid.UUID) ([]models.Organization, error)
	FindShippers(ctx context.Context) ([]models.Organization, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) FindOrganizations(ctx context.Context, ids []uuid.UUID) ([]models.Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Organization
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) FindBranches(ctx context.Context, parentOrgID uuid.UUID) ([]models.Organization, error) {
	var out []models.Organization
	if err := r.db.WithContext(ctx).
		Where("parent_org_id = ?", parentOrgID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) FindShippers(ctx context.Context) ([]models.Organization, error) {
	var out []models.Organization
	if err := r.db.WithContext(ctx).
		Where("type = ? AND parent_org_id IS NULL", enums.OrgTypeShipper).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
