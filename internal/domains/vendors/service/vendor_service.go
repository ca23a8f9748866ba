package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"florist-backend/internal/domains/vendors/model"
	"florist-backend/internal/domains/vendors/repository"
)

type ServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterVendorRequest) (*model.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context, status model.VendorStatus, limit, offset int) ([]model.Vendor, int, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Suspend(ctx context.Context, id uuid.UUID) error
}

type VendorService struct {
	repo repository.RepositoryInterface
}

func NewVendorService(repo repository.RepositoryInterface) ServiceInterface {
	return &VendorService{repo: repo}
}

func (s *VendorService) Register(ctx context.Context, req *model.RegisterVendorRequest) (*model.Vendor, error) {
	vendor := &model.Vendor{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		StoreName: req.StoreName,
	}

	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	log.Info().
		Str("vendor_id", vendor.ID.String()).
		Str("store_name", vendor.StoreName).
		Msg("[VendorService] Vendor registered")

	return vendor, nil
}

func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VendorService) List(ctx context.Context, status model.VendorStatus, limit, offset int) ([]model.Vendor, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *VendorService) Approve(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusApproved); err != nil {
		return err
	}
	log.Info().Str("vendor_id", id.String()).Msg("[VendorService] Vendor approved")
	return nil
}

func (s *VendorService) Suspend(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusSuspended); err != nil {
		return err
	}
	log.Warn().Str("vendor_id", id.String()).Msg("[VendorService] Vendor suspended")
	return nil
}
