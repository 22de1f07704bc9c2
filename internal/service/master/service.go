package master

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/position"
)

// DivisionService manages estate divisions.
type DivisionService struct {
	division.DivisionRepository
}

func NewDivisionService(divisionRepository division.DivisionRepository) *DivisionService {
	return &DivisionService{DivisionRepository: divisionRepository}
}

func (s *DivisionService) Create(ctx context.Context, req division.CreateDivisionRequest) (division.Division, error) {
	if err := req.Validate(); err != nil {
		return division.Division{}, err
	}

	return s.DivisionRepository.Create(ctx, division.Division{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *DivisionService) Update(ctx context.Context, req division.UpdateDivisionRequest) (division.Division, error) {
	if err := req.Validate(); err != nil {
		return division.Division{}, err
	}

	if err := s.DivisionRepository.Update(ctx, req); err != nil {
		return division.Division{}, err
	}
	return s.DivisionRepository.GetByID(ctx, req.ID)
}

// PositionService manages job positions and their wage-scale base rates.
type PositionService struct {
	position.PositionRepository
}

func NewPositionService(positionRepository position.PositionRepository) *PositionService {
	return &PositionService{PositionRepository: positionRepository}
}

func (s *PositionService) Create(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	basePay := decimal.Zero
	if req.BaseDailyPay != "" {
		basePay, _ = decimal.NewFromString(req.BaseDailyPay)
	}

	return s.PositionRepository.Create(ctx, position.Position{
		Name:         req.Name,
		BaseDailyPay: basePay,
	})
}

func (s *PositionService) Update(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	if err := s.PositionRepository.Update(ctx, req); err != nil {
		return position.Position{}, err
	}
	return s.PositionRepository.GetByID(ctx, req.ID)
}
