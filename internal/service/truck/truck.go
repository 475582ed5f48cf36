package truck

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

type Truck struct {
	repository Repository
}

func New(repository Repository) *Truck {
	return &Truck{
		repository: repository,
	}
}

func (s *Truck) CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error) {
	if truckModify.Plate == nil ||
		truckModify.Model == nil ||
		truckModify.CapacityKg == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidPlate(*truckModify.Plate) {
		return 0, ErrInvalidPlate
	}
	if !isValidModel(*truckModify.Model) {
		return 0, ErrInvalidModel
	}
	if !isValidCapacity(*truckModify.CapacityKg) {
		return 0, ErrInvalidCapacity
	}
	if truckModify.Status != nil && !isValidStatus(truckModify.Status.String()) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, truckModify)
	if err != nil {
		return 0, fmt.Errorf("create truck: %w", err)
	}

	return id, nil
}

func (s *Truck) UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error) {
	if truckModify.Plate == nil &&
		truckModify.Model == nil &&
		truckModify.CapacityKg == nil &&
		truckModify.Status == nil &&
		truckModify.DeliveryID == nil &&
		!truckModify.ClearDelivery {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if truckModify.Plate != nil && !isValidPlate(*truckModify.Plate) {
		return nil, ErrInvalidPlate
	}
	if truckModify.Model != nil && !isValidModel(*truckModify.Model) {
		return nil, ErrInvalidModel
	}
	if truckModify.CapacityKg != nil && !isValidCapacity(*truckModify.CapacityKg) {
		return nil, ErrInvalidCapacity
	}
	if truckModify.Status != nil && !isValidStatus(truckModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	truck, err := s.repository.Update(ctx, truckModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update truck: %w", err)
	}
	return truck, nil
}

func (s *Truck) GetTruck(ctx context.Context, id int64) (*entities.Truck, error) {
	truck, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return truck, nil
}

func (s *Truck) GetTrucks(ctx context.Context) ([]entities.Truck, error) {
	trucks, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trucks: %w", err)
	}

	return trucks, nil
}

func (s *Truck) DeleteTruck(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete truck: %w", err)
	}

	return nil
}
