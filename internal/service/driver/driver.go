package driver

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.Name == nil ||
		driverModify.CPF == nil ||
		driverModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidCPF(*driverModify.CPF) {
		return 0, ErrInvalidCPF
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if driverModify.Status != nil && !isValidStatus(driverModify.Status.String()) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.Name == nil &&
		driverModify.CPF == nil &&
		driverModify.Phone == nil &&
		driverModify.Status == nil &&
		driverModify.NortheastActive == nil &&
		driverModify.DeliveriesThisMonth == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.CPF != nil && !isValidCPF(*driverModify.CPF) {
		return nil, ErrInvalidCPF
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.Status != nil && !isValidStatus(driverModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

func (s *Driver) DeleteDriver(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}

	return nil
}
