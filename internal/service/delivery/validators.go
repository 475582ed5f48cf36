package delivery

import "fleet/internal/entities"

func isValidCargoType(cargoType entities.CargoType) bool {
	switch cargoType {
	case entities.CargoElectronics, entities.CargoFuel, entities.CargoGeneral:
		return true
	default:
		return false
	}
}

func isValidRegion(region entities.RegionType) bool {
	switch region {
	case entities.RegionDomestic, entities.RegionNortheast, entities.RegionAmazonia, entities.RegionArgentina:
		return true
	default:
		return false
	}
}

func validateCreate(deliveryModify entities.DeliveryModify) error {
	if deliveryModify.TruckID == nil ||
		deliveryModify.DriverID == nil ||
		deliveryModify.CargoType == nil ||
		deliveryModify.CargoValue == nil ||
		deliveryModify.Destination == nil ||
		deliveryModify.Region == nil ||
		deliveryModify.StartDate == nil ||
		deliveryModify.EndDate == nil {
		return ErrMissingRequiredFields
	}

	if !isValidCargoType(*deliveryModify.CargoType) {
		return ErrInvalidCargoType
	}
	if !isValidRegion(*deliveryModify.Region) {
		return ErrInvalidRegion
	}
	if *deliveryModify.CargoValue <= 0 {
		return ErrInvalidCargoValue
	}

	return nil
}

func validateUpdate(deliveryModify entities.DeliveryModify) error {
	if deliveryModify.ID == nil {
		return ErrMissingRequiredFields
	}

	if deliveryModify.CargoType == nil &&
		deliveryModify.CargoValue == nil &&
		deliveryModify.Destination == nil &&
		deliveryModify.Region == nil &&
		deliveryModify.HasInsurance == nil &&
		deliveryModify.StartDate == nil &&
		deliveryModify.EndDate == nil &&
		deliveryModify.Status == nil {
		return ErrMissingRequiredFields
	}

	if deliveryModify.CargoType != nil && !isValidCargoType(*deliveryModify.CargoType) {
		return ErrInvalidCargoType
	}
	if deliveryModify.Region != nil && !isValidRegion(*deliveryModify.Region) {
		return ErrInvalidRegion
	}
	if deliveryModify.CargoValue != nil && *deliveryModify.CargoValue <= 0 {
		return ErrInvalidCargoValue
	}

	return nil
}
