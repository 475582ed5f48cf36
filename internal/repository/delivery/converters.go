package delivery

import (
	"fleet/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:              d.ID,
		TruckID:         d.TruckID,
		DriverID:        d.DriverID,
		CargoType:       entities.CargoType(d.CargoType),
		CargoValue:      d.CargoValue,
		SurchargedValue: d.SurchargedValue,
		Destination:     d.Destination,
		Region:          entities.RegionType(d.Region),
		HasInsurance:    d.HasInsurance,
		IsHighValue:     d.IsHighValue,
		IsHazardous:     d.IsHazardous,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		Status:          entities.DeliveryStatusType(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToViewDomain(d *DeliveryViewDB) *entities.DeliveryView {
	if d == nil {
		return nil
	}

	return &entities.DeliveryView{
		Delivery:   *ToDomain(&d.DeliveryDB),
		DriverName: d.DriverName,
		TruckModel: d.TruckModel,
		TruckPlate: d.TruckPlate,
	}
}

func ToViewDomainList(deliveriesDB []DeliveryViewDB) []entities.DeliveryView {
	if len(deliveriesDB) == 0 {
		return []entities.DeliveryView{}
	}

	result := make([]entities.DeliveryView, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToViewDomain(&deliveryDB)
	}
	return result
}

func FromDomainModify(deliveryModify *entities.DeliveryModify) *DeliveryModifyDB {
	if deliveryModify == nil {
		return nil
	}
	deliveryDB := &DeliveryModifyDB{
		ID:              deliveryModify.ID,
		TruckID:         deliveryModify.TruckID,
		DriverID:        deliveryModify.DriverID,
		CargoValue:      deliveryModify.CargoValue,
		SurchargedValue: deliveryModify.SurchargedValue,
		Destination:     deliveryModify.Destination,
		HasInsurance:    deliveryModify.HasInsurance,
		IsHighValue:     deliveryModify.IsHighValue,
		IsHazardous:     deliveryModify.IsHazardous,
		StartDate:       deliveryModify.StartDate,
		EndDate:         deliveryModify.EndDate,
	}

	if deliveryModify.CargoType != nil {
		cargoType := deliveryModify.CargoType.String()
		deliveryDB.CargoType = &cargoType
	}
	if deliveryModify.Region != nil {
		region := deliveryModify.Region.String()
		deliveryDB.Region = &region
	}
	if deliveryModify.Status != nil {
		status := deliveryModify.Status.String()
		deliveryDB.Status = &status
	}

	return deliveryDB
}
