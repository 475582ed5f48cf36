package truck

import (
	"fleet/internal/entities"
)

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}

	return &entities.Truck{
		ID:         t.ID,
		Plate:      t.Plate,
		Model:      t.Model,
		CapacityKg: t.CapacityKg,
		Status:     entities.TruckStatusType(t.Status),
		DeliveryID: t.DeliveryID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func FromDomainModify(truckModify *entities.TruckModify) *TruckModifyDB {
	if truckModify == nil {
		return nil
	}
	truckDB := &TruckModifyDB{
		ID:         truckModify.ID,
		Plate:      truckModify.Plate,
		Model:      truckModify.Model,
		CapacityKg: truckModify.CapacityKg,
		DeliveryID: truckModify.DeliveryID,
	}

	if truckModify.Status != nil {
		status := truckModify.Status.String()
		truckDB.Status = &status
	}

	return truckDB
}

func ToDomainList(trucksDB []TruckDB) []entities.Truck {
	if len(trucksDB) == 0 {
		return []entities.Truck{}
	}

	result := make([]entities.Truck, len(trucksDB))
	for i, truckDB := range trucksDB {
		result[i] = *ToDomain(&truckDB)
	}
	return result
}
