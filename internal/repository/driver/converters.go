package driver

import (
	"fleet/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:                  d.ID,
		Name:                d.Name,
		CPF:                 d.CPF,
		Phone:               d.Phone,
		Status:              entities.DriverStatusType(d.Status),
		NortheastActive:     d.NortheastActive,
		DeliveriesThisMonth: d.DeliveriesThisMonth,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{
		ID:                  driverModify.ID,
		Name:                driverModify.Name,
		CPF:                 driverModify.CPF,
		Phone:               driverModify.Phone,
		NortheastActive:     driverModify.NortheastActive,
		DeliveriesThisMonth: driverModify.DeliveriesThisMonth,
	}

	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
