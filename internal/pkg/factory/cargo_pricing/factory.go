package cargo_pricing

import (
	"errors"

	"fleet/internal/entities"
)

// ErrInsuranceFlagRequired is returned when electronics cargo arrives
// without an explicit insurance decision. Absence is a rejection, not a
// default.
var ErrInsuranceFlagRequired = errors.New("insurance flag is required for electronics cargo")

const highValueThreshold = 30000

// Classification is the derived pricing/risk profile of a cargo.
type Classification struct {
	SurchargedValue float64
	HighValue       bool
	Hazardous       bool
	Insured         bool
}

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// Classify is pure: no I/O, no clock.
func (c *Classifier) Classify(
	region entities.RegionType,
	cargoType entities.CargoType,
	baseValue float64,
	insurance *bool,
) (Classification, error) {
	insured := false
	if cargoType == entities.CargoElectronics {
		if insurance == nil {
			return Classification{}, ErrInsuranceFlagRequired
		}
		insured = *insurance
	}

	surcharged := baseValue * regionMultiplier(region)

	return Classification{
		SurchargedValue: surcharged,
		HighValue:       surcharged > highValueThreshold,
		Hazardous:       cargoType == entities.CargoFuel,
		Insured:         insured,
	}, nil
}

func regionMultiplier(region entities.RegionType) float64 {
	switch region {
	case entities.RegionNortheast:
		return 1.20
	case entities.RegionArgentina:
		return 1.40
	case entities.RegionAmazonia:
		return 1.30
	default:
		return 1.00
	}
}
