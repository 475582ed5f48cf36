package truck

import "strings"

func isValidPlate(plate string) bool {
	return strings.TrimSpace(plate) != ""
}

func isValidModel(model string) bool {
	return strings.TrimSpace(model) != ""
}

func isValidCapacity(capacityKg int) bool {
	return capacityKg > 0
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "in_use":
		return true
	default:
		return false
	}
}
