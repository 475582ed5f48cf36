package driver

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidCPF checks the shape only, eleven digits with optional
// punctuation. Checksum verification is out of scope.
func isValidCPF(cpf string) bool {
	digits := 0
	for _, char := range cpf {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '.' || char == '-':
		default:
			return false
		}
	}
	return digits == 11
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "unavailable":
		return true
	default:
		return false
	}
}
