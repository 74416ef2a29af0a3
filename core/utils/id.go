package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateBookingCode returns the short human-facing reference printed
// on confirmations, e.g. "BK-4fT9xQa".
func GenerateBookingCode() string {
	return "BK-" + GenerateID()
}
