package otp

import (
	"fmt"
	"strconv"
)

// Digits is the number of decimal digits in a generated token.
type Digits int

const (
	DigitsSix   Digits = 6
	DigitsSeven Digits = 7
	DigitsEight Digits = 8
)

// Valid reports whether d is a supported token length.
func (d Digits) Valid() bool {
	return d >= DigitsSix && d <= DigitsEight
}

// Length returns the token length as an int.
func (d Digits) Length() int {
	return int(d)
}

// Format renders v as a zero-padded decimal string of exactly d digits.
func (d Digits) Format(v uint32) string {
	return fmt.Sprintf("%0*d", int(d), v)
}

func (d Digits) String() string {
	return strconv.Itoa(int(d))
}
