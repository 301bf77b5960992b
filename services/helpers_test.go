package services

import (
	"bytes"
	"math"
)

// floatClose reports whether two floats are within rounding distance.
func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
