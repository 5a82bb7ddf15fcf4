package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GenerateBookingID creates a unique booking code with timestamp.
// Format: BOOK-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingID() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, randomPart)
}

// GenerateOrderCode creates the numeric order code the payment provider
// requires, derived from the current timestamp millis.
func GenerateOrderCode() int64 {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	code, _ := strconv.ParseInt(ms, 10, 64)
	return code
}
