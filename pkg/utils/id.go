package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// GenerateOrderID returns ids like ORDER_1735689600000_A1B2C.
func GenerateOrderID() string {
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), strings.ToUpper(randomSuffix(5)))
}

// GenerateRecordID returns ids like 1735689600000_k3j9x2m1q, used for
// records added to a store collection without an explicit id.
func GenerateRecordID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}
