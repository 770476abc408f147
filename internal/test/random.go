package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vertexinvest/checkout/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomDigits returns n random decimal digits.
func RandomDigits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + randomIntn(10))
	}
	return string(buf)
}

// RandomCustomer builds customer data that passes intake validation.
func RandomCustomer() model.CustomerData {
	name := RandomASCIIString(3, 12)
	taxID := RandomDigits(11)
	if randomIntn(2) == 0 {
		taxID = RandomDigits(14)
	}
	return model.CustomerData{
		Name:    name,
		Email:   fmt.Sprintf("%s@example.com", name),
		Phone:   "+55 11 9" + RandomDigits(8),
		CPFCNPJ: taxID,
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
