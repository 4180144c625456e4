package test

import (
	"math/rand/v2"
	"strings"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomEmail returns a syntactically valid lowercase address.
func RandomEmail() string {
	var b strings.Builder
	b.WriteString(randomFrom(lowerLetters, 5, 12))
	b.WriteString("@")
	b.WriteString(randomFrom(lowerLetters, 3, 8))
	b.WriteString(".test")
	return b.String()
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.IntN(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
