package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix       = "BK"
	referenceAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceSuffixLength = 6
)

// NewReference builds "BK" + base36(unix millis) + 6 random base36 characters. The suffix gives
// 36^6 (about 2.18e9) references per millisecond; the unique index on booking_reference catches
// the rest and the caller retries.
func NewReference(now time.Time) (string, error) {
	var sb strings.Builder

	sb.WriteString(referencePrefix)
	sb.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))

	size := big.NewInt(int64(len(referenceAlphabet)))

	for range referenceSuffixLength {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("failed to generate booking reference: %w", err)
		}

		sb.WriteByte(referenceAlphabet[n.Int64()])
	}

	return sb.String(), nil
}
