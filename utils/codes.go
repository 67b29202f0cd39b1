package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferenceCode builds a short A-Z0-9 code for receipts, e.g.
// "AB4D93KF". crypto/rand + big.Int keeps the draw unbiased.
func GenerateReferenceCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// TableQRCodeURL is the path encoded in a table's printed QR sticker. It is
// generated once at table creation and must stay stable for the table's
// lifetime: reprints are expensive, re-sticking is worse.
func TableQRCodeURL(floorNumber, tableNumber int) string {
	return fmt.Sprintf("/table/%d/%d", floorNumber, tableNumber)
}
