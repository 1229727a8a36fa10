package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateBookingID builds a booking reference of the form
// "BK<unix-millis><5 random chars>", uppercased. The timestamp
// component keeps ids unique across calls.
func GenerateBookingID() string {
	suffix := make([]byte, 5)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			n = big.NewInt(time.Now().UnixNano() % int64(len(base36)))
		}
		suffix[i] = base36[n.Int64()]
	}
	return strings.ToUpper(fmt.Sprintf("BK%d%s", time.Now().UnixMilli(), suffix))
}

// GenerateOTP returns a 4-digit one-time password for password resets.
func GenerateOTP() string {
	var number [2]byte
	rand.Read(number[:])
	return fmt.Sprintf("%04d", (int(number[0])<<8|int(number[1]))%10000)
}
