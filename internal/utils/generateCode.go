package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOtpCode returns a 6-digit code in [100000, 999999].
func GenerateOtpCode() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	return fmt.Sprintf("%d", 100000+r.Intn(900000))
}
