package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOTP returns a 4-digit reset code. Two random bytes cover the full
// 0000-9999 space; a single byte would cap the code at 0255.
func GenerateOTP() (string, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", int(binary.BigEndian.Uint16(b[:]))%10000), nil
}

// GenerateReference returns a short booking reference code, e.g. "A1B2C3D4".
func GenerateReference() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
