package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// tempPasswordAlphabet leaves out 0/O/1/l/I so a password read aloud over
// the phone survives the trip.
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minTempPasswordLength = 8

var errShortTempPassword = errors.New("temporary password length below minimum")

// TemporaryPassword returns an unbiased random password for a freshly
// created roster user. The caller is expected to hand it over out of band
// and have the user change it.
func TemporaryPassword(length int) (string, error) {
	if length < minTempPasswordLength {
		return "", errShortTempPassword
	}

	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = tempPasswordAlphabet[position.Int64()]
	}

	return string(value), nil
}
