// Package random generates short random reference strings.
package random

import (
	"crypto/rand"
	"math/big"
)

const upperNumSeq = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seq returns a random string of n uppercase alphanumeric characters.
func Seq(n int) string {
	out := make([]byte, n)
	maxIdx := big.NewInt(int64(len(upperNumSeq)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, maxIdx)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		out[i] = upperNumSeq[idx.Int64()]
	}
	return string(out)
}
