package shell

import (
	"crypto/rand"
	"math/big"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewInviteCode returns a random invite code of core.InviteCodeLength characters from A-Z and 0-9.
func NewInviteCode() core.InviteCodeString {
	code := make([]byte, core.InviteCodeLength)
	limit := big.NewInt(int64(len(inviteCodeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(err) // crypto/rand does not fail on supported platforms
		}

		code[i] = inviteCodeAlphabet[n.Int64()]
	}

	return string(code)
}
