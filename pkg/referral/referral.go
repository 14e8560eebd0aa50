package referral

import (
	"errors"
	"strings"

	"github.com/speps/go-hashids/v2"
)

// Codes are short, non-sequential and uppercase so they survive being read
// over the phone. One code per client, derived from the client id.

const codeLength = 8

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = codeLength
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	return hashids.NewWithData(hd)
}

func Encode(salt string, clientID int64) (string, error) {
	if clientID <= 0 {
		return "", errors.New("client id must be positive")
	}
	h, err := newHashID(salt)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{clientID})
}

func Decode(salt string, code string) (int64, error) {
	h, err := newHashID(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil || len(ids) != 1 {
		return 0, errors.New("not a referral code")
	}
	return ids[0], nil
}
