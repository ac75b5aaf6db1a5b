package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes account passwords. The cost comes from configuration
// so staging environments can trade hash strength for signup latency.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps out-of-range costs to the library default rather
// than letting a bad config produce unverifiable hashes.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns an error on mismatch; the caller folds it into its
// credential error so the response never says which field failed.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
