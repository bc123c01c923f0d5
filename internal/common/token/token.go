package token

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_token.go github.com/gridlight/simonsays/internal/common/token Source

// Source produces unguessable round tokens
type Source interface {
	NewToken() string
}

// DefaultSource implements the Source interface using random UUIDs
type DefaultSource struct{}

func New() *DefaultSource {
	return &DefaultSource{}
}

// NewToken returns a new random token
func (d *DefaultSource) NewToken() string {
	return uuid.New().String()
}
