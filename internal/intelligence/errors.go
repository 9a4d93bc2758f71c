package intelligence

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/llm"
)

var (
	// ErrCredentialMissing means no API key is stored.
	ErrCredentialMissing = errors.New("ai credential missing")

	// ErrNetwork covers transport failures: unreachable provider, timeouts,
	// non-success replies.
	ErrNetwork = errors.New("ai request failed")

	// ErrMalformedResponse means the reply held no usable workout.
	ErrMalformedResponse = errors.New("malformed ai response")

	// ErrInvalidDomainValue means the reply named something outside the
	// closed domain sets, such as an unknown muscle group.
	ErrInvalidDomainValue = domain.ErrInvalidDomainValue
)

// classify maps transport errors onto the recommender's failure kinds.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, llm.ErrCredentialMissing):
		return fmt.Errorf("%w: %w", ErrCredentialMissing, err)
	case errors.Is(err, llm.ErrInvalidOutput):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}
