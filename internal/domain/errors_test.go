package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{
			name:    "wrapped invalid request",
			err:     fmt.Errorf("%w: departure is required", ErrInvalidRequest),
			checker: IsInvalidRequest,
			want:    true,
		},
		{
			name:    "wrapped provider failure",
			err:     fmt.Errorf("%w: status 500", ErrProviderUnavailable),
			checker: IsProviderUnavailable,
			want:    true,
		},
		{
			name:    "wrapped airport resolution failure",
			err:     fmt.Errorf("%w: XYZ", ErrAirportNotFound),
			checker: IsAirportNotFound,
			want:    true,
		},
		{
			name:    "wrapped persistence failure",
			err:     fmt.Errorf("%w: insert flight", ErrPersistence),
			checker: IsPersistence,
			want:    true,
		},
		{
			name:    "unrelated error does not classify",
			err:     errors.New("boom"),
			checker: IsProviderUnavailable,
			want:    false,
		},
		{
			name:    "provider failure is not a validation failure",
			err:     ErrProviderUnavailable,
			checker: IsInvalidRequest,
			want:    false,
		},
		{
			name:    "nil error",
			err:     nil,
			checker: IsPersistence,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.checker(tt.err))
		})
	}
}

func TestErrDuplicateKeyDistinctFromNotFound(t *testing.T) {
	assert.False(t, errors.Is(ErrDuplicateKey, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicateKey))
}
