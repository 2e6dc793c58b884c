package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"travelmate/internal/domain"
)

func TestSameParticipantSet(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"reversed", []string{"b", "a"}, []string{"a", "b"}, true},
		{"different cardinality", []string{"a", "b"}, []string{"a", "b", "c"}, false},
		{"same size different members", []string{"a", "b"}, []string{"a", "c"}, false},
		{"duplicate vs distinct", []string{"a", "a"}, []string{"a", "b"}, false},
		{"both empty", nil, []string{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.SameParticipantSet(tc.a, tc.b))
		})
	}
}

func TestParticipantKey(t *testing.T) {
	ids := []string{"c", "a", "b"}
	assert.Equal(t, "a,b,c", domain.ParticipantKey(ids))
	assert.Equal(t, []string{"c", "a", "b"}, ids, "input must not be reordered")
	assert.Equal(t, domain.ParticipantKey([]string{"x", "y"}), domain.ParticipantKey([]string{"y", "x"}))
}

func TestErrorKinds(t *testing.T) {
	err := domain.Errorf(domain.ErrNotFound, "chat not found")
	wrapped := fmt.Errorf("add message: %w", err)

	assert.True(t, errors.Is(wrapped, domain.ErrNotFound))
	assert.False(t, errors.Is(wrapped, domain.ErrConflict))
	assert.Equal(t, "chat not found", domain.ClientMessage(wrapped))
	assert.Equal(t, "internal server error", domain.ClientMessage(errors.New("disk I/O error")))
}
