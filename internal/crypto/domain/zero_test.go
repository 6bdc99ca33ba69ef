package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "non-empty", in: []byte{1, 2, 3, 4, 5}},
		{name: "empty", in: []byte{}},
		{name: "nil", in: nil},
		{name: "key sized", in: []byte("0123456789abcdef0123456789abcdef")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { Zero(tt.in) })
			for _, v := range tt.in {
				assert.Equal(t, byte(0), v)
			}
		})
	}
}
