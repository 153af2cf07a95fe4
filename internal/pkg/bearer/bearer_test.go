//go:build unit

package bearer_test

import (
	"testing"

	"scrap-market/internal/pkg/bearer"

	"github.com/stretchr/testify/assert"
)

func TestFromHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{in: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{in: "abc.def.ghi", want: "abc.def.ghi"},
		{in: "  Bearer   abc  ", want: "abc"},
		{in: "", want: ""},
		{in: "Bearer ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, bearer.FromHeader(tt.in))
		})
	}
	assert.Equal(t, "Bearer xyz", bearer.Header("xyz"))
}
