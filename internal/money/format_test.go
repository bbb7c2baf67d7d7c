package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Russian digit grouping uses a no-break space.
func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₽"},
		{990, "990 ₽"},
		{12990, "12\u00a0990 ₽"},
		{1234567, "1\u00a0234\u00a0567 ₽"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount))
	}
}
