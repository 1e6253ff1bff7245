package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Cooling Pillow", "cooling-pillow"},
		{"  Weighted Blanket  ", "weighted-blanket"},
		{"Silk Sleep Mask (2-pack)", "silk-sleep-mask-2-pack"},
		{"100% Bamboo Sheets", "100-bamboo-sheets"},
		{"---", "product"},
		{"", "product"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromName(tc.in), "input %q", tc.in)
	}
}
