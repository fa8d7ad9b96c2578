package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
)

func TestIsEmoji(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"⛔", true},
		{"❌", true},
		{"🚫", true},
		{"👍🏽", true},
		{"🇯🇵", true},
		{"1️⃣", true},
		{"veto:123456789012345678", true},
		{"a:party:123456789012345678", true},
		{"", false},
		{"hello", false},
		{"a", false},
		{"⛔❌", false},
		{"⛔ ", false},
		{"veto:12", false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			gt.Equal(t, tc.want, model.IsEmoji(tc.in))
		})
	}
}
