package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

func TestMessageVariantValidation(t *testing.T) {
	tests := []struct {
		name     string
		variant  types.MessageVariant
		expected bool
	}{
		{"Valid simple", types.MessageVariantSimple, true},
		{"Valid embed", types.MessageVariantEmbed, true},
		{"Valid poll", types.MessageVariantPoll, true},
		{"Invalid empty", types.MessageVariant(""), false},
		{"Invalid mixed case", types.MessageVariant("Poll"), false},
		{"Invalid unknown", types.MessageVariant("sticker"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.variant.IsValid()
			if result != tt.expected {
				t.Errorf("MessageVariant(%q).IsValid() = %v, want %v", tt.variant, result, tt.expected)
			}
		})
	}
}

func TestMessageVariantNext(t *testing.T) {
	gt.Equal(t, types.MessageVariantEmbed, types.MessageVariantSimple.Next())
	gt.Equal(t, types.MessageVariantPoll, types.MessageVariantEmbed.Next())
	gt.Equal(t, types.MessageVariantSimple, types.MessageVariantPoll.Next())
	gt.Equal(t, types.MessageVariantSimple, types.MessageVariant("bogus").Next())
}

func TestNewIDs(t *testing.T) {
	gt.NotEqual(t, types.NewPollOptionID(), types.NewPollOptionID())
	gt.NotEqual(t, types.NewRequestID(), types.NewRequestID())
	gt.NotEqual(t, "", types.NewRequestID().String())
}
