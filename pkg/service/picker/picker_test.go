package picker_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/service/picker"
)

func TestIsImage(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"photo.jpg", true},
		{"PHOTO.PNG", true},
		{"anim.gif", true},
		{"pic.jpeg", true},
		{"pic.webp", true},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			gt.Equal(t, tc.expected, picker.IsImage(tc.path))
		})
	}
}

func TestCommandPickImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Selected path", func(t *testing.T) {
		p := picker.NewCommand("echo", "/home/mod/evidence.png")
		path, err := p.PickImage(ctx)
		gt.NoError(t, err).Required()
		gt.V(t, path).NotNil()
		gt.Equal(t, "/home/mod/evidence.png", *path)
	})

	t.Run("Cancel", func(t *testing.T) {
		p := picker.NewCommand("false")
		path, err := p.PickImage(ctx)
		gt.NoError(t, err)
		gt.True(t, path == nil)
	})

	t.Run("Non-image selection", func(t *testing.T) {
		p := picker.NewCommand("echo", "/home/mod/notes.txt")
		path, err := p.PickImage(ctx)
		gt.Error(t, err)
		gt.True(t, path == nil)
	})

	t.Run("Missing command", func(t *testing.T) {
		p := picker.NewCommand("wcadmin-no-such-picker")
		_, err := p.PickImage(ctx)
		gt.Error(t, err)
	})
}
