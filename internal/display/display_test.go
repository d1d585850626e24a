package display

import (
	"errors"
	"image"
	"testing"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/stretchr/testify/assert"
)

func TestLayerFor(t *testing.T) {
	assert.Equal(t, layershell.LayerShellLayerTop, layerFor("top"))
	assert.Equal(t, layershell.LayerShellLayerOverlay, layerFor("overlay"))
	assert.Equal(t, layershell.LayerShellLayerOverlay, layerFor(""))
}

func TestOutputTracker_Resolve(t *testing.T) {
	noScreen := func() (image.Rectangle, bool) { return image.Rectangle{}, false }
	screen := func() (image.Rectangle, bool) { return image.Rect(0, 0, 2560, 1440), true }
	emptyScreen := func() (image.Rectangle, bool) { return image.Rectangle{}, true }

	tests := []struct {
		name          string
		probe         func() (image.Rectangle, bool)
		width, height int
		wantW, wantH  int
	}{
		{"monitor geometry wins", screen, 1920, 1080, 1920, 1080},
		{"screen bounds when geometry is empty", screen, 0, 0, 2560, 1440},
		{"fallback without screen", noScreen, 0, 1080, 800, 600},
		{"fallback on empty screen bounds", emptyScreen, 0, 0, 800, 600},
		{"fallback without probe", nil, 0, 0, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewOutputTracker(nil, 800, 600, nil)
			tracker.probe = tt.probe

			w, h, ok := tracker.resolve(tt.width, tt.height)
			assert.True(t, ok)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestOutputTracker_NoDisplayHasNoOutput(t *testing.T) {
	tracker := NewOutputTracker(nil, 800, 600, nil)

	_, _, ok := tracker.LogicalSize()
	assert.False(t, ok)

	// No monitors list to subscribe to.
	tracker.OnChange(func() { t.Fatal("unexpected callback") })
}

func TestBindError(t *testing.T) {
	cause := errors.New("wl_display_connect failed")

	err := &BindError{Message: "no display available", Cause: cause}
	assert.Equal(t, "no display available: wl_display_connect failed", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &BindError{Message: "compositor does not support the layer-shell protocol"}
	assert.Equal(t, "compositor does not support the layer-shell protocol", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
