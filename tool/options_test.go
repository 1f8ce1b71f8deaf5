package tool

import (
	"testing"

	"honnef.co/go/pathedit"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultOptions(), opts)
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("PATHEDIT_SMOOTH_SEGMENTS", "true")
	t.Setenv("PATHEDIT_SIMPLIFY_TOLERANCE", "25.5")
	t.Setenv("PATHEDIT_CANVAS_WIDTH", "640")
	t.Setenv("PATHEDIT_DOUBLE_CLICK_MS", "350")

	opts, err := LoadOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultOptions()
	want.SmoothSegments = true
	want.SimplifyTolerance = 25.5
	want.CanvasWidth = 640
	want.DoubleClickMS = 350
	diff(t, want, opts)
	diff(t, pathedit.Smooth, opts.segmentType())
	diff(t, pathedit.Sz(640, 375), opts.canvas())
}

func TestLoadOptionsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PATHEDIT_SIMPLIFY_TOLERANCE", "-1"},
		{"PATHEDIT_MIN_DRAW_SPACING", "-3"},
		{"PATHEDIT_ZOOM_STEP", "1"},
		{"PATHEDIT_CANVAS_HEIGHT", "-10"},
		{"PATHEDIT_DOUBLE_CLICK_MS", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadOptions(); err == nil {
				t.Errorf("%s=%s accepted", tt.key, tt.value)
			}
		})
	}
}
