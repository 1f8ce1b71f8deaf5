package tool

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"honnef.co/go/pathedit"
)

// Options configures a [Tool]. The zero value is not useful; start from
// [DefaultOptions] or [LoadOptions].
type Options struct {
	// SmoothSegments makes new segments smooth instead of corners.
	SmoothSegments    bool    `envconfig:"SMOOTH_SEGMENTS" default:"false"`
	HideAnchorPoints  bool    `envconfig:"HIDE_ANCHOR_POINTS" default:"true"`
	HideControlPoints bool    `envconfig:"HIDE_CONTROL_POINTS" default:"false"`
	SimplifyTolerance float64 `envconfig:"SIMPLIFY_TOLERANCE" default:"60"`
	// MinDrawSpacing is the distance the pointer has to move while drawing
	// before another point is added.
	MinDrawSpacing float64 `envconfig:"MIN_DRAW_SPACING" default:"10"`
	// DoubleClickMS is the longest interval between two presses that still
	// counts as a double click.
	DoubleClickMS int     `envconfig:"DOUBLE_CLICK_MS" default:"200"`
	ZoomStep      float64 `envconfig:"ZOOM_STEP" default:"1.1"`
	CanvasWidth   float64 `envconfig:"CANVAS_WIDTH" default:"375"`
	CanvasHeight  float64 `envconfig:"CANVAS_HEIGHT" default:"375"`

	Segment pathedit.SegmentOptions `ignored:"true"`
}

// DefaultOptions returns the options LoadOptions produces with an empty
// environment.
func DefaultOptions() Options {
	return Options{
		HideAnchorPoints:  true,
		SimplifyTolerance: 60,
		MinDrawSpacing:    10,
		DoubleClickMS:     200,
		ZoomStep:          1.1,
		CanvasWidth:       375,
		CanvasHeight:      375,
		Segment:           pathedit.DefaultSegmentOptions(),
	}
}

// LoadOptions reads options from PATHEDIT_* environment variables.
func LoadOptions() (Options, error) {
	var opts Options
	if err := envconfig.Process("pathedit", &opts); err != nil {
		return Options{}, fmt.Errorf("loading tool options: %w", err)
	}
	opts.Segment = pathedit.DefaultSegmentOptions()
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validate() error {
	switch {
	case o.SimplifyTolerance < 0:
		return fmt.Errorf("simplify tolerance %g is negative", o.SimplifyTolerance)
	case o.MinDrawSpacing < 0:
		return fmt.Errorf("minimum draw spacing %g is negative", o.MinDrawSpacing)
	case o.ZoomStep <= 1:
		return fmt.Errorf("zoom step %g must be larger than 1", o.ZoomStep)
	case o.CanvasWidth < 0 || o.CanvasHeight < 0:
		return fmt.Errorf("canvas size %gx%g is negative", o.CanvasWidth, o.CanvasHeight)
	}
	return nil
}

func (o Options) segmentType() pathedit.SegmentType {
	if o.SmoothSegments {
		return pathedit.Smooth
	}
	return pathedit.Corner
}

func (o Options) doubleClick() time.Duration {
	return time.Duration(o.DoubleClickMS) * time.Millisecond
}

func (o Options) canvas() pathedit.Size {
	return pathedit.Sz(o.CanvasWidth, o.CanvasHeight)
}
