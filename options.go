package viewport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Gesture timing and geometry defaults.
const (
	DefaultLongPressDelay  = 500 * time.Millisecond
	DefaultDoubleTapWindow = 300 * time.Millisecond
	DefaultDragThreshold   = 5.0   // container units, per axis
	DefaultWheelZoomStep   = 0.005 // zoom change per wheel delta unit
	DefaultSettleDuration  = 200 * time.Millisecond
)

// ErrInvalidOptions is returned (wrapped) by Options.Validate.
var ErrInvalidOptions = errors.New("invalid viewport options")

// Options configures gesture recognition and zoom behavior.
type Options struct {
	// LongPressDelay is how long a contact must stay within DragThreshold
	// before it resolves as a long press.
	LongPressDelay time.Duration
	// DoubleTapWindow is the maximum gap between two taps that resets the
	// view instead of producing taps.
	DoubleTapWindow time.Duration
	// DragThreshold is the movement on either axis that turns a press into
	// a drag.
	DragThreshold float64

	MinZoom float64
	MaxZoom float64
	// WheelZoomStep is the zoom change per unit of WheelEvent.DeltaY.
	WheelZoomStep float64

	// SettleDuration is how long the rendered transform eases toward the
	// model after a non-continuous change (reset, wheel). Zero disables
	// easing.
	SettleDuration time.Duration

	// Debug prints gesture resolutions to stderr.
	Debug bool
}

// DefaultOptions returns the standard gesture configuration.
func DefaultOptions() Options {
	return Options{
		LongPressDelay:  DefaultLongPressDelay,
		DoubleTapWindow: DefaultDoubleTapWindow,
		DragThreshold:   DefaultDragThreshold,
		MinZoom:         DefaultMinZoom,
		MaxZoom:         DefaultMaxZoom,
		WheelZoomStep:   DefaultWheelZoomStep,
		SettleDuration:  DefaultSettleDuration,
	}
}

// Validate checks that every field is usable.
func (o Options) Validate() error {
	switch {
	case o.LongPressDelay <= 0:
		return fmt.Errorf("%w: long_press_ms must be positive", ErrInvalidOptions)
	case o.DoubleTapWindow <= 0:
		return fmt.Errorf("%w: double_tap_ms must be positive", ErrInvalidOptions)
	case o.DragThreshold < 0:
		return fmt.Errorf("%w: drag_threshold cannot be negative", ErrInvalidOptions)
	case o.MinZoom < DefaultMinZoom:
		return fmt.Errorf("%w: min_zoom must be at least 1", ErrInvalidOptions)
	case o.MaxZoom < o.MinZoom:
		return fmt.Errorf("%w: max_zoom must not be below min_zoom", ErrInvalidOptions)
	case o.WheelZoomStep < 0:
		return fmt.Errorf("%w: wheel_zoom_step cannot be negative", ErrInvalidOptions)
	case o.SettleDuration < 0:
		return fmt.Errorf("%w: settle_ms cannot be negative", ErrInvalidOptions)
	}
	return nil
}

// optionsFile is the JSON shape of Options with durations in milliseconds.
type optionsFile struct {
	LongPressMS   int64   `json:"long_press_ms"`
	DoubleTapMS   int64   `json:"double_tap_ms"`
	DragThreshold float64 `json:"drag_threshold"`
	MinZoom       float64 `json:"min_zoom"`
	MaxZoom       float64 `json:"max_zoom"`
	WheelZoomStep float64 `json:"wheel_zoom_step"`
	SettleMS      int64   `json:"settle_ms"`
	Debug         bool    `json:"debug"`
}

func (o Options) toFile() optionsFile {
	return optionsFile{
		LongPressMS:   o.LongPressDelay.Milliseconds(),
		DoubleTapMS:   o.DoubleTapWindow.Milliseconds(),
		DragThreshold: o.DragThreshold,
		MinZoom:       o.MinZoom,
		MaxZoom:       o.MaxZoom,
		WheelZoomStep: o.WheelZoomStep,
		SettleMS:      o.SettleDuration.Milliseconds(),
		Debug:         o.Debug,
	}
}

func (f optionsFile) options() Options {
	return Options{
		LongPressDelay:  time.Duration(f.LongPressMS) * time.Millisecond,
		DoubleTapWindow: time.Duration(f.DoubleTapMS) * time.Millisecond,
		DragThreshold:   f.DragThreshold,
		MinZoom:         f.MinZoom,
		MaxZoom:         f.MaxZoom,
		WheelZoomStep:   f.WheelZoomStep,
		SettleDuration:  time.Duration(f.SettleMS) * time.Millisecond,
		Debug:           f.Debug,
	}
}

// ParseOptions decodes JSON options. Fields missing from data keep their
// default values. The result is validated.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := opts.UnmarshalJSON(data); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads and parses a JSON options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return ParseOptions(data)
}

// MarshalJSON encodes the options with durations in milliseconds.
func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toFile())
}

// UnmarshalJSON decodes options written by MarshalJSON. Missing fields
// take their default values. The result is not validated.
func (o *Options) UnmarshalJSON(data []byte) error {
	f := DefaultOptions().toFile()
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*o = f.options()
	return nil
}
