package easing

import (
	"fmt"
	"log/slog"
)

// Surface is the host-side drawable that a [Widget] is attached to. The
// widget never paints; it only asks the surface where the curve is plotted so
// that it can map pointer positions into the curve's unit space.
type Surface interface {
	// PlotArea returns the y-down pixel rectangle that the unit square of the
	// timing function is drawn into. Time 0 is the left edge, progress 0 the
	// bottom edge and progress 1 the top edge.
	PlotArea() Rect
}

// Snapshot is the state of a widget at the time of an emission. It is a plain
// value; later changes to the widget never show through it.
type Snapshot struct {
	P1  [2]float64 `json:"p1"`
	P2  [2]float64 `json:"p2"`
	CSS string     `json:"css"`
}

func (s Snapshot) Coordinates() Coordinates {
	return Coordinates{s.P1[0], s.P1[1], s.P2[0], s.P2[1]}
}

// Options configure a [Widget]. The zero value is ready to use.
type Options struct {
	// Library resolves keywords. It defaults to DefaultLibrary.
	Library *Library
	// Logger receives debug records for accepted and rejected changes. It
	// defaults to discarding everything.
	Logger *slog.Logger
	// HandleRadius is the distance in pixels within which HandleAt reports a
	// hit. It defaults to DefaultHandleRadius.
	HandleRadius float64
}

// DefaultHandleRadius is the default hit radius of a control point handle, in
// pixels.
const DefaultHandleRadius = 8

type widgetState int

const (
	stateUninitialized widgetState = iota
	stateReady
	stateDestroyed
)

// Widget is an editable timing function. It keeps the control points, their
// canonical CSS text and its subscribers consistent: every accepted change
// updates both representations and then emits [EventUpdated] with a fresh
// [Snapshot]. A rejected change leaves the widget untouched and emits
// nothing.
//
// A Widget is not safe for concurrent use. Listeners may modify the widget;
// the resulting emission is delivered after the current one has reached all
// listeners.
type Widget struct {
	surface      Surface
	library      *Library
	logger       *slog.Logger
	handleRadius float64

	state  widgetState
	curve  Curve
	css    string
	drag   Handle
	events emitter[Snapshot]
}

var _ Notifier = (*Widget)(nil)

// New returns a widget attached to surface, starting with the curve described
// by initial. initial is anything [Library.Parse] accepts, typically a preset
// name; the empty string selects [DefaultPreset].
func New(surface Surface, initial string, opts *Options) (*Widget, error) {
	w, err := newWidget("New", surface, opts)
	if err != nil {
		return nil, err
	}
	if initial == "" {
		initial = DefaultPreset
	}
	coords, err := w.library.Parse(initial)
	if err != nil {
		return nil, &ValidationError{Op: "New", Reason: "invalid initial curve", Err: err}
	}
	c, err := newCurve("New", coords[:])
	if err != nil {
		return nil, err
	}
	w.init(c)
	return w, nil
}

// NewWithCoordinates is like [New] but starts with explicit coordinates.
func NewWithCoordinates(surface Surface, coords []float64, opts *Options) (*Widget, error) {
	w, err := newWidget("NewWithCoordinates", surface, opts)
	if err != nil {
		return nil, err
	}
	c, err := newCurve("NewWithCoordinates", coords)
	if err != nil {
		return nil, err
	}
	w.init(c)
	return w, nil
}

func newWidget(op string, surface Surface, opts *Options) (*Widget, error) {
	if surface == nil {
		return nil, &ValidationError{Op: op, Reason: "nil surface"}
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Library == nil {
		o.Library = DefaultLibrary
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.HandleRadius == 0 {
		o.HandleRadius = DefaultHandleRadius
	}
	if !(o.HandleRadius > 0) {
		return nil, &ValidationError{Op: op, Reason: fmt.Sprintf("invalid handle radius %g", o.HandleRadius)}
	}
	return &Widget{
		surface:      surface,
		library:      o.Library,
		logger:       o.Logger,
		handleRadius: o.HandleRadius,
	}, nil
}

func (w *Widget) init(c Curve) {
	w.curve = c
	w.css = Format(c.Coordinates())
	w.state = stateReady
	w.logger.Debug("widget ready", "css", w.css)
}

func (w *Widget) check(op string) error {
	switch w.state {
	case stateReady:
		return nil
	case stateDestroyed:
		return &UseAfterDestroyError{Op: op}
	default:
		return &ValidationError{Op: op, Reason: "widget was not created with New"}
	}
}

// commit replaces the curve and notifies listeners. It must only be called
// with a curve that has already been validated.
func (w *Widget) commit(source string, c Curve) {
	w.curve = c
	w.css = Format(c.Coordinates())
	w.logger.Debug("curve updated", "source", source, "css", w.css)
	w.events.emit(EventUpdated, w.snapshot())
}

func (w *Widget) reject(source string, err error) error {
	w.logger.Debug("change rejected", "source", source, "err", err)
	return err
}

func (w *Widget) snapshot() Snapshot {
	return Snapshot{
		P1:  w.curve.P1().Pair(),
		P2:  w.curve.P2().Pair(),
		CSS: w.css,
	}
}

// Coordinates returns the current control points.
func (w *Widget) Coordinates() (Coordinates, error) {
	if err := w.check("Coordinates"); err != nil {
		return Coordinates{}, err
	}
	return w.curve.Coordinates(), nil
}

// SetCoordinates replaces both control points. It requires exactly four
// finite values, in the order of [Coordinates]; time coordinates are clamped
// to [0, 1]. Every successful call emits [EventUpdated], even if the
// coordinates didn't change.
func (w *Widget) SetCoordinates(values ...float64) error {
	const op = "SetCoordinates"
	if err := w.check(op); err != nil {
		return err
	}
	c, err := newCurve(op, values)
	if err != nil {
		return w.reject(op, err)
	}
	w.commit(op, c)
	return nil
}

// CSSValue returns the canonical CSS text of the current curve. This is
// always the function form, even if the curve was set with a keyword.
func (w *Widget) CSSValue() (string, error) {
	if err := w.check("CSSValue"); err != nil {
		return "", err
	}
	return w.css, nil
}

// SetCSSValue replaces the curve with the one described by value, which may be
// a preset name or a cubic-bezier() function. Every successful call emits
// [EventUpdated].
func (w *Widget) SetCSSValue(value string) error {
	const op = "SetCSSValue"
	if err := w.check(op); err != nil {
		return err
	}
	coords, err := w.library.Parse(value)
	if err != nil {
		return w.reject(op, err)
	}
	c, err := newCurve(op, coords[:])
	if err != nil {
		return w.reject(op, err)
	}
	w.commit(op, c)
	return nil
}

// Curve returns the current curve.
func (w *Widget) Curve() (Curve, error) {
	if err := w.check("Curve"); err != nil {
		return Curve{}, err
	}
	return w.curve, nil
}

// Snapshot returns the current state in the form listeners receive it.
func (w *Widget) Snapshot() (Snapshot, error) {
	if err := w.check("Snapshot"); err != nil {
		return Snapshot{}, err
	}
	return w.snapshot(), nil
}

// On implements [Notifier].
func (w *Widget) On(event Event, fn func(Snapshot)) (remove func(), err error) {
	const op = "On"
	if err := w.check(op); err != nil {
		return nil, err
	}
	if err := checkEvent(op, event); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, &ValidationError{Op: op, Reason: "nil listener"}
	}
	return w.events.on(event, fn), nil
}

// Once implements [Notifier].
func (w *Widget) Once(event Event) (<-chan Snapshot, error) {
	const op = "Once"
	if err := w.check(op); err != nil {
		return nil, err
	}
	if err := checkEvent(op, event); err != nil {
		return nil, err
	}
	return w.events.once(event), nil
}

func checkEvent(op string, event Event) error {
	if event != EventUpdated {
		return &ValidationError{Op: op, Reason: fmt.Sprintf("unknown event %q", event)}
	}
	return nil
}

// Destroy detaches the widget from its surface and drops all listeners.
// Channels returned by Once that haven't received a value are closed. Every
// later call on the widget, including Destroy, fails with a
// *[UseAfterDestroyError].
func (w *Widget) Destroy() error {
	if err := w.check("Destroy"); err != nil {
		return err
	}
	w.state = stateDestroyed
	w.events.close()
	w.surface = nil
	w.drag = HandleNone
	w.logger.Debug("widget destroyed")
	return nil
}
