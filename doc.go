// Package easing implements the model behind an interactive editor for CSS
// cubic-bezier() timing functions. It doesn't draw anything; a host supplies
// a [Surface] to plot on, forwards pointer and keyboard input to a [Widget],
// and repaints whenever the widget emits [EventUpdated].
//
// # Timing functions
//
// A timing function is a cubic Bézier whose endpoints are fixed at (0, 0) and
// (1, 1). Only the two interior control points, P1 and P2, are free. The X
// coordinate of a point is time, the Y coordinate is progress. Time is
// restricted to [0, 1], which keeps the curve a function of time; progress is
// unbounded, which allows curves that overshoot, such as ease-in-out-back.
//
// [Curve] holds a validated pair of control points and evaluates the function
// with [Curve.Progress]. [Coordinates] is the flat four-number form used by
// CSS and by [Snapshot].
//
// # CSS text
//
// [Parse] and [Library.Parse] read either a keyword or the function form,
//
//	cubic-bezier(0.25, 0.1, 0.25, 1)
//
// and [Format] writes the canonical function form. Format never produces a
// keyword, even for a curve that equals a preset. [Library.Match] finds the
// preset name of a curve, if it has one.
//
// # Presets
//
// A [Library] maps names to coordinates. [DefaultLibrary] holds the five CSS
// keywords as well as the common ease-in, ease-out and ease-in-out families.
// The presetfile subpackage loads additional presets from YAML, TOML and HCL
// files.
//
// # Widgets
//
// A [Widget] owns the current curve and its CSS text and keeps them in sync.
// It can be changed programmatically with [Widget.SetCoordinates] and
// [Widget.SetCSSValue], or interactively with [Widget.BeginDrag],
// [Widget.DragTo], [Widget.ClickAt] and [Widget.Nudge], which take y-down pixel
// positions relative to the surface's plot area.
//
// Every accepted change emits [EventUpdated] synchronously to listeners
// registered with [Widget.On] and [Widget.Once]. Rejected changes leave the
// widget untouched and emit nothing. After [Widget.Destroy], every method
// returns a *[UseAfterDestroyError].
//
// # Geometry
//
// The package includes the small amount of 2D geometry the widget needs:
// [Point], [Vec2], [Rect], [Affine] transforms, [CubicBez] and polynomial root
// finding with [SolveCubic]. [Curve.PathElements] and [SVG] turn a curve into
// SVG path data for hosts that render with SVG.
package easing
