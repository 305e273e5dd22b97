package panzoom

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug logging of transforms and
// keep-inside checks.
func (d *Designer) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer silences it.
func (d *Designer) SetDebugOutput(w io.Writer) {
	d.debugOut = w
}

// debugLog prints a [panzoom] line when debug mode is on.
func (d *Designer) debugLog(format string, args ...any) {
	if !d.debug || d.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(d.debugOut, "[panzoom] "+format+"\n", args...)
}

// logTransform reports each transform and warns when the canvas no longer
// covers the keep-inside margin of the container.
func (d *Designer) logTransform(ev TransformEvent) {
	if !d.debug {
		return
	}
	d.debugLog("scale: %.3f | translate: %.1f,%.1f | origin: %.1f,%.1f | rect: %.1f,%.1f %.1fx%.1f",
		ev.Scale, ev.TranslateX, ev.TranslateY, ev.OriginX, ev.OriginY,
		ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height)
	debugCheckKeepInside(d, ev.Rect)
}

// keepInsideTolerance absorbs float drift in the coverage check.
const keepInsideTolerance = 1e-6

func debugCheckKeepInside(d *Designer, r Rect) {
	cr := d.container.Bounds()
	k := d.opts.KeepInside
	overlapW := min(r.X+r.Width, cr.Width) - max(r.X, 0)
	overlapH := min(r.Y+r.Height, cr.Height) - max(r.Y, 0)
	needW := min(r.Width, cr.Width*k)
	needH := min(r.Height, cr.Height*k)
	if overlapW+keepInsideTolerance < needW || overlapH+keepInsideTolerance < needH {
		d.debugLog("warning: canvas overlap %.1fx%.1f below keep-inside %.1fx%.1f",
			overlapW, overlapH, needW, needH)
	}
}
