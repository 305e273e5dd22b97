package panzoom

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// scaleTranslate returns the matrix that scales by (sx, sy) and then
// translates by (tx, ty). Returns [a, b, c, d, tx, ty].
func scaleTranslate(sx, sy, tx, ty float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, tx, ty}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect maps r through an axis-aligned (scale + translate) matrix.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	return Rect{X: min(x0, x1), Y: min(y0, y1), Width: abs(x1 - x0), Height: abs(y1 - y0)}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// --- Viewport coordinate conversion ---

// canvasToContainer returns the matrix mapping unscaled canvas coordinates
// to container coordinates.
func (v *Viewport) canvasToContainer() [6]float64 {
	r := v.Rect()
	s := v.CurrentScale()
	return scaleTranslate(s, s, r.X, r.Y)
}

// CanvasToPage converts an unscaled canvas point to page coordinates.
func (v *Viewport) CanvasToPage(cx, cy float64) (px, py float64) {
	cr := v.container.Bounds()
	m := multiplyAffine(scaleTranslate(1, 1, cr.X, cr.Y), v.canvasToContainer())
	return transformPoint(m, cx, cy)
}

// PageToCanvas converts a page point to unscaled canvas coordinates.
func (v *Viewport) PageToCanvas(px, py float64) (cx, cy float64) {
	cr := v.container.Bounds()
	m := multiplyAffine(scaleTranslate(1, 1, cr.X, cr.Y), v.canvasToContainer())
	return transformPoint(invertAffine(m), px, py)
}

// VisibleCanvasRect returns the part of the unscaled canvas space covered
// by the container. It may extend past the canvas.
func (v *Viewport) VisibleCanvasRect() Rect {
	cr := v.container.Bounds()
	inv := invertAffine(v.canvasToContainer())
	return transformRect(inv, Rect{Width: cr.Width, Height: cr.Height})
}
