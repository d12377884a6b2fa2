package vector

// Scalar is a one-dimensional vector value.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar       { return s + o }
func (s Scalar) Sub(o Scalar) Scalar       { return s - o }
func (s Scalar) Scale(by float64) Scalar   { return Scalar(float64(s) * by) }
func (s Scalar) MagnitudeSquared() float64 { return float64(s) * float64(s) }

func (s Scalar) Memberwise(o Scalar, op func(a, b float64) float64) Scalar {
	return Scalar(op(float64(s), float64(o)))
}

// Point is a position or offset in 2D.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point         { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point         { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(by float64) Point    { return Point{p.X * by, p.Y * by} }
func (p Point) MagnitudeSquared() float64 { return p.X*p.X + p.Y*p.Y }

func (p Point) Memberwise(o Point, op func(a, b float64) float64) Point {
	return Point{op(p.X, o.X), op(p.Y, o.Y)}
}

// Size is a 2D extent.
type Size struct {
	W, H float64
}

func (s Size) Add(o Size) Size           { return Size{s.W + o.W, s.H + o.H} }
func (s Size) Sub(o Size) Size           { return Size{s.W - o.W, s.H - o.H} }
func (s Size) Scale(by float64) Size     { return Size{s.W * by, s.H * by} }
func (s Size) MagnitudeSquared() float64 { return s.W*s.W + s.H*s.H }

func (s Size) Memberwise(o Size, op func(a, b float64) float64) Size {
	return Size{op(s.W, o.W), op(s.H, o.H)}
}

// Rect is a composite of an origin and a size. All operations delegate
// memberwise to the two fields.
type Rect struct {
	Origin Point
	Size   Size
}

func (r Rect) Add(o Rect) Rect {
	return Rect{r.Origin.Add(o.Origin), r.Size.Add(o.Size)}
}

func (r Rect) Sub(o Rect) Rect {
	return Rect{r.Origin.Sub(o.Origin), r.Size.Sub(o.Size)}
}

func (r Rect) Scale(by float64) Rect {
	return Rect{r.Origin.Scale(by), r.Size.Scale(by)}
}

func (r Rect) MagnitudeSquared() float64 {
	return r.Origin.MagnitudeSquared() + r.Size.MagnitudeSquared()
}

func (r Rect) Memberwise(o Rect, op func(a, b float64) float64) Rect {
	return Rect{r.Origin.Memberwise(o.Origin, op), r.Size.Memberwise(o.Size, op)}
}

// Transform pairs a translation offset with a uniform scale factor, the
// shape a sliding-and-shrinking thumb animates as a single quantity.
type Transform struct {
	Offset Point
	Factor Scalar
}

func (t Transform) Add(o Transform) Transform {
	return Transform{t.Offset.Add(o.Offset), t.Factor.Add(o.Factor)}
}

func (t Transform) Sub(o Transform) Transform {
	return Transform{t.Offset.Sub(o.Offset), t.Factor.Sub(o.Factor)}
}

func (t Transform) Scale(by float64) Transform {
	return Transform{t.Offset.Scale(by), t.Factor.Scale(by)}
}

func (t Transform) MagnitudeSquared() float64 {
	return t.Offset.MagnitudeSquared() + t.Factor.MagnitudeSquared()
}

func (t Transform) Memberwise(o Transform, op func(a, b float64) float64) Transform {
	return Transform{t.Offset.Memberwise(o.Offset, op), t.Factor.Memberwise(o.Factor, op)}
}
