package signal

// Point is an (x, y) pair exchanged with callers.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Xs returns the x coordinates of points.
func Xs(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.X
	}
	return out
}

// Ys returns the y values of points.
func Ys(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Y
	}
	return out
}

// Zip pairs xs and ys into points. The result has the length of the shorter input.
func Zip(xs, ys []float64) []Point {
	n := min(len(xs), len(ys))
	out := make([]Point, n)
	for i := range n {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out
}
