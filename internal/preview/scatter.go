package preview

import (
	"image"
	"math/rand"
)

// Flake is one snowflake placement.
type Flake struct {
	X, Y, Size int
}

// Scatter places n flakes with a generator seeded by seed. Centres fall in
// area with both Min and Max inclusive; sizes in [minSize, maxSize]. Each
// flake draws x, y then size, so the layout depends only on the arguments.
func Scatter(seed int64, n int, area image.Rectangle, minSize, maxSize int) []Flake {
	r := rand.New(rand.NewSource(seed))
	flakes := make([]Flake, n)
	for i := range flakes {
		flakes[i] = Flake{
			X:    between(r, area.Min.X, area.Max.X),
			Y:    between(r, area.Min.Y, area.Max.Y),
			Size: between(r, minSize, maxSize),
		}
	}
	return flakes
}

func between(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
