package projection

import (
	"image"
	"image/color"
)

// OccupancyMap marks which pixels of a projection image received a
// projected point or a filter-filled value. It is row-major and always
// the same dimensions as its paired image.
type OccupancyMap struct {
	width  int
	height int
	data   []bool
}

// NewOccupancyMap returns an all-unoccupied map of the given dimensions.
func NewOccupancyMap(width, height int) *OccupancyMap {
	return &OccupancyMap{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// Width returns the horizontal width of the map.
func (m *OccupancyMap) Width() int {
	return m.width
}

// Height returns the vertical height of the map.
func (m *OccupancyMap) Height() int {
	return m.height
}

// Bounds returns the dimensions of the map.
func (m *OccupancyMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Contains returns whether or not a point is within the map's bounds.
func (m *OccupancyMap) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *OccupancyMap) kxy(x, y int) int {
	return (y * m.width) + x
}

// Get returns whether the given pixel is occupied.
func (m *OccupancyMap) Get(x, y int) bool {
	return m.data[m.kxy(x, y)]
}

// Set marks the given pixel.
func (m *OccupancyMap) Set(x, y int, occupied bool) {
	m.data[m.kxy(x, y)] = occupied
}

// Count returns the number of occupied pixels.
func (m *OccupancyMap) Count() int {
	n := 0
	for _, occupied := range m.data {
		if occupied {
			n++
		}
	}
	return n
}

// BoundingBox returns the minimal rectangle enclosing every occupied
// pixel. The second return is false if no pixel is occupied.
func (m *OccupancyMap) BoundingBox() (image.Rectangle, bool) {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.Get(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Clone makes a deep copy of the map.
func (m *OccupancyMap) Clone() *OccupancyMap {
	out := NewOccupancyMap(m.width, m.height)
	copy(out.data, m.data)
	return out
}

// SubMap returns a new map copied from the given region. Regions
// extending past the map bounds are clipped; an empty region yields a
// zero-size map.
func (m *OccupancyMap) SubMap(r image.Rectangle) *OccupancyMap {
	r = r.Intersect(m.Bounds())
	if r.Empty() {
		return NewOccupancyMap(0, 0)
	}
	out := NewOccupancyMap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(
			out.data[out.kxy(0, y-r.Min.Y):out.kxy(0, y-r.Min.Y)+r.Dx()],
			m.data[m.kxy(r.Min.X, y):m.kxy(r.Max.X, y)],
		)
	}
	return out
}

// ToImage renders the map as a grayscale image, occupied pixels white.
func (m *OccupancyMap) ToImage() *image.Gray {
	img := image.NewGray(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				img.SetGray(x, y, color.Gray{255})
			}
		}
	}
	return img
}
