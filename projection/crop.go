package projection

// Crop trims a projection to the minimal rectangle enclosing its
// occupied pixels, preserving relative pixel positions. A projection
// with no occupied pixels becomes a zero-size image/occupancy pair.
// Cropping an already-cropped projection returns an equal result.
func Crop(p Projection) Projection {
	box, _ := p.Occupancy.BoundingBox()
	return Projection{
		Face:      p.Face,
		Image:     p.Image.SubImage(box),
		Occupancy: p.Occupancy.SubMap(box),
	}
}

// ApplyCropping crops every projection of the set independently; face
// images may end up with different dimensions. It is equivalent to
// having requested cropping when the set was generated.
func ApplyCropping(set *ProjectionSet) *ProjectionSet {
	out := &ProjectionSet{}
	for i, p := range set.Projections {
		out.Projections[i] = Crop(p)
	}
	return out
}
