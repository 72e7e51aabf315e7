package terrain

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Heightmap is a regular grid of height samples on the XZ plane.
// Sample (ix, iz) sits at (minX + ix*cellX, minZ + iz*cellZ).
// NaN samples are holes: any cell touching one is not hit.
type Heightmap struct {
	minX, minZ float32
	cellX      float32
	cellZ      float32
	width      int // samples along X
	depth      int // samples along Z
	heights    []float32
	layer      LayerMask
}

// NewHeightmap creates a heightmap from row-major samples (index = iz*width + ix).
func NewHeightmap(minX, minZ, cellSize float32, width, depth int, heights []float32, layer LayerMask) (*Heightmap, error) {
	return newHeightmap(minX, minZ, cellSize, cellSize, width, depth, heights, layer)
}

func newHeightmap(minX, minZ, cellX, cellZ float32, width, depth int, heights []float32, layer LayerMask) (*Heightmap, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("heightmap needs at least 2x2 samples, got %dx%d", width, depth)
	}
	if cellX <= 0 || cellZ <= 0 {
		return nil, fmt.Errorf("heightmap cell size must be positive, got %vx%v", cellX, cellZ)
	}
	if len(heights) != width*depth {
		return nil, fmt.Errorf("heightmap expects %d samples, got %d", width*depth, len(heights))
	}
	h := &Heightmap{
		minX:    minX,
		minZ:    minZ,
		cellX:   cellX,
		cellZ:   cellZ,
		width:   width,
		depth:   depth,
		heights: make([]float32, len(heights)),
		layer:   layer,
	}
	copy(h.heights, heights)
	return h, nil
}

// HeightmapFromFunc samples fn over the grid.
func HeightmapFromFunc(minX, minZ, cellSize float32, width, depth int, layer LayerMask, fn func(x, z float32) float32) (*Heightmap, error) {
	heights := make([]float32, width*depth)
	for iz := range depth {
		for ix := range width {
			x := minX + float32(ix)*cellSize
			z := minZ + float32(iz)*cellSize
			heights[iz*width+ix] = fn(x, z)
		}
	}
	return NewHeightmap(minX, minZ, cellSize, width, depth, heights, layer)
}

// NewPlane creates a flat-or-tilted rectangle covering [minX,maxX]x[minZ,maxZ].
// Height is base + gradX*x + gradZ*z.
func NewPlane(minX, minZ, maxX, maxZ, base, gradX, gradZ float32, layer LayerMask) (*Heightmap, error) {
	if maxX <= minX || maxZ <= minZ {
		return nil, fmt.Errorf("plane bounds are empty: [%v,%v]x[%v,%v]", minX, maxX, minZ, maxZ)
	}
	height := func(x, z float32) float32 { return base + gradX*x + gradZ*z }
	return newHeightmap(minX, minZ, maxX-minX, maxZ-minZ, 2, 2, []float32{
		height(minX, minZ), height(maxX, minZ),
		height(minX, maxZ), height(maxX, maxZ),
	}, layer)
}

// Layer returns the surface classification.
func (h *Heightmap) Layer() LayerMask {
	return h.layer
}

// Bounds returns the covered XZ rectangle.
func (h *Heightmap) Bounds() (minX, minZ, maxX, maxZ float32) {
	return h.minX, h.minZ,
		h.minX + float32(h.width-1)*h.cellX,
		h.minZ + float32(h.depth-1)*h.cellZ
}

// SetHeight overwrites one sample. NaN punches a hole.
func (h *Heightmap) SetHeight(ix, iz int, height float32) error {
	if ix < 0 || ix >= h.width || iz < 0 || iz >= h.depth {
		return fmt.Errorf("sample (%d,%d) out of range %dx%d", ix, iz, h.width, h.depth)
	}
	h.heights[iz*h.width+ix] = height
	return nil
}

func (h *Heightmap) vertex(ix, iz int) math32.Vector3 {
	return math32.Vec3(
		h.minX+float32(ix)*h.cellX,
		h.heights[iz*h.width+ix],
		h.minZ+float32(iz)*h.cellZ,
	)
}

// Sample returns the surface point and face normal under (x, z).
// ok is false outside the grid or over a hole.
func (h *Heightmap) Sample(x, z float32) (point, normal math32.Vector3, ok bool) {
	fx := (x - h.minX) / h.cellX
	fz := (z - h.minZ) / h.cellZ
	if fx < 0 || fz < 0 || fx > float32(h.width-1) || fz > float32(h.depth-1) {
		return point, normal, false
	}

	ix := min(int(fx), h.width-2)
	iz := min(int(fz), h.depth-2)
	u := fx - float32(ix)
	v := fz - float32(iz)

	v00 := h.vertex(ix, iz)
	v10 := h.vertex(ix+1, iz)
	v01 := h.vertex(ix, iz+1)
	v11 := h.vertex(ix+1, iz+1)
	for _, c := range [...]math32.Vector3{v00, v10, v01, v11} {
		if math32.IsNaN(c.Y) {
			return point, normal, false
		}
	}

	// Each cell is split along the v10-v01 diagonal.
	var y float32
	if u+v <= 1 {
		y = v00.Y + (v10.Y-v00.Y)*u + (v01.Y-v00.Y)*v
		normal = faceNormal(v00, v01, v10)
	} else {
		y = v11.Y + (v01.Y-v11.Y)*(1-u) + (v10.Y-v11.Y)*(1-v)
		normal = faceNormal(v11, v10, v01)
	}
	return math32.Vec3(x, y, z), normal, true
}

// faceNormal returns the upward-facing unit normal of triangle abc.
func faceNormal(a, b, c math32.Vector3) math32.Vector3 {
	n := b.Sub(a).Cross(c.Sub(a)).Normal()
	if n.Y < 0 {
		n = n.MulScalar(-1)
	}
	return n
}

// RaycastDown implements Raycaster for a single surface.
func (h *Heightmap) RaycastDown(origin math32.Vector3, mask LayerMask) (Hit, bool) {
	if !mask.Contains(h.layer) {
		return Hit{}, false
	}
	point, normal, ok := h.Sample(origin.X, origin.Z)
	if !ok || point.Y > origin.Y {
		return Hit{}, false
	}
	return Hit{Point: point, Normal: normal}, true
}
