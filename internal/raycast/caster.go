package raycast

import (
	"image"
	"math"

	"raycore/internal/render"
	"raycore/internal/threading/core"
)

// Walls is the map view the caster needs.
type Walls interface {
	Width() int
	Height() int
	// Wall returns the texture id at (x, y), 0 for floor.
	Wall(x, y int) int
}

// Texture is a wall texture that can be sliced into columns.
type Texture interface {
	render.Drawable
	SubImage(r image.Rectangle) image.Image
}

// Hit is the result of casting one ray.
type Hit struct {
	// Depth is the fisheye-corrected distance to the wall.
	Depth   float64
	Texture int
	// Offset is the horizontal texture coordinate of the hit in [0, 1).
	Offset float64
}

// Caster casts one ray per screen column and queues a wall slice per hit.
type Caster struct {
	view     render.View
	walls    Walls
	textures map[int]Texture
	pool     *core.WorkerPool
	maxDepth float64
	hits     []Hit
	cast     bool
}

// NewCaster returns a caster for walls. pool may be nil to cast serially.
func NewCaster(view render.View, walls Walls, textures map[int]Texture, pool *core.WorkerPool) *Caster {
	return &Caster{
		view:     view,
		walls:    walls,
		textures: textures,
		pool:     pool,
		maxDepth: math.Hypot(float64(walls.Width()), float64(walls.Height())) + 1,
		hits:     make([]Hit, view.NumRays),
	}
}

// Hits returns the hits of the last Cast, one per ray, left to right.
func (c *Caster) Hits() []Hit {
	return c.hits
}

// DepthAt returns the wall depth of ray col from the last Cast, or +Inf
// before the first Cast.
func (c *Caster) DepthAt(col int) float64 {
	if !c.cast || col < 0 || col >= len(c.hits) {
		return math.Inf(1)
	}
	return c.hits[col].Depth
}

// Cast casts all rays from viewer and appends one queue entry per wall hit.
// Rays are traced in parallel; entries are appended on the caller's goroutine.
func (c *Caster) Cast(q *render.Queue, viewer render.Viewer) {
	start := viewer.Angle - c.view.HalfFOV + 0.0001
	castOne := func(i int) {
		angle := start + float64(i)*c.view.DeltaAngle
		hit := c.castRay(viewer.X, viewer.Y, angle)
		hit.Depth *= math.Cos(viewer.Angle - angle)
		c.hits[i] = hit
	}
	if c.pool != nil {
		c.pool.ParallelFor(0, c.view.NumRays, castOne)
	} else {
		for i := 0; i < c.view.NumRays; i++ {
			castOne(i)
		}
	}
	c.cast = true

	for i, hit := range c.hits {
		tex, ok := c.textures[hit.Texture]
		if hit.Texture == 0 || !ok {
			continue
		}
		projH := c.view.ScreenDist / (hit.Depth + 0.0001)
		q.Push(render.Entry{
			Depth: hit.Depth,
			Image: column(tex, hit.Offset, c.view.Scale),
			X:     float64(i) * c.view.Scale,
			Y:     c.view.HalfHeight - projH/2,
			W:     c.view.Scale,
			H:     projH,
		})
	}
}

// column slices a strip of the texture at offset, about scale pixels wide.
func column(tex Texture, offset, scale float64) render.Drawable {
	b := tex.Bounds()
	w := max(1, int(scale))
	if w > b.Dx() {
		w = b.Dx()
	}
	x0 := b.Min.X + int(offset*float64(b.Dx()-w))
	return tex.SubImage(image.Rect(x0, b.Min.Y, x0+w, b.Max.Y))
}

// castRay walks the grid with a DDA from (ox, oy) along angle until it
// reaches a wall or leaves the map.
func (c *Caster) castRay(ox, oy, angle float64) Hit {
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	mapX, mapY := int(math.Floor(ox)), int(math.Floor(oy))

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX, sideX = -1, (ox-float64(mapX))*deltaX
	} else {
		stepX, sideX = 1, (float64(mapX)+1-ox)*deltaX
	}
	if dirY < 0 {
		stepY, sideY = -1, (oy-float64(mapY))*deltaY
	} else {
		stepY, sideY = 1, (float64(mapY)+1-oy)*deltaY
	}

	w, h := c.walls.Width(), c.walls.Height()
	for {
		var dist float64
		vertical := sideX < sideY
		if vertical {
			dist = sideX
			sideX += deltaX
			mapX += stepX
		} else {
			dist = sideY
			sideY += deltaY
			mapY += stepY
		}
		if dist > c.maxDepth || mapX < 0 || mapY < 0 || mapX >= w || mapY >= h {
			return Hit{Depth: c.maxDepth}
		}
		tex := c.walls.Wall(mapX, mapY)
		if tex == 0 {
			continue
		}

		var offset float64
		if vertical {
			hy := oy + dirY*dist
			offset = hy - math.Floor(hy)
			if dirX < 0 {
				offset = 1 - offset
			}
		} else {
			hx := ox + dirX*dist
			offset = hx - math.Floor(hx)
			if dirY > 0 {
				offset = 1 - offset
			}
		}
		return Hit{Depth: dist, Texture: tex, Offset: offset}
	}
}
