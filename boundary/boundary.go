// Package boundary converts polygons into the buffers handed to a renderer and
// a physics engine. The geometry package knows nothing about either.
package boundary

import (
	"math"

	"github.com/osuushi/mirrorgeom/geometry"
)

// Vertex attributes and triangle indices in the layout of a typical GPU mesh.
// Positions are in the z = 0 plane, facing +z.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

func (m Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Triangulate the polygon by ear clipping. Texture coordinates become UVs.
// Returns false when the ring crosses itself, in which case the mesh holds the
// triangles clipped before the crossing was found.
func ToMesh(poly geometry.Polygon) (Mesh, bool) {
	vertices := poly.Vertices()
	n := len(vertices)
	mesh := Mesh{
		Positions: make([][3]float32, n),
		Normals:   make([][3]float32, n),
		UVs:       make([][2]float32, n),
	}
	for i, v := range vertices {
		mesh.Positions[i] = [3]float32{float32(v.X), float32(v.Y), 0}
		mesh.Normals[i] = [3]float32{0, 0, 1}
	}
	for i, uv := range poly.TextureCoords() {
		mesh.UVs[i] = [2]float32{float32(uv.X), float32(uv.Y)}
	}
	if n < 3 {
		return mesh, false
	}
	indices, ok := clipEars(vertices)
	mesh.Indices = indices
	if !ok {
		geometry.Logger().Debug("mesh triangulation failed", "vertices", n, "triangles", len(indices)/3)
	}
	return mesh, ok
}

// Ear clipping of a counterclockwise ring. Ears are clipped in ring order
// starting at vertex 1, so a convex ring comes out as a fan from vertex 0.
//
// A simple ring always has an ear unless some corner is flat. After a full lap
// without an ear, a flat corner is dropped without emitting a triangle, since
// it covers no area. With no flat corner either, the ring is not simple and
// clipping stops.
func clipEars(vertices []geometry.Point) ([]uint32, bool) {
	ring := make([]int, len(vertices))
	for i := range ring {
		ring[i] = i
	}
	indices := make([]uint32, 0, 3*(len(vertices)-2))
	j, misses := 1, 0
	for len(ring) > 3 {
		k := len(ring)
		if misses >= k {
			flat := flatCorner(vertices, ring)
			if flat < 0 {
				return indices, false
			}
			ring = append(ring[:flat], ring[flat+1:]...)
			j, misses = flat, 0
			continue
		}
		prev := geometry.CircularIndex(j-1, k)
		cur := geometry.CircularIndex(j, k)
		next := geometry.CircularIndex(j+1, k)
		if !isEar(vertices, ring, prev, cur, next) {
			j = cur + 1
			misses++
			continue
		}
		indices = append(indices, uint32(ring[prev]), uint32(ring[cur]), uint32(ring[next]))
		ring = append(ring[:cur], ring[cur+1:]...)
		j, misses = cur, 0
	}

	a, b, c := vertices[ring[0]], vertices[ring[1]], vertices[ring[2]]
	switch cross := corner(a, b, c); {
	case cross < -geometry.Defaults.Epsilon:
		return indices, false
	case cross > geometry.Defaults.Epsilon:
		indices = append(indices, uint32(ring[0]), uint32(ring[1]), uint32(ring[2]))
	}
	return indices, true
}

// Twice the signed area of the triangle abc, positive when it turns left at b.
func corner(a, b, c geometry.Point) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

// Position in ring of a corner with no area, or -1.
func flatCorner(vertices []geometry.Point, ring []int) int {
	k := len(ring)
	for m := range ring {
		a := vertices[ring[geometry.CircularIndex(m-1, k)]]
		b := vertices[ring[m]]
		c := vertices[ring[geometry.CircularIndex(m+1, k)]]
		if math.Abs(corner(a, b, c)) <= geometry.Defaults.Epsilon {
			return m
		}
	}
	return -1
}

func isEar(vertices []geometry.Point, ring []int, prev, cur, next int) bool {
	a, b, c := vertices[ring[prev]], vertices[ring[cur]], vertices[ring[next]]
	if corner(a, b, c) <= 0 {
		return false
	}
	for m, index := range ring {
		if m == prev || m == cur || m == next {
			continue
		}
		if inTriangle(vertices[index], a, b, c) {
			return false
		}
	}
	return true
}

// Inclusive of the triangle's edges
func inTriangle(p, a, b, c geometry.Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}

// A closed polyline collider: the vertices and the edges between them, the last
// edge wrapping around to vertex 0.
type Collider struct {
	Vertices [][2]float32
	Edges    [][2]uint32
}

func ToCollider(poly geometry.Polygon) Collider {
	n := poly.NumVertices()
	collider := Collider{
		Vertices: make([][2]float32, n),
		Edges:    make([][2]uint32, n),
	}
	for i, v := range poly.Vertices() {
		collider.Vertices[i] = [2]float32{float32(v.X), float32(v.Y)}
		collider.Edges[i] = [2]uint32{uint32(i), uint32(geometry.CircularIndex(i+1, n))}
	}
	return collider
}
