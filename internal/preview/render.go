// Package preview renders a decoded BMF mesh to a small flat-shaded
// thumbnail so a conversion can be eyeballed without opening the OBJ in a
// viewer. It works from face normals computed on the fly: the normals in
// the source file are dropped by the converter and are not trusted here
// either.
package preview

import (
	"image"
	"math"

	"github.com/tech2077/bmf2obj/internal/bmf"
	"github.com/tech2077/bmf2obj/internal/mathutil"
)

var lightDir = mathutil.Vec3{180, 260, 140}.Normalize()

const (
	ambient = 0.45
	direct  = 0.55
)

// Render draws an orthographic, flat-shaded view of the mesh into an NRGBA
// image of size x size pixels, supersampled internally. Empty or fully
// degenerate meshes yield a blank image; faces with out-of-range indices
// are skipped. Rendering never fails.
func Render(f *bmf.File, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}

	verts := f.Vertices.Vertices
	faces := f.Group.Faces.Faces
	if len(verts) == 0 || len(faces) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	renderSize := size * supersample

	// Bounding box of the whole point cloud
	min := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range verts {
		p := [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}

	center := [3]float64{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
	span := max[0] - min[0]
	if s := max[1] - min[1]; s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span

	// Project: X right, Y up, Z toward the viewer (depth for the z-test)
	px := make([]float64, len(verts))
	py := make([]float64, len(verts))
	pz := make([]float64, len(verts))
	half := float64(renderSize) / 2
	for i, v := range verts {
		px[i] = (float64(v.X)-center[0])*scale + half
		py[i] = half - (float64(v.Y)-center[1])*scale
		pz[i] = float64(v.Z) - center[2]
	}

	fb := newFrameBuffer(renderSize, renderSize)

	nv := uint32(len(verts))
	for _, fc := range faces {
		// The decoder trusts the file; the preview cannot.
		if fc.A >= nv || fc.B >= nv || fc.C >= nv {
			continue
		}
		rasterizeTriangle(fb, px, py, pz, int(fc.A), int(fc.B), int(fc.C))
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	if supersample > 1 {
		img = downsample(img, size)
	}
	return img
}

// rasterizeTriangle fills one flat-shaded triangle with a z-buffer test.
// Shading is double-sided Lambertian off the face normal.
func rasterizeTriangle(fb *frameBuffer, px, py, pz []float64, i0, i1, i2 int) {
	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	// Face normal for flat shading
	e1 := mathutil.Vec3{x1 - x0, y1 - y0, z1 - z0}
	e2 := mathutil.Vec3{x2 - x0, y2 - y0, z2 - z0}
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return
	}
	n = n.Normalize()

	shade := ambient + direct*math.Abs(n.Dot(lightDir))
	if shade > 1 {
		shade = 1
	}
	r8 := uint8(190*shade + 0.5)
	g8 := uint8(190*shade + 0.5)
	b8 := uint8(205*shade + 0.5)

	// Bounding box clipped to the framebuffer
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width {
		maxX = fb.Width
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height {
		maxY = fb.Height
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for y := minY; y < maxY; y++ {
		fy := float64(y) + 0.5
		row := y * fb.Width
		for x := minX; x < maxX; x++ {
			fx := float64(x) + 0.5

			w0 := (dy12*(fx-x2) + dx21*(fy-y2)) * invDet
			w1 := (dy20*(fx-x2) + dx02*(fy-y2)) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			pi := row + x
			if z <= fb.ZBuf[pi] {
				continue
			}
			fb.ZBuf[pi] = z

			ci := pi * 4
			fb.Color[ci] = r8
			fb.Color[ci+1] = g8
			fb.Color[ci+2] = b8
			fb.Color[ci+3] = 255
		}
	}
}
