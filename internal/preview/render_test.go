package preview

import (
	"image"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tech2077/bmf2obj/internal/bmf"
)

func opaquePixels(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	Convey("a real triangle covers pixels", t, func() {
		f := &bmf.File{
			Vertices: bmf.VertexBlock{Vertices: []bmf.Vertex{
				{X: -1, Y: -1, Z: 0},
				{X: 1, Y: -1, Z: 0},
				{X: 0, Y: 1, Z: 0},
			}},
			Group: bmf.Group{
				Faces: bmf.FaceBlock{Faces: []bmf.Face{{A: 0, B: 1, C: 2}}},
			},
		}

		img := Render(f, 64, 2)
		So(img.Bounds().Dx(), ShouldEqual, 64)
		So(img.Bounds().Dy(), ShouldEqual, 64)
		So(opaquePixels(img), ShouldBeGreaterThan, 0)
	})

	Convey("empty mesh yields a blank image of the right size", t, func() {
		img := Render(&bmf.File{}, 32, 2)
		So(img.Bounds().Dx(), ShouldEqual, 32)
		So(opaquePixels(img), ShouldEqual, 0)
	})

	Convey("out-of-range face indices are skipped, not fatal", t, func() {
		f := &bmf.File{
			Vertices: bmf.VertexBlock{Vertices: []bmf.Vertex{{X: 1, Y: 2, Z: 3}}},
			Group: bmf.Group{
				Faces: bmf.FaceBlock{Faces: []bmf.Face{{A: 5, B: 6, C: 7}}},
			},
		}

		img := Render(f, 32, 1)
		So(opaquePixels(img), ShouldEqual, 0)
	})

	Convey("degenerate triangles draw nothing", t, func() {
		f := &bmf.File{
			Vertices: bmf.VertexBlock{Vertices: []bmf.Vertex{{X: 1, Y: 2, Z: 3}}},
			Group: bmf.Group{
				Faces: bmf.FaceBlock{Faces: []bmf.Face{{A: 0, B: 0, C: 0}}},
			},
		}

		img := Render(f, 32, 1)
		So(opaquePixels(img), ShouldEqual, 0)
	})
}
