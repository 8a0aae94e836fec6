package bmf

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func u32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func f32(buf *bytes.Buffer, v float32) {
	u32(buf, math.Float32bits(v))
}

// sampleStream is the minimal end-to-end document: one vertex (1,2,3),
// one degenerate face (0,0,0), no normals, all markers zero.
func sampleStream() []byte {
	var buf bytes.Buffer
	u32(&buf, 0) // file header
	u32(&buf, 0) // vertices header
	u32(&buf, 1) // vertices count
	f32(&buf, 1.0)
	f32(&buf, 2.0)
	f32(&buf, 3.0)
	u32(&buf, 0) // vertices footer
	u32(&buf, 0) // group header
	u32(&buf, 0) // faces header
	u32(&buf, 1) // faces count
	u32(&buf, 0)
	u32(&buf, 0)
	u32(&buf, 0)
	u32(&buf, 0) // faces footer
	u32(&buf, 0) // normals header
	u32(&buf, 0) // normals count
	u32(&buf, 0) // normals footer
	u32(&buf, 0) // group footer
	u32(&buf, 0) // file footer
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	Convey("minimal document", t, func() {
		f, err := Decode(bytes.NewReader(sampleStream()))
		So(err, ShouldBeNil)
		So(f.Vertices.Count, ShouldEqual, 1)
		So(f.Vertices.Vertices, ShouldResemble, []Vertex{{X: 1, Y: 2, Z: 3}})
		So(f.Group.Faces.Count, ShouldEqual, 1)
		So(f.Group.Faces.Faces, ShouldResemble, []Face{{A: 0, B: 0, C: 0}})
		So(f.Group.Normals.Count, ShouldEqual, 0)
		So(f.Group.Normals.Normals, ShouldBeEmpty)
	})

	Convey("markers are captured but not validated", t, func() {
		var buf bytes.Buffer
		u32(&buf, 0xDEADBEEF) // file header
		u32(&buf, 0x11111111) // vertices header
		u32(&buf, 0)          // vertices count
		u32(&buf, 0x22222222) // vertices footer
		u32(&buf, 0x33333333) // group header
		u32(&buf, 0x44444444) // faces header
		u32(&buf, 0)          // faces count
		u32(&buf, 0x55555555) // faces footer
		u32(&buf, 0x66666666) // normals header
		u32(&buf, 0)          // normals count
		u32(&buf, 0x77777777) // normals footer
		u32(&buf, 0x88888888) // group footer
		u32(&buf, 0xCAFEBABE) // file footer

		f, err := Decode(bytes.NewReader(buf.Bytes()))
		So(err, ShouldBeNil)
		So(f.Header, ShouldEqual, 0xDEADBEEF)
		So(f.Vertices.Header, ShouldEqual, 0x11111111)
		So(f.Vertices.Footer, ShouldEqual, 0x22222222)
		So(f.Group.Header, ShouldEqual, 0x33333333)
		So(f.Group.Faces.Header, ShouldEqual, 0x44444444)
		So(f.Group.Faces.Footer, ShouldEqual, 0x55555555)
		So(f.Group.Normals.Header, ShouldEqual, 0x66666666)
		So(f.Group.Normals.Footer, ShouldEqual, 0x77777777)
		So(f.Group.Footer, ShouldEqual, 0x88888888)
		So(f.Footer, ShouldEqual, 0xCAFEBABE)
	})

	Convey("zero counts still consume count and footer fields", t, func() {
		stream := sampleStream()
		f, err := Decode(bytes.NewReader(stream))
		So(err, ShouldBeNil)
		So(f.Group.Normals.Count, ShouldEqual, 0)
		// The normals block contributed exactly 12 bytes: header+count+footer.
		So(len(stream), ShouldEqual, 13*4+1*12+1*12)
	})

	Convey("semantic garbage decodes successfully", t, func() {
		var buf bytes.Buffer
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 1)
		f32(&buf, 1)
		f32(&buf, 1)
		f32(&buf, 1)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 1)
		u32(&buf, 900) // way out of range of the vertex list
		u32(&buf, 901)
		u32(&buf, 902)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 0)
		u32(&buf, 0)

		f, err := Decode(bytes.NewReader(buf.Bytes()))
		So(err, ShouldBeNil)
		So(f.Group.Faces.Faces[0], ShouldResemble, Face{A: 900, B: 901, C: 902})
	})
}

func TestDecode_Truncation(t *testing.T) {
	Convey("every strict prefix fails with a read error", t, func() {
		stream := sampleStream()
		for n := 0; n < len(stream); n++ {
			f, err := Decode(bytes.NewReader(stream[:n]))
			So(err, ShouldNotBeNil)
			So(f, ShouldBeNil)
		}
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	Convey("decode then encode reproduces the original bytes", t, func() {
		streams := [][]byte{sampleStream()}

		// A larger document with nonzero markers and normals.
		var buf bytes.Buffer
		u32(&buf, 0xB1B1B1B1)
		u32(&buf, 0x01010101)
		u32(&buf, 3)
		for i := 0; i < 3; i++ {
			f32(&buf, float32(i))
			f32(&buf, float32(i)*0.5)
			f32(&buf, -float32(i))
		}
		u32(&buf, 0x02020202)
		u32(&buf, 0x03030303)
		u32(&buf, 0x04040404)
		u32(&buf, 1)
		u32(&buf, 0)
		u32(&buf, 1)
		u32(&buf, 2)
		u32(&buf, 0x05050505)
		u32(&buf, 0x06060606)
		u32(&buf, 2)
		for i := 0; i < 2; i++ {
			f32(&buf, 0)
			f32(&buf, 1)
			f32(&buf, 0)
		}
		u32(&buf, 0x07070707)
		u32(&buf, 0x08080808)
		u32(&buf, 0x09090909)
		streams = append(streams, buf.Bytes())

		for _, stream := range streams {
			f, err := Decode(bytes.NewReader(stream))
			So(err, ShouldBeNil)

			var out bytes.Buffer
			So(Encode(&out, f), ShouldBeNil)
			So(out.Bytes(), ShouldResemble, stream)
		}
	})
}
