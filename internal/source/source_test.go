package source

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFromFile(t *testing.T) {
	Convey("existing file streams its bytes", t, func() {
		path := filepath.Join(t.TempDir(), "cube.bmf")
		So(os.WriteFile(path, []byte{1, 2, 3, 4}, 0644), ShouldBeNil)

		r, err := FromFile(path)
		So(err, ShouldBeNil)
		defer r.Close()

		data, err := io.ReadAll(r)
		So(err, ShouldBeNil)
		So(data, ShouldResemble, []byte{1, 2, 3, 4})
	})

	Convey("missing file fails", t, func() {
		r, err := FromFile(filepath.Join(t.TempDir(), "nope.bmf"))
		So(err, ShouldNotBeNil)
		So(r, ShouldBeNil)
	})
}

func TestFromURL(t *testing.T) {
	Convey("200 response streams the body", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte{9, 8, 7})
		}))
		defer srv.Close()

		r, err := FromURL(srv.URL, 5*time.Second)
		So(err, ShouldBeNil)
		defer r.Close()

		data, err := io.ReadAll(r)
		So(err, ShouldBeNil)
		So(data, ShouldResemble, []byte{9, 8, 7})
	})

	Convey("non-200 status is a source failure", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		r, err := FromURL(srv.URL, 5*time.Second)
		So(err, ShouldNotBeNil)
		So(r, ShouldBeNil)
	})

	Convey("unreachable host is a source failure", t, func() {
		r, err := FromURL("http://127.0.0.1:1/mesh.bmf", time.Second)
		So(err, ShouldNotBeNil)
		So(r, ShouldBeNil)
	})
}
