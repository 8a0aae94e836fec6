package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("load and resolve with flag overrides", t, func() {
		path := filepath.Join(t.TempDir(), "config.json")
		So(os.WriteFile(path, []byte(`{"preview_size": 128, "http_timeout_sec": 10}`), 0644), ShouldBeNil)

		cfg, err := Load(path)
		So(err, ShouldBeNil)

		cfg.Resolve(Flags{PreviewSize: 512})
		So(cfg.PreviewSize, ShouldEqual, 512) // flag wins
		So(cfg.Supersample, ShouldEqual, 2)   // default
		So(cfg.HTTPTimeout(), ShouldEqual, 10*time.Second)
	})

	Convey("zero config resolves to defaults", t, func() {
		var cfg Config
		cfg.Resolve(Flags{})
		So(cfg.PreviewSize, ShouldEqual, 256)
		So(cfg.Supersample, ShouldEqual, 2)
		So(cfg.HTTPTimeoutSec, ShouldEqual, 30)
	})

	Convey("malformed file fails", t, func() {
		path := filepath.Join(t.TempDir(), "config.json")
		So(os.WriteFile(path, []byte(`{`), 0644), ShouldBeNil)

		_, err := Load(path)
		So(err, ShouldNotBeNil)
	})
}
