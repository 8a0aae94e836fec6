package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tech2077/bmf2obj/internal/bmf"
	"github.com/tech2077/bmf2obj/internal/config"
	"github.com/tech2077/bmf2obj/internal/convert"
	"github.com/tech2077/bmf2obj/internal/obj"
	"github.com/tech2077/bmf2obj/internal/preview"
	"github.com/tech2077/bmf2obj/internal/source"
)

func main() {
	// CLI flags
	file := flag.String("file", "", "Path to input BMF file")
	url := flag.String("url", "", "URL to fetch input BMF file from")
	out := flag.String("out", "", "Output OBJ path (required)")
	configFile := flag.String("config", "", "Path to config.json file")
	withPreview := flag.Bool("preview", false, "Also write a WebP thumbnail next to the OBJ")
	previewSize := flag.Int("preview-size", 0, "Thumbnail size in pixels (default: 256)")
	timeout := flag.Int("timeout", 0, "HTTP fetch timeout in seconds (default: 30)")

	flag.Parse()

	// Exactly one input source
	if (*file == "") == (*url == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -file or -url is required")
		flag.Usage()
		os.Exit(1)
	}
	if *out == "" {
		fmt.Fprintln(os.Stderr, "Error: -out is required")
		flag.Usage()
		os.Exit(1)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		PreviewSize: *previewSize,
		TimeoutSec:  *timeout,
	})

	// Acquire the byte source
	var (
		r   io.ReadCloser
		err error
	)
	if *file != "" {
		r, err = source.FromFile(*file)
	} else {
		r, err = source.FromURL(*url, cfg.HTTPTimeout())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	// Decode
	doc, err := bmf.Decode(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Map and export
	set := convert.ToObjSet(doc)
	if err := obj.ExportFile(*out, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d faces)\n",
		*out, doc.Vertices.Count, doc.Group.Faces.Count)

	if *withPreview {
		img := preview.Render(doc, cfg.PreviewSize, cfg.Supersample)
		thumbPath := strings.TrimSuffix(*out, filepath.Ext(*out)) + ".webp"
		if err := preview.SaveWebP(thumbPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", thumbPath)
	}
}
