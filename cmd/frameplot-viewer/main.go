// Command frameplot-viewer serves a live frame viewer over HTTP.
//
// Frames are posted as JSON to /api/frames and rendered as an
// interactive 3-D chart at /view; posting an existing frame id moves
// that frame in place. Useful for watching a pose stream without
// writing files.
//
// Usage:
//
//	go run ./cmd/frameplot-viewer [flags]
//
// Flags:
//
//	-listen  Listen address (default: :8089)
//	-title   Scene title
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/banshee-data/frameplot/internal/version"
	"github.com/banshee-data/frameplot/internal/viewer"
)

func main() {
	listen := flag.String("listen", ":8089", "Listen address")
	title := flag.String("title", "frameplot viewer", "Scene title")
	flag.Parse()

	srv := viewer.NewServer(*title)

	log.Printf("Starting frame viewer %s on %s", version.Version, *listen)
	if err := http.ListenAndServe(*listen, srv.Routes()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
