// Command ggrender renders a scene document to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	gg "github.com/JohnEsleyer/ubevid"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "path to the scene document JSON")
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("out", "out.png", "output PNG path")
	)
	flag.Parse()

	if *scenePath == "" {
		log.Fatal("ggrender: -scene is required")
	}

	sceneJSON, err := os.ReadFile(*scenePath)
	if err != nil {
		log.Fatalf("ggrender: reading scene: %v", err)
	}

	engine := gg.New()
	pixels, err := engine.Render(sceneJSON, *width, *height)
	if err != nil {
		log.Fatalf("ggrender: render: %v", err)
	}

	pm := gg.NewPixmap(*width, *height)
	copy(pm.Data(), pixels)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("ggrender: creating %s: %v", *output, err)
	}
	defer f.Close()

	if err := png.Encode(f, pm.ToImage()); err != nil {
		log.Fatalf("ggrender: encoding PNG: %v", err)
	}

	log.Printf("ggrender: wrote %s (%dx%d)", *output, *width, *height)
}
