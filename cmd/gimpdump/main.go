// Command gimpdump inspects and extracts content from GIMP .xcf files:
// dumping a document's structure, compositing it to PNG, or exporting
// individual layers. It is the CLI surface the library's other
// packages are meant to be driven from, in the spirit of
// gimpXcfDocument.py's own cmdline() helper.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	xcf "github.com/TheHeadlessSourceMan/gimpFormats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gimpdump: ")

	dump := flag.Bool("dump", false, "print the document's structure")
	show := flag.Bool("show", false, "composite all visible layers and write the result to -out")
	showLayer := flag.String("showLayer", "", "write layer(s) to PNG; an index or * for all")
	saveLayer := flag.String("saveLayer", "", "index|*,path: save specific layer(s) to path (path may contain * for the index)")
	save := flag.String("save", "", "re-encode the document and write it to path")
	out := flag.String("out", "composed.png", "output path for -show")
	lenient := flag.Bool("lenient", false, "tolerate unknown properties instead of failing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gimpdump [options] file.xcf")
		flag.PrintDefaults()
		os.Exit(2)
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var doc *xcf.Document
	if *lenient {
		doc, err = xcf.DecodeLenient(f)
	} else {
		doc, err = xcf.Decode(f)
	}
	if err != nil {
		log.Fatalf("decode %s: %v", path, err)
	}

	if *dump {
		dumpDocument(doc)
	}
	if *show {
		img, err := compose(doc)
		if err != nil {
			log.Fatal(err)
		}
		if err := writePNG(*out, img); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *out)
	}
	if *showLayer != "" {
		if err := exportLayers(doc, *showLayer, "layer-*.png"); err != nil {
			log.Fatal(err)
		}
	}
	if *saveLayer != "" {
		sel, target, ok := strings.Cut(*saveLayer, ",")
		if !ok {
			target = "layer-*.png"
		}
		if err := exportLayers(doc, sel, target); err != nil {
			log.Fatal(err)
		}
	}
	if *save != "" {
		data, err := doc.Encode()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*save, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *save)
	}
}

func dumpDocument(doc *xcf.Document) {
	fmt.Printf("version: %d\n", doc.Version)
	fmt.Printf("size: %dx%d\n", doc.Width, doc.Height)
	fmt.Printf("base color mode: %v, precision: %+v\n", doc.BaseColorMode, doc.Precision)
	fmt.Printf("layers: %d\n", len(doc.Layers))
	for i, l := range doc.Layers {
		visible := true
		if l.Properties != nil && l.Properties.Visible != nil {
			visible = *l.Properties.Visible
		}
		fmt.Printf("  [%d] %q %dx%d mode=%v visible=%v\n", i, l.Name, l.Width, l.Height, l.Mode, visible)
	}
	fmt.Printf("channels: %d\n", len(doc.Channels))
	for i, c := range doc.Channels {
		fmt.Printf("  [%d] %q %dx%d\n", i, c.Name, c.Width, c.Height)
	}
	for _, node := range doc.LayerTree() {
		printLayerNode(node, "  ")
	}
}

func printLayerNode(n *xcf.LayerNode, indent string) {
	fmt.Printf("%s- %s\n", indent, n.Layer.Name)
	for _, child := range n.Children {
		printLayerNode(child, indent+"  ")
	}
}

// compose flattens every visible layer, bottom to top, into one RGBA
// image — the headless equivalent of gimpXcfDocument.py's
// `g.image.show()`.
func compose(doc *xcf.Document) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, doc.Width, doc.Height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	for i := len(doc.Layers) - 1; i >= 0; i-- {
		l := doc.Layers[i]
		if l.Properties != nil && l.Properties.Visible != nil && !*l.Properties.Visible {
			continue
		}
		layerImg, err := layerImage(doc, l)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		opacity := uint8(255)
		if l.Properties != nil && l.Properties.OpacityInt != nil {
			opacity = uint8(*l.Properties.OpacityInt)
		}
		offsetX, offsetY := 0, 0
		if l.Properties != nil {
			if l.Properties.OffsetX != nil {
				offsetX = int(*l.Properties.OffsetX)
			}
			if l.Properties.OffsetY != nil {
				offsetY = int(*l.Properties.OffsetY)
			}
		}
		bounds := image.Rect(offsetX, offsetY, offsetX+l.Width, offsetY+l.Height)
		mask := image.NewUniform(color.Alpha{A: opacity})
		draw.DrawMask(img, bounds, layerImg, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return img, nil
}

// layerImage renders a single layer's pixel hierarchy as an
// image.Image. Only 8-bit-per-channel precision is supported: higher
// precisions would need a proper tone-mapped downconversion this tool
// doesn't attempt.
func layerImage(doc *xcf.Document, l *xcf.Layer) (image.Image, error) {
	if doc.Precision.BytesPerChannel() != 1 {
		return nil, fmt.Errorf("unsupported precision %+v: only 8-bit-per-channel layers can be rendered", doc.Precision)
	}
	if l.Hierarchy == nil || l.Hierarchy.Level == nil {
		return nil, fmt.Errorf("layer has no pixel data")
	}
	bpp := l.Mode.Channels()
	raster := l.Hierarchy.Level.Raster(bpp)
	rect := image.Rect(0, 0, l.Width, l.Height)
	switch l.Mode {
	case xcf.ColorModeRGBA:
		return &image.RGBA{Pix: raster, Stride: l.Width * 4, Rect: rect}, nil
	case xcf.ColorModeRGB:
		return rgbToRGBA(raster, l.Width, l.Height), nil
	case xcf.ColorModeGray:
		return &image.Gray{Pix: raster, Stride: l.Width, Rect: rect}, nil
	case xcf.ColorModeGrayAlpha:
		return grayAlphaToRGBA(raster, l.Width, l.Height), nil
	default:
		return nil, fmt.Errorf("unsupported color mode %v for rendering", l.Mode)
	}
}

func rgbToRGBA(raster []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4] = raster[i*3]
		img.Pix[i*4+1] = raster[i*3+1]
		img.Pix[i*4+2] = raster[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

func grayAlphaToRGBA(raster []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		g, a := raster[i*2], raster[i*2+1]
		img.Pix[i*4] = g
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = g
		img.Pix[i*4+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// exportLayers writes the layer(s) named by sel ("N" or "*") as PNGs
// to target, replacing a "*" in target with the layer index if
// present, or appending "-N" before the extension otherwise.
func exportLayers(doc *xcf.Document, sel, target string) error {
	indices, err := resolveLayerSelection(doc, sel)
	if err != nil {
		return err
	}
	for _, n := range indices {
		l := doc.Layers[n]
		img, err := layerImage(doc, l)
		if err != nil {
			fmt.Fprintf(os.Stderr, "no image for layer %d (%s): %v\n", n, l.Name, err)
			continue
		}
		path := layerPath(target, n)
		if err := writePNG(path, img); err != nil {
			return err
		}
		fmt.Printf("wrote layer %d (%s) to %s\n", n, l.Name, path)
	}
	return nil
}

func resolveLayerSelection(doc *xcf.Document, sel string) ([]int, error) {
	if sel == "*" {
		indices := make([]int, len(doc.Layers))
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	n, err := strconv.Atoi(sel)
	if err != nil {
		return nil, fmt.Errorf("bad layer selector %q: %w", sel, err)
	}
	if n < 0 || n >= len(doc.Layers) {
		return nil, fmt.Errorf("layer index %d out of range [0,%d)", n, len(doc.Layers))
	}
	return []int{n}, nil
}

func layerPath(target string, n int) string {
	if strings.Contains(target, "*") {
		return strings.ReplaceAll(target, "*", strconv.Itoa(n))
	}
	ext := ""
	base := target
	if dot := strings.LastIndex(target, "."); dot >= 0 {
		ext = target[dot:]
		base = target[:dot]
	}
	return fmt.Sprintf("%s-%d%s", base, n, ext)
}
