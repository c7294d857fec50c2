package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/illusionman1212/gifdecode"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

func structureStyle(tag gifdecode.BlockTag, name string) string {
	var attr color.Attribute
	switch tag {
	case 0:
		attr = color.FgYellow
	case gifdecode.IMAGE_DESCRIPTOR:
		attr = color.FgBlue
	case gifdecode.LOCAL_COLOR_TABLE:
		attr = color.FgWhite
	case gifdecode.IMAGE_DATA:
		attr = color.FgMagenta
	case gifdecode.TRAILER:
		attr = color.FgHiYellow
	case gifdecode.UNKNOWN_EXTENSION:
		attr = color.FgRed
	default:
		attr = color.FgGreen
	}
	return color.New(attr).Sprint(name)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.gif\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	outDir := flag.String("o", "", "output directory (default: the gif's name without extension)")
	showStructure := flag.Bool("structure", false, "print the block structure of the gif")
	savePalette := flag.Bool("act", false, "also save the global color table as an Adobe .act file")
	scale := flag.Float64("scale", 1, "resize frames by this factor")
	filterName := flag.String("filter", "nearest", "resampling filter: nearest, bilinear, catmullrom")
	strict := flag.Bool("strict", false, "fail on gifs that end before the trailer")
	maxPixels := flag.Int("max-pixels", gifdecode.DefaultMaxPixels, "refuse canvases larger than this many pixels (0: no limit)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *outDir, *showStructure, *savePalette, *scale, *filterName, &gifdecode.Options{
		Strict:    *strict,
		MaxPixels: *maxPixels,
	}); err != nil {
		red.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputFile, dirName string, showStructure, savePalette bool, scale float64, filterName string, opts *gifdecode.Options) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}
	filter, err := lookupFilter(filterName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	g, err := gifdecode.DecodeWithOptions(data, opts)
	if err != nil {
		return err
	}

	fmt.Print("Beginning extraction of gif frames\n\n")

	header := g.Header
	fmt.Printf("GIF version is: %v\n", cyan(header.VersionString()))
	fmt.Printf("GIF aspect ratio is: %v\n", header.AspectRatio)
	fmt.Printf("GIF background color index is: %v\n", header.BackgroundColor)
	fmt.Printf("GIF height is: %v\n", cyan(header.ScreenHeight))
	fmt.Printf("GIF width is: %v\n", cyan(header.ScreenWidth))

	fmt.Printf("\n")
	fmt.Printf("Global color table flag: %v\n", header.HasGlobalColorTable())
	fmt.Printf("Global color table size: %v\n", 3*header.GlobalColorTableEntries())
	fmt.Printf("global color table entries: %v\n", header.GlobalColorTableEntries())
	if g.LoopCount >= 0 {
		fmt.Printf("Loop count: %v\n", g.LoopCount)
	}
	for _, comment := range g.Comments {
		fmt.Printf("Comment: %q\n", comment)
	}
	fmt.Printf("\n")

	if showStructure {
		fmt.Print(gifdecode.FormatStructure(header.HasGlobalColorTable(), g.Blocks, structureStyle))
		fmt.Printf("\n")
	}

	if dirName == "" {
		base := filepath.Base(inputFile)
		dirName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := os.MkdirAll(dirName, os.FileMode(0755)); err != nil {
		return err
	}
	prefix := filepath.Base(dirName)

	if savePalette && g.GlobalColorTable != nil {
		fileName := filepath.Join(dirName, prefix+".act")
		if err := WriteToACT(g.GlobalColorTable, fileName); err != nil {
			return err
		}
		fmt.Printf("%s\n", fileName)
	}

	for i, frame := range g.Frames {
		if frame.Width == 0 || frame.Height == 0 {
			yellow.Fprintf(os.Stderr, "WARNING: skipping frame %d, the canvas is %dx%d\n", i+1, frame.Width, frame.Height)
			continue
		}
		img := frame.Image()
		if scale != 1 {
			img = scaleFrame(img, scale, filter)
		}

		fileName := filepath.Join(dirName, fmt.Sprintf("%s-%v.png", prefix, i+1))
		if err := WriteToPNG(img, fileName); err != nil {
			return err
		}
		fmt.Printf("%s (delay %v, %v)\n", fileName, frame.Delay(), frame.Disposal)
	}

	if g.Status != gifdecode.StatusComplete {
		yellow.Fprintf(os.Stderr, "WARNING: gif ended early (%v), extracted the %d frames before it\n", g.Err(), len(g.Frames))
	}

	fmt.Printf("Extracted %s frames from gif successfully!\n", green(len(g.Frames)))
	return nil
}
