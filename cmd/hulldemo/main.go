package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	convexhull "github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/dbg"
	"github.com/osuushi/convexhull/graham"
)

// Demo of hull computation. By default, input on stdin should be newline
// separated points in the form "x y". Alternatively, points can be pulled
// from the first polygon of an SVG file, or generated at random. The hull is
// printed along with its segment list and rendered to a PNG.

var (
	svgPath = kingpin.Flag("svg", "Read points from the first polygon in an SVG file instead of stdin.").String()
	randomN = kingpin.Flag("random", "Generate this many uniform random points instead of reading stdin.").Int()
	seed    = kingpin.Flag("seed", "Seed for --random.").Default("42").Int64()
	outPath = kingpin.Flag("out", "Output PNG path.").Default("/tmp/hull.png").String()
	scale   = kingpin.Flag("scale", "Pixels per input unit in the rendered PNG.").Default("50").Float64()
	cat     = kingpin.Flag("cat", "Display the rendered PNG inline in the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints()
	fmt.Printf("Read %d points\n", len(points))

	hull, err := convexhull.ComputeHull(points)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Hull has %d vertices (clockwise):\n", len(hull))
	for _, p := range hull {
		fmt.Printf("  %s (%g, %g)\n", aurora.Green(dbg.Name(p)), p.X, p.Y)
	}

	segments := convexhull.GetHullSegments(hull)
	fmt.Printf("Hull has %d segments:\n", len(segments))
	for i, s := range segments {
		fmt.Printf("  %s %d: (%g, %g) -> (%g, %g)\n",
			aurora.Cyan("segment"), i+1, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}

	if err := graham.Draw(points, hull, *scale, *outPath); err != nil {
		log.Fatalf("Failed to render %q: %v", *outPath, err)
	}
	fmt.Printf("Rendered %s\n", *outPath)
	if *cat {
		imgcat.CatFile(*outPath, os.Stdout)
	}
}

func readPoints() []convexhull.Point {
	switch {
	case *svgPath != "":
		return readSVGPoints(*svgPath)
	case *randomN > 0:
		return randomPoints(*randomN, *seed)
	default:
		return readStdinPoints(os.Stdin)
	}
}

// Reads newline separated "x y" points until EOF. Blank lines are skipped.
func readStdinPoints(in *os.File) []convexhull.Point {
	points := []convexhull.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) convexhull.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return convexhull.Point{X: x, Y: y}
}

// Pulls the points of the first polygon element out of an SVG file. The
// polygon's own winding is irrelevant; the hull discards it anyway.
func readSVGPoints(path string) []convexhull.Point {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Could not open %q: %v", path, err)
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse %q: %v", path, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in %q", path)
	}

	points := []convexhull.Point{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, convexhull.Point{X: x, Y: y})
	}
	return points
}

func randomPoints(n int, seed int64) []convexhull.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]convexhull.Point, n)
	for i := range points {
		points[i] = convexhull.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10}
	}
	return points
}
