package charts

import (
	"fmt"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spacesedan/botscope/internal/models"
)

// Rect is a treemap cell in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Squarify lays out areas (proportional sizes, any scale) inside bounds
// using the squarified treemap algorithm: rows are packed along the shorter
// free side while the worst aspect ratio keeps improving. Input order is
// preserved; sizes should arrive largest first for the classic layout.
func Squarify(sizes []float64, bounds Rect) []Rect {
	rects := make([]Rect, len(sizes))
	if len(sizes) == 0 {
		return rects
	}

	var total float64
	for _, s := range sizes {
		total += s
	}
	if total <= 0 {
		return rects
	}

	// rescale sizes to the pixel area of the bounds
	scale := bounds.W * bounds.H / total
	areas := make([]float64, len(sizes))
	for i, s := range sizes {
		areas[i] = s * scale
	}

	free := bounds
	rowStart := 0
	for i := 0; i < len(areas); {
		side := math.Min(free.W, free.H)
		row := areas[rowStart : i+1]
		if i+1 < len(areas) {
			extended := areas[rowStart : i+2]
			if worstAspect(extended, side) <= worstAspect(row, side) {
				i++
				continue
			}
		}

		layoutRow(rects[rowStart:i+1], row, &free)
		i++
		rowStart = i
	}
	return rects
}

// worstAspect is the worst cell aspect ratio a row of areas would have if
// laid out along a side of the given length.
func worstAspect(row []float64, side float64) float64 {
	var sum, maxA, minA float64
	minA = math.MaxFloat64
	for _, a := range row {
		sum += a
		maxA = math.Max(maxA, a)
		minA = math.Min(minA, a)
	}
	if sum == 0 || side == 0 {
		return math.MaxFloat64
	}
	s2 := sum * sum
	w2 := side * side
	return math.Max(w2*maxA/s2, s2/(w2*minA))
}

// layoutRow slices the row along the shorter side of the free rectangle and
// shrinks the free rectangle by the row's thickness.
func layoutRow(out []Rect, row []float64, free *Rect) {
	var rowArea float64
	for _, a := range row {
		rowArea += a
	}

	if free.W >= free.H {
		// vertical strip on the left
		thickness := rowArea / free.H
		y := free.Y
		for i, a := range row {
			h := a / thickness
			out[i] = Rect{X: free.X, Y: y, W: thickness, H: h}
			y += h
		}
		free.X += thickness
		free.W -= thickness
	} else {
		// horizontal strip on top
		thickness := rowArea / free.W
		x := free.X
		for i, a := range row {
			w := a / thickness
			out[i] = Rect{X: x, Y: free.Y, W: w, H: thickness}
			x += w
		}
		free.Y += thickness
		free.H -= thickness
	}
}

var treemapPalette = []drawing.Color{
	{R: 78, G: 121, B: 167, A: 255},
	{R: 242, G: 142, B: 44, A: 255},
	{R: 225, G: 87, B: 89, A: 255},
	{R: 118, G: 183, B: 178, A: 255},
	{R: 89, G: 161, B: 79, A: 255},
	{R: 237, G: 201, B: 72, A: 255},
	{R: 176, G: 122, B: 161, A: 255},
	{R: 255, G: 157, B: 167, A: 255},
	{R: 156, G: 117, B: 95, A: 255},
	{R: 186, G: 176, B: 172, A: 255},
}

const (
	treemapWidth   = 1024
	treemapHeight  = 640
	treemapTitleH  = 40
	treemapMinLblW = 60
	treemapMinLblH = 24
)

// RenderTokenTreemap draws a squarified treemap of token stats, the word
// cloud stand-in: cell area is proportional to token share.
func RenderTokenTreemap(title string, stats []models.TokenStat, path string) error {
	if len(stats) == 0 {
		return fmt.Errorf("[Charts] no tokens to chart for %q", title)
	}

	sizes := make([]float64, len(stats))
	for i, s := range stats {
		sizes[i] = s.Pct
	}

	bounds := Rect{X: 0, Y: treemapTitleH, W: treemapWidth, H: treemapHeight - treemapTitleH}
	cells := Squarify(sizes, bounds)

	r, err := chart.PNG(treemapWidth, treemapHeight)
	if err != nil {
		return fmt.Errorf("[Charts] failed to create renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("[Charts] failed to load font: %w", err)
	}
	r.SetFont(font)

	// background
	fillRect(r, Rect{X: 0, Y: 0, W: treemapWidth, H: treemapHeight}, drawing.ColorWhite)

	for i, cell := range cells {
		fillRect(r, cell, treemapPalette[i%len(treemapPalette)])

		if cell.W >= treemapMinLblW && cell.H >= treemapMinLblH {
			r.SetFontColor(drawing.ColorBlack)
			r.SetFontSize(12)
			r.Text(stats[i].Token, int(cell.X)+6, int(cell.Y)+18)
		}
	}

	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(16)
	r.Text(title, 12, 26)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Charts] failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Save(f); err != nil {
		return fmt.Errorf("[Charts] failed to save %s: %w", path, err)
	}
	return nil
}

func fillRect(r chart.Renderer, rect Rect, color drawing.Color) {
	r.SetFillColor(color)
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetStrokeWidth(1)

	r.MoveTo(int(rect.X), int(rect.Y))
	r.LineTo(int(rect.X+rect.W), int(rect.Y))
	r.LineTo(int(rect.X+rect.W), int(rect.Y+rect.H))
	r.LineTo(int(rect.X), int(rect.Y+rect.H))
	r.Close()
	r.FillStroke()
}
