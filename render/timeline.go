package render

import (
	"fmt"
	"strings"

	"github.com/clinscribe/encounter-pipeline/orchestrator"
)

const (
	laneHeight  = 40
	leftMargin  = 110
	plotWidth   = 800
	barHeight   = 12
	axisPadding = 30
)

// timelinePalette cycles per speaker lane.
var timelinePalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

// TimelineSVG draws one horizontal lane per speaker with a bar for every
// segment, scaled to the recording's duration. Pure serialization of segment
// bounds; an empty record produces an empty plot area.
func TimelineSVG(rec *orchestrator.Record) string {
	lanes := map[string]int{}
	order := []string{}
	end := 0.0
	for _, s := range rec.Segments {
		if _, ok := lanes[s.Speaker]; !ok {
			lanes[s.Speaker] = len(order)
			order = append(order, s.Speaker)
		}
		if s.EndSec > end {
			end = s.EndSec
		}
	}
	if end <= 0 {
		end = 1
	}
	height := len(order)*laneHeight + axisPadding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		leftMargin+plotWidth, height, leftMargin+plotWidth, height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	for _, sp := range order {
		y := lanes[sp]*laneHeight + laneHeight/2
		fmt.Fprintf(&b, `<text x="4" y="%d" font-size="12" font-family="sans-serif">%s</text>`+"\n", y+4, sp)
	}
	for _, s := range rec.Segments {
		x := leftMargin + s.StartSec/end*plotWidth
		w := (s.EndSec - s.StartSec) / end * plotWidth
		if w < 1 {
			w = 1 // zero-length turns stay visible
		}
		y := lanes[s.Speaker]*laneHeight + laneHeight/2 - barHeight/2
		color := timelinePalette[lanes[s.Speaker]%len(timelinePalette)]
		fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"><title>%s [%.2fs-%.2fs]</title></rect>`+"\n",
			x, y, w, barHeight, color, s.ID, s.StartSec, s.EndSec)
	}

	axisY := len(order) * laneHeight
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n", leftMargin, axisY, leftMargin+plotWidth, axisY)
	for i := 0; i <= 4; i++ {
		t := end * float64(i) / 4
		x := leftMargin + float64(i)/4*plotWidth
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="10" font-family="sans-serif" text-anchor="middle">%.1fs</text>`+"\n",
			x, axisY+16, t)
	}
	b.WriteString("</svg>\n")
	return b.String()
}
