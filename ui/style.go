package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	inkColor   = color.RGBA{40, 38, 34, 255}
	paperColor = color.RGBA{250, 248, 240, 255}
	edgeColor  = color.RGBA{40, 38, 34, 255}
)

type faces struct {
	title text.Face
	body  text.Face
	small text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	return faces{
		title: &text.GoTextFace{Source: bold, Size: 22},
		body:  &text.GoTextFace{Source: regular, Size: 15},
		small: &text.GoTextFace{Source: regular, Size: 12},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 38, 34, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{74, 144, 217, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 90, 150, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{120, 120, 120, 255}),
	}
}

// wrap breaks s into lines no wider than maxWidth pixels. Blank lines in s
// are kept as paragraph breaks.
func wrap(s string, face text.Face, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if width, _ := text.Measure(candidate, face, 0); width > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
