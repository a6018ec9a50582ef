package ui

import (
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	bubbleWidth  = 300
	bubbleTail   = 10
	bubbleMargin = 12
)

// IntroBubble is the speech bubble the character shows after waking up.
type IntroBubble struct {
	UI *ebitenui.UI

	faces  faces
	canvas *ebiten.Image
	op     ebiten.DrawImageOptions
	height int
}

// NewIntroBubble builds the bubble around the configured greeting.
func NewIntroBubble() *IntroBubble {
	ib := &IntroBubble{faces: loadFaces()}
	ib.buildUI()
	return ib
}

func (ib *IntroBubble) buildUI() {
	const pad = 10
	lines := wrap(cfg.Section.Greeting, ib.faces.body, bubbleWidth-2*pad)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(paperColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(pad)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(bubbleWidth, 0)),
	)
	for _, line := range lines {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ib.faces.body, &widget.LabelColor{Idle: inkColor}),
		))
	}
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter to continue", &ib.faces.small, &widget.LabelColor{Idle: edgeColor}),
	))

	lineH := int(ib.faces.body.Metrics().HAscent+ib.faces.body.Metrics().HDescent) + 2
	ib.height = 2*pad + (len(lines)+1)*lineH
	ib.UI = &ebitenui.UI{Container: content}
}

// Update feeds input to the bubble while it is showing.
func (ib *IntroBubble) Update(visible bool) {
	if visible {
		ib.UI.Update()
	}
}

// Draw places the bubble above the character's head at (x, headY).
func (ib *IntroBubble) Draw(screen *ebiten.Image, x, headY float64) {
	if ib.canvas == nil {
		ib.canvas = ebiten.NewImage(bubbleWidth, ib.height)
	}
	ib.canvas.Clear()
	ib.UI.Draw(ib.canvas)

	left := x - bubbleWidth/2
	maxLeft := float64(screen.Bounds().Dx() - bubbleWidth - bubbleMargin)
	if left > maxLeft {
		left = maxLeft
	}
	if left < bubbleMargin {
		left = bubbleMargin
	}
	top := headY - bubbleTail - float64(ib.height) - bubbleMargin

	// Outline, body, then a pixel tail pointing at the head.
	vector.FillRect(screen, float32(left)-2, float32(top)-2, bubbleWidth+4, float32(ib.height)+4, edgeColor, false)
	ib.op.GeoM.Reset()
	ib.op.GeoM.Translate(left, top)
	screen.DrawImage(ib.canvas, &ib.op)
	for i := 0; i < bubbleTail; i += 2 {
		w := float32(bubbleTail - i)
		vector.FillRect(screen, float32(x)-w/2, float32(top)+float32(ib.height)+float32(i), w, 2, edgeColor, false)
	}
}
