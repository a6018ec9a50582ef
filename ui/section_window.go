package ui

import (
	"image/color"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// SectionWindow is the content panel shown when a zone or icon opens a
// section.
type SectionWindow struct {
	UI *ebitenui.UI

	// OnClose runs when the close button is clicked.
	OnClose func()

	faces   faces
	shownID string
	canvas  *ebiten.Image
	op      ebiten.DrawImageOptions
}

// NewSectionWindow creates an empty, hidden panel.
func NewSectionWindow(onClose func()) *SectionWindow {
	sw := &SectionWindow{
		OnClose: onClose,
		faces:   loadFaces(),
	}
	sw.buildUI(&components.SectionData{})
	return sw
}

func (sw *SectionWindow) buildUI(section *components.SectionData) {
	// Transparent root so the page stays visible around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	if !section.Open() {
		sw.UI = &ebitenui.UI{Container: rootContainer}
		return
	}

	pad := cfg.Section.Padding
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(paperColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(pad)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Section.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(section.Title, &sw.faces.title, &widget.LabelColor{
			Idle: inkColor,
		}),
	)
	panel.AddChild(titleLabel)

	// Rule under the title
	panel.AddChild(widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(edgeColor)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Section.Width-2*pad, 2)),
	))

	for _, line := range wrap(section.Body, sw.faces.body, float64(cfg.Section.Width-2*pad)) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &sw.faces.body, &widget.LabelColor{
				Idle: inkColor,
			}),
		))
	}

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 28),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Close", &sw.faces.small, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sw.OnClose != nil {
				sw.OnClose()
			}
		}),
	)
	panel.AddChild(closeButton)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Esc to close", &sw.faces.small, &widget.LabelColor{
			Idle: color.RGBA{120, 116, 108, 255},
		}),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)
	sw.UI = &ebitenui.UI{Container: rootContainer}
}

// Visible reports whether a section is on screen.
func (sw *SectionWindow) Visible() bool {
	return sw.shownID != ""
}

// Update rebuilds the panel when the section changed and feeds it input.
func (sw *SectionWindow) Update(section *components.SectionData) {
	if section == nil {
		return
	}
	if section.Changed {
		section.Changed = false
		sw.shownID = section.ID
		sw.buildUI(section)
	}
	if sw.Visible() {
		sw.UI.Update()
	}
}

// Draw renders the panel at the section's fade alpha.
func (sw *SectionWindow) Draw(screen *ebiten.Image, alpha float32) {
	if !sw.Visible() || alpha <= 0 {
		return
	}
	b := screen.Bounds()
	if sw.canvas == nil || sw.canvas.Bounds() != b {
		sw.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	sw.canvas.Clear()
	sw.UI.Draw(sw.canvas)

	sw.op.ColorScale.Reset()
	sw.op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(sw.canvas, &sw.op)
}
