package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD holds the ebitenui overlay drawn above the level: the status label
// and the reset, pause, step and next-level buttons.
type HUD struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	label       *widget.Label
	pauseButton *widget.Button
	stepButton  *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the overlay for the given world. Buttons only post requests
// into the world's singletons; the systems act on them next tick.
func NewHUD(e *ecs.ECS) *HUD {
	h := &HUD{ecs: e}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HUD) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize - 2,
	}
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.label = widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.DefaultPrompt, &h.normalFace, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
	panel.AddChild(h.label)
	panel.AddChild(h.buildButtonsContainer())

	rootContainer.AddChild(panel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUD) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	container.AddChild(h.button("Reset", func() { systems.RequestReset(h.ecs) }))
	h.pauseButton = h.button("Pause", func() { systems.TogglePause(h.ecs) })
	container.AddChild(h.pauseButton)
	h.stepButton = h.button("Step", func() { systems.RequestStep(h.ecs) })
	container.AddChild(h.stepButton)
	container.AddChild(h.button("Next level", func() { systems.RequestNextLevel(h.ecs) }))

	return container
}

func (h *HUD) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.ButtonOpts.Image(h.buttonImage()),
		widget.ButtonOpts.Text(label, &h.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (h *HUD) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update runs the widgets, then copies the composed HUD text into the label.
func (h *HUD) Update() {
	h.UI.Update()
	h.refresh(systems.GetOrCreateHud(h.ecs))
}

func (h *HUD) refresh(hud *components.HudData) {
	h.label.Label = hud.Text

	paused := systems.IsPaused(h.ecs)
	if t := h.pauseButton.Text(); t != nil {
		t.Label = "Pause"
		if paused {
			t.Label = "Resume"
		}
	}
	h.stepButton.GetWidget().Disabled = !paused
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
