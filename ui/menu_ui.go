package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the ebitenui mode-select screen.
type MenuUI struct {
	UI *ebitenui.UI

	OnCatch  func()
	OnRunner func()
	OnQuit   func()

	// OnToggleSound flips the mute flag and returns the new state.
	OnToggleSound func() bool

	soundButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the mode-select menu.
func NewMenuUI(onCatch, onRunner, onQuit func(), onToggleSound func() bool) *MenuUI {
	mui := &MenuUI{
		OnCatch:       onCatch,
		OnRunner:      onRunner,
		OnQuit:        onQuit,
		OnToggleSound: onToggleSound,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   42,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("ORCHARD", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Pick the good apples, dodge the rotten ones", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.modeButton("CATCH  -  apples fall, you have 3 lives", mui.OnCatch))
	contentContainer.AddChild(mui.modeButton("RUNNER  -  apples scroll, jump the rotten", mui.OnRunner))
	mui.soundButton = mui.modeButton("SOUND: ON", func() {
		if mui.OnToggleSound == nil {
			return
		}
		if muted := mui.OnToggleSound(); muted {
			mui.soundButton.Text().Label = "SOUND: OFF"
		} else {
			mui.soundButton.Text().Label = "SOUND: ON"
		}
	})
	contentContainer.AddChild(mui.soundButton)
	contentContainer.AddChild(mui.modeButton("QUIT", mui.OnQuit))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) modeButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 44),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 90, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 120, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 70, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetSoundLabel syncs the toggle's caption with the persisted state.
func (mui *MenuUI) SetSoundLabel(muted bool) {
	if muted {
		mui.soundButton.Text().Label = "SOUND: OFF"
	} else {
		mui.soundButton.Text().Label = "SOUND: ON"
	}
}

// Update advances ebitenui input handling.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
