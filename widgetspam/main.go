// SPDX-License-Identifier: Unlicense OR MIT

package main

// Widget spam: spawn batches of bouncing boxes inside a frame and watch
// the frame time. Clicking a box removes it.

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/app/headless"
	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioplay/sim"
)

var (
	count      = flag.Int("count", 100, "widgets to add per press")
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
)

type (
	D = layout.Dimensions
	C = layout.Context
)

const tickInterval = time.Second / sim.TickRate

// maxBacklog caps how much simulation time is replayed after a stall, so
// a blocked window does not fast-forward the boxes.
const maxBacklog = time.Second / 4

var frameBackground = color.RGBA{R: 0x28, G: 0x28, B: 0x32, A: 0xff}

type spamUI struct {
	space     sim.Space
	addBtn    widget.Clickable
	clearBtn  widget.Clickable
	clearIcon *widget.Icon

	lastTick time.Time
	backlog  time.Duration

	lastFrame  time.Time
	frameAcc   time.Duration
	frameCount int
	avgFrame   time.Duration
}

func main() {
	flag.Parse()
	ic, err := widget.NewIcon(icons.ContentClear)
	if err != nil {
		log.Fatal(err)
	}
	ui := &spamUI{clearIcon: ic}
	if *screenshot != "" {
		if err := saveScreenshot(ui, *screenshot); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := app.NewWindow(
			app.Title("Widget Spam"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := loop(w, ui); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, ui *spamUI) error {
	th := material.NewTheme(gofont.Collection())
	var ops op.Ops
	for {
		e := <-w.Events()
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.frame(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(ui *spamUI, f string) error {
	const scale = 1.5
	sz := image.Point{X: 800 * scale, Y: 600 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
		Queue:       new(router.Router),
	}
	th := material.NewTheme(gofont.Collection())
	// The first layout records the frame bounds the spawner needs.
	ui.Layout(gtx, th)
	ui.space.Spawn(*count)
	gtx.Ops.Reset()
	ui.Layout(gtx, th)
	w.Frame(gtx.Ops)
	img, err := w.Screenshot()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return ioutil.WriteFile(f, buf.Bytes(), 0666)
}

// frame processes input, advances the simulation and lays out the window.
func (ui *spamUI) frame(gtx C, th *material.Theme) {
	for ui.addBtn.Clicked() {
		ui.space.Spawn(*count)
	}
	for ui.clearBtn.Clicked() {
		ui.space.Clear()
	}
	ui.pointerEvents(gtx)
	ui.tick(gtx)
	ui.Layout(gtx, th)
}

// pointerEvents removes entities that were pressed during the last frame.
func (ui *spamUI) pointerEvents(gtx C) {
	var pressed []*sim.Entity
	for _, ent := range ui.space.Entities {
		for _, ev := range gtx.Events(ent) {
			if e, ok := ev.(pointer.Event); ok && e.Type == pointer.Press {
				pressed = append(pressed, ent)
			}
		}
	}
	for _, ent := range pressed {
		ui.space.Remove(ent)
	}
}

// tick advances the simulation on a fixed 60 Hz step, however often the
// window delivers frames.
func (ui *spamUI) tick(gtx C) {
	now := gtx.Now
	if len(ui.space.Entities) == 0 {
		ui.lastTick = time.Time{}
		ui.lastFrame = time.Time{}
		ui.backlog = 0
		return
	}
	if !ui.lastTick.IsZero() {
		ui.backlog += now.Sub(ui.lastTick)
		if ui.backlog > maxBacklog {
			ui.backlog = maxBacklog
		}
	}
	ui.lastTick = now
	for ui.backlog >= tickInterval {
		ui.space.Step()
		ui.backlog -= tickInterval
	}
	ui.trackFrame(now)
	op.InvalidateOp{}.Add(gtx.Ops)
}

// trackFrame accumulates frame deltas and publishes the average every
// 60 frames.
func (ui *spamUI) trackFrame(now time.Time) {
	if !ui.lastFrame.IsZero() {
		ui.frameAcc += now.Sub(ui.lastFrame)
		ui.frameCount++
		if ui.frameCount >= 60 {
			ui.avgFrame = ui.frameAcc / time.Duration(ui.frameCount)
			log.Printf("avg frame time %v over %d frames", ui.avgFrame, ui.frameCount)
			ui.frameAcc = 0
			ui.frameCount = 0
		}
	}
	ui.lastFrame = now
}

func (ui *spamUI) Layout(gtx C, th *material.Theme) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(0.9, func(gtx C) D {
			return ui.layoutFrame(gtx, th)
		}),
		layout.Flexed(0.1, func(gtx C) D {
			return ui.layoutButtons(gtx, th)
		}),
	)
}

// layoutFrame draws the container and its entities, and records the
// container size as the simulation bounds.
func (ui *spamUI) layoutFrame(gtx C, th *material.Theme) D {
	sz := gtx.Constraints.Max
	ui.space.Bounds = layout.FPt(sz)
	defer op.Push(gtx.Ops).Pop()
	clip.Rect(image.Rectangle{Max: sz}).Add(gtx.Ops)
	paint.ColorOp{Color: frameBackground}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	for _, ent := range ui.space.Entities {
		layoutEntity(gtx, ent)
	}
	ui.layoutStatus(gtx, th)
	return D{Size: sz}
}

// layoutEntity paints one entity and registers its pointer hit area, with
// the entity itself as the event tag.
func layoutEntity(gtx C, ent *sim.Entity) {
	defer op.Push(gtx.Ops).Pop()
	op.Offset(ent.Pos).Add(gtx.Ops)
	r := image.Rectangle{Max: image.Pt(int(ent.Size.X+0.5), int(ent.Size.Y+0.5))}
	clip.Rect(r).Add(gtx.Ops)
	paint.ColorOp{Color: ent.Color}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	pointer.Rect(r).Add(gtx.Ops)
	pointer.InputOp{Tag: ent, Types: pointer.Press}.Add(gtx.Ops)
}

func (ui *spamUI) layoutStatus(gtx C, th *material.Theme) {
	layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
		status := fmt.Sprintf("%d widgets", len(ui.space.Entities))
		if ui.avgFrame > 0 {
			status = fmt.Sprintf("%s, avg frame %v", status, ui.avgFrame)
		}
		l := material.Body2(th, status)
		l.Color = color.RGBA{R: 0xc8, G: 0xc8, B: 0xdc, A: 0xff}
		return l.Layout(gtx)
	})
}

func (ui *spamUI) layoutButtons(gtx C, th *material.Theme) D {
	in := layout.UniformInset(unit.Dp(8))
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(0.4, func(gtx C) D {
			return in.Layout(gtx, func(gtx C) D {
				label := fmt.Sprintf("Add %d Widgets", *count)
				return material.Button(th, &ui.addBtn, label).Layout(gtx)
			})
		}),
		layout.Flexed(0.2, func(gtx C) D {
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Flexed(0.4, func(gtx C) D {
			return in.Layout(gtx, iconTextButton{
				theme: th,
				click: &ui.clearBtn,
				icon:  ui.clearIcon,
				label: "Clear",
			}.Layout)
		}),
	)
}

// iconTextButton is a button with an icon to the left of its label. The
// icon is sized relative to the theme text size so both scale together.
type iconTextButton struct {
	theme *material.Theme
	click *widget.Clickable
	icon  *widget.Icon
	label string
}

func (b iconTextButton) Layout(gtx C) D {
	return material.ButtonLayout(b.theme, b.click).Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return layout.Inset{Right: unit.Dp(10)}.Layout(gtx, func(gtx C) D {
						size := gtx.Px(b.theme.TextSize.Scale(1.5))
						b.icon.Layout(gtx, unit.Px(float32(size)))
						return D{Size: image.Pt(size, size)}
					})
				}),
				layout.Rigid(func(gtx C) D {
					l := material.Body1(b.theme, b.label)
					l.Color = b.theme.Color.InvText
					return l.Layout(gtx)
				}),
			)
		})
	})
}
