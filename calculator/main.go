// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio calculator. Keys append to the display; "=" evaluates the display
// as an arithmetic expression and writes the result back.

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

	"gioui.org/app"
	"gioui.org/app/headless"
	"gioui.org/font/gofont"
	"gioui.org/io/router"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

var screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")

type (
	D = layout.Dimensions
	C = layout.Context
)

// keyLabels is the grid in display order.
var keyLabels = [5][4]string{
	{"DEL", "CE", "^", "/"},
	{"7", "8", "9", "X"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"+/-", "0", ".", "="},
}

type key struct {
	label string
	click widget.Clickable
}

type calcUI struct {
	display string
	keys    [5][4]key
}

func newUI() *calcUI {
	ui := new(calcUI)
	for i, row := range keyLabels {
		for j, label := range row {
			ui.keys[i][j].label = label
		}
	}
	return ui
}

func main() {
	flag.Parse()
	ui := newUI()
	if *screenshot != "" {
		if err := saveScreenshot(ui, *screenshot); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := app.NewWindow(
			app.Title("Calculator"),
			app.Size(unit.Dp(300), unit.Dp(500)),
		)
		if err := loop(w, ui); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, ui *calcUI) error {
	th := material.NewTheme(gofont.Collection())
	var ops op.Ops
	for {
		e := <-w.Events()
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(ui *calcUI, f string) error {
	const scale = 1.5
	sz := image.Point{X: 300 * scale, Y: 500 * scale}
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

// press applies one key to the display buffer.
func (ui *calcUI) press(label string) {
	switch label {
	case "DEL":
		if ui.display != "" {
			ui.display = ui.display[:len(ui.display)-1]
		}
	case "CE":
		ui.display = ""
	case "=":
		ui.display = calc(ui.display)
	case "+/-":
		ui.display = calc("-(" + ui.display + ")")
	default:
		ui.display += label
	}
}

func (ui *calcUI) Layout(gtx C, th *material.Theme) D {
	for i := range ui.keys {
		for j := range ui.keys[i] {
			k := &ui.keys[i][j]
			for k.click.Clicked() {
				ui.press(k.label)
			}
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(0.2, func(gtx C) D {
			return ui.layoutDisplay(gtx, th)
		}),
		layout.Flexed(0.8, func(gtx C) D {
			return ui.layoutKeys(gtx, th)
		}),
	)
}

func (ui *calcUI) layoutDisplay(gtx C, th *material.Theme) D {
	border := widget.Border{
		Color:        color.RGBA{A: 0xff},
		CornerRadius: unit.Dp(4),
		Width:        unit.Px(2),
	}
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
		return border.Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.E.Layout(gtx, material.H5(th, ui.display).Layout)
			})
		})
	})
}

func (ui *calcUI) layoutKeys(gtx C, th *material.Theme) D {
	rows := make([]layout.FlexChild, len(ui.keys))
	for i := range ui.keys {
		row := &ui.keys[i]
		rows[i] = layout.Flexed(0.2, func(gtx C) D {
			return ui.layoutRow(gtx, th, row)
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (ui *calcUI) layoutRow(gtx C, th *material.Theme, row *[4]key) D {
	cols := make([]layout.FlexChild, len(row))
	for j := range row {
		k := &row[j]
		cols[j] = layout.Flexed(0.25, func(gtx C) D {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min = gtx.Constraints.Max
				return material.Button(th, &k.click, k.label).Layout(gtx)
			})
		})
	}
	return layout.Flex{}.Layout(gtx, cols...)
}
