// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"testing"

	"gioui.org/app/headless"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestLayoutRecordsFrameBounds(t *testing.T) {
	ic, err := widget.NewIcon(icons.ContentClear)
	if err != nil {
		t.Fatal(err)
	}
	ui := &spamUI{clearIcon: ic}
	th := material.NewTheme(gofont.Collection())

	var ops op.Ops
	gtx := layout.Context{
		Ops:         &ops,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(800, 600)),
	}
	ui.Layout(gtx, th)

	// The frame takes 0.9 of the window height, the button row the rest.
	want := f32.Point{X: 800, Y: 540}
	if ui.space.Bounds != want {
		t.Fatalf("frame bounds = %v, want %v", ui.space.Bounds, want)
	}
}

func BenchmarkUI(b *testing.B)      { benchmarkUI(b, 100) }
func BenchmarkUI_1000(b *testing.B) { benchmarkUI(b, 1000) }

func benchmarkUI(b *testing.B, entities int) {
	ic, err := widget.NewIcon(icons.ContentClear)
	if err != nil {
		b.Fatal(err)
	}
	ui := &spamUI{clearIcon: ic}
	th := material.NewTheme(gofont.Collection())

	w, err := headless.NewWindow(800, 600)
	if err != nil {
		b.Fatal(err)
	}
	defer w.Release()

	layoutOnce := func(ops *op.Ops) {
		gtx := layout.Context{
			Ops:         ops,
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Constraints: layout.Exact(image.Pt(800, 600)),
		}
		ui.Layout(gtx, th)
	}

	var ops op.Ops
	layoutOnce(&ops) // record frame bounds before spawning
	ui.space.Spawn(entities)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ops.Reset()
		ui.space.Step()
		layoutOnce(&ops)
		w.Frame(&ops)
	}
}
