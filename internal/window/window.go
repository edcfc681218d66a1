// Package window shows a rendered chart in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FitSize returns the largest size with the aspect ratio of (w, h) that
// fits in (maxW, maxH). Sizes that already fit are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	sx := float64(maxW) / float64(w)
	sy := float64(maxH) / float64(h)
	s := sx
	if sy < s {
		s = sy
	}
	fw, fh := int(float64(w)*s), int(float64(h)*s)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

// Show opens a window titled title displaying img, scaled to the window.
// It blocks until the window is closed.
func Show(title string, img image.Image) error {
	b := img.Bounds()
	sw, sh := ebiten.Monitor().Size()
	w, h := FitSize(b.Dx(), b.Dy(), sw*9/10, sh*9/10)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&viewer{src: img})
}

type viewer struct {
	src image.Image
	img *ebiten.Image
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	sb, ib := screen.Bounds(), v.img.Bounds()
	sx := float64(sb.Dx()) / float64(ib.Dx())
	sy := float64(sb.Dy()) / float64(ib.Dy())
	s := sx
	if sy < s {
		s = sy
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.img, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
