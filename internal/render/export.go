package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

func WritePNG(w io.Writer, r *Raster) error {
	return png.Encode(w, r.Image())
}

// Recording collects raster frames into an animated GIF.
type Recording struct {
	// Delay between frames in hundredths of a second.
	Delay  int
	frames []*image.Paletted
}

func NewRecording(delay int) *Recording {
	if delay < 1 {
		delay = 2
	}
	return &Recording{Delay: delay}
}

// Capture quantises the current raster contents and appends them as a frame.
func (rec *Recording) Capture(r *Raster) {
	src := r.Image()
	img := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	rec.frames = append(rec.frames, img)
}

func (rec *Recording) Len() int { return len(rec.frames) }

func (rec *Recording) WriteGIF(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range rec.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, rec.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
