package geom

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	// Image formats understood by Image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/renderer"
)

// Image draws an encoded raster image stretched over a rectangle in data
// coordinates. Decoding happens asynchronously once the view is created.
type Image struct {
	renderer.Model
	Data                     []byte
	Left, Bottom, Right, Top float64

	// Pixelated disables image smoothing.
	Pixelated bool
}

// NewImage returns a visible image renderer of the encoded image data.
func NewImage(name string, data []byte, left, bottom, right, top float64) *Image {
	return &Image{Model: *imageSchema.New(name), Data: data,
		Left: left, Bottom: bottom, Right: right, Top: top}
}

func (m *Image) Base() *renderer.Model { return &m.Model }

func (m *Image) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewImageView(m, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ImageView draws an Image. It reports unfinished until the image is
// decoded and then asks its parent for another paint pass.
type ImageView struct {
	renderer.Base
	m *Image

	mu   sync.Mutex
	img  image.Image
	err  error
	done chan struct{}
}

func NewImageView(m *Image, parent renderer.Parent) (*ImageView, error) {
	v := &ImageView{m: m, done: make(chan struct{})}
	if err := v.Initialize(v, &m.Model, parent); err != nil {
		close(v.done)
		return v, err
	}
	v.SetFinished(false)
	go v.decode()
	return v, nil
}

// beforeDecode runs at the start of every decoding goroutine.
var beforeDecode = func() {}

func (v *ImageView) decode() {
	beforeDecode()
	img, format, err := image.Decode(bytes.NewReader(v.m.Data))
	if err != nil {
		err = fmt.Errorf("geom: image %q: %w", v.m.Name, err)
		cartesian.Logger().Warn("image decoding failed", "name", v.m.Name, "err", err)
	} else {
		cartesian.Logger().Debug("image decoded", "name", v.m.Name, "format", format,
			"size", img.Bounds().Size())
	}

	v.mu.Lock()
	v.img, v.err = img, err
	v.mu.Unlock()

	v.SetFinished(true)
	v.NotifyFinished()
	v.RequestRender()
	close(v.done)
}

// Done is closed once decoding has finished.
func (v *ImageView) Done() <-chan struct{} { return v.done }

// Err returns the decoding error, if any.
func (v *ImageView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Render draws the image. Nothing is drawn before decoding has finished.
func (v *ImageView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	v.mu.Lock()
	img, err := v.img, v.err
	v.mu.Unlock()
	if err != nil {
		return err
	}
	if img == nil {
		return nil
	}
	box, err := screenBox(v.Scope(), v.m.Left, v.m.Bottom, v.m.Right, v.m.Top)
	if err != nil {
		return err
	}
	ctx.Save()
	defer ctx.Restore()
	ctx.SetImageSmoothingEnabled(!v.m.Pixelated)
	ctx.DrawImage(img, box)
	return nil
}

func (v *ImageView) DataBounds() (x, y cartesian.Interval) {
	x, y = cartesian.UnsetInterval(), cartesian.UnsetInterval()
	x.Update(v.m.Left, v.m.Right)
	y.Update(v.m.Bottom, v.m.Top)
	return x, y
}
