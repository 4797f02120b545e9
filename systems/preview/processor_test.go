package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a test image.
func getImage(width, height int, split bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := color.RGBA{R: 250, G: 250, B: 250, A: 255}
			if split && x < width/2 {
				c = color.RGBA{A: 255}
			}

			img.Set(x, y, c)
		}
	}

	return img
}

func newTestProcessor(width, distance int) *processor {
	return NewProcessor(&ConstructProcessor{
		Logger:   mocks.FakeNewLogger(nil),
		Width:    width,
		Quality:  101,
		Distance: distance,
	}).(*processor)
}

// Tests constructor boundaries.
func TestDefaults(t *testing.T) {
	p := newTestProcessor(-1, -10)
	assert.Equal(t, defaultImageQuality, p.quality)
	assert.Equal(t, 0, p.width)
	assert.Equal(t, 0, p.distance)
}

// Tests image resizing.
func TestResize(t *testing.T) {
	p := newTestProcessor(40, 0)
	f := p.Process(&common.PreviewFrame{Image: getImage(80, 60, false)})
	assert.Equal(t, 40, f.Image.Bounds().Dx())
	assert.Equal(t, 30, f.Image.Bounds().Dy())

	f = p.Process(&common.PreviewFrame{Image: getImage(20, 10, false)})
	assert.Equal(t, 20, f.Image.Bounds().Dx())
	assert.Equal(t, f, p.Last())
}

// Tests duplicates detection.
func TestDuplicates(t *testing.T) {
	p := newTestProcessor(0, 5)
	f1 := p.Process(&common.PreviewFrame{Image: getImage(64, 64, true)})
	f2 := p.Process(&common.PreviewFrame{Image: getImage(64, 64, true)})
	f3 := p.Process(&common.PreviewFrame{Image: getImage(64, 64, false)})

	assert.False(t, f1.Duplicate)
	assert.True(t, f2.Duplicate)
	assert.False(t, f3.Duplicate)
	assert.Equal(t, f1.Hash, f2.Hash)
	assert.NotEqual(t, f1.Hash, f3.Hash)
}

// Tests that duplicates are not detected with zero distance.
func TestNoDistance(t *testing.T) {
	p := newTestProcessor(0, 0)
	p.Process(&common.PreviewFrame{Image: getImage(64, 64, true)})
	f := p.Process(&common.PreviewFrame{Image: getImage(64, 64, true)})
	assert.False(t, f.Duplicate)
}

// Tests JPEG encoding.
func TestEncode(t *testing.T) {
	p := newTestProcessor(0, 0)
	_, err := p.Encode(nil)
	assert.IsType(t, &ErrNoFrame{}, err)

	data, err := p.Encode(&common.PreviewFrame{Image: getImage(16, 16, false)})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}
