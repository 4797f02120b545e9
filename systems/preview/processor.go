// Package preview contains preview frames post-processing.
package preview

import (
	"bytes"
	"image"
	"image/jpeg"
	"sync"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
)

const (
	// Logs representation.
	logSystem = "preview"
	// Default JPEG quality to use.
	defaultImageQuality = 75
	// Maximum width of the final image.
	maxWidth = 4000
)

// ConstructProcessor has data required for a new preview processor.
type ConstructProcessor struct {
	Logger   common.ILoggerProvider
	Width    int
	Quality  int
	Distance int
}

// Post-processor for preview frames.
type processor struct {
	sync.Mutex

	logger   common.ILoggerProvider
	distance int
	quality  int
	width    int
	prevHash *goimagehash.ImageHash
	last     *common.PreviewFrame
}

// NewProcessor constructs a new preview processor.
func NewProcessor(ctor *ConstructProcessor) providers.IPreviewProvider {
	p := &processor{
		logger:   ctor.Logger,
		distance: ctor.Distance,
		quality:  ctor.Quality,
		width:    ctor.Width,
	}

	if p.distance < 0 {
		p.distance = 0
	}

	if p.quality > 100 || p.quality < 1 {
		p.quality = defaultImageQuality
	}

	if p.width < 0 || p.width > maxWidth {
		p.width = 0
	}

	return p
}

// Process resizes frame and calculates its hash.
// Frames similar to the previous one are marked as duplicates, but never dropped.
func (p *processor) Process(frame *common.PreviewFrame) *common.PreviewFrame {
	if nil == frame || nil == frame.Image {
		return frame
	}

	p.Lock()
	defer p.Unlock()

	frame.Image = p.resizeImage(frame.Image)

	hash, err := goimagehash.AverageHash(frame.Image)
	if err != nil {
		p.logger.Error("Failed to calculate frame hash", err, common.LogSystemToken, logSystem)
		p.last = frame
		return frame
	}

	frame.Hash = hash.GetHash()
	if p.distance > 0 && nil != p.prevHash {
		distance, err := p.prevHash.Distance(hash)
		if nil == err && distance < p.distance {
			frame.Duplicate = true
		}
	}

	p.prevHash = hash
	p.last = frame
	return frame
}

// Encode converts frame to JPEG.
func (p *processor) Encode(frame *common.PreviewFrame) ([]byte, error) {
	if nil == frame || nil == frame.Image {
		return nil, &ErrNoFrame{}
	}

	buf := bytes.NewBuffer(make([]byte, 0))
	err := jpeg.Encode(buf, frame.Image, &jpeg.Options{Quality: p.quality})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Last returns latest processed frame.
func (p *processor) Last() *common.PreviewFrame {
	p.Lock()
	defer p.Unlock()
	return p.last
}

// Performs image resizing.
func (p *processor) resizeImage(original image.Image) image.Image {
	if 0 == p.width || original.Bounds().Dx() <= p.width {
		return original
	}

	return imaging.Resize(original, p.width, 0, imaging.Lanczos)
}
