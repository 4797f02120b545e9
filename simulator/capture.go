package simulator

import (
	"bytes"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
)

// CaptureStill renders a single picture.
// Lifecycle goes through the synchronous path, picture saved through the ordinary one.
func (b *Backend) CaptureStill(current *camera.State, filename string, data interface{}) error {
	b.Lock()
	defer b.Unlock()

	if enums.PipelineStatePlaying != b.state {
		return &ErrNotPlaying{}
	}

	img := b.render()
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.postSync(bus.NewCaptureStartMessage(""))
		b.postSync(bus.NewPreviewFrameMessage("", &bus.Frame{Image: img}))
		b.postSync(bus.NewPictureGotMessage("", filename))
		b.save(img, filename)
		b.postSync(bus.NewCaptureEndMessage(""))
		if err := b.bus.Post(bus.NewPictureSavedMessage("", filename)); err != nil {
			b.logger.Warn("Failed to post message", common.LogFileToken, filename,
				common.LogErrorToken, err.Error())
		}
	}()

	return nil
}

// StartVideo starts recording and periodic preview frames.
func (b *Backend) StartVideo(current *camera.State, filename string, data interface{}) error {
	b.Lock()
	defer b.Unlock()

	if enums.PipelineStatePlaying != b.state {
		return &ErrNotPlaying{}
	}

	if nil != b.stopRec {
		return &ErrAlreadyRecording{}
	}

	b.video = filename
	b.paused = false
	b.stopRec = make(chan struct{})

	stop := b.stopRec
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.postSync(bus.NewCaptureStartMessage(""))
		b.record(stop)
	}()

	return nil
}

// PauseVideo pauses or resumes preview frames.
func (b *Backend) PauseVideo(current *camera.State, resume bool, data interface{}) error {
	b.Lock()
	defer b.Unlock()

	if nil == b.stopRec {
		return &ErrNotRecording{}
	}

	b.paused = !resume
	return nil
}

// FinishVideo stops recording.
func (b *Backend) FinishVideo(current *camera.State, data interface{}) error {
	b.Lock()
	defer b.Unlock()

	if nil == b.stopRec {
		return &ErrNotRecording{}
	}

	filename := b.video
	b.stopRecording()
	b.post(true, bus.NewCaptureEndMessage(""))
	b.post(false, bus.NewPictureSavedMessage("", filename))
	return nil
}

// Stops recording goroutine.
// Should be invoked under the lock.
func (b *Backend) stopRecording() {
	if nil == b.stopRec {
		return
	}

	close(b.stopRec)
	b.stopRec = nil
	b.video = ""
}

// Sends encoded preview frames while recording.
func (b *Backend) record(stop chan struct{}) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame := b.videoFrame()
			if nil != frame {
				b.postSync(bus.NewPreviewFrameMessage("", frame))
			}
		}
	}
}

// Renders and encodes video preview frame.
func (b *Backend) videoFrame() *bus.Frame {
	b.Lock()
	defer b.Unlock()

	if b.paused || nil == b.stopRec {
		return nil
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, b.render(), imaging.JPEG); err != nil {
		b.logger.Error("Failed to encode frame", err)
		return nil
	}

	return &bus.Frame{Data: buf.Bytes()}
}

// Posts message through the synchronous path.
func (b *Backend) postSync(msg *bus.Message) {
	if err := b.bus.PostSync(msg); err != nil {
		b.logger.Warn("Failed to post message", common.LogMessageToken, msg.Type.String(),
			common.LogErrorToken, err.Error())
	}
}
