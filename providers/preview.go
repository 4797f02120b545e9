package providers

import "github.com/go-home-io/camera/plugins/common"

// IPreviewProvider defines preview frames post-processing.
type IPreviewProvider interface {
	Process(frame *common.PreviewFrame) *common.PreviewFrame
	Encode(frame *common.PreviewFrame) ([]byte, error)
	Last() *common.PreviewFrame
}
