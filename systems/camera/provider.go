package camera

import "github.com/go-home-io/camera/providers"

// Interface check.
var _ providers.ICameraProvider = (*Manager)(nil)
