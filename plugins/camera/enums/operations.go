package enums

// Operation describes a single entry of the backend operation table.
type Operation int

const (
	// OpSetMode describes mode change.
	OpSetMode Operation = iota
	// OpSetFlashMode describes flash mode change.
	OpSetFlashMode
	// OpSetFocusMode describes focus mode change.
	OpSetFocusMode
	// OpSetFocusRegion describes focus region pattern change.
	OpSetFocusRegion
	// OpSetExposureMode describes exposure mode change.
	OpSetExposureMode
	// OpSetExposureComp describes exposure compensation change.
	OpSetExposureComp
	// OpSetIsoMode describes ISO sensitivity change.
	OpSetIsoMode
	// OpSetWhiteBalanceMode describes white balance change.
	OpSetWhiteBalanceMode
	// OpSetMeteringMode describes metering mode change.
	OpSetMeteringMode
	// OpSetAspectRatioResolution describes aspect ratio and resolution change.
	OpSetAspectRatioResolution
	// OpSetQuality describes quality change.
	OpSetQuality
	// OpSetLocks describes locks change.
	OpSetLocks
	// OpSetZoom describes zoom change.
	OpSetZoom
	// OpSetAudio describes audio state change.
	OpSetAudio
	// OpSetPreviewMode describes preview mode change.
	OpSetPreviewMode
	// OpCaptureStill describes still picture capture.
	OpCaptureStill
	// OpStartVideo describes video recording start.
	OpStartVideo
	// OpPauseVideo describes video recording pause or resume.
	OpPauseVideo
	// OpFinishVideo describes video recording finish.
	OpFinishVideo
	// OpHandleBusMessage describes backend hook for ordinary bus messages.
	OpHandleBusMessage
	// OpHandleSyncBusMessage describes backend hook for synchronous bus messages.
	OpHandleSyncBusMessage
)

var operationNames = []string{"set-mode", "set-flash-mode", "set-focus-mode", "set-focus-region",
	"set-exposure-mode", "set-exposure-comp", "set-iso-mode", "set-white-balance-mode",
	"set-metering-mode", "set-aspect-ratio-resolution", "set-quality", "set-locks", "set-zoom",
	"set-audio", "set-preview-mode", "capture-still", "start-video", "pause-video",
	"finish-video", "handle-bus-message", "handle-sync-bus-message"}

// String returns enum name.
func (i Operation) String() string {
	return enumName(operationNames, int(i))
}

// OperationString returns enum value by its name.
func OperationString(s string) (Operation, error) {
	v, err := enumValue(operationNames, s)
	return Operation(v), err
}

// OperationSet is a bit-set of available backend operations.
type OperationSet uint32

// NewOperationSet constructs a new set out of operations.
func NewOperationSet(ops ...Operation) OperationSet {
	var s OperationSet
	for _, v := range ops {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether operation is a member of the set.
func (s OperationSet) Contains(op Operation) bool {
	return op >= 0 && s&(1<<uint(op)) != 0
}

// Strings returns names of the set members.
func (s OperationSet) Strings() []string {
	result := make([]string, 0)
	for ii, v := range operationNames {
		if s.Contains(Operation(ii)) {
			result = append(result, v)
		}
	}

	return result
}
