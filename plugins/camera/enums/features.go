package enums

import "strings"

// Feature describes a single camera capability.
// Features are bit flags and could be combined into a mask.
type Feature uint32

const (
	// FeatureViewfinder describes viewfinder output.
	FeatureViewfinder Feature = 1 << iota
	// FeatureFlash describes flash unit.
	FeatureFlash
	// FeatureManualFocus describes manual focus.
	FeatureManualFocus
	// FeatureAutoFocus describes autofocus.
	FeatureAutoFocus
	// FeatureMacro describes macro focus.
	FeatureMacro
	// FeatureContinuousAutofocus describes continuous autofocus.
	FeatureContinuousAutofocus
	// FeatureManualExposure describes manual exposure.
	FeatureManualExposure
	// FeatureAutoExposure describes automatic exposure.
	FeatureAutoExposure
	// FeatureManualIso describes manual ISO.
	FeatureManualIso
	// FeatureAutoIso describes automatic ISO.
	FeatureAutoIso
	// FeatureManualWhiteBalance describes manual white balance.
	FeatureManualWhiteBalance
	// FeatureAutoWhiteBalance describes automatic white balance.
	FeatureAutoWhiteBalance
	// FeatureMetering describes metering control.
	FeatureMetering
	// FeatureAspectRatio describes aspect ratio control.
	FeatureAspectRatio
	// FeatureQuality describes quality control.
	FeatureQuality
	// FeatureResolution describes resolution control.
	FeatureResolution
	// FeatureOpticalZoom describes optical zoom.
	FeatureOpticalZoom
	// FeatureDigitalZoom describes digital zoom.
	FeatureDigitalZoom
	// FeatureAudio describes sound recording.
	FeatureAudio
	// FeaturePreview describes post-capture preview.
	FeaturePreview
)

// FeatureNone describes empty features mask.
const FeatureNone Feature = 0

var featureNames = []string{"viewfinder", "flash", "manual-focus", "auto-focus", "macro",
	"continuous-autofocus", "manual-exposure", "auto-exposure", "manual-iso", "auto-iso",
	"manual-white-balance", "auto-white-balance", "metering", "aspect-ratio", "quality",
	"resolution", "optical-zoom", "digital-zoom", "audio", "preview"}

// Has checks whether all requested features are present in the mask.
func (f Feature) Has(flags Feature) bool {
	return flags != FeatureNone && f&flags == flags
}

// HasAny checks whether at least one of the requested features is present in the mask.
func (f Feature) HasAny(flags Feature) bool {
	return f&flags != FeatureNone
}

// Strings returns names of all features in the mask.
func (f Feature) Strings() []string {
	result := make([]string, 0)
	for ii, v := range featureNames {
		if f&(1<<uint(ii)) != 0 {
			result = append(result, v)
		}
	}

	return result
}

// String returns pipe-separated list of features.
func (f Feature) String() string {
	if FeatureNone == f {
		return "none"
	}

	return strings.Join(f.Strings(), "|")
}

// FeatureString returns single feature by its name.
func FeatureString(s string) (Feature, error) {
	v, err := enumValue(featureNames, s)
	if err != nil {
		return FeatureNone, err
	}

	return Feature(1 << uint(v)), nil
}

// ParseFeatures constructs features mask out of names.
func ParseFeatures(names []string) (Feature, error) {
	mask := FeatureNone
	for _, v := range names {
		f, err := FeatureString(v)
		if err != nil {
			return FeatureNone, err
		}

		mask |= f
	}

	return mask, nil
}
