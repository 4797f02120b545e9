package enums

// IsAutoFamily checks whether focus mode is driven by the autofocus engine.
func (i FocusMode) IsAutoFamily() bool {
	switch i {
	case FocusModeAuto, FocusModeFace, FocusModeSmile, FocusModeCentroid,
		FocusModeContinuousAuto, FocusModeContinuousCentroid:
		return true
	}

	return false
}

// IsContinuous checks whether focus mode keeps re-focusing.
func (i FocusMode) IsContinuous() bool {
	return FocusModeContinuousAuto == i || FocusModeContinuousCentroid == i
}

// RequiredFeatures returns capabilities required by focus mode.
func (i FocusMode) RequiredFeatures() Feature {
	switch {
	case FocusModeManual == i:
		return FeatureManualFocus
	case i.IsContinuous():
		return FeatureAutoFocus | FeatureContinuousAutofocus
	case i.IsAutoFamily():
		return FeatureAutoFocus
	}

	return FeatureNone
}

// RequiredFeatures returns capabilities required by exposure mode.
func (i ExposureMode) RequiredFeatures() Feature {
	switch i {
	case ExposureModeNone:
		return FeatureNone
	case ExposureModeManual:
		return FeatureManualExposure
	}

	return FeatureAutoExposure
}

// RequiredFeatures returns capabilities required by ISO mode.
func (i IsoMode) RequiredFeatures() Feature {
	switch i {
	case IsoModeManual:
		return FeatureManualIso
	case IsoModeAuto:
		return FeatureAutoIso
	}

	return FeatureNone
}

// RequiredFeatures returns capabilities required by white balance mode.
func (i WhiteBalanceMode) RequiredFeatures() Feature {
	switch i {
	case WhiteBalanceModeNone:
		return FeatureNone
	case WhiteBalanceModeManual:
		return FeatureManualWhiteBalance
	}

	return FeatureAutoWhiteBalance
}

// RequiredFeatures returns capabilities required to hold the lock.
func (l Lock) RequiredFeatures() Feature {
	f := FeatureNone
	if l.Has(LockAutoFocus) {
		f |= FeatureAutoFocus
	}
	if l.Has(LockAutoExposure) {
		f |= FeatureAutoExposure
	}
	if l.Has(LockAutoWhiteBalance) {
		f |= FeatureAutoWhiteBalance
	}

	return f
}

// Count returns number of focus points in the layout.
func (i FocusPoints) Count() uint {
	switch i {
	case FocusPointsOneCentral:
		return 1
	case FocusPointsFive:
		return 5
	case FocusPointsSeven:
		return 7
	case FocusPointsNine:
		return 9
	}

	return 0
}

// AllPoints returns active-points mask with every point of the layout enabled.
func (i FocusPoints) AllPoints() uint64 {
	return (uint64(1) << i.Count()) - 1
}
