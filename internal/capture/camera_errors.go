package capture

import (
	"fmt"
	"strings"
)

// CameraErrorKind is the fixed classification of device-acquisition
// failures. Each kind maps to a distinct user-facing message.
type CameraErrorKind int

const (
	CameraErrorGeneric CameraErrorKind = iota
	CameraErrorPermission
	CameraErrorNoDevice
	CameraErrorBusy
	CameraErrorUnsupported
)

// CameraError is a classified device failure.
type CameraError struct {
	Kind     CameraErrorKind
	DeviceID int
	Err      error
}

func (e *CameraError) Error() string {
	return e.Message()
}

func (e *CameraError) Unwrap() error {
	return e.Err
}

// Message is the user-facing text for this failure.
func (e *CameraError) Message() string {
	switch e.Kind {
	case CameraErrorPermission:
		return "Camera access was denied. Grant permission to the video device and try again."
	case CameraErrorNoDevice:
		return fmt.Sprintf("No camera found at device %d.", e.DeviceID)
	case CameraErrorBusy:
		return "The camera is already in use by another application."
	case CameraErrorUnsupported:
		return "Camera capture is not supported on this system."
	default:
		if e.Err != nil {
			return fmt.Sprintf("Camera error: %v", e.Err)
		}
		return "Camera error."
	}
}

// classifyCameraError buckets an underlying device error by its text. The
// video stack does not expose typed causes, so substring matching against
// the common OS-level messages is the best available signal.
func classifyCameraError(err error) CameraErrorKind {
	if err == nil {
		return CameraErrorGeneric
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "operation not permitted"),
		strings.Contains(msg, "not authorized"):
		return CameraErrorPermission

	case strings.Contains(msg, "no such file"),
		strings.Contains(msg, "no such device"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "out of device order range"):
		return CameraErrorNoDevice

	case strings.Contains(msg, "device or resource busy"),
		strings.Contains(msg, "already in use"),
		strings.Contains(msg, "resource temporarily unavailable"):
		return CameraErrorBusy

	case strings.Contains(msg, "not implemented"),
		strings.Contains(msg, "unsupported"),
		strings.Contains(msg, "no backend"):
		return CameraErrorUnsupported

	default:
		return CameraErrorGeneric
	}
}
