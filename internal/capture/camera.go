package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"sync"

	"gocv.io/x/gocv"
)

// jpegQuality for captured frames.
const jpegQuality = 92

// warmupFrames are read and discarded before the capture frame; the first
// frames from many devices are dark while exposure settles.
const warmupFrames = 5

// Camera wraps exclusive access to one video input device. The device is an
// exclusive system resource: it is released on explicit Stop, on successful
// capture, and it must not be opened twice.
type Camera struct {
	mu       sync.Mutex
	capture  *gocv.VideoCapture
	deviceID int
}

// OpenCamera requests exclusive access to a video input device. Failures are
// classified so callers can show a cause-specific message.
func OpenCamera(deviceID int) (*Camera, error) {
	cap, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, &CameraError{Kind: classifyCameraError(err), DeviceID: deviceID, Err: err}
	}
	if !cap.IsOpened() {
		_ = cap.Close()
		return nil, &CameraError{Kind: CameraErrorNoDevice, DeviceID: deviceID}
	}

	return &Camera{
		capture:  cap,
		deviceID: deviceID,
	}, nil
}

// Active reports whether the device is still held.
func (c *Camera) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capture != nil
}

// CaptureFrame grabs the current frame, horizontally mirrors it to match a
// mirrored live preview, and encodes it as JPEG. The device is released
// before returning, on every path.
func (c *Camera) CaptureFrame() ([]byte, error) {
	defer func() {
		_ = c.Stop()
	}()

	c.mu.Lock()
	cap := c.capture
	c.mu.Unlock()
	if cap == nil {
		return nil, errors.New("camera is not active")
	}

	frame := gocv.NewMat()
	defer func() {
		_ = frame.Close()
	}()

	for i := 0; i < warmupFrames; i++ {
		cap.Read(&frame)
	}

	if !cap.Read(&frame) || frame.Empty() {
		return nil, &CameraError{Kind: CameraErrorBusy, DeviceID: c.deviceID,
			Err: errors.New("device produced no frame")}
	}

	img, err := frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Mirror(img), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

// Stop releases the device. Safe to call more than once.
func (c *Camera) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture == nil {
		return nil
	}
	err := c.capture.Close()
	c.capture = nil
	return err
}
