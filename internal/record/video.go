package record

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// VideoSink encodes frames as JPEG into an MJPEG AVI file.
type VideoSink struct {
	aw      mjpeg.AviWriter
	opts    *jpeg.Options
	buf     bytes.Buffer
	Written int
}

func NewVideoSink(path string, width, height, fps, quality int) (*VideoSink, error) {
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, err
	}
	return &VideoSink{aw: aw, opts: &jpeg.Options{Quality: quality}}, nil
}

func (v *VideoSink) Frame(img image.Image) error {
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, v.opts); err != nil {
		return err
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return err
	}
	v.Written++
	return nil
}

// Close finalizes the AVI index; the file is unusable without it.
func (v *VideoSink) Close() error {
	return v.aw.Close()
}
