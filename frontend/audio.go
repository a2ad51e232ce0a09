// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

package frontend

import (
	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/logger"
)

// AudioDeviceError is the pattern for errors that originate in the audio
// device.
const AudioDeviceError = "audio: device: %v"

// AudioDevice is the playback device used by the AudioSink. Samples are
// signed 16 bit interleaved stereo.
type AudioDevice interface {
	// Write blocks until the samples have been accepted by the device or an
	// error occurs. Returns the number of frames written
	Write(samples []int16) (int, error)

	// Recover the device after a Write() error
	Recover(err error) error

	Close() error
}

// AudioOpener opens an AudioDevice at the sample rate.
type AudioOpener func(sampleRate int) (AudioDevice, error)

// AudioRecorder receives a copy of every write accepted by the AudioSink.
type AudioRecorder interface {
	SetSampleRate(rate int)
	SetAudio(samples []int16) error
	EndMixing() error
}

// AudioSink streams audio from the core to an AudioDevice. Writes before a
// successful call to Init() are ignored.
type AudioSink struct {
	open     AudioOpener
	dev      AudioDevice
	recorder AudioRecorder

	// buffer for single frame writes
	single [2]int16
}

// NewAudioSink is the preferred method of initialisation for the AudioSink
// type.
func NewAudioSink(open AudioOpener) *AudioSink {
	return &AudioSink{
		open: open,
	}
}

// SetRecorder adds a recorder to the sink. Must be called before Init().
func (snk *AudioSink) SetRecorder(r AudioRecorder) {
	snk.recorder = r
}

// Init opens the audio device at the sample rate.
func (snk *AudioSink) Init(sampleRate int) error {
	if snk.dev != nil {
		_ = snk.dev.Close()
		snk.dev = nil
	}

	dev, err := snk.open(sampleRate)
	if err != nil {
		return curated.Errorf(AudioDeviceError, err)
	}
	snk.dev = dev

	if snk.recorder != nil {
		snk.recorder.SetSampleRate(sampleRate)
	}

	logger.Logf(logger.Allow, "audio", "opened device at %dHz", sampleRate)

	return nil
}

// Write interleaved stereo samples to the device. Returns the number of frames
// written, which is zero if the sink has not been initialised or if the device
// reports an error.
func (snk *AudioSink) Write(samples []int16) int {
	if snk.dev == nil {
		return 0
	}

	// only whole frames are written
	samples = samples[:len(samples)&^1]
	if len(samples) == 0 {
		return 0
	}

	n, err := snk.dev.Write(samples)
	if err != nil {
		logger.Debugf(logger.Allow, "audio", "%v", curated.Errorf(AudioDeviceError, err))
		if err := snk.dev.Recover(err); err != nil {
			logger.Warnf(logger.Allow, "audio", "%v", curated.Errorf(AudioDeviceError, err))
		}
		return 0
	}

	if snk.recorder != nil {
		if err := snk.recorder.SetAudio(samples[:min(n*2, len(samples))]); err != nil {
			logger.Warnf(logger.Allow, "audio", "%v", err)
		}
	}

	return n
}

// Sample writes a single stereo frame.
func (snk *AudioSink) Sample(left int16, right int16) {
	snk.single[0] = left
	snk.single[1] = right
	snk.Write(snk.single[:])
}

// Deinit closes the device and ends any recording. Writes after Deinit() are
// ignored.
func (snk *AudioSink) Deinit() error {
	var err error

	if snk.dev != nil {
		if cerr := snk.dev.Close(); cerr != nil {
			err = curated.Errorf(AudioDeviceError, cerr)
		}
		snk.dev = nil
	}

	if snk.recorder != nil {
		if rerr := snk.recorder.EndMixing(); rerr != nil && err == nil {
			err = rerr
		}
		snk.recorder = nil
	}

	return err
}
