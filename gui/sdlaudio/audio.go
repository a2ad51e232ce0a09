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

package sdlaudio

import (
	"time"
	"unsafe"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors returned by the SDL library.
const SDLError = "sdlaudio: %v"

const (
	numChannels    = 2
	bytesPerSample = 2
	bytesPerFrame  = numChannels * bytesPerSample

	// size of the device buffer in frames. the device buffer is separate
	// from the queue, which is bounded by the latency value
	bufferLength = 1024
)

// Audio is an SDL audio device playing signed 16 bit interleaved stereo.
// Writes block while the amount of queued audio exceeds the latency.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// maximum number of bytes queued before Write() blocks
	limit uint32
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(sampleRate int, latency time.Duration) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16SYS,
		Channels: numChannels,
		Samples:  bufferLength,
	}

	// the device must accept the format exactly because the samples from the
	// core are queued without conversion
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf(SDLError, err)
	}

	aud.limit = uint32(latency.Seconds()*float64(aud.spec.Freq)) * bytesPerFrame

	logger.Logf(logger.Allow, "sdlaudio", "%dHz, %d channels, latency %v", aud.spec.Freq, aud.spec.Channels, latency)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Write queues interleaved stereo samples, blocking first if the queue is
// full. Returns the number of frames written.
func (aud *Audio) Write(samples []int16) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	for sdl.GetQueuedAudioSize(aud.id) > aud.limit {
		sdl.Delay(1)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*bytesPerSample)
	if err := sdl.QueueAudio(aud.id, data); err != nil {
		return 0, curated.Errorf(SDLError, err)
	}

	return len(samples) / numChannels, nil
}

// Recover the device after a failed Write(). Any queued audio is discarded.
func (aud *Audio) Recover(err error) error {
	logger.Debugf(logger.Allow, "sdlaudio", "recovering from: %v", err)
	sdl.ClearQueuedAudio(aud.id)
	sdl.PauseAudioDevice(aud.id, false)
	return nil
}

// Close the audio device.
func (aud *Audio) Close() error {
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
