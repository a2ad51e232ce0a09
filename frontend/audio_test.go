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

package frontend_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/frontend"
	"github.com/jetsetilly/gpretro/test"
)

// opener returns an AudioOpener that counts the number of times it is called
// and always opens dev
func opener(dev *device, opened *int) frontend.AudioOpener {
	return func(rate int) (frontend.AudioDevice, error) {
		*opened++
		dev.rate = rate
		return dev, nil
	}
}

func TestAudioWriteBeforeInit(t *testing.T) {
	dev := &device{}
	var opened int
	snk := frontend.NewAudioSink(opener(dev, &opened))

	test.ExpectEquality(t, snk.Write([]int16{1, 2, 3, 4}), 0)
	snk.Sample(1, 2)

	test.ExpectEquality(t, opened, 0)
	test.ExpectEquality(t, dev.writes, 0)
}

func TestAudioWrite(t *testing.T) {
	dev := &device{}
	var opened int
	snk := frontend.NewAudioSink(opener(dev, &opened))

	test.DemandSuccess(t, snk.Init(44100))
	test.ExpectEquality(t, opened, 1)
	test.ExpectEquality(t, dev.rate, 44100)

	test.ExpectEquality(t, snk.Write([]int16{1, 2, 3, 4}), 2)

	// trailing half frame is not written
	test.ExpectEquality(t, snk.Write([]int16{5, 6, 7}), 1)

	// a single sample is a batch of one frame
	snk.Sample(8, 9)

	test.ExpectEquality(t, dev.writes, 3)
	test.DemandEquality(t, len(dev.samples), 8)
	for i, v := range []int16{1, 2, 3, 4, 5, 6, 8, 9} {
		test.ExpectEquality(t, dev.samples[i], v)
	}
}

func TestAudioWriteError(t *testing.T) {
	dev := &device{fail: true}
	var opened int
	snk := frontend.NewAudioSink(opener(dev, &opened))
	test.DemandSuccess(t, snk.Init(48000))

	test.ExpectEquality(t, snk.Write([]int16{1, 2}), 0)
	test.ExpectEquality(t, dev.recovered, 1)

	// repeated failure is repeated silence
	test.ExpectEquality(t, snk.Write([]int16{1, 2}), 0)
	test.ExpectEquality(t, dev.recovered, 2)

	dev.fail = false
	test.ExpectEquality(t, snk.Write([]int16{1, 2}), 1)
}

func TestAudioInitError(t *testing.T) {
	snk := frontend.NewAudioSink(func(rate int) (frontend.AudioDevice, error) {
		return nil, errors.New("no device")
	})

	err := snk.Init(48000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, frontend.AudioDeviceError))
	test.ExpectEquality(t, snk.Write([]int16{1, 2}), 0)
}

func TestAudioDeinit(t *testing.T) {
	dev := &device{}
	var opened int
	snk := frontend.NewAudioSink(opener(dev, &opened))
	rec := &recorder{}
	snk.SetRecorder(rec)

	test.DemandSuccess(t, snk.Init(22050))
	test.ExpectEquality(t, rec.rate, 22050)

	snk.Write([]int16{1, 2, 3, 4})
	test.ExpectEquality(t, len(rec.samples), 4)

	test.ExpectSuccess(t, snk.Deinit())
	test.ExpectSuccess(t, dev.closed)
	test.ExpectSuccess(t, rec.ended)

	// writes after deinit are ignored
	test.ExpectEquality(t, snk.Write([]int16{1, 2}), 0)
	test.ExpectEquality(t, dev.writes, 1)

	// deinit without init is not an error
	test.ExpectSuccess(t, frontend.NewAudioSink(opener(dev, &opened)).Deinit())
}
