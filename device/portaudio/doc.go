// SPDX-License-Identifier: EPL-2.0

// Package portaudio plays and records waves through the default sound
// devices using PortAudio.
//
// A Driver initializes PortAudio once and must be closed to release it:
//
//	d, err := portaudio.New(portaudio.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//
//	if err := w.Play(d, nil); err != nil {
//		return err
//	}
//	err = w.Wait(ctx)
//
// Playback runs on its own goroutine and feeds the device in blocks of
// FramesPerBuffer frames. Recording blocks the caller.
package portaudio
