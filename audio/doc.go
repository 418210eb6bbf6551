// SPDX-License-Identifier: EPL-2.0

// Package audio is the codec boundary of untwist: the interfaces the
// format packages implement, whole-file decoding into a Clip, and the
// registry that picks a codec by file extension.
//
// # Clips
//
// A Clip holds a whole stream, interleaved. PCM16 carries 16-bit storage
// exactly as the container holds it; Samples carries float64 values for
// every other layout. Decode prefers a decoder's DecodeClip and otherwise
// drains its Source with ReadAll, widening float32 to float64:
//
//	clip, err := audio.Decode(wav.Decoder{}, f)
//
// The wave package turns a Clip into a frames x channels buffer, dividing
// PCM16 by -32768 on the way.
//
// # Encoders
//
// An Encoder receives a Clip and writes its values as given. The bundled
// WAV and AIFF encoders store Samples as 64-bit floats unless asked for
// 16-bit output.
//
// # Registry
//
// Registry maps lower-case extensions to decoders and encoders and is safe
// for concurrent use:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.RegisterEncoder("wav", wav.Encoder{})
//	enc, err := reg.EncoderFor("take1.WAV")
//
// Unknown extensions yield ErrUnknownFormat.
//
// # Streams
//
// Source is the float32 streaming side used for playback and for decoders
// without DecodeClip. A Source ends with io.EOF. Resampler converts the
// rate of a Source with cubic interpolation and MonoMixer averages its
// channels; the wave package uses them for Resample and Downmix.
package audio
