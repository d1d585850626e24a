// Package animation tracks playback of decoded animation frames.
// Frame advancement is evaluated reactively whenever the compositor
// reports that it is ready for a new frame; there is no timer.
package animation
