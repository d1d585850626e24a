// Package display presents the overlay as a GTK4 layer-shell window.
//
// It is the only package that talks to the toolkit. Everything it receives
// from GTK (surface layout, frame clock ticks, close requests, monitor
// changes) is translated into surface events and fed to a surface.Machine
// on the GTK main loop, and everything the machine asks for is applied to
// the window through gtk4-layer-shell.
package display
