// Package surface implements the lifecycle of the overlay's layer surface.
//
// A Machine consumes compositor events (configure, frame ready, output
// info, close) through a single HandleEvent entry point and turns them into
// buffer pool and presentation calls on a Layer. It is not safe for
// concurrent use; the platform layer delivers every event from its one
// dispatch loop.
package surface
