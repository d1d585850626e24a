// Package pixel decodes crosshair images into compositor-ready pixel data.
//
// Every frame is converted to the layout expected by an ARGB8888 shared
// memory buffer on a little-endian host: four bytes per pixel in
// blue, green, red, alpha order with premultiplied alpha. The requested
// overlay opacity is folded into the alpha channel during conversion.
package pixel
