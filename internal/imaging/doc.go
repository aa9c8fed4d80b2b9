// Package imaging picks colors out of decoded images and renders the visual
// aids that go with a pick: swatches, zoomed crops and pick markers.
//
// It is the image-side collaborator of package munsell. Everything here ends
// in an sRGB triple handed to munsell.Describe; nothing here does color math
// of its own beyond averaging and color-difference metrics.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (X1,Y1) is inclusive and (X2,Y2) is exclusive
//
// # Sampling
//
// A pick reads the non-premultiplied 8-bit color at one pixel. With a radius
// r > 0 the pick averages the (2r+1)×(2r+1) window centred on the pixel,
// clipped to the image, using a box filter. Alpha is reported but does not
// influence the Munsell description.
//
// # Image Results
//
// Functions that produce images return them as base64-encoded PNG with the
// width, height and MIME type alongside, ready to embed in a JSON response.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and only read their input image.
package imaging
