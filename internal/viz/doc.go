// Package viz provides the terminal rendering surface for Collatz scenes.
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell) with
//     per-cell layer tracking
//   - [RenderScene]: rasterises a scene and colors each polyline with its
//     palette color
//   - [Theme]: chrome colors shared with the SVG and PNG renderers
//
// Labels are not drawn on the terminal surface; the braille grid is too
// coarse for rotated text.
package viz
