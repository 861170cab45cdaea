// Package colr renders color glyphs described by paint graphs.
//
// A color glyph is a directed acyclic graph of paint operations: layered
// sub-glyphs, solid fills, linear/radial/sweep gradients, nested affine
// transforms, and composites with arbitrary blend modes. The package walks
// such a graph against a drawing surface (the Canvas interface), resolving
// colors against a caller-supplied palette and foreground color, and
// detecting cycles so that malformed fonts cannot recurse forever.
//
// The paint graph itself is delivered by a font engine behind the Source
// interface; this package never parses font files. The companion packages
// provide the remaining pieces:
//
//   - colr/mask converts externally rasterized glyph bitmaps (monochrome,
//     grayscale, premultiplied BGRA, LCD subpixel triples) into the engine's
//     mask formats, and scales bitmap glyphs through a drawing surface.
//   - colr/soft is a software Canvas implementation with anti-aliased path
//     fills, clipping, and layer compositing.
//   - colr/memfont is an in-memory Source for building paint graphs
//     programmatically.
//
// Font geometry arrives in the font convention (y grows upward, angles
// counter-clockwise); everything this package hands to a Canvas is in the
// renderer convention (y grows downward). The sign flips happen exactly
// once, at the decode boundary.
//
// A failed color render (cycle, missing node, bad palette index) aborts
// only that glyph; callers are expected to fall back to ordinary outline
// rendering.
package colr
