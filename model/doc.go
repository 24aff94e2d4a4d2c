// Package model describes the external collaborator types the layout core
// consumes: pages, letters (glyphs), paths and colors produced by a PDF
// parser that lives outside this module. The tokenizer, filter chains, and
// font subsystem that would populate these values are not part of this
// module; only the data surface the rest of the packages (geometry, hull,
// bezier, clip, kdtree, cluster, layout, tables) need is reproduced here.
package model
