package model

import "github.com/tsawler/pdflayout/geometry"

// Letter is a single positioned glyph: its text value and the rectangle the
// glyph occupies on the page. Font metrics, encoding, and glyph-program
// details belong to the parser's font subsystem, not to the layout core.
type Letter struct {
	Value          string
	GlyphRectangle geometry.Rectangle
}

// PdfPath wraps a drawn geometry.Path with the page-level identity a parser
// would attach to it. Commands, IsClipping, IsDrawnAsRectangle, IsFilled,
// IsClosed, FillingRule, GetBoundingRectangle, CloneEmpty, and the builder
// methods are all inherited directly from geometry.Path.
type PdfPath struct {
	*geometry.Path
}

// NewPdfPath wraps a freshly built geometry.Path.
func NewPdfPath(p *geometry.Path) PdfPath {
	return PdfPath{Path: p}
}

// ExperimentalAccess groups direct access to a page's drawn paths,
// bypassing any higher-level text or graphics object model.
type ExperimentalAccess struct {
	Paths []PdfPath
}

// CropBox carries a page's crop rectangle.
type CropBox struct {
	Bounds geometry.Rectangle
}

// Page is the per-page surface the layout core consumes: the crop box, the
// positioned letters, and experimental access to the drawn paths. The PDF
// tokenizer, decoder, and page-tree resolver that would populate a Page in
// a full parser live outside this module; this struct is the data shape the
// layout core requires, not a parser.
type Page struct {
	CropBox            CropBox
	Letters            []Letter
	ExperimentalAccess ExperimentalAccess
}

// NewPage constructs a Page with the given crop bounds.
func NewPage(bounds geometry.Rectangle) *Page {
	return &Page{CropBox: CropBox{Bounds: bounds}}
}
