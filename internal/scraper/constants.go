package scraper

// Extraction ceilings. Oversized pages are truncated, never rejected,
// so worst-case output stays bounded on pathological input.
const (
	maxParagraphs = 50
	maxLinks      = 100
	maxImages     = 50
	maxTables     = 10
)

// Placeholders used when an element carries no usable text.
const (
	noTitle    = "No Title"
	noLinkText = "[No Text]"
	noAltText  = "No alt text"
)
