package scraper

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/24108244-ux/Websites-Scraper/internal/models"
)

var headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// extractMetadata pulls the page title and the description/keywords meta
// tags. A page without a title element gets the "No Title" placeholder;
// missing meta tags yield empty strings.
func extractMetadata(doc *goquery.Document) (title, description, keywords string) {
	title = noTitle
	if t := doc.Find("title").First(); t.Length() > 0 {
		title = NormalizeText(t.Text())
	}

	if content, exists := doc.Find(`meta[name="description"]`).First().Attr("content"); exists {
		description = NormalizeText(content)
	}
	if content, exists := doc.Find(`meta[name="keywords"]`).First().Attr("content"); exists {
		keywords = NormalizeText(content)
	}
	return title, description, keywords
}

// extractHeadings groups normalized heading text by level. All six levels
// are always present in the map, empty or not.
func extractHeadings(doc *goquery.Document) map[string][]string {
	headings := make(map[string][]string, len(headingLevels))
	for _, level := range headingLevels {
		texts := []string{}
		doc.Find(level).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, NormalizeText(s.Text()))
		})
		headings[level] = texts
	}
	return headings
}

// extractParagraphs collects the first maxParagraphs p elements in
// document order. Empty paragraphs are kept.
func extractParagraphs(doc *goquery.Document) []string {
	paragraphs := []string{}
	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxParagraphs {
			return false
		}
		paragraphs = append(paragraphs, NormalizeText(s.Text()))
		return true
	})
	return paragraphs
}

// extractLinks walks the first maxLinks anchors, resolves each href
// against the page base, and keeps only results that validate as
// absolute URLs.
func extractLinks(doc *goquery.Document, base *url.URL) []models.Link {
	links := []models.Link{}
	doc.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxLinks {
			return false
		}
		href, _ := s.Attr("href")
		resolved := resolveURL(base, href)
		if !IsValidURL(resolved) {
			return true
		}
		text := NormalizeText(s.Text())
		if text == "" {
			text = noLinkText
		}
		links = append(links, models.Link{
			Text:       text,
			URL:        resolved,
			IsExternal: isExternal(base, resolved),
		})
		return true
	})
	return links
}

// extractImages walks the first maxImages img elements. The alt text is
// normalized and falls back to a placeholder when the attribute is
// absent; the title attribute is carried raw.
func extractImages(doc *goquery.Document, base *url.URL) []models.Image {
	images := []models.Image{}
	doc.Find("img[src]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxImages {
			return false
		}
		src, _ := s.Attr("src")
		resolved := resolveURL(base, src)
		if !IsValidURL(resolved) {
			return true
		}
		alt := noAltText
		if a, exists := s.Attr("alt"); exists {
			alt = NormalizeText(a)
		}
		images = append(images, models.Image{
			Src:   resolved,
			Alt:   alt,
			Title: s.AttrOr("title", ""),
		})
		return true
	})
	return images
}

// extractTables shapes the first maxTables table elements. Header cells
// are every th in the table; data rows are each tr's cells in order,
// where rows made up solely of th cells count as header rows rather than
// data. Rows with no cells are dropped, and a table left with no data
// rows is dropped entirely.
func extractTables(doc *goquery.Document) []models.Table {
	tables := []models.Table{}
	doc.Find("table").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxTables {
			return false
		}

		headers := []string{}
		s.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, NormalizeText(th.Text()))
		})

		rows := [][]string{}
		s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := []string{}
			headerOnly := true
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				if goquery.NodeName(cell) == "td" {
					headerOnly = false
				}
				cells = append(cells, NormalizeText(cell.Text()))
			})
			if len(cells) == 0 || headerOnly {
				return
			}
			rows = append(rows, cells)
		})

		if len(rows) == 0 {
			return true
		}
		tables = append(tables, models.Table{Headers: headers, Rows: rows})
		return true
	})
	return tables
}
