package signals

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gofresh/internal/dates"
	"github.com/jonesrussell/gofresh/internal/domain"
)

// linkedDataDateKeys maps each schema.org date property to its trust tier,
// strongest first.
var linkedDataDateKeys = []struct {
	key        string
	confidence float64
}{
	{"dateModified", modifiedConfidence},
	{"datePublished", publishedConfidence},
	{"dateCreated", createdConfidence},
	{"uploadDate", createdConfidence},
}

// linkedDataWrapperKeys are the container properties whose values are
// descended into. Traversal is limited to these so unrelated nested
// objects cannot contribute stray dates.
var linkedDataWrapperKeys = []string{"@graph", "mainEntity", "itemListElement"}

// ExtractJSONLD collects date candidates from every ld+json script block in
// the document. Blocks that fail to decode are skipped.
func ExtractJSONLD(doc *goquery.Document) []domain.Candidate {
	var candidates []domain.Candidate

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}

		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return
		}

		candidates = append(candidates, walkLinkedData(data)...)
	})

	return candidates
}

// walkLinkedData traverses a decoded linked-data value with an explicit
// worklist, visiting objects, top-level arrays, and the recognized wrapper
// containers.
func walkLinkedData(root any) []domain.Candidate {
	var candidates []domain.Candidate

	stack := []any{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch value := node.(type) {
		case map[string]any:
			candidates = append(candidates, objectDates(value)...)
			for _, key := range linkedDataWrapperKeys {
				if child, ok := value[key]; ok {
					stack = append(stack, child)
				}
			}
		case []any:
			for _, child := range value {
				stack = append(stack, child)
			}
		}
	}

	return candidates
}

// objectDates reads the recognized date properties off a single object.
func objectDates(obj map[string]any) []domain.Candidate {
	var candidates []domain.Candidate

	for _, entry := range linkedDataDateKeys {
		value, ok := obj[entry.key]
		if !ok {
			continue
		}

		raw, ok := value.(string)
		if !ok {
			continue
		}

		ts, ok := dates.Parse(raw)
		if !ok {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Label:      "jsonld:" + entry.key,
			Timestamp:  ts,
			Confidence: entry.confidence,
		})
	}

	return candidates
}
