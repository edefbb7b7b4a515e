package catalog

import (
	"fmt"
	"strings"
)

// UnknownProduct is the fallback name for documents carrying no usable
// name field at all.
const UnknownProduct = "Unknown Product"

// ExtractName derives the human-readable product name from a document.
// Preference order: top-level "name", then "product_specific.product_name"
// when product_specific is itself a mapping, then top-level "product_name".
// The first field present wins; documents with none of the three get
// [UnknownProduct].
func ExtractName(doc Document) string {
	if v, ok := doc["name"]; ok {
		return stringify(v)
	}
	if ps, ok := doc["product_specific"].(map[string]any); ok {
		if v, ok := ps["product_name"]; ok {
			return stringify(v)
		}
	}
	if v, ok := doc["product_name"]; ok {
		return stringify(v)
	}
	return UnknownProduct
}

// ExtractShortID returns the canonical short identifier for a document:
// a non-empty string open_xpd_uuid wins verbatim; otherwise the filename
// stem stands in for it.
func ExtractShortID(doc Document, filename string) string {
	if id, ok := doc["open_xpd_uuid"].(string); ok && id != "" {
		return id
	}
	return StemOf(filename)
}

// StemOf strips one trailing .yaml or .yml suffix from a filename.
// Matching is case-sensitive and exact; nothing else is stripped.
func StemOf(filename string) string {
	if s, ok := strings.CutSuffix(filename, ".yaml"); ok {
		return s
	}
	if s, ok := strings.CutSuffix(filename, ".yml"); ok {
		return s
	}
	return filename
}

// OptionalField returns the value of key rendered as a string, or ""
// when absent. Nil values also render as "" so CSV cells never carry a
// literal null token.
func OptionalField(doc Document, key string) string {
	v, ok := doc[key]
	if !ok {
		return ""
	}
	return stringify(v)
}

// stringify renders a YAML scalar for CSV output. Numbers keep their
// decoded form (12.5 -> "12.5"); nil renders empty.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ProductRecord is the transient extraction result for one catalog file.
// It exists only long enough to become a CSV row.
type ProductRecord struct {
	Region       string
	Category     string
	UUID         string
	Name         string
	GWP          string
	DeclaredUnit string
}

// RecordFrom extracts a ProductRecord from a successfully walked entry.
func RecordFrom(e Entry) ProductRecord {
	return ProductRecord{
		Region:       e.Region,
		Category:     e.Category,
		UUID:         ExtractShortID(e.Doc, e.Filename),
		Name:         ExtractName(e.Doc),
		GWP:          OptionalField(e.Doc, "gwp"),
		DeclaredUnit: OptionalField(e.Doc, "declared_unit"),
	}
}
