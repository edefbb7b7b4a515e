// Package catalog reads the on-disk product catalog: YAML document
// loading, field extraction with fallback rules, and the
// region/category/file walk shared by the report and rename tools.
//
// Layout consumed: <base>/<region>/<category>/<id>.yaml, where <region>
// comes from a fixed known set and <category> is any subdirectory except
// the reserved "states" folder.
package catalog
