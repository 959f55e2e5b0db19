package rapidtables

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// resolve computes one Layout per key from sample. Full-scan measures and
// classifies every sampled row; the first-row and explicit strategies look at
// the first row only, and explicit never measures.
func resolve[R Record](keys []string, sample []R, cfg *config) []Layout {
	layouts := make([]Layout, len(keys))
	if cfg.strategy != WidthFullScan && len(sample) > 1 {
		sample = sample[:1]
	}
	measure := cfg.strategy != WidthExplicit

	for i, k := range keys {
		width := 0
		switch {
		case !measure && cfg.widths != nil:
			if i < len(cfg.widths) {
				width = cfg.widths[i]
			}
		case !measure:
			width = cfg.fixedWidth
		case cfg.generateHeader:
			width = textWidth(cfg.label(i, k))
		}

		alpha := false
		for _, r := range sample {
			v, ok := r.Value(k)
			if !ok || v == nil {
				continue
			}
			if measure {
				width = max(width, textWidth(cellText(v)))
			}
			if !alpha && !isNumeric(v) {
				alpha = true
			}
		}

		layouts[i] = Layout{Key: k, Width: width, Align: AlignRight}
		if cfg.noAlign || alpha {
			layouts[i].Align = AlignLeft
		}
	}
	return layouts
}

// label returns the header text of column i.
func (c *config) label(i int, key string) string {
	if i < len(c.headers) {
		return c.headers[i]
	}
	return key
}

// textWidth is the display width of s, counted in characters.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(v)
	}
}

// isNumeric reports whether v coerces to a float. Numbers and booleans do;
// strings do when their trimmed text parses. Values with a String or Error
// method are judged by that text, so a time.Duration is text.
func isNumeric(v any) bool {
	switch x := v.(type) {
	case string:
		return parsesAsFloat(x)
	case []byte:
		return parsesAsFloat(string(x))
	case error:
		return parsesAsFloat(x.Error())
	case fmt.Stringer:
		return parsesAsFloat(x.String())
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return true
	case reflect.String:
		return parsesAsFloat(rv.String())
	default:
		return false
	}
}

// parsesAsFloat accepts out-of-range literals such as "1e999", which
// overflow to infinity rather than fail.
func parsesAsFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
