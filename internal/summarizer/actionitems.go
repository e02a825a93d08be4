package summarizer

import "strings"

const (
	actionItemsHeader = "action items:"
	// leading enumeration and bullet characters
	itemMarkers = "-*0123456789. "
)

// ParseActionItems turns the raw extraction output into one cleaned item per
// line. Blank lines and lines restating the "Action Items:" header are dropped,
// leading numbering and bullets are stripped, order is kept and duplicates are
// not merged.
func ParseActionItems(raw string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(strings.ToLower(line), actionItemsHeader) {
			continue
		}
		line = strings.TrimLeft(line, itemMarkers)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
