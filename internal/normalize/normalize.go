// Package normalize prepares raw SAHAL transcripts for parsing: it strips
// the app's timestamp banners and splits the text into per-notification
// blocks.
package normalize

import (
	"regexp"
	"strings"
)

// Sentinel is the literal marker that introduces each notification in an
// exported transcript.
const Sentinel = "[SAHAL]"

// bannerPattern matches timestamp banners the messaging app inserts between
// notifications, e.g. "Monday, September 2, 2024 · 10:55 PM". The time may
// be separated from AM/PM by a narrow no-break space (U+202F).
var bannerPattern = regexp.MustCompile(
	`(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday), .*?\d{4} · \d{1,2}:\d{2}(?:\x{202F}|\s)?(?:AM|PM)`,
)

// Clean removes every timestamp banner from text and trims surrounding
// whitespace. It is idempotent: Clean(Clean(x)) == Clean(x).
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(bannerPattern.ReplaceAllString(text, ""))
}

// SplitBlocks partitions text into notification blocks on the sentinel
// marker. Each block is trimmed; blocks that are empty after trimming are
// dropped. Document order is preserved.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, piece := range strings.Split(text, Sentinel) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			blocks = append(blocks, piece)
		}
	}
	return blocks
}
