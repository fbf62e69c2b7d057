// Package phoneme converts text into timed phoneme events using simple
// rule-based letter mapping. It carries no linguistic context; swapping in a
// real phonetic engine only needs to keep the word-to-symbols shape.
package phoneme

import "strings"

// Event is one phoneme positioned on the animation timeline, in seconds.
type Event struct {
	Symbol   string
	Start    float64
	Duration float64
}

// End returns the event's end time.
func (e Event) End() float64 { return e.Start + e.Duration }

const (
	// Silence is the symbol emitted for inter-word pauses.
	Silence = "sil"

	phonemeDuration = 0.08 // average spoken phoneme length
	wordPause       = 0.1  // silence appended after each word
)

var vowels = map[byte]string{
	'A': "AE",
	'E': "EH",
	'I': "IH",
	'O': "AO",
	'U': "AH",
}

const consonants = "BPMFVSZTDNLRKGWY"

// WordToPhonemes converts a single word into its phoneme symbols. The
// digraphs TH, SH and CH are matched first, in that order; vowels map to
// their nearest ARPABET symbol; consonants in BPMFVSZTDNLRKGWY map to
// themselves. Every other character is skipped, so C, H, J, Q and X
// contribute nothing outside a digraph. That asymmetry is intentional:
// downstream timing depends on exactly which letters produce events.
func WordToPhonemes(word string) []string {
	word = strings.ToUpper(word)

	var symbols []string
	for i := 0; i < len(word); {
		if i+1 < len(word) {
			switch word[i : i+2] {
			case "TH", "SH", "CH":
				symbols = append(symbols, word[i:i+2])
				i += 2
				continue
			}
		}

		c := word[i]
		if sym, ok := vowels[c]; ok {
			symbols = append(symbols, sym)
		} else if strings.IndexByte(consonants, c) >= 0 {
			symbols = append(symbols, string(c))
		}
		i++
	}
	return symbols
}

// TextToPhonemes converts whitespace-separated text into a contiguous
// timeline of phoneme events: each phoneme lasts 80ms and every word is
// followed by a 100ms silence. Whitespace-only input yields an empty
// timeline.
func TextToPhonemes(text string) []Event {
	var events []Event
	offset := 0.0

	for _, word := range strings.Fields(text) {
		for _, sym := range WordToPhonemes(word) {
			events = append(events, Event{Symbol: sym, Start: offset, Duration: phonemeDuration})
			offset += phonemeDuration
		}
		events = append(events, Event{Symbol: Silence, Start: offset, Duration: wordPause})
		offset += wordPause
	}
	return events
}
