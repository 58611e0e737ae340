package lexicon

import (
	"sort"
	"strings"
)

// phrase is one multi-word idiom rewritten into a single pseudo-token before
// per-token classification. The fused form is itself a dictionary key.
type phrase struct {
	words []string
	fused string
}

func newPhrase(surface, fused string) phrase {
	words := strings.Fields(surface)
	if fused == "" {
		fused = strings.Join(words, "_")
	}
	return phrase{words: words, fused: fused}
}

// fusedPhrases lists every known idiom. Variants of the same idiom share one
// fused form so the dictionary needs a single key per idiom. The slice is
// sorted longest-first at init so overlapping idioms cannot be partially
// matched.
var fusedPhrases = buildPhrases([]phrase{
	// Greetings and pleasantries.
	newPhrase("good morning", ""),
	newPhrase("good evening", ""),
	newPhrase("good afternoon", ""),
	newPhrase("buenos dias", ""),
	newPhrase("buenos días", "buenos_dias"),
	newPhrase("buenas tardes", ""),
	newPhrase("buenas noches", ""),
	newPhrase("صباح الخير", ""),
	newPhrase("مساء الخير", ""),
	newPhrase("thank you", ""),
	newPhrase("muchas gracias", ""),
	newPhrase("por favor", ""),
	newPhrase("من فضلك", ""),
	newPhrase("لو سمحت", ""),
	newPhrase("go ahead", ""),
	newPhrase("do it", ""),
	newPhrase("i dont understand", "dont_understand"),
	newPhrase("i don't understand", "dont_understand"),
	newPhrase("dont understand", "dont_understand"),
	newPhrase("no entiendo", ""),
	newPhrase("مش فاهم", ""),

	// Question and evaluation idioms.
	newPhrase("how much", ""),
	newPhrase("how many", ""),
	newPhrase("too much", ""),
	newPhrase("too little", ""),
	newPhrase("too small", ""),
	newPhrase("too expensive", ""),
	newPhrase("too high", ""),
	newPhrase("too low", ""),

	// Command idioms.
	newPhrase("send it again", ""),
	newPhrase("otra vez", ""),
	newPhrase("speed it up", "speed_up"),
	newPhrase("speed up", ""),
	newPhrase("change the amount", "change_amount"),
	newPhrase("change amount", ""),
	newPhrase("change the address", "change_address"),
	newPhrase("change address", ""),
	newPhrase("change the fee", "change_fee"),
	newPhrase("change fee", ""),
	newPhrase("change speed", ""),
	newPhrase("very fast", ""),
	newPhrase("very slow", ""),
})

func buildPhrases(phrases []phrase) []phrase {
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i].words) > len(phrases[j].words)
	})
	return phrases
}
