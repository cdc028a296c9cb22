package nlu

import "strings"

// Extractor turns an utterance into the noun phrase believed to name the
// target product.
type Extractor struct {
	tagger Tagger
}

func NewExtractor(tagger Tagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// ItemPhrase lowercases the text, keeps the noun tokens in their original
// order and joins them with single spaces. When no nouns are found, or the
// tagger fails, the lowercased text is returned unchanged so the result is
// never empty unless the input was. Compound nouns are not grouped, only
// concatenated in sequence.
func (e *Extractor) ItemPhrase(text string) string {
	lowered := strings.ToLower(text)
	tokens, err := e.tagger.Tag(lowered)
	if err != nil {
		return lowered
	}
	nouns := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Category == CategoryNoun {
			nouns = append(nouns, tok.Text)
		}
	}
	if len(nouns) == 0 {
		return lowered
	}
	return strings.Join(nouns, " ")
}
