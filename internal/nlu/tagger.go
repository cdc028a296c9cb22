// Package nlu extracts the item phrase of an utterance using part-of-speech
// tagging. The tagger itself sits behind a narrow port so any tokenizer able
// to distinguish nouns from everything else can back it.
package nlu

// Category is the coarse part-of-speech class the extractor cares about.
type Category int

const (
	CategoryOther Category = iota
	CategoryNoun
)

// Token is one surface form with its coarse category.
type Token struct {
	Text     string
	Category Category
}

// Tagger tokenizes and tags free text.
type Tagger interface {
	Tag(text string) ([]Token, error)
}
