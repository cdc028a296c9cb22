package nlu

import (
	prose "github.com/jdkato/prose/v2"
)

// ProseTagger backs the Tagger port with the prose POS model.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (ProseTagger) Tag(text string) ([]Token, error) {
	// Entity extraction is not needed, only tokenization and tagging.
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{Text: tok.Text, Category: categoryFor(tok.Tag)})
	}
	return tokens, nil
}

// categoryFor maps Penn Treebank tags to the coarse categories the extractor
// uses. NN/NNS are common nouns, NNP/NNPS proper nouns.
func categoryFor(tag string) Category {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return CategoryNoun
	default:
		return CategoryOther
	}
}
