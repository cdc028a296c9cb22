// Package service composes the extraction and matching pipeline into one
// voice-command orchestrator.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/cart"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/catalog"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/intent"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/match"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/nlu"
)

// ErrEmptyText rejects empty or whitespace-only utterances before any
// catalog fetch or cart mutation happens.
var ErrEmptyText = errors.New("text is empty")

// browseLimit caps the generic browse list returned when a find query
// matches nothing.
const browseLimit = 10

// Result is the structured outcome of one voice command. Added and Removed
// are nil when the intent did not resolve to a product, which is a normal
// no-match outcome, not a failure. Cart and Total are populated for add and
// remove intents only.
type Result struct {
	Intent      intent.Intent
	Added       *string
	Removed     *string
	Suggestions []string
	Cart        []domain.CartLine
	Total       float64
}

// VoiceService runs one utterance at a time through classification,
// extraction, matching and the cart mutation. The only state shared between
// requests is the injected cart store.
type VoiceService struct {
	catalog   catalog.Client
	cart      cart.Store
	extractor *nlu.Extractor
	log       *logrus.Logger
}

func NewVoiceService(catalogClient catalog.Client, cartStore cart.Store, tagger nlu.Tagger, log *logrus.Logger) *VoiceService {
	return &VoiceService{
		catalog:   catalogClient,
		cart:      cartStore,
		extractor: nlu.NewExtractor(tagger),
		log:       log,
	}
}

func (s *VoiceService) ProcessVoice(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	action := intent.Classify(text)
	phrase := s.extractor.ItemPhrase(text)
	s.log.WithFields(logrus.Fields{
		"intent": action,
		"item":   phrase,
	}).Debug("voice command classified")

	products, err := s.catalog.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	result := &Result{Intent: action}
	switch action {
	case intent.Add:
		if product, ok := match.BestMatch(products, phrase); ok {
			s.cart.AddOrIncrement(product)
			result.Added = &product.Title
		}
		result.Cart, result.Total = s.cart.Summary()
	case intent.Remove:
		// Removal is cart-local: the query is matched against the cart's own
		// snapshot titles, never against the refreshed catalog.
		if title, ok := s.cart.RemoveOne(phrase); ok {
			result.Removed = &title
		}
		result.Cart, result.Total = s.cart.Summary()
	default:
		result.Suggestions = suggest(products, phrase)
	}
	return result, nil
}

// suggest returns the titles containing the phrase as a substring, or the
// first browseLimit catalog titles when nothing contains it. Token-overlap
// scoring is not used here, substring containment only.
func suggest(products []domain.Product, phrase string) []string {
	query := strings.ToLower(phrase)
	titles := make([]string, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) {
			titles = append(titles, p.Title)
		}
	}
	if len(titles) == 0 {
		for i := 0; i < len(products) && i < browseLimit; i++ {
			titles = append(titles, products[i].Title)
		}
	}
	return titles
}
