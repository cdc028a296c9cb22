package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
)

func TestScore_TokenOverlap(t *testing.T) {
	assert.Equal(t, 2, Score("Red Running Shoes", "running shoes"))
	assert.Equal(t, 1, Score("Red Running Shoes", "blue shoes"))
	assert.Equal(t, 0, Score("Red Running Shoes", "laptop"))
}

func TestScore_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, 2, Score("RUNNING-SHOES!", "running shoes"))
	assert.Equal(t, 1, Score("USB-C cable (2m)", "cable"))
}

func TestScore_Symmetric(t *testing.T) {
	a, b := "Red Running Shoes", "i want running shoes now"
	assert.Equal(t, Score(a, b), Score(b, a))
}

func TestScore_DuplicateTokensCountOnce(t *testing.T) {
	assert.Equal(t, 1, Score("shoes shoes shoes", "shoes"))
}

func TestBestMatch_PicksHighestScore(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "Blue Jacket"},
		{ID: 2, Title: "Red Running Shoes"},
		{ID: 3, Title: "Running Socks"},
	}

	got, ok := BestMatch(products, "running shoes")
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestBestMatch_TieKeepsEarlierProduct(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "Running Shirt"},
		{ID: 2, Title: "Running Shorts"},
	}

	got, ok := BestMatch(products, "running")
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
}

func TestBestMatch_NoOverlapIsNoMatch(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "Blue Jacket"},
		{ID: 2, Title: "Red Running Shoes"},
	}

	_, ok := BestMatch(products, "xyz123")
	assert.False(t, ok)

	_, ok = BestMatch(nil, "anything")
	assert.False(t, ok)
}
