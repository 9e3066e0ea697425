package study

import (
	"fmt"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const (
	maxGroupSize     = 100
	maxRegisterBatch = 1000
	maxHistoryLimit  = 200
)

// DueGroupsInput holds the parameters for building review groups.
type DueGroupsInput struct {
	Deck      string
	GroupSize int
}

func (i *DueGroupsInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
}

// Validate checks all fields and collects all errors.
func (i *DueGroupsInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	if i.GroupSize < 1 || i.GroupSize > maxGroupSize {
		errs = append(errs, domain.FieldError{Field: "group_size", Message: fmt.Sprintf("must be between 1 and %d", maxGroupSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	Deck  string
	Word  string
	Grade domain.ReviewGrade
}

func (i *ReviewCardInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Word = domain.NormalizeWord(i.Word)
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	errs = validateWord(errs, "word", i.Word)
	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewGroupInput holds the parameters for rating a whole review group.
type ReviewGroupInput struct {
	Deck  string
	Words []string
	Grade domain.ReviewGrade
}

func (i *ReviewGroupInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Words = normalizeWords(i.Words)
}

// Validate checks all fields and collects all errors.
func (i *ReviewGroupInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	switch {
	case len(i.Words) == 0:
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	case len(i.Words) > maxGroupSize:
		errs = append(errs, domain.FieldError{Field: "words", Message: fmt.Sprintf("too many (max %d)", maxGroupSize)})
	}
	seen := make(map[string]struct{}, len(i.Words))
	for idx, w := range i.Words {
		errs = validateWord(errs, fmt.Sprintf("words[%d]", idx), w)
		if _, dup := seen[w]; dup && w != "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("words[%d]", idx), Message: "duplicate word in group"})
		}
		seen[w] = struct{}{}
	}
	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UndoReviewInput holds the parameters for undoing a review.
type UndoReviewInput struct {
	Deck string
	Word string
}

func (i *UndoReviewInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Word = domain.NormalizeWord(i.Word)
}

// Validate checks all fields and collects all errors.
func (i *UndoReviewInput) Validate() error {
	return validateCardRef(i.Deck, i.Word)
}

// RegisterWordsInput holds the parameters for adding words to a deck.
type RegisterWordsInput struct {
	Deck  string
	Words []string
}

func (i *RegisterWordsInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Words = normalizeWords(i.Words)
}

// Validate checks all fields and collects all errors.
func (i *RegisterWordsInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	switch {
	case len(i.Words) == 0:
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	case len(i.Words) > maxRegisterBatch:
		errs = append(errs, domain.FieldError{Field: "words", Message: fmt.Sprintf("too many (max %d)", maxRegisterBatch)})
	}
	for idx, w := range i.Words {
		errs = validateWord(errs, fmt.Sprintf("words[%d]", idx), w)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardInput identifies a single card. It is used by the get, restore and
// delete operations.
type CardInput struct {
	Deck string
	Word string
}

func (i *CardInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Word = domain.NormalizeWord(i.Word)
}

// Validate checks all fields and collects all errors.
func (i *CardInput) Validate() error {
	return validateCardRef(i.Deck, i.Word)
}

// ListCardsInput holds the parameters for listing a deck.
type ListCardsInput struct {
	Deck string
}

func (i *ListCardsInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	if errs := validateDeck(nil, i.Deck); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeckInput names a whole deck.
type DeckInput struct {
	Deck string
}

func (i *DeckInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
}

// Validate checks all fields and collects all errors.
func (i *DeckInput) Validate() error {
	if errs := validateDeck(nil, i.Deck); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchCardsInput holds the parameters for a substring search.
type SearchCardsInput struct {
	Deck  string
	Query string
}

func (i *SearchCardsInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Query = domain.NormalizeWord(i.Query)
}

// Validate checks all fields and collects all errors.
func (i *SearchCardsInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	if i.Query == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenameCardInput holds the parameters for changing a card's word.
type RenameCardInput struct {
	Deck    string
	Word    string
	NewWord string
}

func (i *RenameCardInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Word = domain.NormalizeWord(i.Word)
	i.NewWord = domain.NormalizeWord(i.NewWord)
}

// Validate checks all fields and collects all errors.
func (i *RenameCardInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	errs = validateWord(errs, "word", i.Word)
	errs = validateWord(errs, "new_word", i.NewWord)
	if i.Word != "" && i.Word == i.NewWord {
		errs = append(errs, domain.FieldError{Field: "new_word", Message: "must differ from the current word"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardHistoryInput holds the parameters for fetching a card's review history.
type CardHistoryInput struct {
	Deck  string
	Word  string
	Limit int
}

func (i *CardHistoryInput) normalize() {
	i.Deck = domain.NormalizeDeck(i.Deck)
	i.Word = domain.NormalizeWord(i.Word)
}

// Validate checks all fields and collects all errors.
func (i *CardHistoryInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(errs, i.Deck)
	errs = validateWord(errs, "word", i.Word)
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxHistoryLimit)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func validateCardRef(deck, word string) error {
	var errs []domain.FieldError

	errs = validateDeck(errs, deck)
	errs = validateWord(errs, "word", word)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateDeck(errs []domain.FieldError, deck string) []domain.FieldError {
	if deck == "" {
		return append(errs, domain.FieldError{Field: "deck", Message: "required"})
	}
	return errs
}

func validateWord(errs []domain.FieldError, field, word string) []domain.FieldError {
	if word == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func normalizeWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = domain.NormalizeWord(w)
	}
	return out
}
