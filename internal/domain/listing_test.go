package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() ListingDraft {
	return ListingDraft{
		Title:       "Bike",
		Description: "A sturdy city bike.",
		Price:       50,
		City:        "Lyon",
		CategoryID:  2,
	}
}

func TestValidateDraftAcceptsValidInput(t *testing.T) {
	require.NoError(t, ValidateDraft(validDraft()))
}

func TestValidateDraftChecksInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ListingDraft)
		want   ValidationKind
	}{
		{name: "empty title", mutate: func(d *ListingDraft) { d.Title = "" }, want: MissingField},
		{name: "blank city", mutate: func(d *ListingDraft) { d.City = "   " }, want: MissingField},
		{name: "zero price", mutate: func(d *ListingDraft) { d.Price = 0 }, want: MissingField},
		{name: "zero category", mutate: func(d *ListingDraft) { d.CategoryID = 0 }, want: MissingField},
		{name: "short title", mutate: func(d *ListingDraft) { d.Title = "ab" }, want: TooShort},
		{name: "short city", mutate: func(d *ListingDraft) { d.City = "Pz" }, want: TooShort},
		{name: "short description wins over description floor", mutate: func(d *ListingDraft) { d.Description = "ab" }, want: TooShort},
		{name: "description under ten chars", mutate: func(d *ListingDraft) { d.Description = "too small" }, want: DescriptionTooShort},
		{name: "negative price", mutate: func(d *ListingDraft) { d.Price = -5 }, want: InvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft)
			verr, ok := IsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tt.want, verr.Kind)
		})
	}
}

func TestValidateDraftShortCircuitsOnFirstFailure(t *testing.T) {
	// Both the title and the description are invalid; presence is checked
	// before lengths, so the missing description wins.
	draft := validDraft()
	draft.Title = "ab"
	draft.Description = ""

	err := ValidateDraft(draft)
	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, MissingField, verr.Kind)
}

func TestParsePriceStrict(t *testing.T) {
	price, err := ParsePrice(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, price)

	for _, raw := range []string{"", "abc", "12.5", "1e3", "40 eur"} {
		_, err := ParsePrice(raw)
		verr, ok := IsValidation(err)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, InvalidPrice, verr.Kind)
	}
}

func TestPatchApplyMergesOnlySetFields(t *testing.T) {
	listing := Listing{
		ID:          1,
		Title:       "Bike",
		Description: "A sturdy city bike.",
		Price:       50,
		City:        "Lyon",
		Category:    CategoryRef{ID: 2, Name: "Vehicles"},
	}

	newTitle := "Road bike"
	newPrice := 75
	draft := ListingPatch{Title: &newTitle, Price: &newPrice}.Apply(listing)

	assert.Equal(t, "Road bike", draft.Title)
	assert.Equal(t, 75, draft.Price)
	assert.Equal(t, "A sturdy city bike.", draft.Description)
	assert.Equal(t, "Lyon", draft.City)
	assert.Equal(t, CategoryID(2), draft.CategoryID)
}

func TestPatchIsZero(t *testing.T) {
	assert.True(t, ListingPatch{}.IsZero())

	city := "Nice"
	assert.False(t, ListingPatch{City: &city}.IsZero())
}
