package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBlankNameFails(t *testing.T) {
	_, err := NewDraft("").Build()
	assert.ErrorIs(t, err, ErrBlankName)

	_, err = NewDraft("   ").Build()
	assert.ErrorIs(t, err, ErrBlankName)
}

func TestBuildGeneratesIDOnce(t *testing.T) {
	g, err := NewDraft("Hades").Build()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, g.ID)

	// Rebuilding from the existing game keeps the id.
	updated, err := DraftFrom(g).Build()
	require.NoError(t, err)
	assert.Equal(t, g.ID, updated.ID)
}

func TestDraftFromCarriesAllFields(t *testing.T) {
	d := NewDraft("Stardew Valley")
	d.ThumbnailURL = strPtr("https://example.com/t.jpg")
	d.Steam = &SteamData{AppID: intPtr(413150), Name: strPtr("Stardew Valley")}
	d.Gog = &GogData{GogID: int64Ptr(1453375253)}
	d.SteamRating = &SteamRating{Positive: 98, Negative: 2, Sentiment: SentimentOverwhelmingPositive}
	g, err := d.Build()
	require.NoError(t, err)

	clone, err := DraftFrom(g).Build()
	require.NoError(t, err)
	assert.Equal(t, g.ID, clone.ID)
	assert.Equal(t, g.Name, clone.Name)
	assert.Equal(t, g.ThumbnailURL, clone.ThumbnailURL)
	require.NotNil(t, clone.Steam())
	assert.Equal(t, 413150, *clone.Steam().AppID)
	require.NotNil(t, clone.Gog())
	assert.Equal(t, int64(1453375253), *clone.Gog().GogID)
	assert.Nil(t, clone.Epic())
	require.NotNil(t, clone.Ratings.Steam)
	assert.Equal(t, 98, clone.Ratings.Steam.Positive)
}

func TestStoreSlotWholesaleReplace(t *testing.T) {
	d := NewDraft("Celeste")
	d.Steam = &SteamData{AppID: intPtr(111), Name: strPtr("Celeste")}
	g, err := d.Build()
	require.NoError(t, err)

	// A new Steam slot discards the previous one in full.
	next := DraftFrom(g)
	next.Steam = &SteamData{AppID: intPtr(222)}
	g2, err := next.Build()
	require.NoError(t, err)

	require.NotNil(t, g2.Steam())
	assert.Equal(t, 222, *g2.Steam().AppID)
	assert.Nil(t, g2.Steam().Name)
}

func TestStoreDataNeverNilForPresentKey(t *testing.T) {
	g, err := NewDraft("Outer Wilds").Build()
	require.NoError(t, err)
	assert.Empty(t, g.StoreData)

	d := DraftFrom(g)
	d.Epic = &EpicData{EpicID: strPtr("outer-wilds")}
	g2, err := d.Build()
	require.NoError(t, err)
	for kind, rec := range g2.StoreData {
		assert.NotNil(t, rec, "store %s", kind)
	}
	assert.Len(t, g2.StoreData, 1)
}
