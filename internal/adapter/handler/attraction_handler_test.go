package handler_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/attraction_wishlist/internal/adapter/catalog"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/handler"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/repository/file"
	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/core/services"
)

const catalogDoc = `{"items":[
	{"type":"VENUE","id":"1","name":"Van Gogh Museum","image":"https://example.com/1.jpg","price_currency_code":"EUR","price":"22.00","stars_rating":4.7,"location":"Amsterdam"},
	{"type":"EXHIBITION","id":"2","name":"Erratic Growth","image":"","price_currency_code":"USD","price":"5","location":"Van Gogh Museum","start_date":"2025-02-01","end_date":"2025-06-30"},
	{"type":"VENUE","id":"3","name":"Vondelpark","image":"","price_currency_code":"EUR","price":"0"}
]}`

type fixture struct {
	handler  *handler.AttractionHandler
	wishlist *services.WishlistService
	out      *bytes.Buffer
}

func newFixture(t *testing.T, storeFs afero.Fs) *fixture {
	t.Helper()

	catalogFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(catalogFs, "/catalogs/offerings.json", []byte(catalogDoc), 0o644))

	catalogSvc := services.NewCatalogService(catalog.NewLoader(catalogFs, "/catalogs", nil), "offerings", nil)
	wishlist := services.NewWishlistService(context.Background(), file.NewWishlistStore(storeFs, "/data/wishlist.json"), nil)
	t.Cleanup(func() { _ = wishlist.Close(context.Background()) })

	out := &bytes.Buffer{}
	return &fixture{
		handler:  handler.NewAttractionHandler(catalogSvc, wishlist, out),
		wishlist: wishlist,
		out:      out,
	}
}

func TestAttractionHandler_List(t *testing.T) {
	f := newFixture(t, afero.NewMemMapFs())

	require.NoError(t, f.handler.List(context.Background(), domain.Filter{}))

	out := f.out.String()
	assert.Contains(t, out, "venue-1")
	assert.Contains(t, out, "22.00 €")
	assert.Contains(t, out, "$5.00")
	assert.Contains(t, out, "Free")
}

func TestAttractionHandler_ListFiltered(t *testing.T) {
	f := newFixture(t, afero.NewMemMapFs())
	exhibitionType := domain.AttractionExhibition

	require.NoError(t, f.handler.List(context.Background(), domain.Filter{Type: &exhibitionType}))

	out := f.out.String()
	assert.Contains(t, out, "exhibition-2")
	assert.NotContains(t, out, "venue-1")
}

func TestAttractionHandler_ListNoMatches(t *testing.T) {
	f := newFixture(t, afero.NewMemMapFs())

	require.NoError(t, f.handler.List(context.Background(), domain.Filter{Query: "zzz"}))

	assert.Equal(t, "No attractions found.\n", f.out.String())
}

func TestAttractionHandler_Show(t *testing.T) {
	f := newFixture(t, afero.NewMemMapFs())

	require.NoError(t, f.handler.Show(context.Background(), "exhibition-2"))

	out := f.out.String()
	assert.Contains(t, out, "Erratic Growth")
	assert.Contains(t, out, "Feb 1, 2025 - Jun 30, 2025")
	assert.Contains(t, out, "Special exhibition at Van Gogh Museum.")
	assert.NotContains(t, out, "In your wishlist")
}

func TestAttractionHandler_ShowUnknown(t *testing.T) {
	f := newFixture(t, afero.NewMemMapFs())

	err := f.handler.Show(context.Background(), "venue-404")

	assert.ErrorIs(t, err, handler.ErrUnknownAttraction)
	assert.Contains(t, f.out.String(), `No attraction with id "venue-404"`)
}

func TestAttractionHandler_AddRemoveToggle(t *testing.T) {
	ctx := context.Background()
	storeFs := afero.NewMemMapFs()
	f := newFixture(t, storeFs)

	require.NoError(t, f.handler.Add(ctx, "venue-1"))
	require.NoError(t, f.handler.Add(ctx, "venue-1"))
	require.NoError(t, f.handler.Toggle(ctx, "exhibition-2"))

	assert.Len(t, f.wishlist.Items(), 2)
	assert.Contains(t, f.out.String(), "Added Van Gogh Museum to your wishlist.")
	assert.Contains(t, f.out.String(), "Van Gogh Museum is already in your wishlist.")

	persisted, err := file.NewWishlistStore(storeFs, "/data/wishlist.json").Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)

	f.out.Reset()
	require.NoError(t, f.handler.Remove(ctx, "venue-1"))
	require.NoError(t, f.handler.Toggle(ctx, "exhibition-2"))
	require.NoError(t, f.handler.Remove(ctx, "venue-3"))

	assert.Empty(t, f.wishlist.Items())
	assert.Equal(t, "Removed Van Gogh Museum from your wishlist.\n"+
		"Removed Erratic Growth from your wishlist.\n"+
		"Vondelpark is not in your wishlist.\n", f.out.String())
}

func TestAttractionHandler_Wishlist(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, afero.NewMemMapFs())

	require.NoError(t, f.handler.Wishlist(ctx))
	assert.Equal(t, "Your wishlist is empty.\n", f.out.String())

	require.NoError(t, f.handler.Add(ctx, "venue-3"))
	f.out.Reset()

	require.NoError(t, f.handler.Wishlist(ctx))
	assert.Contains(t, f.out.String(), "Vondelpark")
	assert.Contains(t, f.out.String(), "*")
}

func TestAttractionHandler_SaveFailureIsReported(t *testing.T) {
	f := newFixture(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := f.handler.Add(context.Background(), "venue-1")

	assert.ErrorIs(t, err, domain.ErrFileOperationFailed)
	assert.Contains(t, f.out.String(), "Could not save your wishlist")
	assert.Contains(t, f.out.String(), "Please try again")
	assert.Len(t, f.wishlist.Items(), 1)
}

func TestAttractionHandler_LoadFailureBlocksMutations(t *testing.T) {
	storeFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(storeFs, "/data/wishlist.json", []byte("{ nope"), 0o644))
	f := newFixture(t, storeFs)

	err := f.handler.Add(context.Background(), "venue-1")

	assert.ErrorIs(t, err, domain.ErrDecodingFailed)
	assert.Contains(t, f.out.String(), "Could not load your wishlist")
	assert.Empty(t, f.wishlist.Items())
}

func TestParseType(t *testing.T) {
	typ, err := handler.ParseType("")
	require.NoError(t, err)
	assert.Nil(t, typ)

	typ, err = handler.ParseType("exhibition")
	require.NoError(t, err)
	assert.Equal(t, domain.AttractionExhibition, *typ)

	_, err = handler.ParseType("museum")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}
