package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/core/services"
)

var ErrUnknownAttraction = errors.New("unknown attraction")

// AttractionHandler renders catalog and wishlist operations as plain text.
type AttractionHandler struct {
	catalog  *services.CatalogService
	wishlist *services.WishlistService
	out      io.Writer
}

func NewAttractionHandler(catalog *services.CatalogService, wishlist *services.WishlistService, out io.Writer) *AttractionHandler {
	return &AttractionHandler{catalog: catalog, wishlist: wishlist, out: out}
}

func (h *AttractionHandler) List(ctx context.Context, filter domain.Filter) error {
	if _, err := h.catalog.Load(ctx); err != nil {
		return h.fail("Could not load attractions", err)
	}

	attractions := h.catalog.Filter(filter)
	if len(attractions) == 0 {
		fmt.Fprintln(h.out, "No attractions found.")
		return nil
	}

	h.table(attractions)
	return nil
}

func (h *AttractionHandler) Show(ctx context.Context, id string) error {
	attraction, err := h.lookup(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s\n", attraction.Name)
	fmt.Fprintf(h.out, "  Type:     %s\n", attraction.Type)
	if attraction.Location != nil {
		fmt.Fprintf(h.out, "  Location: %s\n", *attraction.Location)
	}
	if attraction.Rating != nil {
		fmt.Fprintf(h.out, "  Rating:   %.1f\n", *attraction.Rating)
	}
	fmt.Fprintf(h.out, "  Price:    %s\n", attraction.FormattedPrice())
	if period := attraction.ExhibitionPeriod(); period != "" {
		fmt.Fprintf(h.out, "  Dates:    %s\n", period)
	}
	if attraction.ImageURL != "" {
		fmt.Fprintf(h.out, "  Image:    %s\n", attraction.ImageURL)
	}
	fmt.Fprintf(h.out, "  %s\n", attraction.Description)

	if h.wishlist.IsInWishlist(attraction) {
		fmt.Fprintln(h.out, "  In your wishlist")
	}

	return nil
}

func (h *AttractionHandler) Wishlist(ctx context.Context) error {
	if err := h.loadError(); err != nil {
		return err
	}

	items := h.wishlist.Items()
	if len(items) == 0 {
		fmt.Fprintln(h.out, "Your wishlist is empty.")
		return nil
	}

	h.table(items)
	return nil
}

func (h *AttractionHandler) Add(ctx context.Context, id string) error {
	return h.mutate(ctx, id, func(a domain.Attraction) string {
		if h.wishlist.IsInWishlist(a) {
			return fmt.Sprintf("%s is already in your wishlist.", a.Name)
		}
		h.wishlist.AddToWishlist(a)
		return fmt.Sprintf("Added %s to your wishlist.", a.Name)
	})
}

func (h *AttractionHandler) Remove(ctx context.Context, id string) error {
	return h.mutate(ctx, id, func(a domain.Attraction) string {
		if !h.wishlist.IsInWishlist(a) {
			return fmt.Sprintf("%s is not in your wishlist.", a.Name)
		}
		h.wishlist.RemoveFromWishlist(a)
		return fmt.Sprintf("Removed %s from your wishlist.", a.Name)
	})
}

func (h *AttractionHandler) Toggle(ctx context.Context, id string) error {
	return h.mutate(ctx, id, func(a domain.Attraction) string {
		if h.wishlist.ToggleWishlist(a) {
			return fmt.Sprintf("Added %s to your wishlist.", a.Name)
		}
		return fmt.Sprintf("Removed %s from your wishlist.", a.Name)
	})
}

// mutate applies change and waits for the write so the process can exit
// with the outcome known.
func (h *AttractionHandler) mutate(ctx context.Context, id string, change func(domain.Attraction) string) error {
	if err := h.loadError(); err != nil {
		return err
	}

	attraction, err := h.lookup(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, change(attraction))

	if err := h.wishlist.Flush(ctx); err != nil {
		return err
	}
	if err := h.wishlist.LastError(); err != nil {
		return h.fail("Could not save your wishlist", err)
	}

	return nil
}

// lookup searches the catalog first, then the wishlist, so entries that left
// the catalog can still be shown and removed.
func (h *AttractionHandler) lookup(ctx context.Context, id string) (domain.Attraction, error) {
	if _, err := h.catalog.Load(ctx); err != nil {
		return domain.Attraction{}, h.fail("Could not load attractions", err)
	}

	if attraction, ok := h.catalog.Find(id); ok {
		return attraction, nil
	}

	for _, item := range h.wishlist.Items() {
		if item.ID == id {
			return item, nil
		}
	}

	fmt.Fprintf(h.out, "No attraction with id %q.\n", id)
	return domain.Attraction{}, fmt.Errorf("%w: %s", ErrUnknownAttraction, id)
}

func (h *AttractionHandler) loadError() error {
	if h.wishlist.State() != services.WishlistLoadFailed {
		return nil
	}
	return h.fail("Could not load your wishlist", h.wishlist.LastError())
}

func (h *AttractionHandler) fail(title string, err error) error {
	fmt.Fprintf(h.out, "%s: %v\n", title, err)
	if hint := domain.RecoverySuggestion(err); hint != "" {
		fmt.Fprintln(h.out, hint)
	}
	return err
}

func (h *AttractionHandler) table(attractions []domain.Attraction) {
	tw := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPRICE\t")
	for _, a := range attractions {
		mark := ""
		if h.wishlist.IsInWishlist(a) {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.FormattedPrice(), mark)
	}
	tw.Flush()
}

// ParseType accepts a type name in any case. An empty name means no filter.
func ParseType(name string) (*domain.AttractionType, error) {
	if name == "" {
		return nil, nil
	}

	for _, t := range []domain.AttractionType{domain.AttractionExhibition, domain.AttractionVenue} {
		if strings.EqualFold(name, string(t)) {
			return &t, nil
		}
	}

	return nil, domain.InvalidData(fmt.Sprintf("unknown attraction type %q", name))
}
