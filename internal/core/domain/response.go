package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OfferingsResponse is the top-level shape of a catalog document.
type OfferingsResponse struct {
	Items []OfferingRecord `json:"items" validate:"required,dive"`
}

// OfferingRecord is one catalog record as decoded. Pointer fields let a
// missing key be told apart from an empty value: the keys tagged required
// must be present, while empty values are left to the mapper.
type OfferingRecord struct {
	Type              *string  `json:"type" validate:"required"`
	ID                *string  `json:"id" validate:"required"`
	Name              *string  `json:"name" validate:"required"`
	Image             *string  `json:"image" validate:"required"`
	PriceCurrencyCode *string  `json:"price_currency_code" validate:"required"`
	Price             *string  `json:"price" validate:"required"`
	StarsRating       *float64 `json:"stars_rating"`
	Location          *string  `json:"location"`
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
}

// Response flattens the record into the mapper's input.
func (r OfferingRecord) Response() AttractionResponse {
	return AttractionResponse{
		Type:              deref(r.Type),
		ID:                deref(r.ID),
		Name:              deref(r.Name),
		Image:             deref(r.Image),
		PriceCurrencyCode: deref(r.PriceCurrencyCode),
		Price:             deref(r.Price),
		StarsRating:       r.StarsRating,
		Location:          r.Location,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
	}
}

func (o OfferingsResponse) Responses() []AttractionResponse {
	responses := make([]AttractionResponse, 0, len(o.Items))
	for _, item := range o.Items {
		responses = append(responses, item.Response())
	}
	return responses
}

// AttractionResponse is one wire record of a catalog document. Price arrives
// as a decimal string.
type AttractionResponse struct {
	Type              string   `json:"type"`
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Image             string   `json:"image"`
	PriceCurrencyCode string   `json:"price_currency_code"`
	Price             string   `json:"price"`
	StarsRating       *float64 `json:"stars_rating,omitempty"`
	Location          *string  `json:"location,omitempty"`
	StartDate         *string  `json:"start_date,omitempty"`
	EndDate           *string  `json:"end_date,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseAttractionType normalizes a wire type case-insensitively. Anything
// that is not an exhibition is a venue.
func ParseAttractionType(value string) AttractionType {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "EXHIBITION":
		return AttractionExhibition
	case "VENUE":
		return AttractionVenue
	default:
		return AttractionVenue
	}
}

// ParseCurrency normalizes a wire currency code; unknown codes become EUR.
func ParseCurrency(code string) Currency {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "USD":
		return CurrencyUSD
	case "GBP":
		return CurrencyGBP
	default:
		return CurrencyEUR
	}
}

// ParsePrice parses a decimal price string. Unparsable, negative or
// non-finite values fall back to 0.
func ParsePrice(value string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

// MapToAttraction converts a wire record into a domain Attraction. Raw ids
// are reused across venues and exhibitions upstream, so the id is prefixed
// with the type slug.
func MapToAttraction(r AttractionResponse) Attraction {
	attractionType := ParseAttractionType(r.Type)

	return Attraction{
		ID:                  attractionType.Slug() + "-" + r.ID,
		Name:                r.Name,
		Type:                attractionType,
		Description:         describe(attractionType, r),
		Location:            r.Location,
		ImageURL:            r.Image,
		Rating:              r.StarsRating,
		Price:               ParsePrice(r.Price),
		PriceCurrency:       ParseCurrency(r.PriceCurrencyCode),
		ExhibitionStartDate: r.StartDate,
		ExhibitionEndDate:   r.EndDate,
	}
}

// MapToAttractions maps every record, preserving order.
func MapToAttractions(items []AttractionResponse) []Attraction {
	attractions := make([]Attraction, 0, len(items))
	for _, item := range items {
		attractions = append(attractions, MapToAttraction(item))
	}
	return attractions
}

func describe(t AttractionType, r AttractionResponse) string {
	switch {
	case t == AttractionExhibition && r.Location != nil && r.StartDate != nil && r.EndDate != nil:
		return fmt.Sprintf("Special exhibition at %s.", *r.Location)
	case t == AttractionVenue && r.StarsRating != nil:
		return fmt.Sprintf("Very interesting attraction with a %.1f star rating.", *r.StarsRating)
	default:
		return fmt.Sprintf("Amazing attraction called %s.", r.Name)
	}
}
