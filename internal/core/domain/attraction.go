package domain

import (
	"fmt"
	"strings"
	"time"
)

type AttractionType string

const (
	AttractionExhibition AttractionType = "Exhibition"
	AttractionVenue      AttractionType = "Venue"
)

// Slug is the lower-case form used to prefix attraction ids.
func (t AttractionType) Slug() string {
	return strings.ToLower(string(t))
}

func (t AttractionType) IsValid() bool {
	return t == AttractionExhibition || t == AttractionVenue
}

func (t *AttractionType) UnmarshalText(text []byte) error {
	v := AttractionType(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown attraction type %q", string(text))
	}
	*t = v
	return nil
}

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	default:
		return "€"
	}
}

func (c Currency) IsValid() bool {
	return c == CurrencyEUR || c == CurrencyUSD || c == CurrencyGBP
}

func (c *Currency) UnmarshalText(text []byte) error {
	v := Currency(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown currency %q", string(text))
	}
	*c = v
	return nil
}

// Attraction is a venue or exhibition as shown in the catalog and the wishlist.
// Values are treated as immutable once mapped.
type Attraction struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Type                AttractionType `json:"type"`
	Description         string         `json:"description"`
	Location            *string        `json:"location,omitempty"`
	ImageURL            string         `json:"imageURL"`
	Rating              *float64       `json:"rating,omitempty"`
	Price               float64        `json:"price"`
	PriceCurrency       Currency       `json:"priceCurrency"`
	ExhibitionStartDate *string        `json:"exhibitionStartDate,omitempty"`
	ExhibitionEndDate   *string        `json:"exhibitionEndDate,omitempty"`
}

func (a Attraction) IsFree() bool {
	return a.Price == 0
}

// FormattedPrice renders the price for display, e.g. "10.00 €" or "$10.00".
func (a Attraction) FormattedPrice() string {
	if a.IsFree() {
		return "Free"
	}

	switch a.PriceCurrency {
	case CurrencyUSD, CurrencyGBP:
		return fmt.Sprintf("%s%.2f", a.PriceCurrency.Symbol(), a.Price)
	default:
		return fmt.Sprintf("%.2f %s", a.Price, CurrencyEUR.Symbol())
	}
}

// ExhibitionPeriod returns "Feb 1, 2025 - Jun 30, 2025" when both dates are set.
func (a Attraction) ExhibitionPeriod() string {
	if a.ExhibitionStartDate == nil || a.ExhibitionEndDate == nil {
		return ""
	}
	return FormatDate(*a.ExhibitionStartDate) + " - " + FormatDate(*a.ExhibitionEndDate)
}

const (
	wireDateLayout    = "2006-01-02"
	displayDateLayout = "Jan 2, 2006"
)

// FormatDate converts a yyyy-MM-dd wire date into display form. Input that
// does not parse is returned unchanged.
func FormatDate(value string) string {
	t, err := time.Parse(wireDateLayout, value)
	if err != nil {
		return value
	}
	return t.Format(displayDateLayout)
}
