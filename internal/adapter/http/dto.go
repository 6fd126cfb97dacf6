package http

import (
	"time"

	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/usecase"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SessionID string  `json:"session_id"`
	ExpiresAt string  `json:"expires_at"`
	Provider  string  `json:"provider,omitempty"`
	Cached    bool    `json:"cached"`
	View      ViewDTO `json:"view"`
}

// ViewDTO is the client-facing projection of a filter session.
type ViewDTO struct {
	Offers            []OfferDTO     `json:"offers"`
	PriceBounds       PriceRangeDTO  `json:"price_bounds"`
	AvailableAirlines []AirlineDTO   `json:"available_airlines"`
	BestValueID       string         `json:"best_value_id,omitempty"`
	Filters           FilterStateDTO `json:"filters"`
}

// OfferDTO is the data transfer object for a single offer.
type OfferDTO struct {
	ID          string         `json:"id"`
	Price       PriceDTO       `json:"price"`
	Itineraries []ItineraryDTO `json:"itineraries"`
	TotalStops  int            `json:"total_stops"`
	Airlines    []AirlineDTO   `json:"airlines"`
	BestValue   bool           `json:"best_value"`
}

// PriceDTO represents price information. Total keeps the upstream decimal
// string untouched so no precision is lost in transit.
type PriceDTO struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// ItineraryDTO represents one directional journey.
type ItineraryDTO struct {
	Duration        string       `json:"duration"`
	DurationMinutes int          `json:"duration_minutes"`
	Segments        []SegmentDTO `json:"segments"`
}

// SegmentDTO represents one flight leg within an itinerary.
type SegmentDTO struct {
	Departure     SegmentPointDTO `json:"departure"`
	Arrival       SegmentPointDTO `json:"arrival"`
	CarrierCode   string          `json:"carrier_code"`
	CarrierName   string          `json:"carrier_name"`
	NumberOfStops int             `json:"number_of_stops"`
}

// SegmentPointDTO represents a departure or arrival point. Name carries
// the resolved location display name and is omitted when no dictionary
// entry exists.
type SegmentPointDTO struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name,omitempty"`
	At       string `json:"at"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PriceRangeDTO represents an inclusive price window.
type PriceRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterStateDTO echoes the filter selections a view was computed under.
// It has the same shape as the filter update request, so clients can PATCH
// back exactly what they read. Airlines is omitted when every airline is
// selected.
type FilterStateDTO struct {
	Stops      string        `json:"stops"`
	PriceRange PriceRangeDTO `json:"price_range"`
	Airlines   []string      `json:"airlines,omitempty"`
}

// ToSearchResponseDTO converts a search result into its response DTO.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	return &SearchResponseDTO{
		SessionID: result.SessionID,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		Provider:  result.Provider,
		Cached:    result.Cached,
		View:      ToViewDTO(result.View),
	}
}

// ToViewDTO converts a session view into its response DTO, resolving
// display names through the snapshot dictionaries.
func ToViewDTO(view domain.SessionView) ViewDTO {
	dict := view.Dictionaries

	offers := make([]OfferDTO, len(view.Offers))
	for i, offer := range view.Offers {
		bestValue := view.BestValueID != "" && offer.ID == view.BestValueID
		offers[i] = toOfferDTO(offer, dict, bestValue)
	}

	airlines := make([]AirlineDTO, len(view.AvailableAirlines))
	for i, code := range view.AvailableAirlines {
		airlines[i] = AirlineDTO{Code: code, Name: dict.CarrierName(code)}
	}

	return ViewDTO{
		Offers:            offers,
		PriceBounds:       PriceRangeDTO{Min: view.PriceBounds.Min, Max: view.PriceBounds.Max},
		AvailableAirlines: airlines,
		BestValueID:       view.BestValueID,
		Filters:           toFilterStateDTO(view.State),
	}
}

func toOfferDTO(offer domain.Offer, dict domain.Dictionaries, bestValue bool) OfferDTO {
	itineraries := make([]ItineraryDTO, len(offer.Itineraries))
	for i, it := range offer.Itineraries {
		segments := make([]SegmentDTO, len(it.Segments))
		for j, seg := range it.Segments {
			segments[j] = SegmentDTO{
				Departure:     toSegmentPointDTO(seg.Departure, dict),
				Arrival:       toSegmentPointDTO(seg.Arrival, dict),
				CarrierCode:   seg.CarrierCode,
				CarrierName:   dict.CarrierName(seg.CarrierCode),
				NumberOfStops: seg.NumberOfStops,
			}
		}
		itineraries[i] = ItineraryDTO{
			Duration:        it.Duration,
			DurationMinutes: domain.ParseDurationMinutes(it.Duration),
			Segments:        segments,
		}
	}

	codes := offer.AirlineCodes()
	airlines := make([]AirlineDTO, len(codes))
	for i, code := range codes {
		airlines[i] = AirlineDTO{Code: code, Name: dict.CarrierName(code)}
	}

	return OfferDTO{
		ID:          offer.ID,
		Price:       PriceDTO{Total: offer.Price.Total, Currency: offer.Price.Currency},
		Itineraries: itineraries,
		TotalStops:  offer.TotalStops(),
		Airlines:    airlines,
		BestValue:   bestValue,
	}
}

func toSegmentPointDTO(p domain.SegmentPoint, dict domain.Dictionaries) SegmentPointDTO {
	dto := SegmentPointDTO{IATACode: p.IATACode, At: p.At}
	if name := dict.LocationName(p.IATACode); name != p.IATACode {
		dto.Name = name
	}
	return dto
}

func toFilterStateDTO(state domain.FilterState) FilterStateDTO {
	dto := FilterStateDTO{
		Stops:      string(state.Stops),
		PriceRange: PriceRangeDTO{Min: state.PriceRange.Min, Max: state.PriceRange.Max},
	}
	if !state.Airlines.IsAll() {
		dto.Airlines = state.Airlines.Codes
	}
	return dto
}
