package domain

import (
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a flight-offers search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "MAD")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format;
	// empty means a one-way search
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// CurrencyCode is the optional ISO 4217 currency for prices
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// isoDateRegex matches dates in YYYY-MM-DD format.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// currencyRegex matches ISO 4217 currency codes (3 uppercase letters).
var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks every field of the criteria and collects all problems
// into a *ValidationErrors (which satisfies errors.Is with
// ErrInvalidRequest). Returns nil when the criteria is valid.
func (s *SearchCriteria) Validate() error {
	errs := &ValidationErrors{}

	s.validateRoute(errs)
	departure, departureOK := s.validateDepartureDate(errs)
	s.validateReturnDate(errs, departure, departureOK)
	s.validateAdults(errs)
	s.validateCurrency(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (s *SearchCriteria) validateRoute(errs *ValidationErrors) {
	switch {
	case s.Origin == "":
		errs.Add("origin", "origin is required")
	case !iataCodeRegex.MatchString(s.Origin):
		errs.Add("origin", "origin must be a valid 3-letter IATA code")
	}

	switch {
	case s.Destination == "":
		errs.Add("destination", "destination is required")
	case !iataCodeRegex.MatchString(s.Destination):
		errs.Add("destination", "destination must be a valid 3-letter IATA code")
	}

	if s.Origin != "" && s.Origin == s.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (s *SearchCriteria) validateDepartureDate(errs *ValidationErrors) (time.Time, bool) {
	if s.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
		return time.Time{}, false
	}
	if !isoDateRegex.MatchString(s.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	departure, err := time.Parse("2006-01-02", s.DepartureDate)
	if err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
		return time.Time{}, false
	}
	return departure, true
}

func (s *SearchCriteria) validateReturnDate(errs *ValidationErrors, departure time.Time, departureOK bool) {
	if s.ReturnDate == "" {
		return
	}
	if !isoDateRegex.MatchString(s.ReturnDate) {
		errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
		return
	}
	ret, err := time.Parse("2006-01-02", s.ReturnDate)
	if err != nil {
		errs.Add("returnDate", "returnDate is not a valid date")
		return
	}
	if departureOK && ret.Before(departure) {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}
}

func (s *SearchCriteria) validateAdults(errs *ValidationErrors) {
	if s.Adults < 1 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if s.Adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
}

func (s *SearchCriteria) validateCurrency(errs *ValidationErrors) {
	if s.CurrencyCode != "" && !currencyRegex.MatchString(s.CurrencyCode) {
		errs.Add("currencyCode", "currencyCode must be a valid 3-letter ISO 4217 code")
	}
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
}

// RoundTrip reports whether the criteria asks for a return journey.
func (s *SearchCriteria) RoundTrip() bool {
	return s.ReturnDate != ""
}
