package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopsCriterion_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		criterion StopsCriterion
		want      bool
	}{
		{name: "all", criterion: StopsAll, want: true},
		{name: "nonstop", criterion: StopsNonstop, want: true},
		{name: "1stop", criterion: StopsOne, want: true},
		{name: "2plus", criterion: StopsTwoPlus, want: true},
		{name: "empty string", criterion: StopsCriterion(""), want: false},
		{name: "unknown value", criterion: StopsCriterion("direct"), want: false},
		{name: "case sensitive", criterion: StopsCriterion("Nonstop"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criterion.IsValid())
		})
	}
}

func TestStopsCriterion_Matches(t *testing.T) {
	tests := []struct {
		name       string
		criterion  StopsCriterion
		totalStops int
		want       bool
	}{
		{name: "all passes zero", criterion: StopsAll, totalStops: 0, want: true},
		{name: "all passes many", criterion: StopsAll, totalStops: 5, want: true},
		{name: "nonstop passes zero", criterion: StopsNonstop, totalStops: 0, want: true},
		{name: "nonstop rejects one", criterion: StopsNonstop, totalStops: 1, want: false},
		{name: "1stop passes one", criterion: StopsOne, totalStops: 1, want: true},
		{name: "1stop rejects zero", criterion: StopsOne, totalStops: 0, want: false},
		{name: "1stop rejects two", criterion: StopsOne, totalStops: 2, want: false},
		{name: "2plus passes two", criterion: StopsTwoPlus, totalStops: 2, want: true},
		{name: "2plus passes three", criterion: StopsTwoPlus, totalStops: 3, want: true},
		{name: "2plus rejects one", criterion: StopsTwoPlus, totalStops: 1, want: false},
		// Unrecognized criteria pass everything rather than failing.
		{name: "unknown passes zero", criterion: StopsCriterion("bogus"), totalStops: 0, want: true},
		{name: "unknown passes many", criterion: StopsCriterion("bogus"), totalStops: 4, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criterion.Matches(tt.totalStops))
		})
	}
}

func TestParseStopsCriterion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StopsCriterion
	}{
		{name: "all", input: "all", want: StopsAll},
		{name: "nonstop", input: "nonstop", want: StopsNonstop},
		{name: "1stop", input: "1stop", want: StopsOne},
		{name: "2plus", input: "2plus", want: StopsTwoPlus},
		{name: "empty defaults to all", input: "", want: StopsAll},
		{name: "invalid defaults to all", input: "express", want: StopsAll},
		{name: "wrong case defaults to all", input: "NONSTOP", want: StopsAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStopsCriterion(tt.input))
		})
	}
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 100, Max: 500}

	tests := []struct {
		name   string
		amount float64
		want   bool
	}{
		{name: "inside", amount: 250, want: true},
		{name: "at lower bound", amount: 100, want: true},
		{name: "at upper bound", amount: 500, want: true},
		{name: "below", amount: 99.99, want: false},
		{name: "above", amount: 500.01, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.amount))
		})
	}
}

func TestPriceRange_Span(t *testing.T) {
	assert.Equal(t, float64(400), PriceRange{Min: 100, Max: 500}.Span())
	assert.Equal(t, float64(0), PriceRange{Min: 100, Max: 100}.Span())
}

func TestAirlineSelection_IsAll(t *testing.T) {
	tests := []struct {
		name      string
		selection AirlineSelection
		want      bool
	}{
		{name: "explicit all", selection: AllAirlines(), want: true},
		{name: "specific codes", selection: SelectAirlines("IB", "UX"), want: false},
		{name: "zero value behaves as all", selection: AirlineSelection{}, want: true},
		{name: "tagged all ignores codes", selection: AirlineSelection{All: true, Codes: []string{"IB"}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selection.IsAll())
		})
	}
}

func TestSelectAirlines_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  AirlineSelection
	}{
		{
			name:  "uppercased and sorted",
			codes: []string{"ux", "ib"},
			want:  AirlineSelection{Codes: []string{"IB", "UX"}},
		},
		{
			name:  "duplicates removed",
			codes: []string{"IB", "ib", "IB"},
			want:  AirlineSelection{Codes: []string{"IB"}},
		},
		{
			name:  "blank entries dropped",
			codes: []string{" ", "", "VY"},
			want:  AirlineSelection{Codes: []string{"VY"}},
		},
		{
			name:  "no codes falls back to all",
			codes: nil,
			want:  AllAirlines(),
		},
		{
			name:  "only blank codes falls back to all",
			codes: []string{"", "  "},
			want:  AllAirlines(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectAirlines(tt.codes...))
		})
	}
}

func TestAirlineSelection_Matches(t *testing.T) {
	tests := []struct {
		name       string
		selection  AirlineSelection
		offerCodes []string
		want       bool
	}{
		{
			name:       "all matches anything",
			selection:  AllAirlines(),
			offerCodes: []string{"IB"},
			want:       true,
		},
		{
			name:       "all matches offer without carriers",
			selection:  AllAirlines(),
			offerCodes: nil,
			want:       true,
		},
		{
			name:       "selected carrier matches",
			selection:  SelectAirlines("IB"),
			offerCodes: []string{"IB"},
			want:       true,
		},
		{
			name:       "unselected carrier does not match",
			selection:  SelectAirlines("IB"),
			offerCodes: []string{"UX"},
			want:       false,
		},
		{
			name:       "multi-carrier offer matches when either is selected",
			selection:  SelectAirlines("UX"),
			offerCodes: []string{"IB", "UX"},
			want:       true,
		},
		{
			name:       "case-insensitive membership",
			selection:  SelectAirlines("ib"),
			offerCodes: []string{"IB"},
			want:       true,
		},
		{
			name:       "offer without carriers never matches a specific set",
			selection:  SelectAirlines("IB"),
			offerCodes: nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selection.Matches(tt.offerCodes))
		})
	}
}

func TestAirlineSelection_CodeSet(t *testing.T) {
	t.Run("nil for all airlines", func(t *testing.T) {
		assert.Nil(t, AllAirlines().CodeSet())
	})

	t.Run("set for specific selection", func(t *testing.T) {
		set := SelectAirlines("IB", "UX").CodeSet()
		assert.Len(t, set, 2)
		_, hasIB := set["IB"]
		_, hasUX := set["UX"]
		assert.True(t, hasIB)
		assert.True(t, hasUX)
	})
}

func TestNewFilterState(t *testing.T) {
	bounds := PriceRange{Min: 50, Max: 800}

	state := NewFilterState(bounds)

	assert.Equal(t, StopsAll, state.Stops)
	assert.Equal(t, bounds, state.PriceRange)
	assert.True(t, state.Airlines.IsAll())
}
