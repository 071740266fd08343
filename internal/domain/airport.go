// Package domain contains the core business entities and rules for the
// day-trip flight finder. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

// Airport is the persisted metadata for an airport, keyed by IATA code.
// Records are created on first resolution and never updated or deleted.
type Airport struct {
	// ID is the store-assigned identifier.
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`

	// Code is the IATA airport code (e.g., "BHX"). Globally unique.
	Code string `gorm:"column:code;type:text;uniqueIndex;not null" json:"code"`

	// Name is the full airport name (e.g., "Birmingham Airport").
	Name string `gorm:"column:name;type:text;not null" json:"name"`

	// City is the city the airport serves.
	City string `gorm:"column:city;type:text" json:"city"`

	// Country is the country the airport is located in.
	Country string `gorm:"column:country;type:text" json:"country"`

	// Timezone is the IANA timezone identifier (e.g., "Europe/London").
	Timezone string `gorm:"column:timezone;type:text" json:"timezone"`
}

// TableName overrides the gorm table name.
func (Airport) TableName() string {
	return "airport"
}

// AirportMetadata is the result of an external airport-metadata lookup,
// before it is persisted as an Airport.
type AirportMetadata struct {
	// Code is the IATA airport code.
	Code string

	// ICAO is the four-letter ICAO code, if known.
	ICAO string

	// Name is the full airport name.
	Name string

	// City is the city the airport serves.
	City string

	// Country is the country the airport is located in.
	Country string

	// Timezone is the IANA timezone identifier.
	Timezone string
}
