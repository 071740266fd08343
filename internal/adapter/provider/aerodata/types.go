package aerodata

// boardResponse is the provider's schedule-board payload for one airport
// and time window. Only the fields the finder consumes are mapped.
type boardResponse struct {
	Departures []boardLeg `json:"departures"`
	Arrivals   []boardLeg `json:"arrivals"`
}

type boardLeg struct {
	Number    string        `json:"number"`
	Airline   boardAirline  `json:"airline"`
	Departure boardMovement `json:"departure"`
	Arrival   boardMovement `json:"arrival"`
}

type boardAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// boardMovement is one side of a leg. The airport block is omitted on the
// side the board was queried for.
type boardMovement struct {
	Airport       boardAirport  `json:"airport"`
	ScheduledTime scheduledTime `json:"scheduledTime"`
}

type boardAirport struct {
	IATA string `json:"iata"`
}

type scheduledTime struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}
