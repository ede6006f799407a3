// Package gazetteer maps place names to coordinates.
//
// It is the static lookup table that sits in front of the network: callers insert
// a branch by name and the gazetteer supplies latitude and longitude. Default()
// returns 23 district centres of Sri Lanka. Custom tables load
// from TOML or YAML:
//
//	# places.toml
//	[[place]]
//	name = "Colombo"
//	lat  = 6.9271
//	lon  = 79.9612
//
//	# places.yaml
//	place:
//	  - name: Colombo
//	    lat: 6.9271
//	    lon: 79.9612
//
// Names are trimmed of surrounding spaces and otherwise matched exactly.
package gazetteer
