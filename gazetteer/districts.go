package gazetteer

// districts lists the Sri Lanka district centres, in the order the network
// historically connected them.
var districts = []Entry{
	{Name: "Colombo", Lat: 6.9271, Lon: 79.9612},
	{Name: "Kandy", Lat: 7.2906, Lon: 80.6337},
	{Name: "Galle", Lat: 6.0328, Lon: 80.2200},
	{Name: "Jaffna", Lat: 9.6615, Lon: 80.0376},
	{Name: "Anuradhapura", Lat: 8.3114, Lon: 80.4037},
	{Name: "Kalutara", Lat: 6.5752, Lon: 79.9684},
	{Name: "Batticaloa", Lat: 7.7036, Lon: 81.6902},
	{Name: "Gampaha", Lat: 7.0401, Lon: 80.2085},
	{Name: "Matara", Lat: 5.9524, Lon: 80.5316},
	{Name: "Polonnaruwa", Lat: 7.9436, Lon: 81.0158},
	{Name: "Ratnapura", Lat: 6.6942, Lon: 80.3933},
	{Name: "Badulla", Lat: 6.9828, Lon: 81.0594},
	{Name: "Monaragala", Lat: 6.8686, Lon: 81.5020},
	{Name: "Hambantota", Lat: 6.1247, Lon: 81.1229},
	{Name: "Kurunegala", Lat: 7.4790, Lon: 80.3484},
	{Name: "Vavuniya", Lat: 8.7598, Lon: 80.5081},
	{Name: "Trincomalee", Lat: 8.5678, Lon: 81.2331},
	{Name: "Ampara", Lat: 7.2993, Lon: 81.6874},
	{Name: "Mullaitivu", Lat: 8.8183, Lon: 81.5588},
	{Name: "Kegalle", Lat: 7.2422, Lon: 80.3614},
	{Name: "NuwaraEliya", Lat: 6.9651, Lon: 80.7805},
	{Name: "Kalmunai", Lat: 7.4246, Lon: 81.8494},
	{Name: "Matale", Lat: 7.4811, Lon: 80.6095},
}

// Default returns a fresh table holding the built-in district centres.
func Default() *Gazetteer {
	g := New()
	for _, e := range districts {
		// Built-in entries are valid and unique.
		_ = g.Add(e.Name, e.Coordinate())
	}

	return g
}

// DefaultOrder returns the built-in district names in their historical order.
func DefaultOrder() []string {
	out := make([]string, len(districts))
	for i, e := range districts {
		out[i] = e.Name
	}

	return out
}
