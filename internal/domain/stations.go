package domain

// stationZones groups post display names by IANA timezone.
var stationZones = map[string][]string{
	"Africa/Abidjan":     {"Abidjan"},
	"Africa/Accra":       {"Accra"},
	"Africa/Addis_Ababa": {"Addis Ababa Central", "Addis Ababa School"},
	"Africa/Algiers":     {"Algiers"},
	"Africa/Dakar":       {"Dakar"},
	"Africa/Kampala":     {"Kampala"},
	"Africa/Kinshasa":    {"Kinshasa"},
	"Africa/Lagos":       {"Abuja", "Lagos"},
	"Africa/Nairobi":     {"Nairobi"},
	"America/Bogota":     {"Bogota"},
	"America/Lima":       {"Lima"},
	"Asia/Almaty":        {"Almaty"},
	"Asia/Baghdad":       {"Baghdad"},
	"Asia/Bahrain":       {"Manama"},
	"Asia/Colombo":       {"Colombo"},
	"Asia/Dhaka":         {"Dhaka"},
	"Asia/Dubai":         {"Abu Dhabi", "Dubai"},
	"Asia/Ho_Chi_Minh":   {"Hanoi", "Ho Chi Minh City"},
	"Asia/Jakarta":       {"Jakarta Central", "Jakarta South"},
	"Asia/Kathmandu":     {"Kathmandu", "Kathmandu Phora Durbar"},
	"Asia/Kolkata":       {"New Delhi", "Chennai", "Kolkata", "Mumbai", "Hyderabad"},
	"Asia/Kuwait":        {"Kuwait City"},
	"Asia/Shanghai":      {"Beijing", "Chengdu", "Guangzhou", "Shanghai", "Shenyang"},
	"Asia/Tashkent":      {"Tashkent"},
	"Asia/Ulaanbaatar":   {"Ulaanbaatar"},
	"Europe/Belgrade":    {"Pristina"},
	"Europe/Sarajevo":    {"Sarajevo"},
}

// stationCoordinates locates each post's monitor.
var stationCoordinates = map[string]Coordinates{
	"Abidjan":                {Latitude: 5.35613, Longitude: -3.98548},
	"Abu Dhabi":              {Latitude: 24.42387, Longitude: 54.43420},
	"Abuja":                  {Latitude: 9.04114, Longitude: 7.47830},
	"Accra":                  {Latitude: 5.58106, Longitude: -0.16982},
	"Addis Ababa Central":    {Latitude: 9.05867, Longitude: 38.76131},
	"Addis Ababa School":     {Latitude: 8.99883, Longitude: 38.72588},
	"Algiers":                {Latitude: 36.75946, Longitude: 3.03434},
	"Almaty":                 {Latitude: 43.21226, Longitude: 76.93218},
	"Baghdad":                {Latitude: 33.29827, Longitude: 44.39588},
	"Beijing":                {Latitude: 39.95, Longitude: 116.47},
	"Bogota":                 {Latitude: 4.63753, Longitude: -74.09429},
	"Chengdu":                {Latitude: 30.63, Longitude: 104.07},
	"Chennai":                {Latitude: 13.05237, Longitude: 80.25193},
	"Colombo":                {Latitude: 6.90961, Longitude: 79.85254},
	"Dakar":                  {Latitude: 14.73760, Longitude: -17.50580},
	"Dhaka":                  {Latitude: 23.79636, Longitude: 90.42400},
	"Dubai":                  {Latitude: 25.25548, Longitude: 55.31245},
	"Guangzhou":              {Latitude: 23.12, Longitude: 113.32},
	"Hanoi":                  {Latitude: 21.02183, Longitude: 105.81842},
	"Ho Chi Minh City":       {Latitude: 10.78253, Longitude: 106.70058},
	"Hyderabad":              {Latitude: 17.44346, Longitude: 78.47466},
	"Jakarta Central":        {Latitude: -6.18182, Longitude: 106.83389},
	"Jakarta South":          {Latitude: -6.23650, Longitude: 106.79330},
	"Kampala":                {Latitude: 0.29949, Longitude: 32.59208},
	"Kathmandu":              {Latitude: 27.73811, Longitude: 85.33588},
	"Kathmandu Phora Durbar": {Latitude: 27.71250, Longitude: 85.31580},
	"Kinshasa":               {Latitude: -4.30125, Longitude: 15.31166},
	"Kolkata":                {Latitude: 22.54714, Longitude: 88.35105},
	"Kuwait City":            {Latitude: 29.37590, Longitude: 47.97740},
	"Lagos":                  {Latitude: 6.43452, Longitude: 3.42278},
	"Lima":                   {Latitude: -12.09858, Longitude: -76.96856},
	"Manama":                 {Latitude: 26.20416, Longitude: 50.57087},
	"Mumbai":                 {Latitude: 19.06602, Longitude: 72.86838},
	"Nairobi":                {Latitude: -1.23395, Longitude: 36.80495},
	"New Delhi":              {Latitude: 28.63576, Longitude: 77.22445},
	"Pristina":               {Latitude: 42.66203, Longitude: 21.15472},
	"Sarajevo":               {Latitude: 43.85683, Longitude: 18.40290},
	"Shanghai":               {Latitude: 31.21, Longitude: 121.44},
	"Shenyang":               {Latitude: 41.78, Longitude: 123.42},
	"Tashkent":               {Latitude: 41.36880, Longitude: 69.29100},
	"Ulaanbaatar":            {Latitude: 47.92838, Longitude: 106.92934},
}
