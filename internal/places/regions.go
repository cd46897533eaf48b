package places

// regionCities maps a lower-cased US state name to the cities a deep scan
// fans out to.
var regionCities = map[string][]string{
	"alabama":        {"Birmingham", "Montgomery", "Huntsville", "Mobile", "Tuscaloosa", "Hoover", "Dothan", "Auburn"},
	"alaska":         {"Anchorage", "Fairbanks", "Juneau", "Wasilla", "Sitka", "Ketchikan"},
	"arizona":        {"Phoenix", "Tucson", "Mesa", "Chandler", "Scottsdale", "Glendale", "Gilbert", "Tempe", "Peoria", "Flagstaff"},
	"arkansas":       {"Little Rock", "Fort Smith", "Fayetteville", "Springdale", "Jonesboro", "Rogers", "Conway", "Bentonville"},
	"california":     {"Los Angeles", "San Diego", "San Jose", "San Francisco", "Fresno", "Sacramento", "Long Beach", "Oakland", "Bakersfield", "Anaheim", "Riverside", "Irvine"},
	"colorado":       {"Denver", "Colorado Springs", "Aurora", "Fort Collins", "Lakewood", "Boulder", "Pueblo", "Arvada"},
	"connecticut":    {"Bridgeport", "New Haven", "Stamford", "Hartford", "Waterbury", "Norwalk", "Danbury"},
	"delaware":       {"Wilmington", "Dover", "Newark", "Middletown", "Smyrna"},
	"florida":        {"Jacksonville", "Miami", "Tampa", "Orlando", "St. Petersburg", "Hialeah", "Tallahassee", "Fort Lauderdale", "Cape Coral", "Gainesville", "Sarasota", "Pensacola"},
	"georgia":        {"Atlanta", "Augusta", "Columbus", "Macon", "Savannah", "Athens", "Sandy Springs", "Roswell"},
	"hawaii":         {"Honolulu", "Hilo", "Kailua", "Kapolei", "Kahului"},
	"idaho":          {"Boise", "Meridian", "Nampa", "Idaho Falls", "Pocatello", "Coeur d'Alene", "Twin Falls"},
	"illinois":       {"Chicago", "Aurora", "Naperville", "Joliet", "Rockford", "Springfield", "Peoria", "Elgin", "Champaign"},
	"indiana":        {"Indianapolis", "Fort Wayne", "Evansville", "South Bend", "Carmel", "Fishers", "Bloomington", "Lafayette"},
	"iowa":           {"Des Moines", "Cedar Rapids", "Davenport", "Sioux City", "Iowa City", "Waterloo", "Ames"},
	"kansas":         {"Wichita", "Overland Park", "Kansas City", "Olathe", "Topeka", "Lawrence", "Manhattan"},
	"kentucky":       {"Louisville", "Lexington", "Bowling Green", "Owensboro", "Covington", "Richmond", "Frankfort"},
	"louisiana":      {"New Orleans", "Baton Rouge", "Shreveport", "Lafayette", "Lake Charles", "Kenner", "Monroe"},
	"maine":          {"Portland", "Lewiston", "Bangor", "South Portland", "Auburn", "Augusta"},
	"maryland":       {"Baltimore", "Columbia", "Germantown", "Silver Spring", "Frederick", "Rockville", "Annapolis"},
	"massachusetts":  {"Boston", "Worcester", "Springfield", "Cambridge", "Lowell", "Brockton", "Quincy", "New Bedford"},
	"michigan":       {"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Ann Arbor", "Lansing", "Flint", "Kalamazoo"},
	"minnesota":      {"Minneapolis", "Saint Paul", "Rochester", "Duluth", "Bloomington", "Brooklyn Park", "St. Cloud"},
	"mississippi":    {"Jackson", "Gulfport", "Southaven", "Hattiesburg", "Biloxi", "Meridian", "Tupelo"},
	"missouri":       {"Kansas City", "St. Louis", "Springfield", "Columbia", "Independence", "Lee's Summit", "Joplin"},
	"montana":        {"Billings", "Missoula", "Great Falls", "Bozeman", "Butte", "Helena", "Kalispell"},
	"nebraska":       {"Omaha", "Lincoln", "Bellevue", "Grand Island", "Kearney", "Fremont"},
	"nevada":         {"Las Vegas", "Henderson", "Reno", "North Las Vegas", "Sparks", "Carson City"},
	"new hampshire":  {"Manchester", "Nashua", "Concord", "Dover", "Rochester", "Keene", "Portsmouth"},
	"new jersey":     {"Newark", "Jersey City", "Paterson", "Elizabeth", "Edison", "Trenton", "Camden", "Atlantic City"},
	"new mexico":     {"Albuquerque", "Las Cruces", "Rio Rancho", "Santa Fe", "Roswell", "Farmington"},
	"new york":       {"New York City", "Buffalo", "Rochester", "Yonkers", "Syracuse", "Albany", "New Rochelle", "Ithaca", "Brooklyn", "Queens"},
	"north carolina": {"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem", "Fayetteville", "Cary", "Wilmington", "Asheville"},
	"north dakota":   {"Fargo", "Bismarck", "Grand Forks", "Minot", "West Fargo"},
	"ohio":           {"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron", "Dayton", "Parma", "Canton", "Youngstown"},
	"oklahoma":       {"Oklahoma City", "Tulsa", "Norman", "Broken Arrow", "Edmond", "Lawton", "Stillwater"},
	"oregon":         {"Portland", "Salem", "Eugene", "Gresham", "Hillsboro", "Beaverton", "Bend", "Medford"},
	"pennsylvania":   {"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading", "Scranton", "Bethlehem", "Lancaster", "Harrisburg"},
	"rhode island":   {"Providence", "Warwick", "Cranston", "Pawtucket", "East Providence", "Newport"},
	"south carolina": {"Charleston", "Columbia", "North Charleston", "Mount Pleasant", "Rock Hill", "Greenville", "Myrtle Beach"},
	"south dakota":   {"Sioux Falls", "Rapid City", "Aberdeen", "Brookings", "Watertown"},
	"tennessee":      {"Nashville", "Memphis", "Knoxville", "Chattanooga", "Clarksville", "Murfreesboro", "Franklin", "Jackson"},
	"texas":          {"Houston", "San Antonio", "Dallas", "Austin", "Fort Worth", "El Paso", "Arlington", "Corpus Christi", "Plano", "Lubbock", "Laredo", "Irving"},
	"utah":           {"Salt Lake City", "West Valley City", "Provo", "West Jordan", "Orem", "Sandy", "Ogden", "St. George"},
	"vermont":        {"Burlington", "South Burlington", "Rutland", "Barre", "Montpelier"},
	"virginia":       {"Virginia Beach", "Norfolk", "Chesapeake", "Richmond", "Newport News", "Alexandria", "Hampton", "Roanoke", "Arlington"},
	"washington":     {"Seattle", "Spokane", "Tacoma", "Vancouver", "Bellevue", "Kent", "Everett", "Olympia"},
	"west virginia":  {"Charleston", "Huntington", "Morgantown", "Parkersburg", "Wheeling"},
	"wisconsin":      {"Milwaukee", "Madison", "Green Bay", "Kenosha", "Racine", "Appleton", "Waukesha", "Eau Claire"},
	"wyoming":        {"Cheyenne", "Casper", "Laramie", "Gillette", "Rock Springs", "Sheridan"},
}
