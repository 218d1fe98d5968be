package teams

// MLB maps statsapi team ids to canonical teams.
var MLB = Registry{
	"108": team("108", "Los Angeles", "Angels", "Angels", "LAA", "ba0021", "c4ced4"),
	"109": team("109", "Arizona", "D-backs", "D-backs", "ARI", "a71930", "e3d4ad"),
	"110": team("110", "Baltimore", "Orioles", "Orioles", "BAL", "df4601", "27251f"),
	"111": team("111", "Boston", "Red Sox", "Red Sox", "BOS", "c6011f", "ffffff"),
	"112": team("112", "Chicago", "Cubs", "Cubs", "CHC", "0e3386", "cc3433"),
	"113": team("113", "Cincinnati", "Reds", "Reds", "CIN", "c6011f", "000000"),
	"114": team("114", "Cleveland", "Indians", "Indians", "CLE", "e31937", "0c2340"),
	"115": team("115", "Colorado", "Rockies", "Rockies", "COL", "33006f", "c4ced4"),
	"116": team("116", "Detroit", "Tigers", "Tigers", "DET", "0c2340", "fa4616"),
	"117": team("117", "Houston", "Astros", "Astros", "HOU", "002d62", "f4911e"),
	"118": team("118", "Kansas City", "Royals", "Royals", "KC", "004687", "bd9b60"),
	"119": team("119", "Los Angeles", "Dodgers", "Dodgers", "LAD", "005a9c", "ef3e42"),
	"120": team("120", "Washington", "Nationals", "Nationals", "WSH", "ab0003", "14225a"),
	"121": team("121", "New York", "Mets", "Mets", "NYM", "002d72", "fc5910"),
	"133": team("133", "Oakland", "Athletics", "Athletics", "OAK", "003831", "efb21e"),
	"134": team("134", "Pittsburgh", "Pirates", "Pirates", "PIT", "fdb827", "27251f"),
	"135": team("135", "San Diego", "Padres", "Padres", "SD", "002d62", "a2aaad"),
	"136": team("136", "Seattle", "Mariners", "Mariners", "SEA", "005c5c", "c4ced4"),
	"137": team("137", "San Francisco", "Giants", "Giants", "SF", "27251f", "fd5a1e"),
	"138": team("138", "St. Louis", "Cardinals", "Cardinals", "STL", "c41e3a", "0c2340"),
	"139": team("139", "Tampa Bay", "Rays", "Rays", "TB", "d65a24", "ffffff"),
	"140": team("140", "Texas", "Rangers", "Rangers", "TEX", "003278", "c0111f"),
	"141": team("141", "Toronto", "Blue Jays", "Blue Jays", "TOR", "134a8e", "b1b3b3"),
	"142": team("142", "Minnesota", "Twins", "Twins", "MIN", "002b5c", "d31145"),
	"143": team("143", "Philadelphia", "Phillies", "Phillies", "PHI", "e81828", "002d72"),
	"144": team("144", "Atlanta", "Braves", "Braves", "ATL", "13274f", "ce1141"),
	"145": team("145", "Chicago", "White Sox", "White Sox", "CWS", "27251f", "c4ced4"),
	"146": team("146", "Miami", "Marlins", "Marlins", "MIA", "000000", "00a3e0"),
	"147": team("147", "New York", "Yankees", "Yankees", "NYY", "0c2340", "ffffff"),
	"158": team("158", "Milwaukee", "Brewers", "Brewers", "MIL", "13294b", "b6922e"),
	"159": team("159", "NL", "NL All Stars", "NL All Stars", "NL", "ff0000", "ffffff"),
	"160": team("160", "AL", "AL All Stars", "AL All Stars", "AL", "0000ff", "ffffff"),
}
