package teams

// NHL maps statsapi team ids to canonical teams.
var NHL = Registry{
	"1": team("1", "New Jersey", "Devils", "Devils", "NJD", "c8102e", "000000"),
	"2": team("2", "New York", "Islanders", "Islanders", "NYI", "003087", "fc4c02"),
	"3": team("3", "New York", "Rangers", "Rangers", "NYR", "0033a0", "c8102e"),
	"4": team("4", "Philadelphia", "Flyers", "Flyers", "PHI", "fa4616", "000000"),
	"5": team("5", "Pittsburgh", "Penguins", "Penguins", "PIT", "ffb81c", "000000"),
	"6": team("6", "Boston", "Bruins", "Bruins", "BOS", "fcb514", "000000"),
	"7": team("7", "Buffalo", "Sabres", "Sabres", "BUF", "002654", "fcb514"),
	"8": team("8", "Montréal", "Canadiens", "Canadiens", "MTL", "a6192e", "001e62"),
	"9": team("9", "Ottawa", "Senators", "Senators", "OTT", "c8102e", "c69214"),
	"10": team("10", "Toronto", "Maple Leafs", "Leafs", "TOR", "00205b", "ffffff"),
	"12": team("12", "Carolina", "Hurricanes", "Canes", "CAR", "cc0000", "ffffff"),
	"13": team("13", "Florida", "Panthers", "Panthers", "FLA", "041e42", "b9975b"),
	"14": team("14", "Tampa Bay", "Lightning", "Lightning", "TBL", "00205b", "ffffff"),
	"15": team("15", "Washington", "Capitals", "Capitals", "WSH", "041e42", "c8102e"),
	"16": team("16", "Chicago", "Blackhawks", "B Hawks", "CHI", "ce1126", "000000"),
	"17": team("17", "Detroit", "Red Wings", "Red Wings", "DET", "c8102e", "ffffff"),
	"18": team("18", "Nashville", "Predators", "Predators", "NSH", "ffb81c", "041e42"),
	"19": team("19", "St. Louis", "Blues", "Blues", "STL", "002f87", "ffb81c"),
	"20": team("20", "Calgary", "Flames", "Flames", "CGY", "ce1126", "f3bc52"),
	"21": team("21", "Colorado", "Avalanche", "Avalanche", "COL", "236192", "d94574"),
	"22": team("22", "Edmonton", "Oilers", "Oilers", "EDM", "fc4c02", "041e42"),
	"23": team("23", "Vancouver", "Canucks", "Canucks", "VAN", "00843d", "ffffff"),
	"24": team("24", "Anaheim", "Ducks", "Ducks", "ANA", "b5985a", "ffffff"),
	"25": team("25", "Dallas", "Stars", "Stars", "DAL", "006341", "a2aaad"),
	"26": team("26", "Los Angeles", "Kings", "Kings", "LAK", "a2aaad", "000000"),
	"28": team("28", "San Jose", "Sharks", "Sharks", "SJS", "006272", "e57200"),
	"29": team("29", "Columbus", "Blue Jackets", "B Jackets", "CBJ", "041e42", "c8102e"),
	"30": team("30", "Minnesota", "Wild", "Wild", "MIN", "154734", "a6192e"),
	"52": team("52", "Winnipeg", "Jets", "Jets", "WPG", "041e42", "a2aaad"),
	"53": team("53", "Arizona", "Coyotes", "Coyotes", "ARI", "8c2633", "e2d6b5"),
	"54": team("54", "Las Vegas", "Golden Knights", "Knights", "VGK", "b4975a", "000000"),
	"87": team("87", "Atlantic", "Atlantic All Stars", "Atlantic", "ATL", "fa1b1b", "000000"),
	"88": team("88", "Metropolitan", "Metropolitan All Stars", "Metro", "MET", "fae71b", "000000"),
	"89": team("89", "Central", "Central All Stars", "Central", "CEN", "1411bd", "000000"),
	"90": team("90", "Pacific", "Pacific All Stars", "Pacific", "PAC", "11bd36", "000000"),
	"7460": team("7460", "Canada", "Canadian All Stars", "Canada", "CA", "d11717", "ffffff"),
	"7461": team("7461", "America", "American All Stars", "America", "USA", "3271a8", "ffffff"),
}
