package teams

// NFL maps scoreboard-feed team ids to canonical teams.
var NFL = Registry{
	"22": team("22", "Arizona", "Cardinals", "Cardinals", "ARI", "a40227", "ffffff"),
	"1": team("1", "Atlanta", "Falcons", "Falcons", "ATL", "000000", "ffffff"),
	"33": team("33", "Baltimore", "Ravens", "Ravens", "BAL", "2b025b", "9e7c0c"),
	"2": team("2", "Buffalo", "Bills", "Bills", "BUF", "04407f", "ffffff"),
	"29": team("29", "Carolina", "Panthers", "Panthers", "CAR", "2177b0", "ffffff"),
	"3": team("3", "Chicago", "Bears", "Bears", "CHI", "0b162a", "c83803"),
	"4": team("4", "Cincinnati", "Bengals", "Bengals", "CIN", "ff2700", "000000"),
	"5": team("5", "Cleveland", "Browns", "Browns", "CLE", "4c230e", "ffffff"),
	"6": team("6", "Dallas", "Cowboys", "Cowboys", "DAL", "002e4d", "b0b7bc"),
	"7": team("7", "Denver", "Broncos", "Broncos", "DEN", "002e4d", "fb4f14"),
	"8": team("8", "Detroit", "Lions", "Lions", "DET", "035c98", "ffffff"),
	"9": team("9", "Green Bay", "Packers", "Packers", "GB", "204e32", "ffb612"),
	"34": team("34", "Houston", "Texans", "Texans", "HOU", "00133f", "ffffff"),
	"11": team("11", "Indianapolis", "Colts", "Colts", "IND", "00417e", "ffffff"),
	"30": team("30", "Jacksonville", "Jaguars", "Jaguars", "JAX", "00839c", "000000"),
	"12": team("12", "Kansas City", "Chiefs", "Chiefs", "KC", "be1415", "ffffff"),
	"13": team("13", "Las Vegas", "Raiders", "Raiders", "LV", "000000", "a5acaf"),
	"24": team("24", "Los Angeles", "Chargers", "Chargers", "LAC", "042453", "ffffff"),
	"14": team("14", "Los Angeles", "Rams", "Rams", "LAR", "00295b", "b3995d"),
	"15": team("15", "Miami", "Dolphins", "Dolphins", "MIA", "006b79", "ffffff"),
	"16": team("16", "Minnesota", "Vikings", "Vikings", "MIN", "240a67", "ffc62f"),
	"17": team("17", "New England", "Patriots", "Patriots", "NE", "02244a", "b0b7bc"),
	"18": team("18", "New Orleans", "Saints", "Saints", "NO", "020202", "ffffff"),
	"19": team("19", "New York", "Giants", "Giants", "NYG", "052570", "ffffff"),
	"20": team("20", "New York", "Jets", "Jets", "NYJ", "174032", "ffffff"),
	"21": team("21", "Philadelphia", "Eagles", "Eagles", "PHI", "06424d", "a5acaf"),
	"23": team("23", "Pittsburgh", "Steelers", "Steelers", "PIT", "000000", "ffb612"),
	"25": team("25", "San Francisco", "49ers", "49ers", "SF", "981324", "ffffff"),
	"26": team("26", "Seattle", "Seahawks", "Seahawks", "SEA", "224970", "69be28"),
	"27": team("27", "Tampa Bay", "Buccaneers", "Buccaneers", "TB", "a80d08", "ffffff"),
	"10": team("10", "Tennessee", "Titans", "Titans", "TEN", "2f95dd", "000000"),
	"28": team("28", "Washington", "Washington", "Washington", "WSH", "650415", "ffffff"),
}
