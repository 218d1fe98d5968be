package teams

import "scoreboard-data-service/internal/domain"

// team keeps the registry literals compact.
func team(id, location, name, displayName, abbreviation, primaryColor, secondaryColor string) domain.Team {
	return domain.Team{
		ID:             id,
		Location:       location,
		Name:           name,
		DisplayName:    displayName,
		Abbreviation:   abbreviation,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
	}
}
