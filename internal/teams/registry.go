package teams

import (
	"scoreboard-data-service/internal/domain"
)

// Registry maps a feed-specific team id to its canonical Team. Entries never
// mutate after construction.
type Registry map[string]domain.Team

// RawTeam is the subset of an upstream team payload used to synthesize a Team
// when the registry has no entry for its id.
type RawTeam struct {
	ID               string
	Location         string
	Name             string
	ShortDisplayName string
	Abbreviation     string
	Color            string
	AlternateColor   string
}

// Resolver resolves feed team ids against a static registry, synthesizing a
// placeholder Team for unknown ids.
type Resolver struct {
	registry Registry
	sink     DiagnosticSink
}

// NewResolver constructs a Resolver. A nil sink disables diagnostics.
func NewResolver(registry Registry, sink DiagnosticSink) *Resolver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Resolver{registry: registry, sink: sink}
}

// Resolve returns the registry Team for id, or a Team synthesized from the raw
// payload. Synthesis has no error path: absent fields default to empty strings
// and black. Unknown ids are reported to the diagnostic sink for offline
// registry curation; recording never blocks the caller.
func (r *Resolver) Resolve(id string, raw RawTeam) domain.Team {
	if team, ok := r.registry[id]; ok {
		return team
	}

	team := synthesize(id, raw)
	r.sink.Record(Diagnostic{TeamID: id, Team: team, Raw: raw})
	return team
}

func synthesize(id string, raw RawTeam) domain.Team {
	primaryHex := raw.Color
	if primaryHex == "" {
		primaryHex = "000000"
	}
	alternate := raw.AlternateColor
	if alternate == "" {
		alternate = "000000"
	}
	primary, secondary := processTeamColors(primaryHex, alternate)

	display := raw.ShortDisplayName
	if display == "" {
		display = raw.Name
	}

	return domain.Team{
		ID:             id,
		Location:       raw.Location,
		Name:           raw.Name,
		DisplayName:    shortenDisplayName(display),
		Abbreviation:   raw.Abbreviation,
		PrimaryColor:   primary,
		SecondaryColor: secondary,
	}
}
