package registry

import (
	"fmt"
	"sort"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/domain"
)

// TeamRegistry defines the interface for league team lookups
//
//go:generate mockgen -source=teams.go -destination=../mocks/team_registry.go -package=mocks -mock_names=TeamRegistry=MockTeamRegistry,TeamRegistryLoader=MockTeamRegistryLoader
type TeamRegistry interface {
	// Teams returns the canonical team codes in ascending order
	Teams() []domain.TeamCode

	// Canonical resolves a code or alias to its canonical team code
	Canonical(code domain.TeamCode) (domain.TeamCode, bool)

	// IsKnown checks if a code or alias belongs to a registered team
	IsKnown(code domain.TeamCode) bool

	// Name returns the display name of a team, or the code itself when unnamed
	Name(code domain.TeamCode) string
}

// TeamInfo represents a team entry in the registry file
type TeamInfo struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"` // historical codes, e.g. "NJN" for "BKN"
}

// TeamRegistryData represents the structure of the teams.json file
type TeamRegistryData struct {
	Version int        `json:"version"`
	Teams   []TeamInfo `json:"teams"`
}

// teamRegistry is the internal implementation of TeamRegistry interface
type teamRegistry struct {
	teams []domain.TeamCode
	names map[domain.TeamCode]string
	// Fast lookup map: code or alias -> canonical code
	canonical map[domain.TeamCode]domain.TeamCode
}

// TeamRegistryLoader defines the interface for loading team registries from files
type TeamRegistryLoader interface {
	// Load loads the team registry from a JSON file
	Load(filePath string) (TeamRegistry, error)
}

type teamRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewTeamRegistryLoader creates a new TeamRegistryLoader with injected dependencies
func NewTeamRegistryLoader(fs adapter.FileSystem, json adapter.JSON) TeamRegistryLoader {
	return &teamRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the team registry from a JSON file
func (l *teamRegistryLoader) Load(filePath string) (TeamRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read team registry file: %w", err)
	}

	var registryData TeamRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse team registry JSON: %w", err)
	}

	reg := newTeamRegistry()
	for _, team := range registryData.Teams {
		code := domain.TeamCode(team.Code).Normalize()
		if !domain.IsTeamCode(string(code)) {
			return nil, fmt.Errorf("invalid team code %q in registry", team.Code)
		}
		if _, dup := reg.canonical[code]; dup {
			return nil, fmt.Errorf("duplicate team code %q in registry", code)
		}
		reg.add(code, team.Name)

		for _, alias := range team.Aliases {
			a := domain.TeamCode(alias).Normalize()
			if !domain.IsTeamCode(string(a)) {
				return nil, fmt.Errorf("invalid alias %q for team %s", alias, code)
			}
			if _, dup := reg.canonical[a]; !dup {
				reg.canonical[a] = code
			}
		}
	}

	if len(reg.teams) == 0 {
		return nil, domain.ErrTeamRegistryEmpty
	}
	reg.sortTeams()

	return reg, nil
}

// FromCodes builds a registry from bare team codes, e.g. the distinct owners in the warehouse.
// Malformed codes are skipped.
func FromCodes(codes []domain.TeamCode) (TeamRegistry, error) {
	reg := newTeamRegistry()
	for _, c := range codes {
		code := c.Normalize()
		if !domain.IsTeamCode(string(code)) {
			continue
		}
		if _, dup := reg.canonical[code]; dup {
			continue
		}
		reg.add(code, "")
	}

	if len(reg.teams) == 0 {
		return nil, domain.ErrTeamRegistryEmpty
	}
	reg.sortTeams()

	return reg, nil
}

func newTeamRegistry() *teamRegistry {
	return &teamRegistry{
		names:     make(map[domain.TeamCode]string),
		canonical: make(map[domain.TeamCode]domain.TeamCode),
	}
}

func (r *teamRegistry) add(code domain.TeamCode, name string) {
	r.teams = append(r.teams, code)
	r.canonical[code] = code
	if name != "" {
		r.names[code] = name
	}
}

func (r *teamRegistry) sortTeams() {
	sort.Slice(r.teams, func(i, j int) bool { return r.teams[i] < r.teams[j] })
}

// Teams returns the canonical team codes in ascending order
func (r *teamRegistry) Teams() []domain.TeamCode {
	if r == nil {
		return []domain.TeamCode{}
	}
	return append([]domain.TeamCode{}, r.teams...)
}

// Canonical resolves a code or alias to its canonical team code
func (r *teamRegistry) Canonical(code domain.TeamCode) (domain.TeamCode, bool) {
	if r == nil {
		return "", false
	}
	canonical, ok := r.canonical[code.Normalize()]
	return canonical, ok
}

// IsKnown checks if a code or alias belongs to a registered team
func (r *teamRegistry) IsKnown(code domain.TeamCode) bool {
	_, ok := r.Canonical(code)
	return ok
}

// Name returns the display name of a team, or the code itself when unnamed
func (r *teamRegistry) Name(code domain.TeamCode) string {
	canonical, ok := r.Canonical(code)
	if !ok {
		return string(code.Normalize())
	}
	if name, ok := r.names[canonical]; ok {
		return name
	}
	return string(canonical)
}
