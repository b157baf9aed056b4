package uistate

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/LeiffK/QAi/internal/quality"
)

//go:embed roles.yaml
var rolesYAML []byte

// RoleView is the declarative default view configuration for one role.
type RoleView struct {
	Dashboard     string `yaml:"dashboard" json:"dashboard"`
	TimeRange     string `yaml:"time_range" json:"timeRange"`
	ActiveSection string `yaml:"active_section" json:"activeSection"`
}

type roleConfig struct {
	Roles map[string]RoleView `yaml:"roles"`
}

var roleViews = loadRoleViews()

func loadRoleViews() map[string]RoleView {
	var cfg roleConfig
	if err := yaml.Unmarshal(rolesYAML, &cfg); err != nil {
		panic(fmt.Sprintf("role views: %v", err))
	}
	if len(cfg.Roles) == 0 {
		panic("role views: empty")
	}
	return cfg.Roles
}

// LookupRole returns the default view for a role.
func LookupRole(role string) (RoleView, bool) {
	v, ok := roleViews[role]
	return v, ok
}

// Roles lists all configured role names.
func Roles() []string {
	names := make([]string, 0, len(roleViews))
	for name := range roleViews {
		names = append(names, name)
	}
	return names
}

// ApplyRole is the reducer that moves a session onto a role's default view.
// Unknown roles leave the state unchanged and report false.
func ApplyRole(s State, role string) (State, bool) {
	view, ok := LookupRole(role)
	if !ok {
		return s, false
	}

	s = ResetFilters(s)
	s.Filters.TimeRange = quality.TimeRange(view.TimeRange)
	s.ActiveTab = view.Dashboard
	s.ActiveSection = view.ActiveSection
	return s, true
}
