package packagemanager

import "strings"

// UserAgentEnvVar is set by npm, yarn and pnpm for the processes they spawn,
// e.g. "pnpm/8.6.0 npm/? node/v18.17.0 darwin x64".
const UserAgentEnvVar = "npm_config_user_agent"

// ParseUserAgent extracts the package manager from a user agent string. The
// name is the text before the first "/" and the version runs up to the next
// "/" or space. A value without "/" is returned whole as the name. An empty
// value yields no identity.
func ParseUserAgent(agent string) (Identity, bool) {
	if agent == "" {
		return Identity{}, false
	}
	parts := strings.Split(agent, "/")
	if len(parts) < 2 {
		return Identity{Name: Name(agent)}, true
	}
	version := strings.Split(parts[1], " ")[0]
	return Identity{Name: Name(parts[0]), Version: version}, true
}
