package packagemanager

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Strategy is one way of identifying the package manager.
type Strategy string

const (
	// StrategyPackageJSON reads the "packageManager" field of package.json.
	StrategyPackageJSON Strategy = "packageJson"
	// StrategyLockFile looks for a known lock file.
	StrategyLockFile Strategy = "lockFile"
	// StrategyUserAgent parses npm_config_user_agent. It is consulted only
	// after every directory has been searched with the other strategies.
	StrategyUserAgent Strategy = "userAgent"
)

// DefaultStrategies is the strategy order used when none is configured.
var DefaultStrategies = []Strategy{
	StrategyPackageJSON,
	StrategyLockFile,
	StrategyUserAgent,
}

var knownStrategies = mapset.NewSet(
	string(StrategyPackageJSON),
	string(StrategyLockFile),
	string(StrategyUserAgent),
)

// ParseStrategy validates a single strategy name.
func ParseStrategy(raw string) (Strategy, error) {
	if !knownStrategies.Contains(raw) {
		return "", fmt.Errorf("invalid strategy %q: expected one of %v", raw, strategyNames())
	}
	return Strategy(raw), nil
}

// ParseStrategies validates strategy names, accepting comma separated lists
// in any element. Whitespace is trimmed, empty entries are dropped, and
// duplicates keep their first position. Every invalid name is reported.
func ParseStrategies(raw []string) ([]Strategy, error) {
	seen := mapset.NewSet()
	strategies := []Strategy{}
	var result *multierror.Error
	for _, entry := range raw {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			strategy, err := ParseStrategy(name)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			if seen.Add(strategy) {
				strategies = append(strategies, strategy)
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		return nil, errors.Errorf("no strategies given: expected one or more of %v", strategyNames())
	}
	return strategies, nil
}

func strategyNames() string {
	names := make([]string, len(DefaultStrategies))
	for i, strategy := range DefaultStrategies {
		names[i] = string(strategy)
	}
	return strings.Join(names, ", ")
}

func hasStrategy(strategies []Strategy, want Strategy) bool {
	for _, strategy := range strategies {
		if strategy == want {
			return true
		}
	}
	return false
}
