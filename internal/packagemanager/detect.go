package packagemanager

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/vercel/pmdetect/internal/fs"
	"github.com/vercel/pmdetect/internal/fspath"
)

// ErrNotFound is returned by Detect when no strategy identified a package manager.
var ErrNotFound = errors.New("no package manager found")

// DetectOptions configures Detect. The zero value searches from the process
// working directory with DefaultStrategies and reads the real environment.
type DetectOptions struct {
	// Cwd is the directory to start from. Relative paths are resolved against
	// the process working directory.
	Cwd string

	// Strategies are tried in order within each directory. Nil means
	// DefaultStrategies.
	Strategies []Strategy

	// LookupEnv reads environment variables. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// Logger receives trace output for every decision. Nil discards it.
	Logger hclog.Logger
}

// Detect walks from the working directory up to the filesystem root. In each
// directory it runs the enabled file strategies in order and returns the
// first hit. If no directory matches and StrategyUserAgent is enabled, the
// package manager that launched this process is used. ErrNotFound means
// nothing matched; any other error means the working directory was unusable.
func Detect(opts DetectOptions) (Identity, error) {
	strategies := opts.Strategies
	if strategies == nil {
		strategies = DefaultStrategies
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	cwd, err := fspath.ResolveDirectory(opts.Cwd)
	if err != nil {
		return Identity{}, err
	}
	logger.Debug("detecting package manager", "cwd", cwd, "parents", cwd.Depth(), "strategies", strategies)

	walker := cwd.WalkUp()
	for dir, ok := walker.Next(); ok; dir, ok = walker.Next() {
		for _, strategy := range strategies {
			var id Identity
			var found bool
			switch strategy {
			case StrategyPackageJSON:
				id, found = fromPackageJSON(dir, logger)
			case StrategyLockFile:
				id, found = fromLockfile(dir, logger)
			default:
				continue
			}
			if found {
				logger.Debug("package manager found", "dir", dir, "strategy", strategy, "name", id.Name, "version", id.Version)
				return id, nil
			}
		}
	}

	if hasStrategy(strategies, StrategyUserAgent) {
		agent, _ := lookupEnv(UserAgentEnvVar)
		if id, ok := ParseUserAgent(agent); ok {
			logger.Debug("package manager found", "strategy", StrategyUserAgent, "name", id.Name, "version", id.Version)
			return id, nil
		}
		logger.Trace("no user agent", "env", UserAgentEnvVar)
	}

	return Identity{}, ErrNotFound
}

// fromPackageJSON reads the "packageManager" field of dir/package.json. Any
// failure to read or parse the file means no result.
func fromPackageJSON(dir fspath.AbsoluteSystemPath, logger hclog.Logger) (Identity, bool) {
	path := dir.UntypedJoin("package.json")
	pkg, err := fs.ReadPackageJSON(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Trace("skipping package.json", "path", path, "error", err)
		}
		return Identity{}, false
	}
	if pkg.PackageManager == "" {
		logger.Trace("no packageManager field", "path", path)
		return Identity{}, false
	}
	return ParsePackageManagerString(pkg.PackageManager), true
}

// fromLockfile returns the first package manager whose lock file exists in dir.
func fromLockfile(dir fspath.AbsoluteSystemPath, logger hclog.Logger) (Identity, bool) {
	for _, pm := range lockfilePriority {
		if dir.UntypedJoin(pm.Lockfile).Exists() {
			logger.Trace("found lockfile", "dir", dir, "lockfile", pm.Lockfile)
			return Identity{Name: pm.Name}, true
		}
	}
	return Identity{}, false
}
