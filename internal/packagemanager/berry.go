package packagemanager

// berryMajorVersion is the first yarn major version that is berry.
const berryMajorVersion = 2

var nodejsBerry = PackageManager{
	Name:     YarnBerry,
	Lockfile: "yarn.lock",

	Commands: CommandSet{
		Name:          "yarn",
		Agent:         YarnBerry,
		Install:       "yarn install",
		FrozenInstall: "yarn install --immutable",
		// yarn 2+ dropped global installs
		GlobalInstall:   "npm install -g",
		Uninstall:       "yarn remove",
		GlobalUninstall: "npm uninstall -g",
		Update:          "yarn upgrade",
		Run:             "yarn run",
		Exec:            "yarn dlx",
		ExecLocal:       "yarn exec",
	},
}

// isBerry reports whether a declared yarn version is v2 or newer.
func isBerry(version string) bool {
	major, ok := MajorVersion(version)
	return ok && major >= berryMajorVersion
}
