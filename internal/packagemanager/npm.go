package packagemanager

var nodejsNpm = PackageManager{
	Name:     NPM,
	Lockfile: "package-lock.json",

	Commands: CommandSet{
		Name:            "npm",
		Agent:           NPM,
		Install:         "npm install",
		FrozenInstall:   "npm ci",
		GlobalInstall:   "npm install -g",
		Uninstall:       "npm uninstall",
		GlobalUninstall: "npm uninstall -g",
		Update:          "npm update",
		Run:             "npm run",
		Exec:            "npx",
		ExecLocal:       "npx",
	},
}
