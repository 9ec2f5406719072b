package packagemanager

var nodejsYarn = PackageManager{
	Name:     Yarn,
	Lockfile: "yarn.lock",

	Commands: CommandSet{
		Name:            "yarn",
		Agent:           Yarn,
		Install:         "yarn install",
		FrozenInstall:   "yarn install --frozen-lockfile",
		GlobalInstall:   "yarn global add",
		Uninstall:       "yarn remove",
		GlobalUninstall: "yarn global remove",
		Update:          "yarn upgrade",
		Run:             "yarn run",
		// yarn 1 has no dlx
		Exec:      "npx",
		ExecLocal: "yarn exec",
	},
}
