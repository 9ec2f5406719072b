package packagemanager

var nodejsPnpm = PackageManager{
	Name:     Pnpm,
	Lockfile: "pnpm-lock.yaml",

	Commands: CommandSet{
		Name:            "pnpm",
		Agent:           Pnpm,
		Install:         "pnpm install",
		FrozenInstall:   "pnpm install --frozen-lockfile",
		GlobalInstall:   "pnpm add -g",
		Uninstall:       "pnpm remove",
		GlobalUninstall: "pnpm remove -g",
		Update:          "pnpm update",
		Run:             "pnpm run",
		Exec:            "pnpm dlx",
		ExecLocal:       "pnpm dlx",
	},
}
