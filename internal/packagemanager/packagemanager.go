// Adapted from https://github.com/replit/upm
// Copyright (c) 2019 Neoreason d/b/a Repl.it. All rights reserved.
// SPDX-License-Identifier: MIT

// Package packagemanager detects which Node.js package manager governs a
// directory and maps it to the commands that manager uses.
package packagemanager

import (
	"fmt"
	"strings"
)

// Name identifies a package manager variant.
type Name string

const (
	// NPM is npm.
	NPM Name = "npm"
	// Yarn is yarn classic (v1).
	Yarn Name = "yarn"
	// YarnBerry is yarn v2 and newer. Detection never produces it directly;
	// GetCommands selects it for a yarn Identity whose major version is >= 2.
	YarnBerry Name = "yarnBerry"
	// Pnpm is pnpm.
	Pnpm Name = "pnpm"
)

// Identity is the result of detection: a package manager name and, when
// known, the version that was declared for it. An empty Version means the
// version is unknown.
type Identity struct {
	Name    Name   `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// String renders the identity the way package.json spells it.
func (id Identity) String() string {
	if id.Version == "" {
		return string(id.Name)
	}
	return fmt.Sprintf("%s@%s", id.Name, id.Version)
}

// PackageManager is an abstraction across package managers
type PackageManager struct {
	// The unique identifier of the Package Manager.
	Name Name

	// The location of the package lock file used by the Package Manager.
	Lockfile string

	// The canonical commands for this Package Manager.
	Commands CommandSet
}

var packageManagers = []PackageManager{
	nodejsNpm,
	nodejsYarn,
	nodejsBerry,
	nodejsPnpm,
}

// lockfilePriority is the order lock files are probed in a single directory.
// yarn.lock always means yarn; berry is only chosen from a declared version.
var lockfilePriority = []PackageManager{
	nodejsNpm,
	nodejsYarn,
	nodejsPnpm,
}

// UnknownPackageManagerError is returned when a name outside the supported
// set reaches a lookup.
type UnknownPackageManagerError struct {
	Name Name
}

func (e *UnknownPackageManagerError) Error() string {
	return fmt.Sprintf("unknown package manager %q", string(e.Name))
}

// GetPackageManager returns the descriptor for the given name.
func GetPackageManager(name Name) (*PackageManager, error) {
	for i := range packageManagers {
		if packageManagers[i].Name == name {
			pm := packageManagers[i]
			return &pm, nil
		}
	}
	return nil, &UnknownPackageManagerError{Name: name}
}

// ParsePackageManagerString splits a package.json "packageManager" value such
// as "pnpm@8.6.0" into an Identity. A single leading caret is ignored. The
// value is not validated: without an "@" the whole string becomes the name.
func ParsePackageManagerString(packageManager string) Identity {
	parts := strings.Split(strings.TrimPrefix(packageManager, "^"), "@")
	id := Identity{Name: Name(parts[0])}
	if len(parts) > 1 {
		id.Version = parts[1]
	}
	return id
}
