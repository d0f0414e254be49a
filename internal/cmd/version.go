package cmd

import (
	"fmt"
	"runtime/debug"
)

// version is overridden at build time with -ldflags "-X .../internal/cmd.version=v1.2.3".
var version = "dev"

type Version struct{}

// Run is called by Kong when the version command is executed.
func (v *Version) Run() error {
	fmt.Println(versionString())
	return nil
}

func versionString() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
