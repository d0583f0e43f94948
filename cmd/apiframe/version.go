package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-apiframe/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommands struct {
	Version VersionCommand `cmd:"" name:"version" help:"Print version information." group:"MISC"`
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	_, err := fmt.Println(string(version.JSON(ctx.execName)))
	return err
}
