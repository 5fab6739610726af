package cli

import (
	"fmt"

	"babylog/internal/keyring"
	"babylog/internal/storage"
)

type SetConnectionCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string to store in the OS keyring."`
}

func (c *SetConnectionCmd) Run(ctx *Context) error {
	// The keyring is the one sanctioned home for a credentialed connection
	// string, so embedded passwords are allowed here (and only here).
	if err := storage.CheckConnString(c.ConnString); err != nil {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring")
	return nil
}

type ClearConnectionCmd struct{}

func (c *ClearConnectionCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring")
	return nil
}
