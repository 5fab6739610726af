package cli

import (
	"fmt"

	"babylog/internal/backup"
)

type ExportCreateCmd struct{}

func (c *ExportCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	path, err := mgr.CreateSnapshot()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot written to %s\n", path)
	return nil
}

type ExportListCmd struct{}

func (c *ExportListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	infos, err := mgr.ListSnapshots()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No snapshots found")
		return nil
	}

	fmt.Println("Snapshots:")
	for _, info := range infos {
		fmt.Printf("  %s (%d bytes)\n", info.Path, info.Size)
	}
	return nil
}
