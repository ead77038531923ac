package cli

import (
	"fmt"
	"os"
)

type DataCmd struct {
	Export DataExportCmd `cmd:"" help:"Export all data as JSON."`
	Import DataImportCmd `cmd:"" help:"Import data from a JSON export."`
}

type DataExportCmd struct {
	Out string `help:"Write to a file instead of stdout."`
}

func (c *DataExportCmd) Run(ctx *Context) error {
	data, err := ctx.Repo.Export()
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(data)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported data to %s\n", c.Out)
	return nil
}

type DataImportCmd struct {
	File string `arg:"" help:"JSON export file to import."`
}

func (c *DataImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if err := ctx.Repo.Import(string(data)); err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	fmt.Printf("Imported %d habit(s) from %s\n", len(ctx.Repo.Habits()), c.File)
	return nil
}
