package cli

import (
	"fmt"
	"io"
	"os"

	"tftlookup/internal/config"
)

// ConfigInit writes the default config to path, or to the default
// location when path is empty. An existing file is kept unless force is set
func ConfigInit(path string, force bool, out io.Writer) error {
	svc := config.NewConfigService(path)

	if _, err := os.Stat(svc.Path()); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", svc.Path())
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "Wrote %s\n", svc.Path())
	return err
}

// ConfigPath prints the config file location
func ConfigPath(path string, out io.Writer) error {
	_, err := fmt.Fprintln(out, config.NewConfigService(path).Path())
	return err
}
