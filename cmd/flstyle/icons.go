package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

func newIconsCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "icons <dir>",
		Short: "Render the password toggle icons as PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("invalid size %d", size)
			}
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			for _, asset := range floatinglabel.IconAssets {
				path := filepath.Join(dir, string(asset)+".png")
				if err := writePNG(path, asset, size); err != nil {
					return err
				}
				a.logger.Info("icon written", zap.String("path", path), zap.Int("size", size))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	w, h := floatinglabel.IconPixels(floatinglabel.DefaultToggleImageStyle())
	cmd.Flags().IntVar(&size, "size", max(w, h), "icon edge in pixels")
	return cmd
}

func writePNG(path string, asset floatinglabel.IconAsset, size int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, asset.Image(size)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
