// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nv4dll-git/OpenPNM/release"
)

func newBumpCmd() *cobra.Command {
	var (
		message string
		file    string
		dryRun  bool
	)
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Bump the version file from a commit message",
		Long: `Reads the version file and bumps it when the message contains #patch,
#minor or #major (the largest wins). Without a keyword nothing is written.
The new version is printed on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := release.BumpKind(message)
			if kind == release.None {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no version keyword; nothing to do")
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read version: %w", err)
			}
			next, err := release.Bump(strings.TrimSpace(string(data)), kind)
			if err != nil {
				return err
			}
			if !dryRun {
				if err = os.WriteFile(file, []byte(next+"\n"), 0o644); err != nil {
					return fmt.Errorf("write version: %w", err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), next)
			return err
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message to scan")
	cmd.Flags().StringVarP(&file, "file", "f", "VERSION", "version file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the new version without writing it")

	return cmd
}
