package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/internal/archive"
	"github.com/spf13/cobra"
)

func archiveCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and retrieve encoded documents by content hash",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "archive directory (overrides archive.path)")

	open := func() (*archive.Archive, error) {
		dir := path
		if dir == "" {
			dir = a.cfg.Archive.Path
		}
		if dir == "" {
			return nil, fmt.Errorf("%w: archive.path is not configured", errs.ErrInvalidConfig)
		}

		return archive.Open(dir, archive.WithLogger(a.logger))
	}

	var name string
	put := &cobra.Command{
		Use:   "put FILE",
		Short: "Archive an encoded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[0])
			}

			arc, err := open()
			if err != nil {
				return err
			}
			defer arc.Close()

			entry, err := arc.Put(name, data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Key)

			return nil
		},
	}
	put.Flags().StringVar(&name, "name", "", "snapshot name (defaults to the file name)")

	var out string
	get := &cobra.Command{
		Use:   "get KEY",
		Short: "Write an archived document to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := archive.ParseKey(args[0])
			if err != nil {
				return err
			}

			arc, err := open()
			if err != nil {
				return err
			}
			defer arc.Close()

			data, entry, err := arc.Get(key)
			if err != nil {
				return err
			}
			if out == "" {
				out = entry.Name
			}

			return os.WriteFile(out, data, 0o644) //nolint:gosec
		},
	}
	get.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to the snapshot name)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := open()
			if err != nil {
				return err
			}
			defer arc.Close()

			entries, err := arc.List()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tSIZE\tAXIOMS\tCOMPRESSION\tSTORED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
					e.Key, e.Name, e.Size, e.Axioms, e.Compression, e.Stored.Format(time.RFC3339))
			}

			return tw.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete KEY",
		Short: "Remove an archived document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := archive.ParseKey(args[0])
			if err != nil {
				return err
			}

			arc, err := open()
			if err != nil {
				return err
			}
			defer arc.Close()

			return arc.Delete(key)
		},
	}

	cmd.AddCommand(put, get, list, del)

	return cmd
}
