package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/spf13/cobra"
)

func encodeCmd(a *app) *cobra.Command {
	var in, out, compression string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a YAML document description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			doc, err := parseSource(src)
			if err != nil {
				return err
			}

			opts := a.cfg.EncoderOptions(a.logger)
			if compression != "" {
				comp, ok := format.ParseCompression(compression)
				if !ok {
					return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidConfig, compression)
				}
				opts = append(opts, document.WithCompression(comp))
			}

			enc, err := document.NewEncoder(opts...)
			if err != nil {
				return err
			}
			data, stats, err := enc.Encode(doc)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, data, 0o644); err != nil { //nolint:gosec
				return fmt.Errorf("failed to write output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d axioms, %d bytes (%s)\n",
				out, stats.Header.AxiomCount, stats.EncodedSize, stats.Compression.Algorithm)

			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "YAML document description")
	cmd.Flags().StringVarP(&out, "out", "o", "", "encoded output file")
	cmd.Flags().StringVar(&compression, "compression", "", "override the configured compression")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func decodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Print the axioms of an encoded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dec, err := document.NewDecoder(document.WithDecoderLogger(a.logger))
			if err != nil {
				return err
			}
			doc, err := dec.Decode(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !doc.IRI.IsZero() {
				fmt.Fprintf(w, "Ontology(%s)\n", doc.IRI)
			}
			for _, ann := range doc.Annotations {
				fmt.Fprintln(w, ann)
			}
			for _, ax := range doc.Axioms {
				fmt.Fprintln(w, ax)
			}

			return nil
		},
	}
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header and dictionary sizes of an encoded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dec, err := document.NewDecoder(document.WithDecoderLogger(a.logger))
			if err != nil {
				return err
			}
			info, err := dec.Inspect(data)
			if err != nil {
				return err
			}

			h := info.Header
			byteOrder := "big"
			if h.Flag.IsLittleEndian() {
				byteOrder = "little"
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "version\t%d\n", h.Flag.Version)
			fmt.Fprintf(tw, "byte order\t%s\n", byteOrder)
			fmt.Fprintf(tw, "compression\t%s\n", h.Flag.GetCompression())
			fmt.Fprintf(tw, "sorted dictionary\t%t\n", h.Flag.IsSorted())
			fmt.Fprintf(tw, "literal interning\t%t\n", h.Flag.HasLiteralInterning())
			fmt.Fprintf(tw, "iris\t%d\n", h.IRICount)
			fmt.Fprintf(tw, "namespaces\t%d\n", info.NamespaceCount)
			fmt.Fprintf(tw, "literals\t%d\n", h.LiteralCount)
			fmt.Fprintf(tw, "annotations\t%d\n", h.AnnotationCount)
			fmt.Fprintf(tw, "axioms\t%d\n", h.AxiomCount)
			fmt.Fprintf(tw, "payload\t%d bytes\n", h.PayloadSize)
			fmt.Fprintf(tw, "stored\t%d bytes\n", info.CompressedSize)
			fmt.Fprintf(tw, "dictionaries\t%d bytes\n", info.DictionarySize)
			fmt.Fprintf(tw, "checksum\t%016x (ok=%t)\n", h.Checksum, info.ChecksumOK)

			return tw.Flush()
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Re-encode a document and print reference statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dec, err := document.NewDecoder(document.WithDecoderLogger(a.logger))
			if err != nil {
				return err
			}
			doc, err := dec.Decode(data)
			if err != nil {
				return err
			}

			enc, err := document.NewEncoder(a.cfg.EncoderOptions(a.logger)...)
			if err != nil {
				return err
			}
			_, stats, err := enc.Encode(doc)
			if err != nil {
				return err
			}

			return printStats(cmd.OutOrStdout(), stats)
		},
	}
}

func printStats(w io.Writer, stats document.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "table\trefs\tint8\tint16\tint32\texact\tclose\tmiss\tstride\tverbatim\t")

	row := func(name string, s delta.Stats) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n", name,
			s.References, s.Int8, s.Int16, s.Int32, s.ExactHits, s.CloseHits, s.Misses, s.StrideEvictions, s.NotIndexed)
	}
	row("iris", stats.Tables.IRIs)
	row("literals", stats.Tables.Literals)
	row("annotations", stats.Tables.Annotations)
	row("total", stats.Tables.Total())
	if err := tw.Flush(); err != nil {
		return err
	}

	c := stats.Compression
	_, err := fmt.Fprintf(w, "\ncompression %s: %d -> %d bytes (%.1f%% saved), dictionaries %d bytes\n",
		c.Algorithm, c.OriginalSize, c.CompressedSize, c.SpaceSavings(), stats.DictionarySize)

	return err
}
