package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edgecomet/webkit/internal/common/compress"
	"github.com/edgecomet/webkit/pkg/bytesize"
	"github.com/edgecomet/webkit/pkg/pick"
	"github.com/edgecomet/webkit/pkg/seo"
)

func newSeoCmd(a *app, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Generate and inspect page metadata tags",
	}
	cmd.AddCommand(newSeoRenderCmd(a, v), newSeoInspectCmd(a, v))
	return cmd
}

// readInput reads a file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func newSeoRenderCmd(a *app, v *viper.Viper) *cobra.Command {
	var (
		out    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "render <params.yaml|->",
		Short: "Render the <head> tags for a page described in YAML",
		Example: "  webkit seo render page.yaml\n" +
			"  webkit -c site.yaml seo render --out dist/head.html page.yaml",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			params, err := seo.LoadParams(data)
			if err != nil {
				return err
			}

			tags := seo.NewAssembler(a.store).Generate(params)
			fingerprint := tags.Fingerprint()

			var buf bytes.Buffer
			if asJSON {
				enc := json.NewEncoder(&buf)
				enc.SetIndent("", "  ")
				if err := enc.Encode(tags); err != nil {
					return fmt.Errorf("failed to encode tags: %w", err)
				}
			} else if err := seo.RenderHTML(&buf, tags, params.JSONLD); err != nil {
				return fmt.Errorf("failed to render tags: %w", err)
			}

			if limit := a.config.Bytes.MaxOutput; limit > 0 && int64(buf.Len()) > limit.Bytes() {
				size, _ := bytesize.Format(float64(buf.Len()))
				return fmt.Errorf("rendered output is %s, over the %s limit", size, limit)
			}

			if out == "" {
				a.logger.Debug("Rendered tags",
					zap.Int("tags", len(tags)),
					zap.String("fingerprint", fingerprint))
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			target, n, err := compress.WriteFile(out, buf.Bytes(), a.config.Output.Algorithm())
			if err != nil {
				return err
			}
			size, _ := bytesize.FromBytes(float64(n), a.config.Bytes.FormatOptions())
			a.logger.Info("Fragment written",
				zap.String("path", target),
				zap.String("size", size),
				zap.String("compression", string(compress.Detect(target))),
				zap.String("fingerprint", fingerprint))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&out, "out", "o", "", "write to this file instead of stdout; compressed per output.compression (env: WEBKIT_OUT)")
	fs.BoolVar(&asJSON, "json", false, "print tag records as JSON instead of HTML (env: WEBKIT_JSON)")
	bindEnv(v, fs)

	return cmd
}

func newSeoInspectCmd(a *app, v *viper.Viper) *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "inspect <file.html[.snappy|.lz4]>",
		Short: "List the title, meta and canonical tags of an HTML file",
		Example: "  webkit seo inspect dist/head.html.snappy\n" +
			"  webkit seo inspect --key description --key og:title index.html",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := compress.ReadFile(args[0])
			if err != nil {
				return err
			}

			tags, err := seo.Inspect(bytes.NewReader(data))
			if err != nil {
				return err
			}
			a.logger.Debug("Inspected document",
				zap.String("path", args[0]),
				zap.Int("tags", len(tags)),
				zap.String("fingerprint", tags.Fingerprint()))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if len(keys) == 0 {
				return enc.Encode(tags)
			}
			return enc.Encode(pick.Pick(keys, tagContents(tags)))
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVarP(&keys, "key", "k", nil, "only print these keys as a key/content object (env: WEBKIT_KEY)")
	bindEnv(v, fs)

	return cmd
}

// tagContents maps each tag key to its first content; the title tag is keyed
// as "title" and the charset tag as "charset".
func tagContents(tags seo.Tags) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		key := t.Key
		switch t.Kind {
		case seo.KindTitle:
			key = "title"
		case seo.KindCharset:
			key = "charset"
		}
		if _, seen := m[key]; !seen {
			m[key] = t.Content
		}
	}
	return m
}
