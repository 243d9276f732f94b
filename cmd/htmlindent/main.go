// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// htmlindent re-indents HTML files according to tag nesting.
//
// With no file arguments, htmlindent reads standard input
// and writes the result to standard output.
// Otherwise, the result for each file is written to standard output
// in argument order, unless -w or -l is given.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"zombiezen.com/go/htmlindent"
)

const stdinName = "<standard input>"

type options struct {
	tabs    bool
	indent  int
	write   bool
	list    bool
	charset string
	jobs    int
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "htmlindent [flags] [file ...]",
		Short: "Re-indent HTML according to tag nesting",
		Long: `Re-indents HTML so that each line's indentation reflects tag nesting depth.

Tags, attributes, comments, and text are copied through unchanged.
Line feeds, carriage returns, and tabs between tags are replaced
by htmlindent's own line breaks.

Examples:
  htmlindent < page.html             # stdin to stdout, 4 spaces
  htmlindent -n 2 page.html          # 2 spaces
  htmlindent --tabs -w *.html        # rewrite files in place with tabs
  htmlindent -l *.html               # list files that would change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "htmlindent: ", 0)
			if opts.verbose {
				logger.SetOutput(stderr)
			}
			return run(cmd.Context(), opts, logger, stdin, stdout, args)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.tabs, "tabs", false, "indent with a tab per level instead of spaces")
	f.IntVarP(&opts.indent, "indent", "n", htmlindent.DefaultIndentLength, "number of spaces per level (ignored with --tabs)")
	f.BoolVarP(&opts.write, "write", "w", false, "write result to the source file instead of standard output")
	f.BoolVarP(&opts.list, "list", "l", false, "list files whose formatting differs from htmlindent's")
	f.StringVar(&opts.charset, "charset", "", "decode input from (and encode output to) the named `encoding`, e.g. windows-1252")
	f.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum number of files to format concurrently")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log each file processed to standard error")
	cmd.MarkFlagsMutuallyExclusive("write", "list")
	return cmd
}

func run(ctx context.Context, opts *options, logger *log.Logger, stdin io.Reader, stdout io.Writer, files []string) error {
	if opts.indent < 0 {
		return fmt.Errorf("--indent must not be negative (got %d)", opts.indent)
	}
	p := &processor{
		formatter: htmlindent.New(!opts.tabs, opts.indent),
		write:     opts.write,
		logger:    logger,
	}
	if opts.charset != "" {
		enc, err := htmlindex.Get(opts.charset)
		if err != nil {
			return fmt.Errorf("--charset: %w", err)
		}
		p.encoding = enc
		p.charset = opts.charset
	}

	if len(files) == 0 {
		if opts.write {
			return errors.New("cannot use --write with standard input")
		}
		src, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read %s: %w", stdinName, err)
		}
		out, err := p.format(src)
		if err != nil {
			return fmt.Errorf("%s: %w", stdinName, err)
		}
		if opts.list {
			if !bytes.Equal(src, out) {
				_, err = fmt.Fprintln(stdout, stdinName)
			}
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	results := make([]fileResult, len(files))
	g := new(errgroup.Group)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].err = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			results[i] = p.formatFile(path)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		switch {
		case opts.list:
			if r.changed {
				if _, err := fmt.Fprintln(stdout, files[i]); err != nil {
					return err
				}
			}
		case !opts.write:
			if _, err := stdout.Write(r.out); err != nil {
				return err
			}
		}
	}
	return errors.Join(errs...)
}

// processor formats sources with a fixed configuration.
// It is safe to call its methods concurrently.
type processor struct {
	formatter *htmlindent.Formatter
	write     bool
	logger    *log.Logger

	// encoding is nil for UTF-8 input.
	encoding encoding.Encoding
	charset  string
}

type fileResult struct {
	out     []byte
	changed bool
	err     error
}

func (p *processor) formatFile(path string) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{err: err}
	}
	out, err := p.format(src)
	if err != nil {
		return fileResult{err: fmt.Errorf("%s: %w", path, err)}
	}
	r := fileResult{
		out:     out,
		changed: !bytes.Equal(src, out),
	}
	if p.write && r.changed {
		info, err := os.Stat(path)
		if err != nil {
			return fileResult{err: err}
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			return fileResult{err: err}
		}
		p.logger.Printf("rewrote %s", path)
	} else {
		p.logger.Printf("formatted %s", path)
	}
	return r
}

// format re-indents src, transcoding through UTF-8 if a charset is set.
func (p *processor) format(src []byte) ([]byte, error) {
	if p.encoding == nil {
		return p.formatter.AppendFormat(nil, src), nil
	}
	decoded, _, err := transform.Bytes(p.encoding.NewDecoder(), src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.charset, err)
	}
	out := p.formatter.AppendFormat(nil, decoded)
	encoded, _, err := transform.Bytes(p.encoding.NewEncoder(), out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", p.charset, err)
	}
	return encoded, nil
}
