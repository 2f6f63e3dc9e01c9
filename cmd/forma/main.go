// Command forma renders a single template against a JSON value read from
// stdin, using a forma.yaml sidecar to describe where includes live and
// what shape the JSON value takes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/juju/loggo"
	"github.com/madeso/forma"
)

var logger = loggo.GetLogger("forma")

func main() {
	configPath := flag.String("config", "forma.yaml", "path to the forma.yaml sidecar config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLogLevel(loggo.DEBUG)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: forma [-config forma.yaml] [-v] <template>")
		os.Exit(2)
	}
	templatePath := flag.Arg(0)

	if err := run(templatePath, *configPath, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(templatePath, configPath string, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Debugf("loaded config from %s: includeDir=%s defaultExtension=%s", configPath, cfg.IncludeDir, cfg.DefaultExtension)

	var data record
	if err := json.NewDecoder(in).Decode(&data); err != nil {
		return fmt.Errorf("reading JSON input: %w", err)
	}

	vfs := forma.NewLocalFilesystemVfs("")
	includeDir := forma.NewLocalIncludeDir(cfg.IncludeDir)
	functions := enabledFunctions(cfg.Functions)
	definition := buildDefinition(cfg.Schema)

	eval, errs := buildWithExtension(templatePath, vfs, functions, includeDir, definition, cfg.DefaultExtension)
	if len(errs) > 0 {
		logger.Errorf("%d diagnostic(s) rendering %s", len(errs), templatePath)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.String())
		}
		return fmt.Errorf("rendering %s failed", templatePath)
	}

	fmt.Fprint(out, eval(data))
	return nil
}

// buildWithExtension mirrors forma.Build but substitutes the sidecar's
// configured default extension for include resolution instead of the
// template file's own extension, since the CLI's config is the source of
// truth for that convention.
func buildWithExtension(path string, vfs forma.Vfs, functions forma.FuncRegistry, includeDir forma.IncludeDir, definition *forma.Definition[record], defaultExtension string) (forma.Evaluator[record], []forma.Error) {
	source, err := vfs.ReadAllText(path)
	if err != nil {
		return func(record) string { return "Lexing failed" }, []forma.Error{{
			Location: forma.Location{File: path, Line: -1, Column: -1},
			Message:  "Unable to read file: " + err.Error(),
		}}
	}

	tokens, lexErrors := forma.Scan(path, source)
	if len(lexErrors) > 0 {
		return func(record) string { return "Lexing failed" }, lexErrors
	}

	root, parseErrors := forma.Parse(tokens, functions, includeDir, defaultExtension, vfs)
	if len(parseErrors) > 0 {
		return func(record) string { return "Parsing failed" }, parseErrors
	}

	return definition.Validate(root)
}
