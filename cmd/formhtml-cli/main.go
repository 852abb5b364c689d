package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhtml/pkg/formdef"
	"github.com/goliatone/go-formhtml/pkg/formelement"
	"github.com/goliatone/go-formhtml/pkg/prompt"
)

func main() {
	source := flag.String("source", "forms", "directory holding form definitions")
	formName := flag.String("form", "", "form to render (first form if empty)")
	valuesPath := flag.String("values", "", "YAML or JSON file with submitted values")
	interactive := flag.Bool("interactive", false, "prompt for element values")
	output := flag.String("output", "", "output file (stdout if empty)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	ctx := context.Background()

	valid, err := run(ctx, logger, options{
		source:      *source,
		form:        *formName,
		values:      *valuesPath,
		interactive: *interactive,
		output:      *output,
	})
	if err != nil {
		logger.Error("formhtml failed", slog.Any("error", err))
		os.Exit(2)
	}
	if !valid {
		os.Exit(1)
	}
}

type options struct {
	source      string
	form        string
	values      string
	interactive bool
	output      string
}

func run(ctx context.Context, logger *slog.Logger, opts options) (bool, error) {
	store, err := formdef.LoadFS(os.DirFS(opts.source))
	if err != nil {
		return false, err
	}
	name := opts.form
	if name == "" {
		names := store.Names()
		if len(names) == 0 {
			return false, fmt.Errorf("no forms found in %s", opts.source)
		}
		name = names[0]
	}

	form, err := store.Build(name, formelement.WithLogger(logger))
	if err != nil {
		return false, err
	}
	logger.Debug("form loaded", slog.String("form", name), slog.Int("elements", len(form.Elements())))

	valid := true
	if opts.values != "" {
		values, err := readValues(opts.values)
		if err != nil {
			return false, err
		}
		if valid, err = form.Handle(ctx, values); err != nil {
			return false, err
		}
	}
	if opts.interactive {
		if err := prompt.Fill(ctx, prompt.NewSurveyDriver(os.Stderr), form); err != nil {
			return false, err
		}
		valid = form.IsValid()
	}
	if !valid {
		logger.Warn("form is invalid", slog.String("form", name), slog.Any("errors", form.ElementMessages()))
	}

	markup, err := form.Render()
	if err != nil {
		return false, err
	}
	if opts.output == "" {
		fmt.Println(markup)
		return valid, nil
	}
	if err := os.WriteFile(opts.output, []byte(markup+"\n"), 0o644); err != nil {
		return false, fmt.Errorf("write output: %w", err)
	}
	logger.Info("form written", slog.String("path", opts.output))
	return valid, nil
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}
