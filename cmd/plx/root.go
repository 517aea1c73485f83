package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/maruel/plx/client"
	"github.com/maruel/plx/internal/config"
	"github.com/maruel/plx/internal/logging"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command.
type app struct {
	getenv  func(string) string
	cfgPath string
	output  string
	query   string
	cfg     *config.Config

	// Flag overrides, applied over the file and the environment.
	host      string
	token     string
	namespace string
	owner     string
	project   string
	logLevel  string
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv}
	cmd := &cobra.Command{
		Use:           "plx",
		Short:         "Command line client for the platform API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", config.Path(), "configuration file")
	f.StringVarP(&a.output, "output", "o", "text", "output format: text, json or jsonpath=EXPR")
	f.StringVar(&a.host, "host", "", "API base URL")
	f.StringVar(&a.token, "token", "", "API token")
	f.StringVar(&a.namespace, "namespace", "", "streams namespace")
	f.StringVar(&a.owner, "owner", "", "organization")
	f.StringVar(&a.project, "project", "", "project")
	f.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.healthCmd(),
		a.configCmd(),
		a.connectionsCmd(),
		a.queuesCmd(),
		a.eventsCmd(),
		a.runsCmd(),
	)
	return cmd
}

// load builds the configuration from the file, the environment and the
// flags, in increasing priority.
func (a *app) load(cmd *cobra.Command) error {
	if expr, ok := strings.CutPrefix(a.output, "jsonpath="); ok {
		if _, err := jsonpath.New(expr); err != nil {
			return fmt.Errorf("invalid jsonpath %q: %w", expr, err)
		}
		a.query = expr
	} else if a.output != "text" && a.output != "json" {
		return fmt.Errorf("invalid output %q: want text, json or jsonpath=EXPR", a.output)
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(a.getenv); err != nil {
		return err
	}
	flags := map[string]string{
		"host":      a.host,
		"token":     a.token,
		"namespace": a.namespace,
		"owner":     a.owner,
		"project":   a.project,
		"log-level": a.logLevel,
	}
	for name, v := range flags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		key := name
		if name == "log-level" {
			key = "log_level"
		}
		if err := cfg.Set(key, v); err != nil {
			return err
		}
	}
	if err := logging.Init(cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) client() (*client.Client, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	return client.New(client.Config{
		Host:       a.cfg.Host,
		Token:      a.cfg.Token,
		AuthScheme: a.cfg.AuthScheme,
		Timeout:    a.cfg.Timeout,
		Compress:   a.cfg.Compress,
		Retries:    a.cfg.Retries,
		UserAgent:  "plx",
	})
}

// print writes v as indented JSON, the result of the jsonpath expression
// over v, or calls text in text mode.
func (a *app) print(w io.Writer, v any, text func(io.Writer) error) error {
	switch {
	case a.query != "":
		return printPath(w, a.query, v)
	case a.output == "json":
		return printJSON(w, v)
	}
	return text(w)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// printPath evaluates expr over the JSON form of v. Strings are printed
// bare, one per line when the expression selects several values.
func printPath(w io.Writer, expr string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	res, err := jsonpath.Get(expr, doc)
	if err != nil {
		return fmt.Errorf("jsonpath %q: %w", expr, err)
	}
	values, ok := res.([]any)
	if !ok {
		values = []any{res}
	}
	for _, r := range values {
		if s, ok := r.(string); ok {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		if err := printJSON(w, r); err != nil {
			return err
		}
	}
	return nil
}

// printModel prints a model in its text form or as JSON.
func (a *app) printModel(w io.Writer, m fmt.Stringer) error {
	return a.print(w, m, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, m)
		return err
	})
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			if err := c.Health(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), map[string]string{"status": "ok"}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "ok")
				return err
			})
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c := *a.cfg
				if c.Token != "" {
					c.Token = "***"
				}
				return a.print(cmd.OutOrStdout(), &c, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "host:        %s\nauth_scheme: %s\nnamespace:   %s\nowner:       %s\nproject:     %s\ntimeout:     %s\ncompress:    %s\nretries:     %d\nlog_level:   %s\ntoken:       %s\n",
						c.Host, c.AuthScheme, c.Namespace, c.Owner, c.Project, c.Timeout, c.Compress, c.Retries, c.LogLevel, c.Token)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Set a key in the configuration file",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				// Only the file content is saved, not env or flag overrides.
				cfg, err := config.Load(a.cfgPath)
				if err != nil {
					return err
				}
				if err := cfg.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := cfg.Validate(); err != nil {
					return err
				}
				return cfg.Save(a.cfgPath)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfgPath)
				return err
			},
		},
	)
	return cmd
}
