package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maruel/plx/client"
	"github.com/maruel/plx/internal/events"
	"github.com/maruel/plx/models"
	"github.com/spf13/cobra"
)

func parseKind(s string) (models.ArtifactKind, error) {
	k, err := models.ParseArtifactKind(s)
	if err != nil {
		return "", err
	}
	return k, events.CheckKind(k)
}

// eventName returns the event name of an event file path.
func eventName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), events.Ext)
}

func (a *app) run(uuid string) *client.Run {
	return &client.Run{Namespace: a.cfg.Namespace, Owner: a.cfg.Owner, Project: a.cfg.Project, UUID: uuid}
}

// printEvents writes the events of l in the event file format.
func printEvents(w io.Writer, l *models.LoggedEventList) error {
	kind := l.GetKind()
	if _, err := fmt.Fprintln(w, events.Header(kind)); err != nil {
		return err
	}
	for _, e := range l.GetEvents() {
		row, err := events.FormatRow(kind, e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(w io.Writer, s *events.Summary) error {
	if s.Step != nil {
		if _, err := fmt.Fprintf(w, "steps:     %d (%d to %d)\n", s.Step.Count, s.Step.Min, s.Step.Max); err != nil {
			return err
		}
	}
	if s.Timestamp != nil {
		if _, err := fmt.Fprintf(w, "time:      %s to %s\n", stamp(s.Timestamp.Min), stamp(s.Timestamp.Max)); err != nil {
			return err
		}
	}
	if m := s.Metric; m != nil {
		f := func(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
		std := "n/a"
		if m.Std != nil {
			std = f(*m.Std)
		}
		_, err := fmt.Fprintf(w, "count:     %d\nmean:      %s\nstd:       %s\nmin:       %s\n25%%:       %s\n50%%:       %s\n75%%:       %s\nmax:       %s\nlast:      %s\n",
			m.Count, f(m.Mean), std, f(m.Min), f(m.P25), f(m.P50), f(m.P75), f(m.Max), f(m.Last))
		return err
	}
	return nil
}

func (a *app) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect, push and fetch run events",
	}
	var kindFlag string
	cmd.PersistentFlags().StringVarP(&kindFlag, "kind", "k", "metric", "event kind")

	var sample int
	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a local event file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}
			l, err := events.ReadFile(args[0], kind, eventName(args[0]))
			if err != nil {
				return err
			}
			l = events.Sample(l, sample)
			return a.print(cmd.OutOrStdout(), l, func(w io.Writer) error { return printEvents(w, l) })
		},
	}
	show.Flags().IntVar(&sample, "sample", 0, "print at most this many events, evenly spaced")

	summary := &cobra.Command{
		Use:   "summary FILE",
		Short: "Describe a local event file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}
			l, err := events.ReadFile(args[0], kind, eventName(args[0]))
			if err != nil {
				return err
			}
			s := events.Summarize(l)
			return a.print(cmd.OutOrStdout(), s, func(w io.Writer) error { return printSummary(w, s) })
		},
	}

	tail := &cobra.Command{
		Use:   "tail FILE",
		Short: "Print events as they are appended to a local event file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return events.Tail(cmd.Context(), args[0], kind, func(e *models.Event) error {
				if a.output != "text" {
					return a.print(w, e, nil)
				}
				row, err := events.FormatRow(kind, e)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, row)
				return err
			})
		},
	}

	var pushRun, pushName string
	push := &cobra.Command{
		Use:   "push FILE",
		Short: "Upload a local event file to a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}
			name := pushName
			if name == "" {
				name = eventName(args[0])
			}
			l, err := events.ReadFile(args[0], kind, name)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			if err := c.LogRunEvents(cmd.Context(), a.run(pushRun), kind, l); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "pushed %d %s events\n", len(l.GetEvents()), name)
			return err
		},
	}
	push.Flags().StringVar(&pushRun, "run", "", "run uuid")
	push.Flags().StringVar(&pushName, "name", "", "event name (default: file name)")

	var getRun string
	var getOpts client.EventsOptions
	get := &cobra.Command{
		Use:   "get",
		Short: "Fetch the events of a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.GetRunEvents(cmd.Context(), a.run(getRun), kind, &getOpts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				for i, l := range resp.Data {
					if i > 0 {
						if _, err := fmt.Fprintln(w); err != nil {
							return err
						}
					}
					if _, err := fmt.Fprintf(w, "# %s\n", l.GetName()); err != nil {
						return err
					}
					if !l.HasKind() {
						l.SetKind(kind)
					}
					if err := printEvents(w, l); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	get.Flags().StringVar(&getRun, "run", "", "run uuid")
	get.Flags().StringSliceVar(&getOpts.Names, "names", nil, "event names (default: all)")
	get.Flags().IntVar(&getOpts.Sample, "sample", 0, "at most this many events per name, evenly spaced")

	cmd.AddCommand(show, summary, tail, push, get)
	return cmd
}

func (a *app) runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Run operations",
	}
	var kind string
	collect := &cobra.Command{
		Use:   "collect-logs UUID",
		Short: "Ask the server to collect the logs of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return c.CollectRunLogs(cmd.Context(), a.run(args[0]), kind)
		},
	}
	collect.Flags().StringVar(&kind, "kind", "k8s", "log source kind")
	cmd.AddCommand(collect)
	return cmd
}
