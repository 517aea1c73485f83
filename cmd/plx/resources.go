package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/maruel/plx/client"
	"github.com/maruel/plx/models"
	"github.com/spf13/cobra"
)

func addListFlags(cmd *cobra.Command, o *client.ListOptions) {
	cmd.Flags().IntVar(&o.Offset, "offset", 0, "index of the first result")
	cmd.Flags().IntVar(&o.Limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringVar(&o.Sort, "sort", "", "sort key: name, created_at or updated_at, - prefix for descending")
	cmd.Flags().StringVarP(&o.Query, "query", "q", "", `filters, e.g. "kind:s3|gcs,tags:~old"`)
}

// table writes aligned rows.
func table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range append([][]string{header}, rows...) {
		for i, c := range r {
			if i > 0 {
				_, _ = io.WriteString(tw, "\t")
			}
			_, _ = io.WriteString(tw, c)
		}
		_, _ = io.WriteString(tw, "\n")
	}
	return tw.Flush()
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(time.DateTime)
}

func footer(w io.Writer, count int32, shown int, next string) error {
	_, err := fmt.Fprintf(w, "%d/%d", shown, count)
	if err == nil && next != "" {
		_, err = fmt.Fprint(w, " (more)")
	}
	if err == nil {
		_, err = fmt.Fprintln(w)
	}
	return err
}

// connectionFields holds the flags of connection create, update and patch.
type connectionFields struct {
	name        string
	kind        string
	description string
	tags        []string
}

func (f *connectionFields) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "connection name")
	cmd.Flags().StringVar(&f.kind, "kind", "", "connection kind, e.g. s3, gcs, git")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag, can be repeated")
}

// model returns a connection with the fields whose flag was set.
func (f *connectionFields) model(cmd *cobra.Command) (*models.ConnectionResponse, error) {
	m := models.NewConnectionResponse()
	if cmd.Flags().Changed("name") {
		m.SetName(f.name)
	}
	if cmd.Flags().Changed("kind") {
		k := models.ConnectionKind(f.kind)
		if !k.IsValid() {
			return nil, fmt.Errorf("invalid connection kind %q", f.kind)
		}
		m.SetKind(k)
	}
	if cmd.Flags().Changed("description") {
		m.SetDescription(f.description)
	}
	if cmd.Flags().Changed("tag") {
		m.SetTags(f.tags)
	}
	return m, nil
}

func (a *app) connectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"conn"},
		Short:   "Manage connections",
	}

	var listOpts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.ListConnections(cmd.Context(), a.cfg.Owner, &listOpts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				rows := make([][]string, len(resp.Results))
				for i, r := range resp.Results {
					rows[i] = []string{r.GetUUID(), r.GetName(), string(r.GetKind()), stamp(r.GetCreatedAt())}
				}
				if err := table(w, []string{"UUID", "NAME", "KIND", "CREATED"}, rows); err != nil {
					return err
				}
				return footer(w, resp.GetCount(), len(rows), resp.GetNext())
			})
		},
	}
	addListFlags(list, &listOpts)

	var namesOpts client.ListOptions
	names := &cobra.Command{
		Use:   "names",
		Short: "List connection names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.ListConnectionNames(cmd.Context(), a.cfg.Owner, &namesOpts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				for _, r := range resp.Results {
					if _, err := fmt.Fprintln(w, r.GetName()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addListFlags(names, &namesOpts)

	get := &cobra.Command{
		Use:   "get UUID",
		Short: "Show a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			conn, err := c.GetConnection(cmd.Context(), a.cfg.Owner, args[0])
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), conn)
		},
	}

	var createFields connectionFields
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := createFields.model(cmd)
			if err != nil {
				return err
			}
			if !body.HasName() || !body.HasKind() {
				return errors.New("--name and --kind are required")
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			conn, err := c.CreateConnection(cmd.Context(), a.cfg.Owner, body)
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), conn)
		},
	}
	createFields.add(create)

	var updateFields connectionFields
	update := &cobra.Command{
		Use:   "update UUID",
		Short: "Replace a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := updateFields.model(cmd)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			conn, err := c.UpdateConnection(cmd.Context(), a.cfg.Owner, args[0], body)
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), conn)
		},
	}
	updateFields.add(update)

	var patchFields connectionFields
	patch := &cobra.Command{
		Use:   "patch UUID",
		Short: "Change the given fields of a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := patchFields.model(cmd)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			conn, err := c.PatchConnection(cmd.Context(), a.cfg.Owner, args[0], body)
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), conn)
		},
	}
	patchFields.add(patch)

	del := &cobra.Command{
		Use:   "delete UUID",
		Short: "Delete a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return c.DeleteConnection(cmd.Context(), a.cfg.Owner, args[0])
		},
	}

	cmd.AddCommand(list, names, get, create, update, patch, del)
	return cmd
}

func (a *app) queuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queues",
		Short: "Manage agent queues",
	}
	var agent string
	cmd.PersistentFlags().StringVar(&agent, "agent", "", "agent owning the queues")

	var listOpts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List the queues of an agent, or of the organization without --agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			var resp *models.ListQueuesResponse
			if agent == "" {
				resp, err = c.ListOrganizationQueues(cmd.Context(), a.cfg.Owner, &listOpts)
			} else {
				resp, err = c.ListQueues(cmd.Context(), a.cfg.Owner, agent, &listOpts)
			}
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				rows := make([][]string, len(resp.Results))
				for i, r := range resp.Results {
					rows[i] = []string{r.GetUUID(), r.GetAgent(), r.GetName(), fmt.Sprint(r.GetPriority()), fmt.Sprint(r.GetConcurrency())}
				}
				if err := table(w, []string{"UUID", "AGENT", "NAME", "PRIORITY", "CONCURRENCY"}, rows); err != nil {
					return err
				}
				return footer(w, resp.GetCount(), len(rows), resp.GetNext())
			})
		},
	}
	addListFlags(list, &listOpts)

	get := &cobra.Command{
		Use:   "get UUID",
		Short: "Show a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			q, err := c.GetQueue(cmd.Context(), a.cfg.Owner, agent, args[0])
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), q)
		},
	}

	var name, description, resource string
	var priority, concurrency int32
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			body := models.NewQueue().WithName(name)
			if description != "" {
				body.SetDescription(description)
			}
			if resource != "" {
				body.SetResource(resource)
			}
			if cmd.Flags().Changed("priority") {
				body.SetPriority(priority)
			}
			if cmd.Flags().Changed("concurrency") {
				body.SetConcurrency(concurrency)
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			q, err := c.CreateQueue(cmd.Context(), a.cfg.Owner, agent, body)
			if err != nil {
				return err
			}
			return a.printModel(cmd.OutOrStdout(), q)
		},
	}
	create.Flags().StringVar(&name, "name", "", "queue name")
	create.Flags().StringVar(&description, "description", "", "description")
	create.Flags().StringVar(&resource, "resource", "", "resource the queue runs on")
	create.Flags().Int32Var(&priority, "priority", 0, "priority")
	create.Flags().Int32Var(&concurrency, "concurrency", 0, "maximum concurrent runs")

	del := &cobra.Command{
		Use:   "delete UUID",
		Short: "Delete a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return c.DeleteQueue(cmd.Context(), a.cfg.Owner, agent, args[0])
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
