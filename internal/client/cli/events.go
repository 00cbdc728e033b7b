package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
)

func (a *App) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse and manage chapter events",
	}

	manage := []*cobra.Command{
		a.newEventsCreateCmd(),
		a.newEventsEditCmd(),
		a.newEventsDeleteCmd(),
		a.newEventsDeleteImageCmd(),
		a.newEventTypesCmd(),
	}
	a.guard(manage...)

	cmd.AddCommand(a.newEventsListCmd(), a.newEventsShowCmd())
	cmd.AddCommand(manage...)
	return cmd
}

func (a *App) newEventsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListEvents(cmd.Context(), search)
			if err != nil {
				return err
			}
			a.out.Events(list)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "server-side search")
	return cmd
}

func (a *App) newEventsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.api.GetEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Event(ev)
			return nil
		},
	}
}

type eventField struct {
	name, usage string
	value       *string
}

// eventFields lists the text fields of f in flag order.
func eventFields(f *forms.Event) []eventField {
	return []eventField{
		{"title", "event title", &f.Title},
		{"content", "event content", &f.Content},
		{"description", "short description", &f.Description},
		{"date", "date YYYY-MM-DD", &f.Date},
		{"from", `start time, "14:00" or "2:00 PM"`, &f.TimeFrom},
		{"to", `end time, "16:00" or "4:00 PM"`, &f.TimeTo},
		{"location", "location", &f.Location},
		{"seats", "total seats", &f.TotalSeats},
		{"type", "event type id, see `events types`", &f.EventType},
		{"hosts", "comma-separated hosts", &f.Hosts},
		{"tags", "comma-separated tags", &f.Tags},
	}
}

func eventFlags(fl *pflag.FlagSet, f *forms.Event) {
	for _, ef := range eventFields(f) {
		fl.StringVar(ef.value, ef.name, "", ef.usage)
	}
	fl.StringArrayVar(&f.Images, "image", nil, "image file, repeatable")
}

func (a *App) newEventsCreateCmd() *cobra.Command {
	var f forms.Event

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.Validate(); err != nil {
				return err
			}
			if err := a.api.CreateEvent(cmd.Context(), f.Payload()); err != nil {
				return err
			}
			a.out.Success("Event created.")
			return nil
		},
	}
	eventFlags(cmd.Flags(), &f)
	return cmd
}

// newEventsEditCmd starts from the stored event and overrides the fields whose
// flags were given. New images are added to the existing ones.
func (a *App) newEventsEditCmd() *cobra.Command {
	var in forms.Event

	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Edit an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ev, err := a.api.GetEvent(ctx, args[0])
			if err != nil {
				return err
			}

			f := forms.EventFromModel(ev)
			cur, given := eventFields(&f), eventFields(&in)
			for i := range cur {
				if cmd.Flags().Changed(given[i].name) {
					*cur[i].value = *given[i].value
				}
			}
			f.Images = in.Images

			if err := f.Validate(); err != nil {
				return err
			}
			d := f.Payload()
			d.ImageField = "image"
			if err := a.api.UpdateEvent(ctx, args[0], d); err != nil {
				return err
			}
			a.out.Success("Event updated.")
			return nil
		},
	}
	eventFlags(cmd.Flags(), &in)
	return cmd
}

func (a *App) newEventsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.confirmDelete(yes, "event "+args[0], func() error {
				return a.api.DeleteEvent(cmd.Context(), args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	return cmd
}

func (a *App) newEventsDeleteImageCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-image <event-id> <image-id>",
		Short: "Remove one image from an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.confirmDelete(yes, "image "+args[1]+" of event "+args[0], func() error {
				return a.api.DeleteEventImage(cmd.Context(), args[0], args[1])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	return cmd
}

func (a *App) newEventTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List event types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListEventTypes(cmd.Context())
			if err != nil {
				return err
			}
			a.out.EventTypes(list)
			return nil
		},
	}
}
