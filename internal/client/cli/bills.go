package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
)

func (a *App) newBillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Track chapter expenses",
	}
	cmd.AddCommand(
		a.newBillsListCmd(),
		a.newBillsShowCmd(),
		a.newBillsCreateCmd(),
		a.newBillsEditCmd(),
		a.newBillsDeleteCmd(),
	)
	a.guard(cmd)
	return cmd
}

func (a *App) newBillsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListBills(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Bills(list)
			return nil
		},
	}
}

func (a *App) newBillsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <bill-id>",
		Short: "Show a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.api.GetBill(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Bill(b)
			return nil
		},
	}
}

func billFlags(fl *pflag.FlagSet, f *forms.Bill) {
	fl.StringVar(&f.Description, "description", "", "what the money was spent on")
	fl.StringVar(&f.Amount, "amount", "", "amount, e.g. 1250.50")
	fl.StringVar(&f.Date, "date", "", "date YYYY-MM-DD (default today)")
	fl.StringVar(&f.Receipt, "receipt", "", "receipt image path")
}

func (a *App) newBillsCreateCmd() *cobra.Command {
	var f forms.Bill

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a bill with its receipt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.Date == "" {
				f.Date = timeNow().Format("2006-01-02")
			}
			if err := f.Validate(true); err != nil {
				return err
			}
			if err := a.api.CreateBill(cmd.Context(), f.Payload()); err != nil {
				return err
			}
			a.out.Success("Bill recorded.")
			return nil
		},
	}
	billFlags(cmd.Flags(), &f)
	return cmd
}

// newBillsEditCmd keeps the stored values for flags that were not given. The
// receipt is only replaced when --receipt is passed.
func (a *App) newBillsEditCmd() *cobra.Command {
	var in forms.Bill

	cmd := &cobra.Command{
		Use:   "edit <bill-id>",
		Short: "Edit a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cur, err := a.api.GetBill(ctx, args[0])
			if err != nil {
				return err
			}

			f := forms.Bill{
				Description: cur.Description,
				Amount:      cur.Amount.String(),
				Date:        cur.Date,
				Receipt:     in.Receipt,
			}
			fl := cmd.Flags()
			if fl.Changed("description") {
				f.Description = in.Description
			}
			if fl.Changed("amount") {
				f.Amount = in.Amount
			}
			if fl.Changed("date") {
				f.Date = in.Date
			}

			if err := f.Validate(false); err != nil {
				return err
			}
			if err := a.api.UpdateBill(ctx, args[0], f.Payload()); err != nil {
				return err
			}
			a.out.Success("Bill updated.")
			return nil
		},
	}
	billFlags(cmd.Flags(), &in)
	return cmd
}

func (a *App) newBillsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <bill-id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.confirmDelete(yes, "bill "+args[0], func() error {
				return a.api.DeleteBill(cmd.Context(), args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	return cmd
}
