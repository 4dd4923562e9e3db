// Package cli implements the homedecide command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simaogato/homedecide-backend/internal/adapter/repository/csvfile"
	"github.com/simaogato/homedecide-backend/internal/adapter/repository/memory"
	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/rentlookup"
	"github.com/simaogato/homedecide-backend/internal/usecase/report"
	"github.com/simaogato/homedecide-backend/internal/usecase/seeder"
)

type options struct {
	rentData    string
	defaultRent float64
	jsonOutput  bool
}

type services struct {
	projection *projection.Service
	rentLookup *rentlookup.RentLookupService
}

func (o *options) services(ctx context.Context) (*services, error) {
	var observations []*domain.RentObservation
	if o.rentData != "" {
		obs, err := csvfile.Load(o.rentData)
		if err != nil {
			return nil, err
		}
		observations = obs
	}

	repo := memory.NewRentRepository()
	if _, err := seeder.NewRentSeeder(repo, observations).Seed(ctx); err != nil {
		return nil, fmt.Errorf("loading rent data: %w", err)
	}

	lookup := rentlookup.NewRentLookupService(repo)
	return &services{
		projection: projection.NewService(lookup, nil, o.defaultRent, 0),
		rentLookup: lookup,
	}, nil
}

// NewRootCommand builds the homedecide command tree writing to out
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "homedecide",
		Short:         "Rent versus buy projections",
		Long:          "Compare the long-run cost of buying a home with renting and investing the down payment.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.rentData, "rent-data", "", "CSV file of city,bedrooms,average_rent (defaults to built-in data)")
	root.PersistentFlags().Float64Var(&opts.defaultRent, "default-rent", projection.DefaultMonthlyRent, "Monthly rent used when a city has no data")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of tables")

	root.AddCommand(
		newCompareCommand(opts),
		newRentCommand(opts),
		newCitiesCommand(opts),
		newScheduleCommand(opts),
	)

	return root
}

func newCompareCommand(opts *options) *cobra.Command {
	var (
		scenarioPath string
		city         string
		bedrooms     int
		rent         float64
		yearly       bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project buying against renting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := DefaultScenario()
			if scenarioPath != "" {
				s, err := LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				scenario = s
			}
			if cmd.Flags().Changed("city") {
				scenario.City = city
				// looking up a city replaces any scenario rent unless --rent is given
				scenario.Input.MonthlyRent = 0
			}
			if cmd.Flags().Changed("bedrooms") {
				scenario.Bedrooms = bedrooms
			}
			if cmd.Flags().Changed("rent") {
				scenario.Input.MonthlyRent = rent
			}

			svc, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}

			p, err := svc.projection.Project(cmd.Context(), projection.Request{
				Input:    scenario.Input,
				City:     scenario.City,
				Bedrooms: scenario.Bedrooms,
			})
			if err != nil {
				return err
			}

			r, err := report.Build(p.Result)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{"projection": p, "report": r})
			}
			renderComparison(cmd.OutOrStdout(), p, r, yearly)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "TOML scenario file")
	cmd.Flags().StringVar(&city, "city", "", "Look up the monthly rent for this city")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 1, "Bedroom count for the rent lookup")
	cmd.Flags().Float64Var(&rent, "rent", 0, "Monthly rent (overrides the scenario and lookup)")
	cmd.Flags().BoolVar(&yearly, "yearly", false, "Show the year-by-year breakdown")

	return cmd
}

func newRentCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rent <city> <bedrooms>",
		Short: "Show the average rent for a city",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bedrooms, err := strconv.Atoi(args[1])
			if err != nil || bedrooms < 0 {
				return domain.NewInvalidInputError("bedrooms", "must be a non-negative integer")
			}

			svc, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}

			rent, ok, err := svc.rentLookup.AverageRent(cmd.Context(), args[0], bedrooms)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: no rent data for %s", domain.ErrNotFound, args[0])
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"city": args[0], "bedrooms": bedrooms, "averageRent": rent.StringFixed(2),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %d bedroom(s): %s/month\n", args[0], bedrooms, FormatMoney(rent))
			return nil
		},
	}
}

func newCitiesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities with rent data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}
			cities, err := svc.rentLookup.Cities(cmd.Context())
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{"cities": cities})
			}
			for _, c := range cities {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newScheduleCommand(opts *options) *cobra.Command {
	var (
		principal float64
		rate      float64
		years     int
		annual    bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a loan amortization schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd.Context())
			if err != nil {
				return err
			}

			periods, err := svc.projection.Schedule(cmd.Context(), principal, rate, years)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), periods)
			}
			renderSchedule(cmd.OutOrStdout(), periods, annual)
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 600000, "Loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 5.5, "Annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 25, "Loan term in years")
	cmd.Flags().BoolVar(&annual, "annual", false, "Summarize by year instead of by month")

	return cmd
}

func renderComparison(w io.Writer, p *projection.Projection, r *report.Report, yearly bool) {
	fmt.Fprintln(w, RenderTitle("Rent vs Buy"))
	fmt.Fprintln(w)

	source := string(p.RentSource)
	if p.City != "" {
		source = fmt.Sprintf("%s (%s, %d bedroom(s))", source, p.City, p.Bedrooms)
	}
	fmt.Fprintf(w, "  %s %s\n\n", mutedStyle.Render("Monthly rent source:"), source)

	headline := Table{Title: "Totals", Headers: []string{"", "Amount"}}
	for _, bar := range r.Headline {
		headline.Rows = append(headline.Rows, []string{bar.Label, FormatMoney(bar.Amount)})
	}
	fmt.Fprint(w, RenderTable(headline))
	fmt.Fprintln(w)

	metrics := Table{Title: "Key figures", Headers: []string{"", "Amount"}}
	for _, m := range r.Metrics {
		metrics.Rows = append(metrics.Rows, []string{m.Label, FormatMoney(m.Amount)})
	}
	fmt.Fprint(w, RenderTable(metrics))
	fmt.Fprintln(w)

	fmt.Fprintln(w, RenderAffordability("Mortgage / income", r.MortgageAffordability))
	fmt.Fprintln(w, RenderAffordability("Rent / income", r.RentAffordability))
	fmt.Fprintln(w)

	if yearly {
		breakdown := Table{
			Title:   "Year by year",
			Headers: []string{"Year", "Owning", "Rent", "Home value", "Equity", "Investment", "Buy pos.", "Rent pos."},
		}
		for _, row := range r.Breakdown {
			breakdown.Rows = append(breakdown.Rows, []string{
				strconv.Itoa(row.Year),
				FormatMoney(row.OwnershipCost),
				FormatMoney(row.Rent),
				FormatMoney(row.HomeValue),
				FormatMoney(row.Equity),
				FormatMoney(row.InvestmentValue),
				FormatMoney(row.BuyingPosition),
				FormatMoney(row.RentingPosition),
			})
		}
		fmt.Fprint(w, RenderTable(breakdown))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  %s\n", headerStyle.Render(r.Summary))
}

func renderSchedule(w io.Writer, periods []amortization.Period, annual bool) {
	t := Table{Headers: []string{"Month", "Payment", "Interest", "Principal", "Balance"}}
	if annual {
		t.Headers[0] = "Year"
	}

	var payment, interest, principal float64
	for _, p := range periods {
		payment += p.Payment
		interest += p.Interest
		principal += p.Principal

		label := strconv.Itoa(p.Number)
		if annual {
			if p.Number%domain.MonthsPerYear != 0 && p.Number != len(periods) {
				continue
			}
			label = strconv.Itoa((p.Number + domain.MonthsPerYear - 1) / domain.MonthsPerYear)
		}

		t.Rows = append(t.Rows, []string{
			label,
			FormatMoney(report.Money(payment)),
			FormatMoney(report.Money(interest)),
			FormatMoney(report.Money(principal)),
			FormatMoney(report.Money(p.Balance)),
		})
		payment, interest, principal = 0, 0, 0
	}

	fmt.Fprint(w, RenderTable(t))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExitCode maps an error returned by the command tree to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrInvalidInput):
		return 2
	default:
		return 1
	}
}
