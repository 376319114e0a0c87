package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/you/go-safar-pricing/internal/geo"
	"github.com/you/go-safar-pricing/internal/pricing"
)

func main() {
	root := &cobra.Command{
		Use:   "quotes",
		Short: "Safar pricing engine – flight and hotel quotes from the terminal",
	}

	root.AddCommand(flightsCmd())
	root.AddCommand(hotelsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() *pricing.Engine {
	return pricing.NewEngine(
		geo.DefaultRegistry(),
		pricing.DefaultFlightProviders(),
		pricing.DefaultHotelProviders(),
	)
}

func flightsCmd() *cobra.Command {
	var from, to, date string

	cmd := &cobra.Command{
		Use:     "flights",
		Short:   "Quote a flight route across all providers",
		Example: `  quotes flights --from Delhi --to Goa --date 2026-10-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" || date == "" {
				return cmd.Help()
			}
			quotes := newEngine().FlightQuotes(from, to, date)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tPRICE\tDEPART\tARRIVE\tDURATION\tSTOPS\t")
			for _, q := range quotes {
				deal := ""
				if q.BestDeal {
					deal = "best deal"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					q.Provider, pricing.FormatINR(q.Price), q.Departure, q.Arrival, q.Duration, q.Stops, deal)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Origin city (required)")
	cmd.Flags().StringVar(&to, "to", "", "Destination city (required)")
	cmd.Flags().StringVar(&date, "date", "", "Travel date YYYY-MM-DD (required)")

	return cmd
}

func hotelsCmd() *cobra.Command {
	var city, checkIn, checkOut string

	cmd := &cobra.Command{
		Use:     "hotels",
		Short:   "Quote stays in a city across all providers",
		Example: `  quotes hotels --city Mumbai --check-in 2026-10-01 --check-out 2026-10-04`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if city == "" || checkIn == "" || checkOut == "" {
				return cmd.Help()
			}
			quotes := newEngine().HotelQuotes(city, checkIn, checkOut)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tRATING\tPER NIGHT\tTOTAL\tPROVIDER\t")
			for _, q := range quotes {
				deal := ""
				if q.BestDeal {
					deal = "best deal"
				}
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%s\t%s\n",
					q.HotelName, q.Type, q.Rating,
					pricing.FormatINR(q.PricePerNight), pricing.FormatINR(q.TotalPrice), q.Provider, deal)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "Destination city (required)")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date YYYY-MM-DD (required)")

	return cmd
}
