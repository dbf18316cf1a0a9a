package cmd

import (
	"fmt"
	"os"

	"github.com/dinesim/dinesim/internal/availability"
	"github.com/dinesim/dinesim/internal/booking"
	"github.com/dinesim/dinesim/internal/search"
	"github.com/dinesim/dinesim/internal/store"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book <restaurant-id>",
	Short: "Validate and place a booking against the availability snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		restaurants := mustLoadRestaurants(cfg)
		avail := mustLoadAvailability(cfg)

		restaurant, ok := search.GetByID(restaurants, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Restaurant %s not found\n", args[0])
			os.Exit(1)
		}

		date, _ := cmd.Flags().GetString("date")
		slotTime, _ := cmd.Flags().GetString("time")
		partySize, _ := cmd.Flags().GetInt("party-size")
		tables, _ := cmd.Flags().GetInt("tables")

		valid, problems := booking.Validate(date, slotTime, partySize)
		if !valid {
			fmt.Fprintln(os.Stderr, "Booking request is invalid:")
			for _, problem := range problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", problem)
			}
			os.Exit(1)
		}

		free, found := availability.Check(avail, restaurant.ID, date, slotTime)
		if !found || free < tables {
			fmt.Fprintf(os.Stderr, "No availability at %s on %s. Alternatives:\n", slotTime, date)
			for _, slot := range availability.Alternatives(avail, restaurant.ID, date, slotTime, tables, 3) {
				fmt.Fprintf(os.Stderr, "  %s (%d tables)\n", slot.Time, slot.AvailableTables)
			}
			os.Exit(1)
		}

		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		requests, _ := cmd.Flags().GetString("requests")

		confirmed := booking.New(booking.Request{
			RestaurantID:    restaurant.ID,
			RestaurantName:  restaurant.Name,
			Date:            date,
			Time:            slotTime,
			PartySize:       partySize,
			CustomerName:    name,
			CustomerPhone:   phone,
			SpecialRequests: requests,
		})

		updated := booking.Apply(avail, restaurant.ID, date, slotTime, tables)
		if err := store.SaveAvailability(cfg.AvailabilityFile, updated); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving availability: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(formatBooking(confirmed))
	},
}

func init() {
	bookCmd.Flags().String("date", "", "Booking date (YYYY-MM-DD)")
	bookCmd.Flags().String("time", "", "Booking time (HH:MM)")
	bookCmd.Flags().Int("party-size", 2, "Party size")
	bookCmd.Flags().Int("tables", 1, "Tables to reserve")
	bookCmd.Flags().String("name", "", "Customer name")
	bookCmd.Flags().String("phone", "", "Customer phone")
	bookCmd.Flags().String("requests", "", "Special requests")

	rootCmd.AddCommand(bookCmd)
}
