package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dinesim/dinesim/internal/availability"
	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/search"
	"github.com/dinesim/dinesim/internal/store"
	"github.com/dinesim/dinesim/internal/timeutil"
	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots <restaurant-id> <date>",
	Short: "List available time slots for a restaurant on a date",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		avail := mustLoadAvailability(cfg)
		minTables, _ := cmd.Flags().GetInt("min-tables")
		near, _ := cmd.Flags().GetString("near")
		maxAlternatives, _ := cmd.Flags().GetInt("max-alternatives")

		var slots []models.TimeSlot
		if near != "" {
			slots = availability.Alternatives(avail, args[0], args[1], near, minTables, maxAlternatives)
		} else {
			slots = availability.Slots(avail, args[0], args[1], minTables)
		}

		if len(slots) == 0 {
			fmt.Printf("No slots with %d+ tables for %s on %s\n", minTables, args[0], args[1])
			return
		}
		for _, slot := range slots {
			fmt.Printf("%s  %d tables\n", slot.Time, slot.AvailableTables)
		}
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates <restaurant-id>",
	Short: "List dates with availability for a restaurant",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		avail := mustLoadAvailability(cfg)
		minTables, _ := cmd.Flags().GetInt("min-tables")

		for _, date := range availability.Dates(avail, args[0], minTables) {
			fmt.Printf("%s (%s)\n", date, timeutil.DayName(date))
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <restaurant-id> [restaurant-id...]",
	Short: "Check a date/time slot across one or more restaurants",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		avail := mustLoadAvailability(cfg)
		date, _ := cmd.Flags().GetString("date")
		slotTime, _ := cmd.Flags().GetString("time")
		minTables, _ := cmd.Flags().GetInt("min-tables")

		for _, result := range availability.CheckMultiple(avail, args, date, slotTime, minTables) {
			status := "unavailable"
			if result.Available {
				status = "available"
			}
			fmt.Printf("%s: %s (%d tables)\n", result.RestaurantID, status, result.Tables)
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [restaurant-id]",
	Short: "Show availability stats for a restaurant, or directory stats",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		if len(args) == 1 {
			avail := mustLoadAvailability(cfg)
			stats := availability.Stats(avail, args[0])
			fmt.Printf("Total slots:        %d\n", stats.TotalSlots)
			fmt.Printf("Available slots:    %d\n", stats.AvailableSlots)
			fmt.Printf("Fully booked slots: %d\n", stats.FullyBookedSlots)
			fmt.Printf("Availability rate:  %.1f%%\n", stats.AvailabilityRate)
			return
		}

		restaurants := mustLoadRestaurants(cfg)
		stats := search.Stats(restaurants)
		fmt.Printf("Total restaurants: %d\n", stats.Total)
		fmt.Printf("Average rating:    %.2f\n", stats.AverageRating)
		fmt.Printf("By cuisine:        %v\n", stats.ByCuisine)
		fmt.Printf("By location:       %v\n", stats.ByLocation)
		fmt.Printf("By price range:    %v\n", stats.ByPriceRange)
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend restaurants from the directory by preference",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		restaurants := mustLoadRestaurants(cfg)

		prefs := search.Preferences{}
		prefs.Cuisine, _ = cmd.Flags().GetString("cuisine")
		prefs.PriceRange, _ = cmd.Flags().GetString("price-range")
		if dietary, _ := cmd.Flags().GetString("dietary"); dietary != "" {
			prefs.DietaryOptions = strings.Split(dietary, ",")
		}
		if cmd.Flags().Changed("min-rating") {
			minRating, _ := cmd.Flags().GetFloat64("min-rating")
			prefs.MinRating = &minRating
		}
		limit, _ := cmd.Flags().GetInt("limit")

		for _, restaurant := range search.Recommend(restaurants, prefs, limit) {
			fmt.Println(formatRestaurant(restaurant))
			fmt.Println()
		}
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <restaurant-id>",
	Short: "Find restaurants similar to a given one",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		restaurants := mustLoadRestaurants(cfg)

		target, ok := search.GetByID(restaurants, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Restaurant %s not found\n", args[0])
			os.Exit(1)
		}
		limit, _ := cmd.Flags().GetInt("limit")

		for _, restaurant := range search.Similar(restaurants, target, limit) {
			fmt.Println(formatRestaurant(restaurant))
			fmt.Println()
		}
	},
}

func init() {
	slotsCmd.Flags().Int("min-tables", 1, "Minimum free tables for a slot to count")
	slotsCmd.Flags().String("near", "", "Preferred HH:MM time; lists nearest alternatives instead")
	slotsCmd.Flags().Int("max-alternatives", 3, "Maximum alternatives listed with --near")

	datesCmd.Flags().Int("min-tables", 1, "Minimum free tables for a date to count")

	checkCmd.Flags().String("date", timeutil.Today(), "Date to check (YYYY-MM-DD)")
	checkCmd.Flags().String("time", "19:00", "Time to check (HH:MM)")
	checkCmd.Flags().Int("min-tables", 1, "Minimum free tables to report available")

	recommendCmd.Flags().String("cuisine", "", "Preferred cuisine")
	recommendCmd.Flags().String("price-range", "", "Preferred price range symbol")
	recommendCmd.Flags().String("dietary", "", "Comma-separated dietary options")
	recommendCmd.Flags().Float64("min-rating", 0, "Exclude restaurants rated below this")
	recommendCmd.Flags().Int("limit", 5, "Maximum recommendations")

	similarCmd.Flags().Int("limit", 3, "Maximum similar restaurants")

	rootCmd.AddCommand(slotsCmd, datesCmd, checkCmd, statsCmd, recommendCmd, similarCmd)
}

func mustLoadRestaurants(cfg *models.Config) []models.Restaurant {
	restaurants, err := store.LoadRestaurants(cfg.RestaurantsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading restaurants: %v\n", err)
		os.Exit(1)
	}
	return restaurants
}

func mustLoadAvailability(cfg *models.Config) models.Availability {
	avail, err := store.LoadAvailability(cfg.AvailabilityFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading availability: %v\n", err)
		os.Exit(1)
	}
	return avail
}
