package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/database/seeders"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/kv"
)

// vastra seed — write the fixture documents.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the JSON fixture documents (products, users)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Seeding fixtures into %s\n", config.FixtureDir())
		return seeders.RunAll(config.FixtureDir())
	},
}

// vastra fixtures:verify — sanity-check the fixture documents.
var fixturesVerifyCmd = &cobra.Command{
	Use:   "fixtures:verify",
	Short: "Check the fixture documents parse and hold usable records",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.FixtureDir()

		products := repositories.NewProductRepository(dir)
		seen := map[int]bool{}
		for _, p := range products.All() {
			switch {
			case seen[p.ID]:
				return fmt.Errorf("products.json: duplicate id %d", p.ID)
			case p.Name == "":
				return fmt.Errorf("products.json: product %d has no name", p.ID)
			case p.Price < 0:
				return fmt.Errorf("products.json: product %d has negative price", p.ID)
			case len(p.Sizes) == 0:
				return fmt.Errorf("products.json: product %d has no sizes", p.ID)
			}
			seen[p.ID] = true
		}

		users := repositories.NewUserRepository(dir)
		emails := map[string]bool{}
		for _, u := range users.All() {
			if u.Email == "" {
				return fmt.Errorf("users.json: user %d has no email", u.ID)
			}
			if emails[u.Email] {
				return fmt.Errorf("users.json: duplicate email %s", u.Email)
			}
			emails[u.Email] = true
		}

		fmt.Printf("OK: %d products, %d users in %s\n", len(seen), users.Count(), dir)
		return nil
	},
}

// vastra cart:show — dump the persisted cart.
var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Print the persisted cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		products := repositories.NewProductRepository(config.FixtureDir())
		cart := services.NewCartService(
			kv.NewFile(config.DataDir()), config.CartKey(), products, event.NewBus(),
		)

		lines := cart.Items()
		if len(lines) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PRODUCT\tSIZE\tQTY\tPRICE\tSUBTOTAL")
		for _, l := range lines {
			fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n", l.Name, l.Size, l.Quantity, l.Price, l.Subtotal())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("Total: %.2f (%d items)\n", cart.Total(), cart.ItemCount())
		return nil
	},
}
