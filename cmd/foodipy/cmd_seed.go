package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodipy/foodipy/internal/app"
)

// foodipy seed — make sure the store has its defaults.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default catalog and bootstrap admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		// Building the app ensures the bootstrap admin; listing the
		// catalog seeds the default menu when none is stored.
		products := a.Catalog.List()
		fmt.Printf("Catalog ready: %d products\n", len(products))
		fmt.Printf("Admin account ready: %d users on record\n", len(a.Users.List()))
		return nil
	},
}
