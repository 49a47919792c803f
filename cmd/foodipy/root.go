// Command foodipy is the storefront's terminal front end. It parses
// input, renders records, and hands everything else to the data layer;
// no business rules live here.
//
//	foodipy shop       # interactive storefront session
//	foodipy seed       # seed the catalog and bootstrap admin
//	foodipy admin …    # product / user / order management
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foodipy",
	Short: "Foodipy — a local-first storefront",
	Long:  "Foodipy is a single-operator storefront persisted in a local record store. Browse the menu, fill a cart and place orders; admins manage products, users and orders.",
}

func init() {
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminCmd)
}
