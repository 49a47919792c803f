package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foodipy/foodipy/internal/app"
	"github.com/foodipy/foodipy/internal/catalog"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/ledger"
)

// The admin surface. Every subcommand authenticates with --email and
// --password and requires the admin role. The data layer itself does
// not gate; role checks belong to the front end.
var (
	adminApp      *app.App
	adminEmail    string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage products, users and orders (admin role required)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}

		if _, err := a.Session.Login(adminEmail, adminPassword); err != nil {
			a.Close()
			return errors.New("invalid credentials")
		}
		if !a.Session.IsAdmin() {
			a.Close()
			return errors.New("admin role required")
		}

		adminApp = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if adminApp != nil {
			return adminApp.Close()
		}
		return nil
	},
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminEmail, "email", "", "admin account email")
	adminCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "admin account password")
	adminCmd.MarkPersistentFlagRequired("email")
	adminCmd.MarkPersistentFlagRequired("password")

	adminCmd.AddCommand(adminProductsCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminOrdersCmd)

	adminProductsCmd.AddCommand(productsListCmd)
	adminProductsCmd.AddCommand(productsAddCmd)
	adminProductsCmd.AddCommand(productsUpdateCmd)
	adminProductsCmd.AddCommand(productsDeleteCmd)

	adminUsersCmd.AddCommand(usersListCmd)
	adminUsersCmd.AddCommand(usersAddCmd)
	adminUsersCmd.AddCommand(usersUpdateCmd)
	adminUsersCmd.AddCommand(usersDeleteCmd)

	adminOrdersCmd.AddCommand(ordersListCmd)
	adminOrdersCmd.AddCommand(ordersStatusCmd)
}

// ── Products ─────────────────────────────────────────────────────────────────

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tIN STOCK\t")
		for _, p := range adminApp.Catalog.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%t\t\n", p.ID, p.Name, p.Category, p.Price, p.InStock)
		}
		return w.Flush()
	},
}

var productInput catalog.CreateInput

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := adminApp.Catalog.Create(productInput)
		if err != nil {
			return err
		}
		fmt.Printf("Created product %s (%s)\n", p.ID, p.Name)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product (only the flags you pass change)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := catalog.Patch{}
		if cmd.Flags().Changed("name") {
			patch.Name = &productInput.Name
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &productInput.Description
		}
		if cmd.Flags().Changed("price") {
			patch.Price = &productInput.Price
		}
		if cmd.Flags().Changed("image") {
			patch.Image = &productInput.Image
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &productInput.Category
		}
		if cmd.Flags().Changed("in-stock") {
			patch.InStock = &productInput.InStock
		}

		p, err := adminApp.Catalog.Update(args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated product %s (%s)\n", p.ID, p.Name)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product (existing orders keep their snapshots)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminApp.Catalog.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productInput.Name, "name", "", "product name")
		c.Flags().StringVar(&productInput.Description, "description", "", "product description")
		c.Flags().Float64Var(&productInput.Price, "price", 0, "price (>= 0)")
		c.Flags().StringVar(&productInput.Image, "image", "", "image URL")
		c.Flags().StringVar(&productInput.Category, "category", "", strings.Join(catalog.Categories, "|"))
		c.Flags().BoolVar(&productInput.InStock, "in-stock", true, "available for ordering")
	}
	productsAddCmd.MarkFlagRequired("name")
	productsAddCmd.MarkFlagRequired("category")
}

// ── Users ────────────────────────────────────────────────────────────────────

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var showPasswords bool

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if showPasswords {
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tPASSWORD HASH\t")
		} else {
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\t")
		}
		for _, u := range adminApp.Users.List() {
			if showPasswords {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", u.ID, u.Name, u.Email, u.Role, u.Password)
			} else {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", u.ID, u.Name, u.Email, u.Role)
			}
		}
		return w.Flush()
	},
}

var userInput directory.CreateInput

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an account (unique email enforced)",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := adminApp.Users.Create(userInput)
		if err != nil {
			return err
		}
		fmt.Printf("Created user %s <%s> role=%s\n", u.ID, u.Email, u.Role)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account (only the flags you pass change)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := directory.Patch{}
		if cmd.Flags().Changed("name") {
			patch.Name = &userInput.Name
		}
		if cmd.Flags().Changed("user-email") {
			patch.Email = &userInput.Email
		}
		if cmd.Flags().Changed("user-password") {
			patch.Password = &userInput.Password
		}
		if cmd.Flags().Changed("phone") {
			patch.Phone = &userInput.Phone
		}
		if cmd.Flags().Changed("address") {
			patch.Address = &userInput.Address
		}
		if cmd.Flags().Changed("role") {
			patch.Role = &userInput.Role
		}

		u, err := adminApp.Users.Update(args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated user %s <%s> role=%s\n", u.ID, u.Email, u.Role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account (their orders are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminApp.Users.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	usersListCmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "include stored password hashes")

	for _, c := range []*cobra.Command{usersAddCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userInput.Name, "name", "", "display name")
		c.Flags().StringVar(&userInput.Email, "user-email", "", "account email")
		c.Flags().StringVar(&userInput.Password, "user-password", "", "password (min 6 chars)")
		c.Flags().StringVar(&userInput.Phone, "phone", "", "phone number")
		c.Flags().StringVar(&userInput.Address, "address", "", "delivery address")
		c.Flags().StringVar(&userInput.Role, "role", "", "user|admin")
	}
	usersAddCmd.MarkFlagRequired("name")
	usersAddCmd.MarkFlagRequired("user-email")
	usersAddCmd.MarkFlagRequired("user-password")
}

// ── Orders ───────────────────────────────────────────────────────────────────

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect and progress orders",
}

var ordersUserFilter string

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally for one user",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tUSER\tPLACED\tTOTAL\tSTATUS\tPAYMENT\t")
		for _, o := range adminApp.Orders.List(ordersUserFilter) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s/%s\t\n",
				o.ID, o.UserID, o.CreatedAt.Format("2006-01-02 15:04"),
				o.Total, o.Status, o.Payment.Method, o.Payment.Status)
		}
		return w.Flush()
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Set an order's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := strings.ToLower(args[1])
		if !ledger.IsValidStatus(status) {
			return fmt.Errorf("status must be one of: %s", strings.Join(ledger.Statuses, ", "))
		}

		o, err := adminApp.Orders.UpdateStatus(args[0], status)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", o.ID, o.Status)
		return nil
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&ordersUserFilter, "user", "", "filter by user id")
}
