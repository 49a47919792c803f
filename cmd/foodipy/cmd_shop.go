package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foodipy/foodipy/internal/app"
	"github.com/foodipy/foodipy/internal/catalog"
	"github.com/foodipy/foodipy/internal/checkout"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/ledger"
)

// foodipy shop — the interactive storefront session.
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Open an interactive storefront session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		return runShop(a)
	},
}

// shopSession keeps the per-session UI state: the app handle and the
// menu as last rendered, so line numbers map back to product ids.
type shopSession struct {
	app  *app.App
	menu []catalog.Product
	in   *bufio.Scanner
}

func runShop(a *app.App) error {
	s := &shopSession{app: a, in: bufio.NewScanner(os.Stdin)}

	fmt.Println("Welcome to Foodipy. Type 'help' for commands.")
	if user, ok := a.Session.Current(); ok {
		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
	}

	for {
		fmt.Print("foodipy> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			fmt.Println("Bye!")
			return nil
		}
		s.dispatch(cmd, args)
	}
}

func (s *shopSession) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		s.printHelp()
	case "menu":
		s.printMenu()
	case "add":
		s.addToCart(args)
	case "cart":
		s.printCart()
	case "qty":
		s.setQuantity(args)
	case "remove":
		s.removeFromCart(args)
	case "checkout":
		s.checkout(args)
	case "orders":
		s.printOrders()
	case "login":
		s.login(args)
	case "register":
		s.register()
	case "logout":
		s.app.Session.Logout()
		fmt.Println("Signed out.")
	case "profile":
		s.updateProfile()
	case "whoami":
		if user, ok := s.app.Session.Current(); ok {
			fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
		} else {
			fmt.Println("Not signed in.")
		}
	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (s *shopSession) printHelp() {
	fmt.Print(`Commands:
  menu                     show the catalog
  add <n>                  add menu line n to the cart
  cart                     show the cart and price breakdown
  qty <n> <count>          set quantity for cart line n
  remove <n>               remove cart line n
  checkout [cod|upi|card]  place the order (default cod)
  orders                   show your order history
  login <email>            sign in
  register                 create an account
  profile                  update name/phone/address
  logout · whoami · quit
`)
}

func (s *shopSession) printMenu() {
	s.menu = s.app.Catalog.List()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tITEM\tCATEGORY\tPRICE\t")
	for i, p := range s.menu {
		stock := ""
		if !p.InStock {
			stock = "(out of stock)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t₹%.2f\t%s\n", i+1, p.Name, p.Category, p.Price, stock)
	}
	w.Flush()
}

// menuLine resolves a 1-based menu number typed by the user.
func (s *shopSession) menuLine(arg string) (catalog.Product, bool) {
	if len(s.menu) == 0 {
		s.menu = s.app.Catalog.List()
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.menu) {
		fmt.Println("Pick a line number from 'menu'.")
		return catalog.Product{}, false
	}
	return s.menu[n-1], true
}

func (s *shopSession) addToCart(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: add <n>")
		return
	}
	p, ok := s.menuLine(args[0])
	if !ok {
		return
	}
	if !p.InStock {
		fmt.Printf("%s is out of stock.\n", p.Name)
		return
	}
	s.app.Cart.Add(p)
	fmt.Printf("Added %s. Cart has %d items.\n", p.Name, s.app.Cart.TotalItems())
}

// cartLine resolves a 1-based cart line number to its product id.
func (s *shopSession) cartLine(arg string) (string, bool) {
	items := s.app.Cart.Items()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		fmt.Println("Pick a line number from 'cart'.")
		return "", false
	}
	return items[n-1].ID, true
}

func (s *shopSession) printCart() {
	items := s.app.Cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tITEM\tQTY\tPRICE\tLINE TOTAL\t")
	for i, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t₹%.2f\t₹%.2f\t\n", i+1, it.Name, it.Quantity, it.Price, it.Price*float64(it.Quantity))
	}
	w.Flush()

	q := s.app.Checkout.Quote()
	fmt.Printf("Subtotal ₹%.2f · Tax ₹%.2f · Delivery ₹%.2f · Total ₹%.2f\n",
		q.Subtotal, q.Tax, q.DeliveryFee, q.Total)
}

func (s *shopSession) setQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: qty <n> <count>")
		return
	}
	id, ok := s.cartLine(args[0])
	if !ok {
		return
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("Usage: qty <n> <count>")
		return
	}
	s.app.Cart.SetQuantity(id, count)
	s.printCart()
}

func (s *shopSession) removeFromCart(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: remove <n>")
		return
	}
	id, ok := s.cartLine(args[0])
	if !ok {
		return
	}
	s.app.Cart.Remove(id)
	fmt.Println("Removed.")
}

func (s *shopSession) checkout(args []string) {
	method := checkout.MethodCOD
	if len(args) == 1 {
		method = strings.ToLower(args[0])
	}

	order, err := s.app.Checkout.PlaceOrder(method)
	switch {
	case errors.Is(err, checkout.ErrNotSignedIn):
		fmt.Println("Sign in first: login <email>")
		return
	case errors.Is(err, ledger.ErrEmptyCart):
		fmt.Println("Your cart is empty!")
		return
	case errors.Is(err, checkout.ErrUnknownMethod):
		fmt.Printf("Payment method must be one of: %s\n", strings.Join(checkout.Methods, ", "))
		return
	case err != nil:
		fmt.Printf("Checkout failed: %v\n", err)
		return
	}

	fmt.Printf("Order %s placed — status %s, total ₹%.2f (%s)\n",
		order.ID, order.Status, order.Total, order.Payment.Note)
}

func (s *shopSession) printOrders() {
	user, ok := s.app.Session.Current()
	if !ok {
		fmt.Println("Sign in to see your orders.")
		return
	}

	orders := s.app.Orders.List(user.ID)
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tPLACED\tITEMS\tTOTAL\tSTATUS\t")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t₹%.2f\t%s\t\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), len(o.Items), o.Total, o.Status)
	}
	w.Flush()
}

func (s *shopSession) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *shopSession) login(args []string) {
	var email string
	if len(args) == 1 {
		email = args[0]
	} else {
		email = s.prompt("Email")
	}
	password := s.prompt("Password")

	user, err := s.app.Session.Login(email, password)
	if err != nil {
		fmt.Println("Invalid credentials.")
		return
	}
	fmt.Printf("Welcome back, %s!\n", user.Name)
}

func (s *shopSession) register() {
	in := directory.RegisterInput{
		Name:     s.prompt("Name"),
		Email:    s.prompt("Email"),
		Password: s.prompt("Password (min 6 chars)"),
		Phone:    s.prompt("Phone (optional)"),
		Address:  s.prompt("Address (optional)"),
	}

	user, err := s.app.Session.Register(in)
	if err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return
	}
	fmt.Printf("Welcome, %s!\n", user.Name)
}

func (s *shopSession) updateProfile() {
	if _, ok := s.app.Session.Current(); !ok {
		fmt.Println("Sign in first.")
		return
	}

	fmt.Println("Leave a field blank to keep its current value.")
	patch := directory.Patch{}
	if v := s.prompt("Name"); v != "" {
		patch.Name = &v
	}
	if v := s.prompt("Phone"); v != "" {
		patch.Phone = &v
	}
	if v := s.prompt("Address"); v != "" {
		patch.Address = &v
	}

	if err := s.app.Session.UpdateProfile(patch); err != nil {
		fmt.Printf("Update failed: %v\n", err)
		return
	}
	fmt.Println("Profile updated.")
}
