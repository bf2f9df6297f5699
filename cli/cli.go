package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cart/cart"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const welcome = "Welcome to the Shopping Cart System!"

var errInvalidChoice = errors.New("invalid menu choice")

// errQuit ends the menu loop when Exit is chosen.
var errQuit = errors.New("quit")

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	cart    *cart.Cart
	logger  zerolog.Logger
	noColor bool

	ok   *color.Color
	fail *color.Color
	info *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, c *cart.Cart, noColor bool, logger zerolog.Logger) *Cli {
	cli := &Cli{
		scanner: s,
		out:     out,
		cart:    c,
		logger:  logger,
		noColor: noColor,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
	if noColor {
		cli.ok.DisableColor()
		cli.fail.DisableColor()
		cli.info.DisableColor()
	}
	return cli
}

/*
Start runs the menu loop until Exit is chosen or stdin is exhausted.
A read failure other than end of input is reported and returned.
*/
func (c *Cli) Start() error {
	c.printWelcome()
	for {
		c.printMenu()
		line, err := c.readLine()
		if err == nil {
			err = c.processChoice(line)
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		}
		c.logger.Error().Err(err).Msg("input aborted")
		c.fail.Fprintf(c.out, "Input error: %s\n", err)
		return err
	}
}

func (c *Cli) printWelcome() {
	if c.noColor {
		fmt.Fprintln(c.out, welcome)
		return
	}
	fmt.Fprint(c.out, pterm.DefaultHeader.Sprint(welcome))
	fmt.Fprintln(c.out)
}

func (c *Cli) printMenu() {
	c.info.Fprintln(c.out, "\nMenu:")
	fmt.Fprintln(c.out, `1. Add an item to the cart
2. Display cart items (Pre-order, In-order, Post-order)
3. Search for an item
4. Delete an item from the cart
5. Exit`)
	fmt.Fprint(c.out, "\nEnter your choice: ")
}

func parseChoice(line string) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > 5 {
		return 0, fmt.Errorf("%w: %q", errInvalidChoice, line)
	}
	return choice, nil
}

func (c *Cli) processChoice(line string) error {
	choice, err := parseChoice(line)
	if err != nil {
		c.logger.Debug().Err(err).Msg("menu")
		c.fail.Fprintln(c.out, "Invalid choice. Please try again.")
		return nil
	}

	switch choice {
	case 1:
		return c.processAdd()
	case 2:
		return c.processDisplay()
	case 3:
		return c.processSearch()
	case 4:
		return c.processDelete()
	default:
		fmt.Fprintln(c.out, "Exiting the system. Goodbye!")
		return errQuit
	}
}

func (c *Cli) processAdd() error {
	orderID, err := c.readInt("Enter order ID: ")
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, "Enter item name: ")
	name, err := c.readLine()
	if err != nil {
		return err
	}
	price, err := c.readPrice("Enter item price: ")
	if err != nil {
		return err
	}

	item, err := c.cart.Add(orderID, name, price)
	if errors.Is(err, cart.ErrCapacityExceeded) {
		c.fail.Fprintf(c.out, "The cart is full! You can only have up to %d items.\n", c.cart.Capacity())
		return nil
	}
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Item '%s' added to cart for %s\n", item.Name, cart.FormatPrice(item.Price))
	return nil
}

func (c *Cli) processDisplay() error {
	fmt.Fprintln(c.out, "Enter traversal type (Pre-order, In-order, Post-order): ")
	line, err := c.readLine()
	if err != nil {
		return err
	}

	if c.cart.IsEmpty() {
		c.fail.Fprintln(c.out, "The cart is empty!")
		return nil
	}
	t, err := cart.ParseTraversal(line)
	if err != nil {
		c.logger.Debug().Err(err).Msg("display")
		c.fail.Fprintln(c.out, "Invalid traversal type!")
		return nil
	}

	list, err := c.cart.Display(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s: %s\n", t, list)
	return nil
}

func (c *Cli) processSearch() error {
	orderID, err := c.readInt("Enter the Order ID to search: ")
	if err != nil {
		return err
	}

	item, err := c.cart.Search(orderID)
	if errors.Is(err, cart.ErrNotFound) {
		c.fail.Fprintf(c.out, "Item with Order ID %d not found.\n", orderID)
		return nil
	}
	if err != nil {
		return err
	}
	c.ok.Fprintln(c.out, "Item found: ")
	fmt.Fprintf(c.out, "Order ID: %d\n", item.OrderID)
	fmt.Fprintf(c.out, "Item Name: %s\n", item.Name)
	fmt.Fprintf(c.out, "Price: %s\n", cart.FormatPrice(item.Price))
	return nil
}

func (c *Cli) processDelete() error {
	orderID, err := c.readInt("Enter the Order ID to delete: ")
	if err != nil {
		return err
	}

	res, err := c.cart.Delete(orderID)
	if errors.Is(err, cart.ErrEmptyCart) {
		c.fail.Fprintln(c.out, "The cart is empty!")
		return nil
	}
	if err != nil {
		return err
	}
	if !res.Removed {
		c.fail.Fprintf(c.out, "Item with Order ID %d not found.\n", orderID)
		return nil
	}
	c.ok.Fprintf(c.out, "Item with Order ID %d has been deleted from the cart.\n", orderID)
	return nil
}

func (c *Cli) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// readInt prompts until the line parses as an integer.
func (c *Cli) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		c.logger.Debug().Str("input", line).Msg("not an integer")
		c.fail.Fprintln(c.out, "Invalid number, try again.")
	}
}

func (c *Cli) readPrice(prompt string) (decimal.Decimal, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		c.logger.Debug().Str("input", line).Msg("not a decimal")
		c.fail.Fprintln(c.out, "Invalid number, try again.")
	}
}
