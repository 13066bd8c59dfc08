// Package cli drives the interactive trading menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soumadipchangder/Trading-Bot/internal/binance"
)

// Trader is the slice of the exchange client the menu needs.
type Trader interface {
	Balance(ctx context.Context, asset string) float64
	PlaceOrder(ctx context.Context, order binance.OrderRequest) *binance.Response
}

var errQuit = errors.New("quit")

// Menu reads numbered choices from in and writes prompts and results to out.
// It holds no terminal state, so tests can drive it with plain buffers.
type Menu struct {
	trader Trader
	asset  string
	in     *bufio.Reader
	out    io.Writer
}

// New wires the menu to a trader and the streams it talks over.
func New(trader Trader, asset string, in io.Reader, out io.Writer) *Menu {
	return &Menu{trader: trader, asset: asset, in: bufio.NewReader(in), out: out}
}

// action couples a menu key and label with its handler. A slice keeps the
// render order stable.
type action struct {
	key   string
	label string
	run   func(context.Context) error
}

func (m *Menu) actions() []action {
	return []action{
		{"1", fmt.Sprintf("Show %s balance", m.asset), m.showBalance},
		{"2", "Place MARKET order", func(ctx context.Context) error { return m.placeOrder(ctx, binance.Market) }},
		{"3", "Place LIMIT order", func(ctx context.Context) error { return m.placeOrder(ctx, binance.Limit) }},
		{"4", "Place STOP-LIMIT order", func(ctx context.Context) error { return m.placeOrder(ctx, binance.Stop) }},
		{"5", "Exit", func(context.Context) error { return errQuit }},
	}
}

// Run loops until the operator exits, the input ends, or ctx is cancelled.
// Malformed numeric input is the one thing that terminates with an error.
func (m *Menu) Run(ctx context.Context) error {
	actions := m.actions()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Futures Trading Bot ===")
		for _, a := range actions {
			fmt.Fprintf(m.out, "%s) %s\n", a.key, a.label)
		}
		fmt.Fprint(m.out, "Select option: ")

		choice, err := m.readLine()
		if err != nil {
			return err
		}

		var selected func(context.Context) error
		for _, a := range actions {
			if a.key == choice {
				selected = a.run
				break
			}
		}
		if selected == nil {
			fmt.Fprintln(m.out, "Invalid choice.")
			continue
		}
		if err := selected(ctx); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(m.out, "Goodbye!")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) showBalance(ctx context.Context) error {
	balance := m.trader.Balance(ctx, m.asset)
	fmt.Fprintf(m.out, "Your %s balance: %s\n", m.asset, strconv.FormatFloat(balance, 'f', -1, 64))
	return nil
}

func (m *Menu) placeOrder(ctx context.Context, orderType binance.OrderType) error {
	// Refresh the balance first so the operator sizes against live numbers.
	if err := m.showBalance(ctx); err != nil {
		return err
	}

	symbol, err := m.prompt("Symbol (e.g. BTCUSDT): ")
	if err != nil {
		return err
	}
	side, err := m.prompt("Side (BUY/SELL): ")
	if err != nil {
		return err
	}
	quantity, err := m.promptFloat("Quantity: ")
	if err != nil {
		return err
	}

	order := binance.OrderRequest{
		Symbol:   strings.ToUpper(symbol),
		Side:     binance.Side(strings.ToUpper(side)),
		Type:     orderType,
		Quantity: quantity,
	}
	switch orderType {
	case binance.Limit:
		price, err := m.promptFloat("Limit price: ")
		if err != nil {
			return err
		}
		order.Price = &price
	case binance.Stop:
		stop, err := m.promptFloat("Stop (trigger) price: ")
		if err != nil {
			return err
		}
		price, err := m.promptFloat("Limit price: ")
		if err != nil {
			return err
		}
		order.StopPrice = &stop
		order.Price = &price
	}

	resp := m.trader.PlaceOrder(ctx, order)
	fmt.Fprintf(m.out, "Order response: %s\n", resp)
	return nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptFloat(label string) (float64, error) {
	line, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", line, err)
	}
	return value, nil
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
