package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ordering/cmd"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
)

// Usage: app productID:price:quantity [productID:price:quantity ...]
//
// Every argument is added to one order; the merged lines are logged at the end.
func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	app := cmd.NewCompositionRoot(config, logger)

	if err = run(context.Background(), &app, os.Args[1:]); err != nil {
		log.Fatalf("Error building order: %v", err)
	}
}

func run(ctx context.Context, app *cmd.CompositionRoot, args []string) error {
	orderID := kernel.NewUUID()

	createCmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return err
	}
	createHandler := app.CreateCreateOrderCommandHandler()
	if err = createHandler.Handle(ctx, createCmd); err != nil {
		return err
	}

	addHandler := app.CreateAddItemCommandHandler()
	for _, arg := range args {
		productID, price, quantity, parseErr := parseLine(arg)
		if parseErr != nil {
			return parseErr
		}

		addCmd, cmdErr := commands.NewAddItemCommand(orderID, productID, "", price, quantity)
		if cmdErr != nil {
			return cmdErr
		}

		// rejected lines are reported and skipped, the order stays as it was
		if err = addHandler.Handle(ctx, addCmd); err != nil {
			if errors.Is(err, order.ErrIncorrectItem) {
				continue
			}
			return err
		}
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return err
	}
	lines, err := app.CreateGetOrderItemsQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	logger := app.Logger()
	for i, line := range lines {
		logger.Info().
			Int("line", i+1).
			Stringer("product_id", line.ProductID).
			Float64("price", line.Price).
			Int("quantity", line.Quantity).
			Msg("order line")
	}
	logger.Info().Stringer("order_id", orderID).Int("lines", len(lines)).Msg("order built")
	return nil
}

func parseLine(arg string) (product.ID, float64, int, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("line %q: want productID:price:quantity", arg)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %q: product id: %w", arg, err)
	}
	price, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %q: price: %w", arg, err)
	}
	quantity, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %q: quantity: %w", arg, err)
	}

	return product.ID(id), price, quantity, nil
}
