package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"storefront/internal/backend"
	"storefront/internal/config"
	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
	"storefront/pkg/storage"
	"storefront/transport"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "print-goods storefront: cart, checkout and order administration",
		Commands: []*cli.Command{
			cartCommand(),
			checkoutCommand(),
			ordersCommand(),
			backendCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return cfg, nil
}

// logDispatcher surfaces domain events in the logs instead of a message bus.
type logDispatcher struct{}

func (logDispatcher) Dispatch(event service.Event) error {
	log.WithField("event", event.Type()).Debug("domain event")
	return nil
}

func newCart(cfg config.Config) service.CartService {
	repo := storage.NewCartRepository(storage.NewFileStore(cfg.CartPath))
	return service.NewCartService(repo, logDispatcher{})
}

func cartCommand() *cli.Command {
	productFlag := &cli.IntFlag{Name: "product", Usage: "product id", Required: true}

	return &cli.Command{
		Name:  "cart",
		Usage: "inspect and mutate the local cart",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print the cart with derived totals",
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					cart := newCart(cfg)
					printCart(cart)
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "fetch a product and add it to the cart",
				Flags: []cli.Flag{
					productFlag,
					&cli.IntFlag{Name: "quantity", Value: 1},
				},
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					client := transport.NewClient(cfg.APIBaseURL)
					product, err := client.Product(cCtx.Context, cCtx.Int("product"))
					if err != nil {
						return err
					}
					cart := newCart(cfg)
					if err := cart.Add(*product, cCtx.Int("quantity")); err != nil {
						return err
					}
					printCart(cart)
					return nil
				},
			},
			{
				Name:  "remove",
				Usage: "remove a product from the cart",
				Flags: []cli.Flag{productFlag},
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					cart := newCart(cfg)
					if err := cart.Remove(cCtx.Int("product")); err != nil {
						return err
					}
					printCart(cart)
					return nil
				},
			},
			{
				Name:  "set-quantity",
				Usage: "overwrite a product's quantity; zero removes it",
				Flags: []cli.Flag{
					productFlag,
					&cli.IntFlag{Name: "quantity", Required: true},
				},
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					cart := newCart(cfg)
					if err := cart.SetQuantity(cCtx.Int("product"), cCtx.Int("quantity")); err != nil {
						return err
					}
					printCart(cart)
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "empty the cart",
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					return newCart(cfg).Clear()
				},
			},
		},
	}
}

func checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "submit the cart as an order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "full name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "address", Required: true},
			&cli.StringFlag{Name: "phone", Required: true},
			&cli.StringFlag{Name: "city", Required: true},
			&cli.StringFlag{Name: "state", Required: true},
			&cli.StringFlag{Name: "zip", Required: true},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			cart := newCart(cfg)
			client := transport.NewClient(cfg.APIBaseURL)
			checkout := service.NewCheckoutService(cart, client, logDispatcher{})

			details, err := checkout.PlaceOrder(cCtx.Context, service.CheckoutForm{
				CustomerName:    cCtx.String("name"),
				CustomerEmail:   cCtx.String("email"),
				ShippingAddress: cCtx.String("address"),
				PhoneNumber:     cCtx.String("phone"),
				City:            cCtx.String("city"),
				State:           cCtx.String("state"),
				Zip:             cCtx.String("zip"),
			})
			if err != nil {
				return err
			}
			printConfirmation(details)
			return nil
		},
	}
}

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "admin view of backend orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "fetch and print all orders",
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					admin := service.NewAdminOrderService(transport.NewClient(cfg.APIBaseURL), logDispatcher{})
					if err := admin.Refresh(cCtx.Context); err != nil {
						return err
					}
					printOrders(admin.Orders())
					return nil
				},
			},
			{
				Name:  "set-status",
				Usage: "change an order's status",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "order", Usage: "order id", Required: true},
					&cli.StringFlag{Name: "status", Usage: "pending or complete", Required: true},
				},
				Action: func(cCtx *cli.Context) error {
					cfg, err := setup()
					if err != nil {
						return err
					}
					admin := service.NewAdminOrderService(transport.NewClient(cfg.APIBaseURL), logDispatcher{})
					if err := admin.Refresh(cCtx.Context); err != nil {
						return err
					}

					status := model.OrderStatus(cCtx.String("status"))
					if err := admin.ChangeStatus(cCtx.Context, cCtx.String("order"), status); err != nil {
						fmt.Println("Failed to update order status, list resynchronized from backend")
						printOrders(admin.Orders())
						return err
					}
					printOrders(admin.Orders())
					return nil
				},
			},
		},
	}
}

func backendCommand() *cli.Command {
	return &cli.Command{
		Name:  "backend",
		Usage: "run the in-memory backend simulator",
		Action: func(cCtx *cli.Context) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			store := backend.NewStore(seedCatalog())
			srv := &http.Server{Addr: cfg.ListenAddr, Handler: backend.Router(store)}

			go func() {
				log.WithField("addr", cfg.ListenAddr).Info("backend simulator listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("failed to start server")
				}
			}()

			killSignalChan := make(chan os.Signal, 1)
			signal.Notify(killSignalChan, os.Interrupt, syscall.SIGTERM)
			<-killSignalChan
			log.Info("shutting down")
			return srv.Shutdown(context.Background())
		},
	}
}

func seedCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Sunset Poster", Description: "A2 matte print", Price: 12.50, Size: "A2", Category: "poster", StockQuantity: 40},
		{ID: 2, Name: "City Map Print", Description: "A3 gloss print", Price: 18.00, Size: "A3", Category: "print", StockQuantity: 25},
		{ID: 3, Name: "Botanical Set", Description: "Set of three A4 prints", Price: 24.90, Size: "A4", Category: "print", StockQuantity: 12},
	}
}

func printCart(cart service.CartService) {
	items := cart.Items()
	for _, item := range items {
		fmt.Printf("%d x %s ($%.2f each)\n", item.Quantity, item.Product.Name, item.Product.Price)
	}
	quote := service.PriceCart(items).Rounded()
	fmt.Printf("Subtotal: $%.2f  Shipping: $%.2f  Tax: $%.2f  Total: $%.2f  (%d items)\n",
		quote.Subtotal, quote.Shipping, quote.Tax, quote.Total, cart.Count())
}

func printConfirmation(details *model.OrderDetails) {
	fmt.Printf("Order #%s confirmed for %s %s on %s\n", details.OrderNumber, details.FirstName, details.LastName, details.Date)
	for _, item := range details.Items {
		fmt.Printf("%d x %s ($%.2f each)\n", item.Quantity, item.Name, item.Price)
	}
	fmt.Printf("Subtotal: $%.2f  Shipping: $%.2f  Tax: $%.2f  Total: $%.2f\n",
		details.Subtotal, details.Shipping, details.Tax, details.Total)
}

func printOrders(orders []model.AdminOrder) {
	for _, order := range orders {
		fmt.Printf("%s  %-20s %-25s $%.2f  %s  %s\n",
			order.ID, order.CustomerName, order.CustomerEmail, order.TotalAmount, order.OrderDate, order.Status)
	}
}
