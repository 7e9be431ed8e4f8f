package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"inventory_dashboard/config"
	"inventory_dashboard/internal/clients"
	"inventory_dashboard/internal/domain"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
)

const usage = `Usage: inventoryctl [flags] <command> [args]

Commands:
  kpis                                     total stock, total demand and fill rate
  products [-search s] [-warehouse w] [-status s] [-page n] [-page-size n] [-clamp]
  product <id>
  warehouses
  chart [7d|14d|30d]
  demand <id> <newDemand>
  transfer <id> <quantity> <destinationWarehouse>

Flags:
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg, err := config.ParseClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	target := flag.String("target", cfg.Target, "inventory gRPC address")
	timeout := flag.Duration("timeout", cfg.CallTimeout, "per-call timeout")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level for client diagnostics")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	client, err := clients.NewInventoryGRPCClient(*target, *timeout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one command against client and writes its result to out as indented JSON.
func run(ctx context.Context, client clients.InventoryClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]

	var (
		result interface{}
		err    error
	)
	switch cmd {
	case "kpis":
		result, err = client.GetKPIs(ctx)
	case "products":
		var query domain.ProductQuery
		query, err = parseProductQuery(rest)
		if err == nil {
			result, err = client.ListProducts(ctx, query)
		}
	case "product":
		if len(rest) != 1 {
			return fmt.Errorf("%w: product takes <id>", errUsage)
		}
		result, err = client.GetProduct(ctx, rest[0])
	case "warehouses":
		result, err = client.ListWarehouses(ctx)
	case "chart":
		r := domain.Range7d
		if len(rest) > 0 {
			r = domain.ChartRange(rest[0])
		}
		result, err = client.GetChartData(ctx, r)
	case "demand":
		if len(rest) != 2 {
			return fmt.Errorf("%w: demand takes <id> <newDemand>", errUsage)
		}
		var n int
		if n, err = parseInt("newDemand", rest[1]); err == nil {
			result, err = client.UpdateProductDemand(ctx, rest[0], n)
		}
	case "transfer":
		if len(rest) != 3 {
			return fmt.Errorf("%w: transfer takes <id> <quantity> <destinationWarehouse>", errUsage)
		}
		var n int
		if n, err = parseInt("quantity", rest[1]); err == nil {
			result, err = client.TransferStock(ctx, rest[0], n, rest[2])
		}
	default:
		return fmt.Errorf("%w: unknown command '%s'", errUsage, cmd)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parseProductQuery(args []string) (domain.ProductQuery, error) {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "case-insensitive match on name, SKU or id")
	warehouse := fs.String("warehouse", "", "warehouse id")
	status := fs.String("status", "", "healthy, low or critical")
	page := fs.Int("page", 0, "1-based page")
	pageSize := fs.Int("page-size", 0, "items per page")
	clamp := fs.Bool("clamp", false, "move an out-of-range page onto the last page")
	if err := fs.Parse(args); err != nil {
		return domain.ProductQuery{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	return domain.ProductQuery{
		Search:    *search,
		Warehouse: *warehouse,
		Status:    domain.Status(*status),
		Page:      *page,
		PageSize:  *pageSize,
		ClampPage: *clamp,
	}, nil
}

func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got '%s'", domain.ErrInvalidInput, name, raw)
	}
	return n, nil
}
