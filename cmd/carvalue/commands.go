package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carvalue/carvalue-client/internal/client"
	"github.com/carvalue/carvalue-client/internal/config"
	"github.com/carvalue/carvalue-client/internal/logger"
	"github.com/carvalue/carvalue-client/internal/types"
	"github.com/carvalue/carvalue-client/internal/version"
)

// app holds what the subcommands share: one client built at startup from the environment
type app struct {
	client *client.Client
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var debug bool

	root := &cobra.Command{
		Use:   "carvalue",
		Short: "Car price prediction client",
		Long: `Query the car price prediction backend.

The backend address is read from API_BASE_URL (defaults to http://localhost:5000 in the
dev and test environments). Predictions are limited to REQUEST_TIMEOUT (default 30s).`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(debug)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every backend call")
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		a.healthCmd(),
		a.predictCmd(),
		a.modelInfoCmd(),
		a.trainCmd(),
	)

	return root
}

func (a *app) init(debug bool) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	level := logger.ParseLogLevel(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}
	a.logger = logger.NewLogger(a.stderr, level, cfg.Environment)

	a.client = client.NewClient(cfg.BaseURL(),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(a.logger),
	)
	a.logger.Debug("using prediction backend",
		slog.String("base_url", cfg.BaseURL()),
		slog.Duration("timeout", cfg.RequestTimeout),
	)

	return nil
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the backend is up and whether its model is trained",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(a.stdout, a.client.Health(cmd.Context()))
		},
	}
}

func (a *app) modelInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model-info",
		Short: "Show the algorithm, features and metrics of the trained model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(a.stdout, a.client.ModelInfo(cmd.Context()))
		},
	}
}

func (a *app) predictCmd() *cobra.Command {
	var car types.CarData

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate the selling price of a car",
		Example: `  carvalue predict --year 2017 --present-price 9.85 --kms-driven 6900 \
    --fuel-type Petrol --seller-type Dealer --transmission Manual --owner 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(a.stdout, a.client.Predict(cmd.Context(), car))
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&car.Year, "year", 0, "year of manufacture")
	flags.Float64Var(&car.PresentPrice, "present-price", 0, "current showroom price")
	flags.IntVar(&car.KmsDriven, "kms-driven", 0, "kilometres driven")
	flags.StringVar(&car.FuelType, "fuel-type", "", "Petrol, Diesel or CNG")
	flags.StringVar(&car.SellerType, "seller-type", "", "Dealer or Individual")
	flags.StringVar(&car.Transmission, "transmission", "", "Manual or Automatic")
	flags.IntVar(&car.Owner, "owner", 0, "number of previous owners")

	for _, name := range []string{"year", "present-price", "kms-driven", "fuel-type", "seller-type", "transmission"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *app) trainCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Retrain the backend's model from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("could not open training data: %w", err)
			}
			defer f.Close()

			return printResult(a.stdout, a.client.Train(cmd.Context(), filepath.Base(path), f))
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "CSV file with the training data")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// printResult writes the payload as JSON, or returns the user facing failure message
func printResult[T any](w io.Writer, r client.Result[T]) error {
	data, ok := r.Data()
	if !ok {
		return errors.New(r.Message())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
