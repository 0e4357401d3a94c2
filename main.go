package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/routing"
)

var (
	config_file    string
	log_level      string
	metric_flag    string
	algorithm_flag string

	CONFIG  Config
	MANAGER *NetworkManager

	rootCmd = &cobra.Command{
		Use:           "metro",
		Short:         "Shortest routes and itineraries on a metro network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.ErrOrStderr())
		},
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the http api",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	stationsCmd = &cobra.Command{
		Use:   "stations",
		Short: "List all stations with number and code",
		Args:  cobra.NoArgs,
		RunE:  runStations,
	}
	mapCmd = &cobra.Command{
		Use:   "map",
		Short: "Print every station with its neighbours",
		Args:  cobra.NoArgs,
		RunE:  runMap,
	}
	componentsCmd = &cobra.Command{
		Use:   "components",
		Short: "Print the connected components of the network",
		Args:  cobra.NoArgs,
		RunE:  runComponents,
	}
	reachableCmd = &cobra.Command{
		Use:   "reachable [from] [to]",
		Short: "Check whether a route between two stations exists",
		Args:  cobra.ExactArgs(2),
		RunE:  runReachable,
	}
	costCmd = &cobra.Command{
		Use:     "cost [from] [to]",
		Aliases: []string{"distance"},
		Short:   "Print the minimum distance or travel time between two stations",
		Args:    cobra.ExactArgs(2),
		RunE:    runCost,
	}
	routeCmd = &cobra.Command{
		Use:   "route [from] [to]",
		Short: "Print the best route between two stations with its interchanges",
		Args:  cobra.ExactArgs(2),
		RunE:  runRoute,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&config_file, "config", "c", "./config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&log_level, "log-level", "", "overrides logging.level of the config")
	costCmd.Flags().StringVarP(&metric_flag, "metric", "m", "", "distance or time")
	routeCmd.Flags().StringVarP(&metric_flag, "metric", "m", "", "distance or time")
	routeCmd.Flags().StringVarP(&algorithm_flag, "algorithm", "a", "", "dijkstra or exhaustive")

	rootCmd.AddCommand(serveCmd, stationsCmd, mapCmd, componentsCmd, reachableCmd, costCmd, routeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setup(log_out io.Writer) error {
	config, err := ReadConfig(config_file)
	if err != nil {
		return err
	}
	if log_level != "" {
		config.Logging.Level = log_level
	}
	if err := SetupLogging(log_out, config.Logging.Level); err != nil {
		return err
	}
	manager, err := NewNetworkManager(config)
	if err != nil {
		return err
	}
	CONFIG = config
	MANAGER = manager
	return nil
}

//**********************************************************
// commands
//**********************************************************

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, CONFIG.Server.Address, MANAGER)
}

func runStations(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, station := range MANAGER.Stations() {
		fmt.Fprintf(out, "%3d. %-32s %v\n", station.Number, station.Name, station.Code)
	}
	return nil
}

func runMap(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\t Metro Map")
	fmt.Fprintln(out, "\t------------------")
	for _, entry := range MANAGER.Map() {
		fmt.Fprintln(out, entry.Station+" =>")
		for _, nbr := range entry.Neighbours {
			fmt.Fprintf(out, "\t%-32s\t%v\n", nbr.To, nbr.Distance)
		}
	}
	fmt.Fprintln(out, "\t------------------")
	return nil
}

func runComponents(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, component := range MANAGER.Components() {
		fmt.Fprintf(out, "%v: %v stations\n", i+1, component.Length())
		for _, station := range component {
			fmt.Fprintln(out, "\t"+station)
		}
	}
	return nil
}

func runReachable(cmd *cobra.Command, args []string) error {
	resp, err := MANAGER.Reachable(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v: %v\n", resp.From, resp.To, resp.Reachable)
	return nil
}

func runCost(cmd *cobra.Command, args []string) error {
	m, err := _ParseMetric(metric_flag, CONFIG.Routing.Metric)
	if err != nil {
		return err
	}
	resp, err := MANAGER.Cost(args[0], args[1], m)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v: %v %v\n", resp.From, resp.To, resp.Total, resp.Unit)
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	m, err := _ParseMetric(metric_flag, CONFIG.Routing.Metric)
	if err != nil {
		return err
	}
	alg := CONFIG.Routing.Algorithm
	if algorithm_flag != "" {
		alg, err = routing.AlgorithmTypeFromString(algorithm_flag)
		if err != nil {
			return err
		}
	}
	resp, err := MANAGER.Route(args[0], args[1], m, alg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	label := "DISTANCE"
	if m == graph.TIME {
		label = "TIME"
	}
	fmt.Fprintf(out, "SOURCE STATION: %v\n", resp.From)
	fmt.Fprintf(out, "DESTINATION STATION: %v\n", resp.To)
	fmt.Fprintf(out, "%v: %v %v\n", label, resp.Itinerary.Total, resp.Itinerary.Unit)
	fmt.Fprintf(out, "NUMBER OF INTERCHANGES: %v\n", resp.Itinerary.Interchanges)
	fmt.Fprintln(out, "~~~~~~~~~~~~~")
	lines := make([]string, 0, resp.Itinerary.Segments.Length())
	for _, segment := range resp.Itinerary.Segments {
		lines = append(lines, segment.String())
	}
	fmt.Fprintln(out, strings.Join(lines, "\n"))
	fmt.Fprintln(out, "~~~~~~~~~~~~~")
	return nil
}
