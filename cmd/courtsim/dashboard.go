package main

import (
	"github.com/spf13/cobra"

	"courtsim/internal/config"
	"courtsim/internal/dashboard"
)

var (
	dashboardOut    string
	dashboardConfig string
	dashboardSchema string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render Grafana dashboards for the exported tables",
	Long:  "dashboard renders Grafana dashboard JSON querying the GreptimeDB event and stat line tables. GREPTIMEDB_DATASOURCE_UID must be set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(dashboardConfig, dashboardSchema)
		if err != nil {
			return err
		}
		return dashboard.Render(dashboardOut, dashboard.Tables{
			Database:   cfg.Export.Database,
			EventTable: cfg.Export.EventTable,
			StatTable:  cfg.Export.StatTable,
		})
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "build", "Directory to write rendered dashboards to")
	dashboardCmd.Flags().StringVar(&dashboardConfig, "config", "config/match.yaml", "Path to match configuration YAML")
	dashboardCmd.Flags().StringVar(&dashboardSchema, "schema", "schemas/match.cue", "Path to CUE schema file")
}
