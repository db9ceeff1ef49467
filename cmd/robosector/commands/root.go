package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "robosector",
	Short: "로봇 섹터 주식 분석 파이프라인",
	Long: `RoboSector CLI

국내 로봇 섹터 종목의 기술적/펀더멘털/수급 분석 파이프라인.
일일 배치 분석과 섹터 리포트 API를 제공합니다.

Usage:
  go run ./cmd/robosector [command]

Examples:
  go run ./cmd/robosector analyze
  go run ./cmd/robosector api
  go run ./cmd/robosector scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
