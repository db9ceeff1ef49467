package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/robosector/internal/contracts"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "섹터 분석 1회 실행",
	Long: `로봇 섹터 전 종목을 분석하고 리포트를 출력합니다.

이 명령어는:
- Universe 전 종목의 가격/재무/수급 데이터 로드
- 기술적 지표, 밸류에이션, 투자 점수 계산
- 수급 신호 및 섹터 집계
- 결과를 Redis에 캐시 (활성화된 경우)

Example:
  go run ./cmd/robosector analyze
  go run ./cmd/robosector analyze --json`,
	RunE: runAnalyze,
}

var analyzeJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "전체 리포트를 JSON으로 출력")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RoboSector Analysis ===")

	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.close()

	start := time.Now()

	report, err := d.runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("run analysis: %w", err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(report, time.Since(start))
	return nil
}

func printReport(report *contracts.SectorReport, elapsed time.Duration) {
	s := report.Sector

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  로봇 섹터 리포트  (%s)\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  분석 종목   : %d\n", s.StockCount)
	fmt.Printf("  BUY / HOLD / SELL : %d / %d / %d\n", s.BuyCount, s.HoldCount, s.SellCount)
	fmt.Printf("  평균 점수   : %.1f\n", s.AvgScore)
	fmt.Printf("  평균 1M 수익률 : %.2f%%\n", s.AvgReturn1M)
	fmt.Printf("  섹터 수급   : %s\n", report.Flow.Signal)
	fmt.Println("───────────────────────────────────────────────────────────")

	fmt.Println("\n  Top Picks:")
	for _, pick := range s.TopPicks {
		fmt.Printf("  %2d. %-14s %-8s %3d점  %s\n",
			pick.Rank, pick.Name, pick.Ticker, pick.Score, pick.Rating)
	}

	if len(s.Watchlist) > 0 {
		fmt.Println("\n  Watchlist:")
		for _, w := range s.Watchlist {
			fmt.Printf("      %-14s %-8s %3d점\n", w.Name, w.Ticker, w.Score)
		}
	}

	fmt.Println()
	fmt.Printf("✅ Analysis completed in %.2fs\n", elapsed.Seconds())
}
