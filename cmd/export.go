package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bizstat/internal/api"
	"bizstat/internal/config"
	"bizstat/internal/lookup"
	"bizstat/internal/sheet"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [input-file]",
	Short: "Look up statuses from a spreadsheet and write the results to an .xlsx file",
	Long: `Read business numbers from the first column of a spreadsheet
(.xlsx or .csv), look up their registration statuses, and write the
returned records to an .xlsx workbook.
Example:
  bizstat export numbers.xlsx --out statuses.xlsx`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if cfg.ServiceKey == "" {
			fmt.Println("Error: 서비스 키가 설정되지 않았습니다.")
			fmt.Println("환경 변수 NTS_SERVICE_KEY를 설정하거나 다음 명령으로 저장하세요: bizstat config set-key <SERVICE_KEY>")
			return
		}

		inputPath := args[0]
		file, err := os.Open(inputPath)
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			return
		}
		defer file.Close()

		tokens, err := sheet.ReadIdentifiers(inputPath, file)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			return
		}
		numbers := lookup.NormalizeAll(tokens)
		if len(numbers) == 0 {
			fmt.Println("조회할 사업자 번호가 파일에 없습니다.")
			return
		}

		fmt.Printf("Looking up %d business numbers...\n", len(numbers))

		client := api.NewClient(cfg.ServiceKey, cfg.RequestTimeout)
		svc := lookup.New(client, cfg.BatchSize)

		records, err := svc.Lookup(cmd.Context(), numbers)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		workbook, err := sheet.WriteRecords(records)
		if err != nil {
			fmt.Printf("Error building workbook: %v\n", err)
			return
		}

		outPath := exportOut
		if outPath == "" {
			outPath = fmt.Sprintf("bizstat_%s.xlsx", time.Now().Format("20060102_150405"))
		}
		if err := workbook.SaveAs(outPath); err != nil {
			fmt.Printf("Error writing %s: %v\n", outPath, err)
			return
		}

		fmt.Printf("Wrote %d records to %s\n", len(records), outPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output .xlsx path (default bizstat_<timestamp>.xlsx)")
}
