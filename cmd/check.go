package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bizstat/internal/api"
	"bizstat/internal/config"
	"bizstat/internal/lookup"
	"bizstat/internal/sheet"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check [numbers...]",
	Short: "Look up business registration statuses",
	Long: `Look up the registration status of one or more business numbers
and print the resulting records as JSON. Hyphens and spaces inside the
numbers are ignored.
Examples:
  bizstat check 123-45-67890 220-81-62517
  bizstat check --file numbers.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if cfg.ServiceKey == "" {
			fmt.Println("Error: 서비스 키가 설정되지 않았습니다.")
			fmt.Println("환경 변수 NTS_SERVICE_KEY를 설정하거나 다음 명령으로 저장하세요: bizstat config set-key <SERVICE_KEY>")
			return
		}

		tokens := args
		if checkFile != "" {
			file, err := os.Open(checkFile)
			if err != nil {
				fmt.Printf("Error opening file: %v\n", err)
				return
			}
			defer file.Close()
			fileTokens, err := sheet.ReadIdentifiers(checkFile, file)
			if err != nil {
				fmt.Printf("Error reading file: %v\n", err)
				return
			}
			tokens = append(tokens, fileTokens...)
		}

		numbers := lookup.NormalizeAll(tokens)
		if len(numbers) == 0 {
			fmt.Println("조회할 사업자 번호를 입력해주세요.")
			return
		}

		client := api.NewClient(cfg.ServiceKey, cfg.RequestTimeout)
		svc := lookup.New(client, cfg.BatchSize)

		records, err := svc.Lookup(cmd.Context(), numbers)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		output, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(output))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Spreadsheet (.xlsx or .csv) whose first column holds business numbers")
}
