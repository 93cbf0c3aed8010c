package commands

import (
	"fmt"

	"handwerk/internal/util"

	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Lagerbestand anzeigen",
	Long:  "Zugriff auf den projektunabhängigen Lagerbestand",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lagerbestand listen",
	Long:  "Listet alle Materialien im Lagerbestand auf",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		if len(doc.Inventory) == 0 {
			fmt.Println("Kein Lagerbestand erfasst.")
			return nil
		}

		fmt.Println("Lagerbestand:")
		for _, m := range doc.Inventory {
			fmt.Printf(" - %s (%s %s)\n", m.Name, util.FormatQuantity(m.Quantity), m.Unit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inventoryCmd)

	inventoryCmd.AddCommand(inventoryListCmd)
}
