package commands

import (
	"fmt"
	"strings"

	"handwerk/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Überblick über alle Projekte",
	Long:  `Zeigt Projektzahlen je Status, offene Aufgaben und erfasstes Material.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Datenbestand: %s\n", st.Path())
		fmt.Println()

		if len(doc.Projects) == 0 {
			fmt.Println("Keine Projekte erfasst.")
		} else {
			fmt.Printf("Projekte (%d):\n", len(doc.Projects))

			// Count per status in order of first appearance
			var order []string
			counts := make(map[string]int)
			for _, p := range doc.Projects {
				if _, seen := counts[p.Status]; !seen {
					order = append(order, p.Status)
				}
				counts[p.Status]++
			}

			for _, status := range order {
				switch status {
				case models.StatusOffen:
					color.Yellow("\t%s: %d\n", status, counts[status])
				case models.StatusErledigt:
					color.Green("\t%s: %d\n", status, counts[status])
				default:
					fmt.Printf("\t%s: %d\n", status, counts[status])
				}
			}
			fmt.Println()
		}

		openTasks := 0
		totalTasks := 0
		projectMaterials := 0
		for _, p := range doc.Projects {
			totalTasks += len(p.Tasks)
			for _, t := range p.Tasks {
				if t.Status == models.StatusOffen {
					openTasks++
				}
			}
			projectMaterials += len(p.Materials)
		}

		var parts []string
		if totalTasks > 0 {
			parts = append(parts, fmt.Sprintf("%d Aufgaben (%d offen)", totalTasks, openTasks))
		}
		if projectMaterials > 0 {
			parts = append(parts, fmt.Sprintf("%d Materialposten in Projekten", projectMaterials))
		}
		if len(doc.Inventory) > 0 {
			parts = append(parts, fmt.Sprintf("%d Posten im Lagerbestand", len(doc.Inventory)))
		}

		if len(parts) == 0 {
			fmt.Println("Keine Aufgaben, kein Material erfasst.")
		} else {
			fmt.Println(strings.Join(parts, ", "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
