package commands

import (
	"errors"
	"fmt"
	"strconv"

	"handwerk/internal/models"
	"handwerk/internal/util"

	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Materialbedarf erfassen",
	Long:  "Material für Projekte oder den Lagerbestand erfassen",
}

var materialAddCmd = &cobra.Command{
	Use:   "add [name] [quantity]",
	Short: "Material hinzufügen",
	Long: `Erfasst Material mit Menge und Einheit. Mit --project-id wird das
Material dem Projekt zugeordnet, sonst dem Lagerbestand.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		unit, _ := cmd.Flags().GetString("unit")
		material := models.NewMaterial(args[0], quantity, unit)

		var context string
		if projectID, _ := cmd.Flags().GetInt("project-id"); projectID != 0 {
			project, err := doc.FindProject(projectID)
			if err != nil {
				if errors.Is(err, models.ErrProjectNotFound) {
					fmt.Printf("Projekt %d nicht gefunden.\n", projectID)
					return nil
				}
				return err
			}
			project.Materials = append(project.Materials, material)
			context = fmt.Sprintf("Projekt %d", project.ID)
		} else {
			doc.AddInventory(material)
			context = "Lagerbestand"
		}

		if err := st.Save(doc); err != nil {
			return err
		}

		fmt.Printf("Material hinzugefügt zu %s: %s %s %s\n",
			context, util.FormatQuantity(material.Quantity), material.Unit, material.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialCmd)

	materialCmd.AddCommand(materialAddCmd)

	materialAddCmd.Flags().String("unit", "Stk", "Einheit (z.B. Stk, m, kg)")
	materialAddCmd.Flags().Int("project-id", 0, "Projekt-ID für projektbezogenen Bedarf")
}
