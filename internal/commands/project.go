package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"handwerk/internal/models"
	"handwerk/internal/util"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Projekte verwalten",
	Long:  "Projekte anlegen, auflisten und im Detail anzeigen",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name] [customer]",
	Short: "Neues Projekt anlegen",
	Long:  "Legt ein neues Projekt für einen Auftraggeber an",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		project := models.NewProject(doc.NextProjectID(), args[0], args[1])

		if address, _ := cmd.Flags().GetString("address"); address != "" {
			project.Address = &address
		}
		if dueDate, _ := cmd.Flags().GetString("due-date"); dueDate != "" {
			project.DueDate = &dueDate
		}
		if notes, _ := cmd.Flags().GetString("notes"); notes != "" {
			project.Notes = &notes
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			project.Status = status
		}

		doc.AddProject(project)

		if err := st.Save(doc); err != nil {
			return err
		}

		slog.Debug("project created", "id", project.ID)
		fmt.Printf("Projekt %d angelegt: %s für %s\n", project.ID, project.Name, project.Customer)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "Projekte anzeigen",
	Long:  "Listet Projekte tabellarisch auf, optional nach Status gefiltert",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		projects := doc.Projects
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			// Exact, case-sensitive match, insertion order preserved
			filtered := make([]models.Project, 0, len(projects))
			for _, p := range projects {
				if p.Status == status {
					filtered = append(filtered, p)
				}
			}
			projects = filtered
		}

		if len(projects) == 0 {
			fmt.Println("Keine Projekte gefunden.")
			return nil
		}

		fmt.Println("ID  | Projekt                     | Kunde               | Status  | Termin")
		fmt.Println(strings.Repeat("-", 76))
		for _, p := range projects {
			fmt.Printf("%3d | %s | %s | %s | %s\n",
				p.ID,
				util.PadRight(util.Truncate(p.Name, 25), 25),
				util.PadRight(util.Truncate(p.Customer, 18), 18),
				util.PadRight(p.Status, 7),
				util.OrDash(p.DueDate),
			)
		}
		return nil
	},
}

var projectDetailCmd = &cobra.Command{
	Use:   "detail [project_id]",
	Short: "Details zu einem Projekt",
	Long:  "Zeigt alle Felder eines Projekts samt Aufgaben und Materialbedarf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		st := openStore()
		doc, err := st.Load()
		if err != nil {
			return err
		}

		project, err := doc.FindProject(id)
		if err != nil {
			if errors.Is(err, models.ErrProjectNotFound) {
				fmt.Printf("Projekt %d nicht gefunden.\n", id)
				return nil
			}
			return err
		}

		fmt.Printf("Projekt %d: %s\n", project.ID, project.Name)
		fmt.Printf("Kunde: %s\n", project.Customer)
		if project.Address != nil {
			fmt.Printf("Adresse: %s\n", *project.Address)
		}
		if project.DueDate != nil {
			fmt.Printf("Fällig am: %s\n", *project.DueDate)
		}
		fmt.Printf("Status: %s\n", project.Status)
		if project.Notes != nil {
			fmt.Printf("Notizen: %s\n", *project.Notes)
		}

		if len(project.Tasks) > 0 {
			fmt.Println("\nAufgaben:")
			for i, t := range project.Tasks {
				fmt.Printf(" %2d. [%s] %s (bis %s)\n", i+1, t.Status, t.Title, util.OrDash(t.DueDate))
			}
		} else {
			fmt.Println("\nKeine Aufgaben erfasst.")
		}

		if len(project.Materials) > 0 {
			fmt.Println("\nMaterialbedarf:")
			for _, m := range project.Materials {
				fmt.Printf(" - %s (%s %s)\n", m.Name, util.FormatQuantity(m.Quantity), m.Unit)
			}
		} else {
			fmt.Println("\nKein Material hinterlegt.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDetailCmd)

	projectAddCmd.Flags().String("address", "", "Adresse der Baustelle")
	projectAddCmd.Flags().String("due-date", "", "Geplanter Abschlusstermin (YYYY-MM-DD)")
	projectAddCmd.Flags().String("status", "offen", "Status, z.B. offen oder erledigt")
	projectAddCmd.Flags().String("notes", "", "Kurznotiz zum Projekt")

	projectListCmd.Flags().String("status", "", "Nach Status filtern")
}
