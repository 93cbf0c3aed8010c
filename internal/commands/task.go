package commands

import (
	"errors"
	"fmt"
	"strconv"

	"handwerk/internal/models"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Aufgaben verwalten",
	Long:  "Aufgaben zu bestehenden Projekten erfassen",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [project_id] [title]",
	Short: "Aufgabe zu Projekt hinzufügen",
	Long:  "Hängt eine Aufgabe an die Aufgabenliste eines Projekts an",
	Args:  cobra.ExactArgs(2),
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

		task := models.NewTask(args[1])
		if dueDate, _ := cmd.Flags().GetString("due-date"); dueDate != "" {
			task.DueDate = &dueDate
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			task.Status = status
		}

		project.Tasks = append(project.Tasks, task)

		if err := st.Save(doc); err != nil {
			return err
		}

		fmt.Printf("Aufgabe für Projekt %d gespeichert: %s\n", project.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)

	taskCmd.AddCommand(taskAddCmd)

	taskAddCmd.Flags().String("due-date", "", "Fälligkeitsdatum (YYYY-MM-DD)")
	taskAddCmd.Flags().String("status", "offen", "Status, z.B. offen oder erledigt")
}
